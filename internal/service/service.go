// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package service runs the conversion workflow shared by every front end:
// validate the request, convert it, record it in the session history and
// journal it.
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/jeranaias/unitconv/internal/catalog"
	"github.com/jeranaias/unitconv/internal/config"
	"github.com/jeranaias/unitconv/internal/convert"
	"github.com/jeranaias/unitconv/internal/history"
	"github.com/jeranaias/unitconv/internal/logging"
	"github.com/jeranaias/unitconv/internal/session"
	"github.com/jeranaias/unitconv/internal/units"
)

// Journal persists successful conversions. *storage.Journal implements it.
type Journal interface {
	Record(ctx context.Context, sessionID string, rec convert.Record) error
}

// Service is the conversion workflow. It is safe for concurrent use.
type Service struct {
	mu        sync.RWMutex
	converter *convert.Converter
	catalog   *catalog.Catalog
	journal   Journal
}

// New creates a service. A nil journal disables journaling.
func New(conv *convert.Converter, cat *catalog.Catalog, journal Journal) *Service {
	if cat == nil {
		cat = catalog.Default()
	}
	return &Service{converter: conv, catalog: cat, journal: journal}
}

// FromConfig builds the registry, catalog and converter described by cfg.
func FromConfig(cfg *config.Config, journal Journal) (*Service, error) {
	reg, err := Registry(cfg)
	if err != nil {
		return nil, err
	}
	cat, err := Catalog(cfg, reg)
	if err != nil {
		return nil, err
	}
	conv := convert.New(reg, convert.WithPrecision(cfg.Converter.Precision))
	return New(conv, cat, journal), nil
}

// Registry returns the default registry extended with cfg's [[units]].
func Registry(cfg *config.Config) (*units.Registry, error) {
	reg := units.NewRegistry()
	for _, u := range cfg.Units {
		err := reg.Define(units.Definition{
			Name:      u.Name,
			Symbols:   u.Symbols,
			Aliases:   u.Aliases,
			Factor:    u.Factor,
			Reference: u.Reference,
		})
		if err != nil {
			return nil, fmt.Errorf("config unit %q: %w", u.Name, err)
		}
	}
	return reg, nil
}

// Catalog returns the default catalog plus cfg's [categories], checked
// against reg.
func Catalog(cfg *config.Config, reg *units.Registry) (*catalog.Catalog, error) {
	cat, err := catalog.Default().With(cfg.CatalogEntries())
	if err != nil {
		return nil, fmt.Errorf("config categories: %w", err)
	}
	if err := cat.Validate(reg); err != nil {
		return nil, fmt.Errorf("config categories: %w", err)
	}
	return cat, nil
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Converter returns the current converter.
func (s *Service) Converter() *convert.Converter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.converter
}

// SetPrecision swaps in a converter using p decimals.
func (s *Service) SetPrecision(p int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p == s.converter.Precision() {
		return
	}
	s.converter = convert.New(s.converter.Registry(), convert.WithPrecision(p))
	log.Printf("PRECISION_CHANGED | precision=%d", p)
}

// HasJournal reports whether conversions are journaled.
func (s *Service) HasJournal() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.journal != nil
}

// Catalog returns the unit catalog.
func (s *Service) Catalog() *catalog.Catalog {
	return s.catalog
}

// Categories returns the categories in selector order.
func (s *Service) Categories() []catalog.Category {
	return s.catalog.Categories()
}

// UnitsFor returns the ordered units of a category.
func (s *Service) UnitsFor(category catalog.Category) ([]string, error) {
	return s.catalog.UnitsFor(category)
}

// InferCategory returns the first category listing both units. It
// returns false when no single category holds the pair, so mixed pairs
// such as celsius and meter go to the registry and fail there instead
// of taking the unmatched-pair shortcut of a category they do not share.
func (s *Service) InferCategory(from, to string) (catalog.Category, bool) {
	for _, cat := range s.catalog.Categories() {
		list, _ := s.catalog.UnitsFor(cat)
		if contains(list, from) && contains(list, to) {
			return cat, true
		}
	}
	return "", false
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// =============================================================================
// WORKFLOW
// =============================================================================

// Convert runs one conversion for sess. On success the record is added to
// the session history and journaled. An empty category converts through
// the registry without a catalog check. Journal failures are logged and
// never fail the conversion.
func (s *Service) Convert(ctx context.Context, sess *session.Session, req convert.Request) (convert.Record, error) {
	req.From = strings.TrimSpace(req.From)
	req.To = strings.TrimSpace(req.To)

	if req.Category != "" && !s.catalog.Has(req.Category) {
		err := &convert.RequestError{Field: "category", Message: fmt.Sprintf("%q is not available", req.Category)}
		log.Printf("CONVERT_REJECTED | session=%s error=%v", sessionID(sess), err)
		return convert.Record{}, err
	}

	s.mu.RLock()
	conv := s.converter
	journal := s.journal
	s.mu.RUnlock()

	rec, err := conv.Do(req)
	if err != nil {
		if errors.Is(err, convert.ErrInvalidRequest) {
			log.Printf("CONVERT_REJECTED | session=%s error=%v", sessionID(sess), err)
		} else {
			log.Printf("CONVERT_FAILED | session=%s category=%s from=%s to=%s error=%v",
				sessionID(sess), req.Category, req.From, req.To, err)
		}
		return convert.Record{}, err
	}

	if sess != nil {
		sess.Record(rec)
		sess.Touch()
	}
	log.Printf("CONVERT_OK | session=%s category=%s record=%q", sessionID(sess), rec.Category, rec.String())

	if journal != nil {
		if err := journal.Record(ctx, sessionID(sess), rec); err != nil {
			log.Printf("JOURNAL_WRITE_FAILED | session=%s error=%v", sessionID(sess), err)
		} else {
			logging.Debugf("journal_write | session=%s", sessionID(sess))
		}
	}
	return rec, nil
}

// ClearHistory empties the session history. The journal is not touched.
func (s *Service) ClearHistory(_ context.Context, sess *session.Session) {
	if sess == nil {
		return
	}
	sess.ClearHistory()
	sess.Touch()
	log.Printf("HISTORY_CLEARED | session=%s", sess.ID())
}

// History returns the session history as numbered lines, newest first.
func (s *Service) History(sess *session.Session) []string {
	if sess == nil {
		return nil
	}
	return history.Numbered(sess.History())
}

func sessionID(sess *session.Session) string {
	if sess == nil {
		return "-"
	}
	return sess.ID()
}
