// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/jeranaias/unitconv/internal/catalog"
	"github.com/jeranaias/unitconv/internal/convert"
	"github.com/jeranaias/unitconv/internal/docs"
	"github.com/jeranaias/unitconv/internal/history"
	"github.com/jeranaias/unitconv/internal/service"
	"github.com/jeranaias/unitconv/internal/session"
)

// ============================================================================
// CONSTANTS
// ============================================================================

const (
	// DefaultPort is the default port for the HTTP server.
	DefaultPort = 8790

	// DefaultHost binds to loopback only.
	DefaultHost = "127.0.0.1"

	// MaxRequestBodySize bounds form and JSON bodies.
	MaxRequestBodySize = 64 * 1024

	// SessionCookie carries the session id for browsers.
	SessionCookie = "unitconv_session"

	// SessionHeader carries the session id for API clients.
	SessionHeader = "X-Session-Id"
)

//go:embed web
var webFS embed.FS

var pageTemplate = template.Must(template.ParseFS(webFS, "web/index.html"))

// ============================================================================
// SERVER
// ============================================================================

// Options configures a Server.
type Options struct {
	Host string
	Port int

	// RateLimitPerMinute caps requests per client IP; 0 disables limiting.
	RateLimitPerMinute int

	// SessionTimeout expires idle browser sessions (default: 30 minutes).
	SessionTimeout time.Duration

	// HistorySize is the history capacity of new sessions (default: 10).
	HistorySize int

	// MaxSessions caps live browser sessions (default: 10000).
	MaxSessions int

	// DefaultValue pre-fills the value input (default: 1.0).
	DefaultValue float64

	// Version is reported by /health.
	Version string
}

// flash is the outcome of the last form submission, shown once.
type flash struct {
	result string
	err    string
}

// Server serves the converter page and its JSON API.
type Server struct {
	opts     Options
	svc      *service.Service
	sessions *session.Manager
	limiter  *RateLimiter
	router   *http.ServeMux
	handler  http.Handler
	docsHTML template.HTML
	started  time.Time

	flashMu sync.Mutex
	flashes map[string]flash

	mu     sync.Mutex
	server *http.Server
	cancel context.CancelFunc
}

// New creates a Server backed by svc.
func New(svc *service.Service, opts Options) (*Server, error) {
	if svc == nil {
		return nil, errors.New("server: nil service")
	}
	if opts.Host == "" {
		opts.Host = DefaultHost
	}
	if opts.Port == 0 {
		opts.Port = DefaultPort
	}
	if opts.HistorySize <= 0 {
		opts.HistorySize = history.DefaultCapacity
	}
	if opts.DefaultValue < 0 {
		opts.DefaultValue = 0
	}

	docsHTML, err := docs.RenderHTML(docs.Markdown(svc.Categories(), opts.HistorySize))
	if err != nil {
		return nil, err
	}

	s := &Server{
		opts: opts,
		svc:  svc,
		sessions: session.NewManager(session.Config{
			Timeout:     opts.SessionTimeout,
			HistorySize: opts.HistorySize,
			MaxSessions: opts.MaxSessions,
		}),
		router:   http.NewServeMux(),
		docsHTML: template.HTML(docsHTML),
		started:  time.Now(),
		flashes:  make(map[string]flash),
	}
	s.sessions.SetExpireCallback(s.dropFlash)
	s.setupRoutes()

	middlewares := []func(http.Handler) http.Handler{
		RecoveryMiddleware(),
		SecurityHeadersMiddleware(),
		LoggingMiddleware(log.Default()),
	}
	if opts.RateLimitPerMinute > 0 {
		s.limiter = NewRateLimiter(opts.RateLimitPerMinute)
		middlewares = append(middlewares, RateLimitMiddleware(s.limiter))
	}
	s.handler = Chain(middlewares...)(s.router)

	return s, nil
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return net.JoinHostPort(s.opts.Host, strconv.Itoa(s.opts.Port))
}

// Handler returns the full handler including middleware.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Sessions returns the session manager.
func (s *Server) Sessions() *session.Manager {
	return s.sessions
}

// ============================================================================
// ROUTES
// ============================================================================

func (s *Server) setupRoutes() {
	static, _ := fs.Sub(webFS, "web")

	// Page
	s.router.HandleFunc("GET /{$}", s.handleIndex)
	s.router.HandleFunc("POST /convert", s.handleConvertForm)
	s.router.HandleFunc("POST /clear", s.handleClearForm)
	s.router.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(static)))

	// JSON API
	s.router.HandleFunc("GET /api/categories", s.handleCategories)
	s.router.HandleFunc("GET /api/categories/{name}/units", s.handleUnits)
	s.router.HandleFunc("POST /api/convert", s.handleConvertAPI)
	s.router.HandleFunc("GET /api/history", s.handleHistory)
	s.router.HandleFunc("DELETE /api/history", s.handleClearAPI)

	s.router.HandleFunc("GET /health", s.handleHealth)
}

// ============================================================================
// SESSIONS
// ============================================================================

func requestSessionID(r *http.Request) string {
	if id := r.Header.Get(SessionHeader); id != "" {
		return id
	}
	if c, err := r.Cookie(SessionCookie); err == nil {
		return c.Value
	}
	return ""
}

// existingSession returns the caller's live session, or nil. Handlers that
// only read or clear history use it so they never start sessions.
func (s *Server) existingSession(w http.ResponseWriter, r *http.Request) *session.Session {
	id := requestSessionID(r)
	if id == "" {
		return nil
	}
	sess, ok := s.sessions.Get(id)
	if !ok {
		return nil
	}
	w.Header().Set(SessionHeader, sess.ID())
	return sess
}

// sessionFor resolves the caller's session from the header or cookie,
// creating one (and setting the cookie) when needed.
func (s *Server) sessionFor(w http.ResponseWriter, r *http.Request) *session.Session {
	sess, created := s.sessions.GetOrCreate(requestSessionID(r))
	if created {
		http.SetCookie(w, &http.Cookie{
			Name:     SessionCookie,
			Value:    sess.ID(),
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		log.Printf("SESSION_START | session=%s ip=%s", sess.ID(), GetClientIP(r))
	}
	w.Header().Set(SessionHeader, sess.ID())
	return sess
}

func (s *Server) setFlash(id string, f flash) {
	s.flashMu.Lock()
	defer s.flashMu.Unlock()
	s.flashes[id] = f
}

func (s *Server) takeFlash(id string) flash {
	s.flashMu.Lock()
	defer s.flashMu.Unlock()
	f := s.flashes[id]
	delete(s.flashes, id)
	return f
}

func (s *Server) dropFlash(id string) {
	s.flashMu.Lock()
	defer s.flashMu.Unlock()
	delete(s.flashes, id)
}

// ============================================================================
// PAGE HANDLERS
// ============================================================================

// pageData feeds web/index.html.
type pageData struct {
	Categories   []string
	Category     string
	Units        []string
	From         string
	To           string
	Value        string
	Result       string
	Error        string
	History      []string
	EmptyMessage string
	DocsHTML     template.HTML
}

// handleIndex handles GET /.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionFor(w, r)
	q := r.URL.Query()

	cats := s.svc.Categories()
	category := cats[0]
	if name := q.Get("category"); name != "" {
		if c, ok := s.svc.Catalog().Lookup(name); ok {
			category = c
		}
	}
	unitList, _ := s.svc.UnitsFor(category)

	data := pageData{
		Category:     string(category),
		Units:        unitList,
		From:         pick(unitList, q.Get("from")),
		To:           pick(unitList, q.Get("to")),
		Value:        convert.FormatValue(s.opts.DefaultValue),
		History:      s.svc.History(sess),
		EmptyMessage: history.EmptyMessage,
		DocsHTML:     s.docsHTML,
	}
	for _, c := range cats {
		data.Categories = append(data.Categories, string(c))
	}
	if v := q.Get("value"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			data.Value = v
		}
	}

	f := s.takeFlash(sess.ID())
	if f.result != "" {
		data.Result = convert.SuccessPrefix + " " + f.result
	}
	data.Error = f.err

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, data); err != nil {
		log.Printf("TEMPLATE_ERROR | error=%v", err)
	}
}

// pick returns want when it is one of list, else the first entry.
func pick(list []string, want string) string {
	for _, u := range list {
		if u == want {
			return u
		}
	}
	if len(list) > 0 {
		return list[0]
	}
	return ""
}

// handleConvertForm handles POST /convert and redirects back to the page.
func (s *Server) handleConvertForm(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxRequestBodySize)
	sess := s.sessionFor(w, r)

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	req := convert.Request{
		Category: catalog.Category(r.PostForm.Get("category")),
		From:     r.PostForm.Get("from"),
		To:       r.PostForm.Get("to"),
	}
	rawValue := strings.TrimSpace(r.PostForm.Get("value"))

	var f flash
	value, err := strconv.ParseFloat(rawValue, 64)
	if err != nil {
		f.err = "value must be a number"
	} else {
		req.Value = value
		rec, err := s.svc.Convert(r.Context(), sess, req)
		if err != nil {
			f.err = convert.UserFacing(err)
		} else {
			f.result = rec.String()
		}
	}
	s.setFlash(sess.ID(), f)

	q := url.Values{}
	q.Set("category", string(req.Category))
	q.Set("from", req.From)
	q.Set("to", req.To)
	q.Set("value", rawValue)
	http.Redirect(w, r, "/?"+q.Encode(), http.StatusSeeOther)
}

// handleClearForm handles POST /clear.
func (s *Server) handleClearForm(w http.ResponseWriter, r *http.Request) {
	if sess := s.existingSession(w, r); sess != nil {
		s.svc.ClearHistory(r.Context(), sess)
		s.dropFlash(sess.ID())
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// ============================================================================
// API HANDLERS
// ============================================================================

// CategoriesResponse is returned by GET /api/categories.
type CategoriesResponse struct {
	Categories []catalog.Category `json:"categories"`
}

// UnitsResponse is returned by GET /api/categories/{name}/units.
type UnitsResponse struct {
	Category catalog.Category `json:"category"`
	Units    []string         `json:"units"`
}

// ConvertResponse is returned by a successful POST /api/convert.
type ConvertResponse struct {
	Record convert.Record `json:"record"`
	Text   string         `json:"text"`
}

// HistoryResponse is returned by GET /api/history.
type HistoryResponse struct {
	SessionID string           `json:"session_id"`
	Capacity  int              `json:"capacity"`
	Records   []convert.Record `json:"records"`
	Lines     []string         `json:"lines"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status        string `json:"status"`
	Version       string `json:"version,omitempty"`
	UptimeSeconds int64  `json:"uptime_seconds"`
	Sessions      int    `json:"sessions"`
	Journal       bool   `json:"journal"`
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, CategoriesResponse{Categories: s.svc.Categories()})
}

func (s *Server) handleUnits(w http.ResponseWriter, r *http.Request) {
	cat, ok := s.svc.Catalog().Lookup(r.PathValue("name"))
	if !ok {
		s.writeError(w, http.StatusNotFound, "unknown category", "not_found")
		return
	}
	list, _ := s.svc.UnitsFor(cat)
	s.writeJSON(w, http.StatusOK, UnitsResponse{Category: cat, Units: list})
}

// handleConvertAPI handles POST /api/convert.
func (s *Server) handleConvertAPI(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxRequestBodySize)
	sess := s.sessionFor(w, r)

	var req convert.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			s.writeError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request body exceeds %d bytes", MaxRequestBodySize), "invalid_request_error")
			return
		}
		s.writeError(w, http.StatusBadRequest, "invalid request format", "invalid_request_error")
		return
	}
	if cat, ok := s.svc.Catalog().Lookup(string(req.Category)); ok {
		req.Category = cat
	}

	rec, err := s.svc.Convert(r.Context(), sess, req)
	switch {
	case errors.Is(err, convert.ErrInvalidRequest):
		s.writeError(w, http.StatusBadRequest, convert.UserFacing(err), "invalid_request_error")
	case err != nil:
		s.writeError(w, http.StatusUnprocessableEntity, convert.UserMessage, "conversion_error")
	default:
		s.writeJSON(w, http.StatusOK, ConvertResponse{Record: rec, Text: rec.String()})
	}
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	resp := HistoryResponse{
		Capacity: s.sessions.HistorySize(),
		Records:  []convert.Record{},
		Lines:    []string{},
	}
	if sess := s.existingSession(w, r); sess != nil {
		resp.SessionID = sess.ID()
		resp.Capacity = sess.HistoryCap()
		if records := sess.History(); len(records) > 0 {
			resp.Records = records
			resp.Lines = history.Numbered(records)
		}
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleClearAPI(w http.ResponseWriter, r *http.Request) {
	s.svc.ClearHistory(r.Context(), s.existingSession(w, r))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, HealthResponse{
		Status:        "ok",
		Version:       s.opts.Version,
		UptimeSeconds: int64(time.Since(s.started).Seconds()),
		Sessions:      s.sessions.Len(),
		Journal:       s.svc.HasJournal(),
	})
}

// ============================================================================
// SERVER LIFECYCLE
// ============================================================================

// Start listens on the configured address and blocks until the server is
// shut down. The session sweeper runs for the lifetime of the server.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.Addr())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.Addr(), err)
	}
	return s.Serve(ln)
}

// Serve serves on ln until the server is shut down.
func (s *Server) Serve(ln net.Listener) error {
	ctx, cancel := context.WithCancel(context.Background())

	s.mu.Lock()
	s.server = &http.Server{
		Handler:      s.handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	s.cancel = cancel
	srv := s.server
	s.mu.Unlock()

	go s.sessions.Run(ctx)
	if s.limiter != nil {
		go s.limiter.Run(ctx)
	}

	log.Printf("SERVER_START | addr=%s version=%s", ln.Addr(), s.opts.Version)
	err := srv.Serve(ln)
	cancel()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.server
	cancel := s.cancel
	s.mu.Unlock()

	if srv == nil {
		return nil
	}

	log.Printf("SERVER_SHUTDOWN | sessions=%d", s.sessions.Len())
	if cancel != nil {
		cancel()
	}
	return srv.Shutdown(ctx)
}

// ============================================================================
// HELPERS
// ============================================================================

// writeJSON writes a JSON response.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func (s *Server) writeError(w http.ResponseWriter, status int, message, kind string) {
	s.writeJSON(w, status, map[string]interface{}{
		"error": map[string]interface{}{
			"message": message,
			"type":    kind,
			"code":    status,
		},
	})
}
