// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// convert_cmd.go - One-shot conversion command.
//
// Command: convert
// Short:   Convert a value once and print the record
// Aliases: c, or a bare number as the first argument
//
// Examples:
//   unitconv convert 25 celsius fahrenheit
//   unitconv convert 1 kilometer to meter --json
//   unitconv convert 3 foot inch --category length
//
// Flags:
//   --category NAME    Category to convert in (inferred when omitted)

package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jeranaias/unitconv/internal/catalog"
	"github.com/jeranaias/unitconv/internal/convert"
	"github.com/jeranaias/unitconv/internal/service"
	"github.com/jeranaias/unitconv/internal/session"
)

const convertUsage = "unitconv convert 25 celsius fahrenheit"

// connectives may sit between the two units.
var connectives = map[string]bool{
	"to":   true,
	"in":   true,
	"into": true,
	"as":   true,
	"->":   true,
}

// HandleConvert handles "unitconv convert VALUE FROM TO [--category C]".
func HandleConvert(ctx context.Context, app *App) error {
	p := NewArgParser(app.Args.Raw)

	req, err := parseConversion(p.PositionalFrom(0))
	if err != nil {
		return err
	}
	req = canonicalUnits(app.Service, req)
	req.Category = resolveCategory(app.Service, p.Flag("category"), req.From, req.To)

	sess := session.New(app.Config.Converter.HistorySize)
	rec, err := app.Service.Convert(ctx, sess, req)
	if err != nil {
		return err
	}

	if app.Args.JSON {
		return NewJSONResponse(CmdConvert.String(), convertData(rec)).Write(app.Out)
	}
	if app.Args.Quiet {
		fmt.Fprintln(app.Out, rec.String())
		return nil
	}
	fmt.Fprintln(app.Out, SuccessStyle.Render(rec.String()))
	return nil
}

// parseConversion reads "VALUE FROM [to] TO".
func parseConversion(words []string) (convert.Request, error) {
	var parts []string
	for i, w := range words {
		// A connective between the units is skipped; anywhere else it is a unit.
		if i == 2 && len(words) == 4 && connectives[strings.ToLower(w)] {
			continue
		}
		parts = append(parts, w)
	}
	if len(parts) != 3 {
		return convert.Request{}, ErrMissingArgument("conversion", convertUsage)
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return convert.Request{}, &ValidationError{
			Field:   "value",
			Value:   parts[0],
			Reason:  "must be a number",
			Example: convertUsage,
		}
	}

	return convert.Request{
		From:  parts[1],
		To:    parts[2],
		Value: value,
	}, nil
}

// canonicalUnits lowercases unit names the catalog knows in lower case,
// so "Celsius" finds the Temperature formulas. Other names are left for
// the registry, where case matters for symbols like "MB".
func canonicalUnits(svc *service.Service, req convert.Request) convert.Request {
	for _, u := range []*string{&req.From, &req.To} {
		lower := strings.ToLower(*u)
		if _, ok := svc.Catalog().CategoryOf(lower); ok {
			*u = lower
		}
	}
	return req
}

// resolveCategory returns the named category when given, otherwise the one
// inferred from the units. Unknown names pass through so the service can
// reject them; units outside the catalog convert through the registry.
func resolveCategory(svc *service.Service, name, from, to string) catalog.Category {
	if name != "" {
		if cat, ok := svc.Catalog().Lookup(name); ok {
			return cat
		}
		return catalog.Category(name)
	}
	if cat, ok := svc.InferCategory(from, to); ok {
		return cat
	}
	return ""
}

func convertData(rec convert.Record) ConvertData {
	return ConvertData{
		Category:  string(rec.Category),
		Value:     rec.Value,
		From:      rec.From,
		To:        rec.To,
		Output:    rec.Output,
		Precision: rec.Precision,
		Text:      rec.String(),
	}
}
