// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// catalog_cmd.go - Category and unit listing commands.
//
// Examples:
//   unitconv categories
//   unitconv units temperature
//   unitconv units "data storage" --json

package cli

import (
	"fmt"
	"strings"
)

// HandleCategories handles the "categories" command.
func HandleCategories(app *App) error {
	var data CategoriesData
	for _, c := range app.Service.Categories() {
		list, err := app.Service.UnitsFor(c)
		if err != nil {
			return err
		}
		data.Categories = append(data.Categories, CategoryData{Name: string(c), Units: list})
	}

	if app.Args.JSON {
		return NewJSONResponse(CmdCategories.String(), data).Write(app.Out)
	}

	for _, c := range data.Categories {
		if app.Args.Quiet {
			fmt.Fprintln(app.Out, c.Name)
			continue
		}
		fmt.Fprintf(app.Out, "%s %s\n",
			SectionStyle.Render(fmt.Sprintf("%-14s", c.Name)),
			DimStyle.Render(strings.Join(c.Units, ", ")))
	}
	return nil
}

// HandleUnits handles "units CATEGORY". Category names match case-insensitively.
func HandleUnits(app *App) error {
	p := NewArgParser(app.Args.Raw)
	name := JoinPositionalArgs(p, 0)
	if name == "" {
		return ErrMissingArgument("category", "unitconv units length")
	}

	cat, ok := app.Service.Catalog().Lookup(name)
	if !ok {
		return ErrNotFound("category", name)
	}
	list, err := app.Service.UnitsFor(cat)
	if err != nil {
		return err
	}

	if app.Args.JSON {
		return NewJSONResponse(CmdUnits.String(), CategoryData{Name: string(cat), Units: list}).Write(app.Out)
	}
	if !app.quiet() {
		fmt.Fprintln(app.Out, TitleStyle.Render(string(cat)))
		fmt.Fprintln(app.Out, RenderSeparator(len(cat)))
	}
	for _, u := range list {
		fmt.Fprintln(app.Out, u)
	}
	return nil
}
