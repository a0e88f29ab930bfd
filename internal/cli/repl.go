// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// repl.go - Interactive converter prompt.
//
// Command: repl
// Short:   Convert interactively with line editing and history
// Aliases: shell
//
// Input:
//   25 celsius to fahrenheit    Convert (category inferred)
//   25 celsius fahrenheit       Same, without "to"
//
// Interactive Commands:
//   :history, :h        Show this session's conversions, newest first
//   :clear, :c          Clear this session's conversions
//   :categories         List categories
//   :units CATEGORY     List the units of a category
//   :help, :?           Show available commands
//   :quit, :q           Exit
//   Ctrl+C, Ctrl+D      Exit

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/peterh/liner"

	"github.com/jeranaias/unitconv/internal/config"
	"github.com/jeranaias/unitconv/internal/convert"
	"github.com/jeranaias/unitconv/internal/history"
	"github.com/jeranaias/unitconv/internal/session"
	"github.com/jeranaias/unitconv/internal/ui/styles"
)

const replPrompt = "unitconv> "

var replCommands = []string{":categories", ":clear", ":help", ":history", ":quit", ":units"}

const replHelp = `Enter a conversion:
  25 celsius to fahrenheit
  1 kilometer meter

Commands:
  :history            Show this session's conversions
  :clear              Clear this session's conversions
  :categories         List categories
  :units CATEGORY     List the units of a category
  :help               Show this help
  :quit               Exit`

// REPL is one interactive session.
type REPL struct {
	app   *App
	sess  *session.Session
	out   io.Writer
	words []string // completion candidates, sorted
}

// NewREPL creates a REPL with a fresh session writing to app.Out.
func NewREPL(app *App) *REPL {
	r := &REPL{
		app:  app,
		sess: session.New(app.Config.Converter.HistorySize),
		out:  app.Out,
	}
	r.words = r.completionWords()
	return r
}

// Session returns the REPL session.
func (r *REPL) Session() *session.Session {
	return r.sess
}

// HandleREPL handles the "repl" command.
func HandleREPL(ctx context.Context, app *App) error {
	return NewREPL(app).Run(ctx)
}

// Run reads lines until :quit, Ctrl+C or end of input.
func (r *REPL) Run(ctx context.Context) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	line.SetCompleter(r.Complete)

	histPath, histErr := config.ReplHistoryPath()
	if histErr == nil {
		if f, err := os.Open(histPath); err == nil {
			line.ReadHistory(f)
			f.Close()
		}
		defer saveREPLHistory(line, histPath)
	}

	log.Printf("SESSION_START | session=%s frontend=repl", r.sess.ID())
	if !r.app.quiet() {
		fmt.Fprintln(r.out, TitleStyle.Render("unitconv "+Version))
		fmt.Fprintln(r.out, DimStyle.Render("Type a conversion like \"25 celsius to fahrenheit\", or :help"))
	}

	for ctx.Err() == nil {
		input, err := line.Prompt(replPrompt)
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		if !r.Eval(ctx, input) {
			break
		}
	}

	log.Printf("SESSION_END | session=%s duration=%s conversions=%d",
		r.sess.ID(), session.FormatDuration(r.sess.Duration()), len(r.sess.History()))
	return nil
}

func saveREPLHistory(line *liner.State, path string) {
	if err := config.EnsureConfigDir(); err != nil {
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		log.Printf("REPL_HISTORY_WRITE_FAILED | path=%s error=%v", path, err)
		return
	}
	defer f.Close()
	line.WriteHistory(f)
}

// Eval runs one input line. It returns false when the REPL should exit.
func (r *REPL) Eval(ctx context.Context, input string) bool {
	input = strings.TrimSpace(input)
	if input == "" {
		return true
	}
	if strings.HasPrefix(input, ":") {
		return r.command(input)
	}

	req, err := parseConversion(strings.Fields(input))
	if err != nil {
		r.printError(err.Error())
		return true
	}
	req = canonicalUnits(r.app.Service, req)
	req.Category = resolveCategory(r.app.Service, "", req.From, req.To)

	rec, err := r.app.Service.Convert(ctx, r.sess, req)
	if err != nil {
		r.printError(convert.UserFacing(err))
		return true
	}
	fmt.Fprintln(r.out, SuccessStyle.Render(styles.StatusIndicators.Success+" "+rec.String()))
	return true
}

func (r *REPL) command(input string) bool {
	fields := strings.Fields(input)
	name := strings.ToLower(fields[0])
	arg := strings.Join(fields[1:], " ")

	switch name {
	case ":quit", ":q", ":exit":
		return false

	case ":help", ":?":
		fmt.Fprintln(r.out, replHelp)

	case ":history", ":h":
		lines := r.app.Service.History(r.sess)
		if len(lines) == 0 {
			fmt.Fprintln(r.out, DimStyle.Render(history.EmptyMessage))
			break
		}
		for _, l := range lines {
			fmt.Fprintln(r.out, l)
		}

	case ":clear", ":c":
		r.app.Service.ClearHistory(context.Background(), r.sess)
		fmt.Fprintln(r.out, DimStyle.Render("History cleared."))

	case ":categories", ":cats":
		for _, c := range r.app.Service.Categories() {
			fmt.Fprintln(r.out, string(c))
		}

	case ":units":
		if arg == "" {
			r.printError("usage: :units CATEGORY")
			break
		}
		cat, ok := r.app.Service.Catalog().Lookup(arg)
		if !ok {
			r.printError(fmt.Sprintf("unknown category %q", arg))
			break
		}
		list, _ := r.app.Service.UnitsFor(cat)
		fmt.Fprintf(r.out, "%s: %s\n", SectionStyle.Render(string(cat)), strings.Join(list, ", "))

	default:
		r.printError(fmt.Sprintf("unknown command %s (try :help)", name))
	}
	return true
}

func (r *REPL) printError(msg string) {
	fmt.Fprintln(r.out, ErrorStyle.Render(styles.StatusIndicators.Error+" "+msg))
}

// =============================================================================
// COMPLETION
// =============================================================================

// Complete completes the last word of line with a unit name, a category
// name after :units, or a command name.
func (r *REPL) Complete(line string) []string {
	head, word := splitLastWord(line)

	var candidates []string
	switch {
	case head == "" && strings.HasPrefix(word, ":"):
		candidates = replCommands
	case strings.HasPrefix(strings.ToLower(head), ":units "):
		for _, c := range r.app.Service.Categories() {
			candidates = append(candidates, string(c))
		}
	default:
		candidates = r.words
	}

	var out []string
	lower := strings.ToLower(word)
	for _, c := range candidates {
		if strings.HasPrefix(strings.ToLower(c), lower) {
			out = append(out, head+c)
		}
	}
	return out
}

func splitLastWord(line string) (head, word string) {
	i := strings.LastIndexByte(line, ' ')
	if i < 0 {
		return "", line
	}
	return line[:i+1], line[i+1:]
}

// completionWords returns every catalog unit plus "to", sorted and unique.
func (r *REPL) completionWords() []string {
	seen := map[string]bool{"to": true}
	for _, c := range r.app.Service.Categories() {
		list, _ := r.app.Service.UnitsFor(c)
		for _, u := range list {
			seen[u] = true
		}
	}
	words := make([]string, 0, len(seen))
	for w := range seen {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}
