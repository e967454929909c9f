package ui

import (
	"fmt"
	"io"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
)

// Console styles
var (
	Brand  = color.New(color.FgHiCyan, color.Bold)
	Subtle = color.New(color.FgHiBlack)
	Warn   = color.New(color.FgYellow)
	Good   = color.New(color.FgGreen)
	Bad    = color.New(color.FgRed)
)

// Log carries runtime status lines. It writes to stderr through color's
// colorable writer.
var Log = log.New(color.Error, "brainviz: ", log.LstdFlags)

func Infof(format string, args ...any) { logf(Subtle, "info", format, args...) }
func Warnf(format string, args ...any) { logf(Warn, "warn", format, args...) }
func Badf(format string, args ...any)  { logf(Bad, "error", format, args...) }

func logf(style *color.Color, level, format string, args ...any) {
	Log.Printf("%s %s", style.Sprint(level), fmt.Sprintf(format, args...))
}

// Banner prints the program banner.
func Banner(w io.Writer, subtitle string) {
	fmt.Fprintf(w, "%s %s\n\n", Brand.Sprint("brainviz"), Subtle.Sprint("- "+subtitle))
}

// Table prints an aligned table. Widths count runes, so cells may hold
// non-ASCII text.
func Table(w io.Writer, headers []string, rows [][]string) {
	if len(rows) == 0 {
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], utf8.RuneCountInString(cell))
			}
		}
	}

	pad := func(cells []string) string {
		var b strings.Builder
		b.WriteString("  ")
		for i, c := range cells {
			if i >= len(widths) {
				break
			}
			b.WriteString(c)
			b.WriteString(strings.Repeat(" ", widths[i]-utf8.RuneCountInString(c)+2))
		}
		return strings.TrimRight(b.String(), " ")
	}

	rules := make([]string, len(widths))
	for i, n := range widths {
		rules[i] = strings.Repeat("─", n)
	}
	Subtle.Fprintln(w, pad(headers))
	Subtle.Fprintln(w, pad(rules))
	for _, row := range rows {
		fmt.Fprintln(w, pad(row))
	}
}
