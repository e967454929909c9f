package ui

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestTable(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer

	Table(&buf, []string{"metric", "value"}, [][]string{
		{"nodes", "125"},
		{"particles", "80"},
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines:\n%s", len(lines), buf.String())
	}
	if lines[0] != "  metric     value" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[3] != "  particles  80" {
		t.Errorf("row = %q", lines[3])
	}
}

func TestTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	Table(&buf, []string{"a"}, nil)
	if buf.Len() != 0 {
		t.Errorf("empty table printed %q", buf.String())
	}
}

func TestTableAlignsRunes(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer

	Table(&buf, []string{"k", "v"}, [][]string{{"énergie", "1"}, {"x", "2"}})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if lines[1] != "  ───────  ─" {
		t.Errorf("rule = %q", lines[1])
	}
	if lines[3] != "  x        2" {
		t.Errorf("row = %q", lines[3])
	}
}

func TestStatusLines(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	prev := Log.Writer()
	Log.SetOutput(&buf)
	Log.SetFlags(0)
	t.Cleanup(func() {
		Log.SetOutput(prev)
		Log.SetFlags(log.LstdFlags)
	})

	Infof("saved %s", "a.png")
	Warnf("audio disabled")
	Badf("frame skipped in %s", "draw")

	want := "brainviz: info saved a.png\n" +
		"brainviz: warn audio disabled\n" +
		"brainviz: error frame skipped in draw\n"
	if buf.String() != want {
		t.Errorf("log =\n%s\nwant\n%s", buf.String(), want)
	}
}
