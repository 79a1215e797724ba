package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"golang.org/x/net/html"
)

var rounds = []Round{
	{Seed: 1, Commands: 1000, Length: 480},
	{Seed: 2, Commands: 1000, Length: 511, Err: errors.New("mismatch in sums at #3")},
}

func TestConsoleSummary(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, false)
	c.Summary(rounds)
	out := buf.String()
	for _, want := range []string{
		"PASS seed=1 commands=1000 length=480\n",
		"FAIL seed=2 commands=1000 length=511  mismatch in sums at #3\n",
		"1 of 2 rounds failed (2 rounds)\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, is\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("uncolored console wrote escape sequences")
	}
}

func TestConsoleSequenceWraps(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, false)
	c.LineWidth = 20
	c.Sequence("final", []int64{100, 200, 300, 400, 500, 600, 700})
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) < 2 {
		t.Fatalf("expected listing to wrap, got %q", buf.String())
	}
	for _, l := range lines {
		if len(l) > 20 {
			t.Errorf("line %q exceeds width 20", l)
		}
	}
	if !strings.HasPrefix(lines[0], "final: 100 200") {
		t.Errorf("unexpected first line %q", lines[0])
	}
}

func TestWriteHTML(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteHTML(&buf, "permrope check", rounds); err != nil {
		t.Fatal(err)
	}
	doc, err := html.Parse(&buf)
	if err != nil {
		t.Fatal(err)
	}
	var cells []string
	var visit func(n *html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "td" && n.FirstChild != nil {
			cells = append(cells, n.FirstChild.Data)
		}
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			visit(ch)
		}
	}
	visit(doc)
	want := []string{"1", "1000", "480", "PASS", "2", "1000", "511", "FAIL", "mismatch in sums at #3"}
	if strings.Join(cells, "|") != strings.Join(want, "|") {
		t.Errorf("table cells = %v, want %v", cells, want)
	}
}
