package scriptfile

import (
	"errors"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/npillmayer/permrope/workload"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestLoad(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "permrope")
	defer teardown()
	//
	cmds, err := Load("testdata/scenario.txt")
	if err != nil {
		t.Fatal(err)
	}
	want := []workload.Command{
		workload.InsertCmd(5, 0), workload.InsertCmd(3, 0), workload.InsertCmd(8, 1),
		workload.SumCmd(0, 2),
		workload.PermuteCmd(0, 3), workload.PermuteCmd(0, 3),
		workload.UpdateCmd(1, 0),
		workload.SumCmd(0, 3),
	}
	if !slices.Equal(cmds, want) {
		t.Fatalf("loaded %v, want %v", cmds, want)
	}
}

func TestLoadRejectsDirectory(t *testing.T) {
	if _, err := Load("testdata"); err == nil {
		t.Errorf("expected error when loading a directory")
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		input string
		line  int
	}{
		{"insert 1 0\nshuffle 0 1\n", 2},
		{"sum 0\n", 1},
		{"\n\ninsert x 0\n", 3},
		{"permute 0 -1\n", 1},
	}
	for _, c := range cases {
		_, err := Parse(strings.NewReader(c.input))
		var serr *SyntaxError
		if !errors.As(err, &serr) {
			t.Errorf("Parse(%q): expected a *SyntaxError, got %v", c.input, err)
			continue
		}
		if serr.Line != c.line {
			t.Errorf("Parse(%q): error at line %d, want %d", c.input, serr.Line, c.line)
		}
	}
	_, err := Parse(strings.NewReader("insert 99999999999999999999 0"))
	if !errors.Is(err, strconv.ErrRange) {
		t.Errorf("expected range error to be unwrappable, got %v", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	cmds, err := workload.Generate(workload.DefaultConfig(), 7)
	if err != nil {
		t.Fatal(err)
	}
	name := filepath.Join(t.TempDir(), "workload.txt")
	if err := Save(name, cmds); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(name)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(cmds, loaded) {
		t.Errorf("script does not reproduce the saved workload")
	}
}
