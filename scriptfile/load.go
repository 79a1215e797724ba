package scriptfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/permrope/workload"
)

// SyntaxError reports a malformed script line.
type SyntaxError struct {
	Line int    // 1-based line number
	Text string // offending line
	Err  error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %q: %v", e.Line, e.Text, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// Load reads a script file and returns its commands.
func Load(name string) ([]workload.Command, error) {
	file, err := openFile(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	cmds, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	tracer().Infof("loaded %d commands from %s", len(cmds), name)
	return cmds, nil
}

// openFile opens an OS file for reading, checking that it is a regular file.
func openFile(name string) (*os.File, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%s is not a regular file", name)
	}
	return os.Open(name) // just open for read access
}

// Parse reads commands from r, one per line.
func Parse(r io.Reader) ([]workload.Command, error) {
	var cmds []workload.Command
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		cmd, err := parseCommand(fields)
		if err != nil {
			return cmds, &SyntaxError{Line: lineno, Text: scanner.Text(), Err: err}
		}
		cmds = append(cmds, cmd)
	}
	return cmds, scanner.Err()
}

func parseCommand(fields []string) (workload.Command, error) {
	kind, err := workload.ParseKind(fields[0])
	if err != nil {
		return workload.Command{}, err
	}
	if len(fields) != 3 {
		return workload.Command{}, fmt.Errorf("%s takes 2 arguments, have %d", kind, len(fields)-1)
	}
	switch kind {
	case workload.Insert, workload.Update:
		value, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return workload.Command{}, fmt.Errorf("value: %w", err)
		}
		pos, err := strconv.ParseUint(fields[2], 10, 64)
		if err != nil {
			return workload.Command{}, fmt.Errorf("position: %w", err)
		}
		return workload.Command{Kind: kind, Left: pos, Value: value}, nil
	default:
		left, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			return workload.Command{}, fmt.Errorf("left bound: %w", err)
		}
		right, err := strconv.ParseUint(fields[2], 10, 64)
		if err != nil {
			return workload.Command{}, fmt.Errorf("right bound: %w", err)
		}
		return workload.Command{Kind: kind, Left: left, Right: right}, nil
	}
}

// Write writes cmds to w in script notation.
func Write(w io.Writer, cmds []workload.Command) error {
	bw := bufio.NewWriter(w)
	for _, cmd := range cmds {
		if _, err := fmt.Fprintln(bw, cmd.String()); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Save writes cmds to a script file, replacing an existing file.
func Save(name string, cmds []workload.Command) error {
	file, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := Write(file, cmds); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
