package results

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// ErrMalformedLine is returned when a line is not of the form "<n>; [e0, e1, ...]".
var ErrMalformedLine = errors.New("results: malformed line")

var lineFormat = regexp.MustCompile(`^\s*([0-9]+);\s*\[([0-9,\s]*)\]\s*$`)

// Record is one surviving case: the level n and its exponents in generation order.
type Record struct {
	Level     uint32
	Exponents []uint32
}

// String renders the record as "<n>; [e0, e1, ...]".
func (r Record) String() string {
	var sb strings.Builder
	sb.WriteString(strconv.FormatUint(uint64(r.Level), 10))
	sb.WriteString("; [")
	for i, e := range r.Exponents {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatUint(uint64(e), 10))
	}
	sb.WriteString("]")
	return sb.String()
}

// Parse reads a record back from its String form.
func Parse(line string) (Record, error) {
	pieces := lineFormat.FindStringSubmatch(line)
	if pieces == nil {
		return Record{}, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}
	level, err := strconv.ParseUint(pieces[1], 10, 32)
	if err != nil {
		return Record{}, fmt.Errorf("%w: level in %q: %v", ErrMalformedLine, line, err)
	}
	r := Record{Level: uint32(level)}
	if strings.TrimSpace(pieces[2]) == "" {
		return r, nil
	}
	for _, field := range strings.Split(pieces[2], ",") {
		e, err := strconv.ParseUint(strings.TrimSpace(field), 10, 32)
		if err != nil {
			return Record{}, fmt.Errorf("%w: exponent in %q: %v", ErrMalformedLine, line, err)
		}
		r.Exponents = append(r.Exponents, uint32(e))
	}
	return r, nil
}

// Compare orders records by level and then lexicographically by exponents,
// a proper prefix sorting first.
func Compare(a, b Record) int {
	if a.Level != b.Level {
		if a.Level < b.Level {
			return -1
		}
		return 1
	}
	return slices.Compare(a.Exponents, b.Exponents)
}

// Read parses every non-blank line of r.
func Read(r io.Reader) ([]Record, error) {
	var records []Record
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		if strings.TrimSpace(scanner.Text()) == "" {
			continue
		}
		rec, err := Parse(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading results: %w", err)
	}
	return records, nil
}

// Sort reads records from r and writes them to w in Compare order. The sort is
// stable and its output is a fixed point: sorting it again gives the same bytes.
func Sort(r io.Reader, w io.Writer) error {
	records, err := Read(r)
	if err != nil {
		return err
	}
	slices.SortStableFunc(records, Compare)

	out := NewWriter(w)
	for _, rec := range records {
		if err := out.Emit(rec); err != nil {
			return err
		}
	}
	return out.Flush()
}
