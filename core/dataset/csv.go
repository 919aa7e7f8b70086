package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// LoadCSV reads a CSV file with a header row into a Frame.
func LoadCSV(path string) (*Frame, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	return ReadCSV(fh)
}

// ReadCSV parses CSV with a header row. Column kinds are sniffed: a column
// whose cells all parse as integers is int64, one whose cells all parse as
// floats is float64, anything else is string. Empty cells in an otherwise
// numeric column become NaN and force float64.
func ReadCSV(r io.Reader) (*Frame, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("csv: missing header")
		}
		return nil, fmt.Errorf("csv header: %w", err)
	}
	raw := make([][]string, len(header))
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv: %w", err)
		}
		for i, cell := range rec {
			raw[i] = append(raw[i], strings.TrimSpace(cell))
		}
	}
	cols := make([]Column, len(header))
	for i, name := range header {
		cols[i] = sniff(strings.TrimSpace(name), raw[i])
	}
	return New(cols...)
}

func sniff(name string, cells []string) Column {
	if ints, ok := parseInts(cells); ok {
		return Int64Column(name, ints)
	}
	if floats, ok := parseFloats(cells); ok {
		return Float64Column(name, floats)
	}
	return StringColumn(name, cells)
}

func parseInts(cells []string) ([]int64, bool) {
	out := make([]int64, len(cells))
	for i, c := range cells {
		v, err := strconv.ParseInt(c, 10, 64)
		if err != nil {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

func parseFloats(cells []string) ([]float64, bool) {
	out := make([]float64, len(cells))
	seen := false
	for i, c := range cells {
		if c == "" {
			out[i] = math.NaN()
			continue
		}
		v, err := strconv.ParseFloat(c, 64)
		if err != nil {
			return nil, false
		}
		out[i] = v
		seen = true
	}
	return out, seen
}
