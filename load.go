// load parses a delimited tabular source into a dataset

package tab

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"tab/att"
)

// LoadOption configures ReadCSV.
type LoadOption func(*loadConfig)

type loadConfig struct {
	comma rune
	kinds map[att.Attribute]att.Kind
	log   *zap.Logger
}

// WithComma sets the field delimiter, comma by default.
func WithComma(r rune) LoadOption {
	return func(c *loadConfig) { c.comma = r }
}

// WithKinds declares the kinds of the named columns explicitly, overriding
// inference.  A column declared StringKind accepts anything; a column
// declared IntKind or FloatKind fails with a SchemaInferenceError on the
// first cell that does not parse.
func WithKinds(kinds map[att.Attribute]att.Kind) LoadOption {
	return func(c *loadConfig) { c.kinds = kinds }
}

// WithLogger sets the logger that receives warning-level signals during
// the load, such as columns containing empty cells.  The default discards
// them.
func WithLogger(l *zap.Logger) LoadOption {
	return func(c *loadConfig) { c.log = l }
}

// ReadCSV parses a delimited source into a Dataset.  The first record is
// the header; a duplicated header name fails with a DuplicateColumnError.
//
// Column types are inferred from a scan of the whole column, never from a
// sample of leading rows.  A column whose non-empty cells are all ints is
// an int column; ints mixed with floats widen to float; a column with no
// numeric cells is a string column.  A column that mixes numeric and
// non-numeric cells is ambiguous and fails with a SchemaInferenceError
// naming the column and the first divergent cell, unless WithKinds
// supplies an explicit kind for it.  Numeric cells are decimal; a cell
// like 0x1A is not a number.  Empty cells load as null whatever the
// column's kind.
func ReadCSV(r io.Reader, opts ...LoadOption) (*Dataset, error) {
	cfg := loadConfig{comma: ',', log: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	cr := csv.NewReader(r)
	cr.Comma = cfg.comma
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, io.ErrUnexpectedEOF
	}

	header := records[0]
	rows := records[1:]
	cols := make([]att.Column, len(header))
	for j, name := range header {
		cols[j] = att.Column{Name: att.Attribute(name)}
		for _, name2 := range header[:j] {
			if name == name2 {
				return nil, &att.DuplicateColumnError{Col: att.Attribute(name)}
			}
		}
	}
	for name := range cfg.kinds {
		if att.IndexOf(headingOf(cols), name) < 0 {
			return nil, &att.MissingKeyError{Col: name}
		}
	}

	for j := range cols {
		if k, declared := cfg.kinds[cols[j].Name]; declared {
			cols[j].Kind = k
			continue
		}
		k, err := inferKind(cols[j].Name, rows, j)
		if err != nil {
			return nil, err
		}
		cols[j].Kind = k
	}

	body := make([][]att.Value, len(rows))
	nulls := make([]int, len(cols))
	for i, rec := range rows {
		row := make([]att.Value, len(cols))
		for j, cell := range rec {
			v, err := att.Parse(cell, cols[j].Kind)
			if err != nil {
				return nil, &att.SchemaInferenceError{Col: cols[j].Name, Row: i, Value: cell}
			}
			if v.IsNull() {
				nulls[j]++
			}
			row[j] = v
		}
		body[i] = row
	}

	for j, n := range nulls {
		if n > 0 {
			cfg.log.Warn("column has empty cells, loaded as null",
				zap.String("column", string(cols[j].Name)),
				zap.Int("cells", n))
		}
		if n == len(rows) && len(rows) > 0 {
			cfg.log.Warn("column is entirely empty, its type defaults to string",
				zap.String("column", string(cols[j].Name)))
		}
	}

	return &Dataset{cols: cols, body: body}, nil
}

// ReadCSVFile is ReadCSV over a file path.
func ReadCSVFile(path string, opts ...LoadOption) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadCSV(f, opts...)
}

func headingOf(cols []att.Column) []att.Attribute {
	h := make([]att.Attribute, len(cols))
	for i, c := range cols {
		h[i] = c.Name
	}
	return h
}

// inferKind scans every cell of one column.
func inferKind(name att.Attribute, rows [][]string, j int) (att.Kind, error) {
	sawInt, sawFloat, sawOther := false, false, false
	otherRow, otherCell := 0, ""
	for i, rec := range rows {
		cell := rec[j]
		if cell == "" {
			continue
		}
		t := strings.TrimSpace(cell)
		if _, err := strconv.ParseInt(t, 10, 64); err == nil {
			sawInt = true
			continue
		}
		if _, err := strconv.ParseFloat(t, 64); err == nil {
			sawFloat = true
			continue
		}
		if !sawOther {
			sawOther = true
			otherRow, otherCell = i, cell
		}
	}
	numeric := sawInt || sawFloat
	switch {
	case numeric && sawOther:
		return 0, &att.SchemaInferenceError{Col: name, Row: otherRow, Value: otherCell}
	case sawFloat:
		return att.FloatKind, nil
	case sawInt:
		return att.IntKind, nil
	default:
		return att.StringKind, nil
	}
}
