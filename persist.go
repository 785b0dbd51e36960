// persist serializes a dataset to a delimited tabular sink

package tab

import (
	"encoding/csv"
	"io"
	"os"
)

// WriteCSV serializes the dataset: a header record followed by one record
// per row.  Nulls are written as empty cells, ints in base 10, and floats
// in the shortest form that parses back to the identical bits, so a
// dataset written and re-read round-trips without precision loss.  A
// pipeline that failed upstream writes nothing and returns its error.
func (d *Dataset) WriteCSV(w io.Writer) error {
	if d.err != nil {
		return d.err
	}
	cw := csv.NewWriter(w)
	header := make([]string, len(d.cols))
	for j, c := range d.cols {
		header[j] = string(c.Name)
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	rec := make([]string, len(d.cols))
	for _, row := range d.body {
		for j, v := range row {
			rec[j] = v.String()
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile is WriteCSV over a file path.  The file is not created
// until the pipeline is known to have succeeded, so a failed run leaves no
// partial output behind.
func (d *Dataset) WriteCSVFile(path string) error {
	if d.err != nil {
		return d.err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := d.WriteCSV(f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}
