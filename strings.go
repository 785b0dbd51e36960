// strings deals with string representation of datasets

package tab

import (
	"bytes"
	"fmt"
	"strings"
	"text/tabwriter"

	"tab/att"
)

// GoString returns a go-syntax-ish constructor form of the dataset.
func (d *Dataset) GoString() string {
	if d.err != nil {
		return fmt.Sprintf("tab.Dataset(error: %v)", d.err)
	}
	// use a buffer to write to and later turn into a string
	s := bytes.NewBufferString("tab.New([]att.Column{\n")

	w := new(tabwriter.Writer)
	// \xff is used as an escape delim; see the tabwriter docs
	w.Init(s, 1, 1, 1, ' ', tabwriter.StripEscape)

	for _, c := range d.cols {
		fmt.Fprintf(w, "\t\xff{%q,\xff\t\xff%v},\xff\t\n", string(c.Name), c.Kind)
	}
	w.Flush()
	s.WriteString("},\n")

	for _, row := range d.body {
		fmt.Fprintf(w, "\t{")
		for _, v := range row {
			switch {
			case v.IsNull():
				fmt.Fprintf(w, "\xffnull\xff,\t")
			case v.Kind() == att.StringKind:
				fmt.Fprintf(w, "\xff%q\xff,\t", v.Str())
			default:
				fmt.Fprintf(w, "%s,\t", v)
			}
		}
		fmt.Fprintf(w, "},\n")
	}

	w.Flush()
	s.WriteString(")")
	return s.String()
}

// String returns a tabular text representation of the dataset.
func (d *Dataset) String() string {
	if d.err != nil {
		return fmt.Sprintf("tab.Dataset(error: %v)", d.err)
	}

	// use a buffer to write to and later turn into a string
	s := new(bytes.Buffer)

	w := new(tabwriter.Writer)
	// \xff is used as an escape delim; see the tabwriter docs
	// align elements to the right as well
	w.Init(s, 1, 1, 1, ' ', tabwriter.StripEscape|tabwriter.AlignRight)

	deg := d.Deg()

	// make a spacer, to be replaced later
	for i := 0; i < deg; i++ {
		fmt.Fprintf(w, "+\t ")
	}
	fmt.Fprintf(w, "\t+\n")

	// heading
	for _, c := range d.cols {
		fmt.Fprintf(w, "|\t \xff%s\xff ", c.Name)
	}
	fmt.Fprintf(w, "\t|\n")

	// body
	for _, row := range d.body {
		for _, v := range row {
			fmt.Fprintf(w, "|\t \xff%s\xff ", v)
		}
		fmt.Fprintf(w, "\t|\n")
	}

	w.Flush()
	str := s.String()

	// turn the spacer into +---+---+ lines
	i := strings.Index(str, "\n")
	if i < 0 {
		return str
	}
	spacer := strings.Replace(str[:i], " ", "-", -1)
	return spacer + str[i:] + spacer + "\n"
}
