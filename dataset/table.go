// Package dataset loads the flat clinical tables the predictors train on and
// turns them into the example sets the network consumes.
package dataset

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"encoding/csv"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Table is a fully numeric table read from a CSV file or a workbook sheet.
// Every row holds exactly one parsed value per column.
type Table struct {
	Cols []string
	Rows [][]float64
}

// ReadCSV loads a comma-separated file. The first record is the header; rows
// with cells that do not parse as numbers (empty cells included) are dropped,
// which is how the datasets here are cleaned before use.
func ReadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Couldn't open %q", path)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "Couldn't parse %q as CSV", path)
	}
	if len(records) == 0 {
		return nil, errors.Errorf("File %q is empty", path)
	}

	return fromRecords(records[0], records[1:], nil, path)
}

// ReadXLSX loads one sheet of an xlsx workbook. The first row is the header.
// If cols are given, only those columns are kept (by name, in the given
// order), so sheets carrying non-numeric bookkeeping columns can still be
// used. Rows with missing or non-numeric cells among the kept columns are
// dropped.
func ReadXLSX(path, sheet string, cols ...string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Couldn't open workbook %q", path)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrapf(err, "Couldn't read sheet %q of %q", sheet, path)
	}
	if len(rows) == 0 {
		return nil, errors.Errorf("Sheet %q of %q is empty", sheet, path)
	}

	return fromRecords(rows[0], rows[1:], cols, path)
}

// fromRecords resolves the kept columns against the header and converts the
// body, dropping any record that is short or non-numeric in a kept column.
func fromRecords(header []string, body [][]string, keep []string, src string) (*Table, error) {
	names := make([]string, len(header))
	for i, h := range header {
		names[i] = strings.TrimSpace(h)
	}

	var idx []int
	if len(keep) == 0 {
		keep = names
		idx = make([]int, len(names))
		for i := range idx {
			idx[i] = i
		}
	} else {
		idx = make([]int, len(keep))
		for i, c := range keep {
			idx[i] = -1
			for j, n := range names {
				if n == c {
					idx[i] = j
					break
				}
			}
			if idx[i] < 0 {
				return nil, errors.Errorf("No column %q in %q", c, src)
			}
		}
	}

	t := &Table{Cols: append([]string(nil), keep...)}
	for _, record := range body {
		vals := make([]float64, len(idx))
		ok := true
		for i, j := range idx {
			if j >= len(record) {
				ok = false
				break
			}
			s := strings.TrimSpace(record[j])
			if s == "" {
				ok = false
				break
			}
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				ok = false
				break
			}
			vals[i] = v
		}
		if ok {
			t.Rows = append(t.Rows, vals)
		}
	}

	if len(t.Rows) == 0 {
		return nil, errors.Errorf("No usable data rows in %q", src)
	}

	return t, nil
}

// Select returns a new Table holding the named columns, in the given order.
func (t *Table) Select(cols ...string) (*Table, error) {
	idx := make([]int, len(cols))
	for i, c := range cols {
		idx[i] = -1
		for j, n := range t.Cols {
			if n == c {
				idx[i] = j
				break
			}
		}
		if idx[i] < 0 {
			return nil, errors.Errorf("No column %q in table", c)
		}
	}

	out := &Table{
		Cols: append([]string(nil), cols...),
		Rows: make([][]float64, len(t.Rows)),
	}
	for r, row := range t.Rows {
		vals := make([]float64, len(idx))
		for i, j := range idx {
			vals[i] = row[j]
		}
		out.Rows[r] = vals
	}

	return out, nil
}

// FeaturesTarget separates the feature matrix from the target vector. The
// last column is the target, all preceding columns are features.
func (t *Table) FeaturesTarget() (X [][]float64, y []float64) {
	k := len(t.Cols)
	X = make([][]float64, len(t.Rows))
	y = make([]float64, len(t.Rows))
	for i, row := range t.Rows {
		X[i] = append([]float64(nil), row[:k-1]...)
		y[i] = row[k-1]
	}
	return X, y
}

// Summary holds per-column statistics of a Table.
type Summary struct {
	Cols []string
	N    int

	Min, Max, Mean, Std []float64
}

// Describe computes per-column min, max, mean and sample standard deviation.
func (t *Table) Describe() Summary {
	k := len(t.Cols)
	s := Summary{
		Cols: t.Cols,
		N:    len(t.Rows),
		Min:  make([]float64, k),
		Max:  make([]float64, k),
		Mean: make([]float64, k),
		Std:  make([]float64, k),
	}
	if len(t.Rows) == 0 {
		return s
	}

	col := make([]float64, len(t.Rows))
	for j := 0; j < k; j++ {
		for i, row := range t.Rows {
			col[i] = row[j]
		}
		s.Min[j] = floats.Min(col)
		s.Max[j] = floats.Max(col)
		s.Mean[j], s.Std[j] = stat.MeanStdDev(col, nil)
	}

	return s
}

func (s Summary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d rows, %d columns\n", s.N, len(s.Cols))

	w := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "column\tmin\tmax\tmean\tstd\n")
	for j := range s.Cols {
		fmt.Fprintf(w, "%s\t%.3f\t%.3f\t%.3f\t%.3f\n", s.Cols[j], s.Min[j], s.Max[j], s.Mean[j], s.Std[j])
	}
	w.Flush()

	return b.String()
}
