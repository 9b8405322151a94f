package metrics

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ConfusionMatrix counts predictions per class; rows are actual classes,
// columns predicted ones. Single-column outputs are treated as binary
// probabilities over the classes {0, 1}.
func ConfusionMatrix(preds, targets [][]float64) (*mat.Dense, error) {
	if len(preds) != len(targets) {
		return nil, errors.Errorf("Mismatched lengths: %d predictions, %d targets", len(preds), len(targets))
	}
	if len(preds) == 0 {
		return nil, errors.New("Can't build a confusion matrix from an empty set")
	}

	k := len(targets[0])
	if k == 1 {
		k = 2
	}

	m := mat.NewDense(k, k, nil)
	for i := range preds {
		row := classOf(targets[i])
		col := classOf(preds[i])
		if row >= k || col >= k {
			return nil, errors.Errorf("Example %d indexes beyond the %d classes", i, k)
		}
		m.Set(row, col, m.At(row, col)+1)
	}

	return m, nil
}

func classOf(v []float64) int {
	if len(v) == 1 {
		if v[0] > 0.5 {
			return 1
		}
		return 0
	}
	return floats.MaxIdx(v)
}

// FormatConfusion renders m with one row per actual class. Missing labels
// fall back to class indices.
func FormatConfusion(m *mat.Dense, labels []string) string {
	r, c := m.Dims()

	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)

	fmt.Fprintf(w, "actual \\ predicted")
	for j := 0; j < c; j++ {
		fmt.Fprintf(w, "\t%s", classLabel(labels, j))
	}
	fmt.Fprintln(w)

	for i := 0; i < r; i++ {
		fmt.Fprintf(w, "%s", classLabel(labels, i))
		for j := 0; j < c; j++ {
			fmt.Fprintf(w, "\t%.0f", m.At(i, j))
		}
		fmt.Fprintln(w)
	}
	w.Flush()

	return b.String()
}

func classLabel(labels []string, i int) string {
	if i < len(labels) {
		return labels[i]
	}
	return fmt.Sprintf("class %d", i)
}
