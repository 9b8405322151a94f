package clinicalnets

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	deep "github.com/patrikeh/go-deep"
	"github.com/pkg/errors"
)

// Summary writes a per-layer architecture table in the style of the usual
// model-summary printout: units, activation and parameter count per layer,
// then the total.
func (c *Classifier) Summary(w io.Writer) {
	fmt.Fprintf(w, "Model: %q\n", c.Name)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "layer\tunits\tactivation\tparams\n")

	total := 0
	prev := c.Inputs()
	for i, units := range c.Net.Config.Layout {
		params := prev * units
		if c.Net.Config.Bias {
			params += units
		}
		total += params

		name := fmt.Sprintf("hidden-%d", i+1)
		if i == len(c.Net.Config.Layout)-1 {
			name = "output"
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%d\n", name, units, activationName(c.Net.Layers[i].A), params)

		prev = units
	}
	tw.Flush()

	fmt.Fprintf(w, "Total params: %d\n", total)
}

// WriteDOT writes a GraphViz description of the layer stack, one node per
// layer with its unit count and activation.
func (c *Classifier) WriteDOT(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "Couldn't create %q", path)
	}
	defer f.Close()

	fmt.Fprintln(f, "digraph model {")
	fmt.Fprintln(f, "  rankdir=LR;")
	fmt.Fprintf(f, "  input [shape=box label=\"input\\n%d features\"];\n", c.Inputs())

	prev := "input"
	for i, units := range c.Net.Config.Layout {
		name := fmt.Sprintf("layer%d", i+1)
		fmt.Fprintf(f, "  %s [shape=box label=\"%s\\n%d units\"];\n", name, activationName(c.Net.Layers[i].A), units)
		fmt.Fprintf(f, "  %s -> %s;\n", prev, name)
		prev = name
	}

	fmt.Fprintln(f, "}")
	return nil
}

func activationName(a deep.ActivationType) string {
	switch a {
	case deep.ActivationSigmoid:
		return "sigmoid"
	case deep.ActivationTanh:
		return "tanh"
	case deep.ActivationReLU:
		return "relu"
	case deep.ActivationLinear:
		return "linear"
	case deep.ActivationSoftmax:
		return "softmax"
	}
	return "none"
}
