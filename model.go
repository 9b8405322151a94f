package clinicalnets

import (
	deep "github.com/patrikeh/go-deep"
	"github.com/pkg/errors"
)

// hidden layer width shared by both predictors
const hiddenUnits = 64

// Classifier is a named feed-forward network. Construction is declarative:
// the architecture is described by a Config and the network itself is built
// and run by the deep-learning library.
type Classifier struct {
	Name string
	Net  *deep.Neural
}

// New builds a Classifier from an explicit network configuration.
func New(name string, conf *deep.Config) (*Classifier, error) {
	if name == "" {
		return nil, NilArgError{"name"}
	}
	if conf == nil {
		return nil, NilArgError{"conf"}
	}
	if conf.Inputs < 1 {
		return nil, errors.Errorf("Can't build %q with %d inputs", name, conf.Inputs)
	}

	return &Classifier{Name: name, Net: deep.NewNeural(conf)}, nil
}

// NewBinary builds a yes/no predictor: two ReLU hidden layers of 64 units
// and a single sigmoid output, trained against binary cross-entropy.
func NewBinary(name string, inputs int) (*Classifier, error) {
	return New(name, &deep.Config{
		Inputs:     inputs,
		Layout:     []int{hiddenUnits, hiddenUnits, 1},
		Activation: deep.ActivationReLU,
		Mode:       deep.ModeBinary,
		Weight:     deep.NewNormal(1.0, 0.0),
		Loss:       deep.LossBinaryCrossEntropy,
		Bias:       true,
	})
}

// NewMultiClass builds a one-of-n predictor: two ReLU hidden layers of 64
// units and a softmax output over classes, trained against categorical
// cross-entropy.
func NewMultiClass(name string, inputs, classes int) (*Classifier, error) {
	if classes < 2 {
		return nil, errors.Errorf("Can't build %q with %d classes", name, classes)
	}

	return New(name, &deep.Config{
		Inputs:     inputs,
		Layout:     []int{hiddenUnits, hiddenUnits, classes},
		Activation: deep.ActivationReLU,
		Mode:       deep.ModeMultiClass,
		Weight:     deep.NewNormal(1.0, 0.0),
		Loss:       deep.LossCrossEntropy,
		Bias:       true,
	})
}

// Inputs returns the input width the network was built for.
func (c *Classifier) Inputs() int {
	return c.Net.Config.Inputs
}

// Classes returns the number of output units.
func (c *Classifier) Classes() int {
	return c.Net.Config.Layout[len(c.Net.Config.Layout)-1]
}
