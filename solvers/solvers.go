package solvers

import (
	"strings"

	"github.com/patrikeh/go-deep/training"
	"github.com/pkg/errors"
)

// New resolves a solver by name, case-insensitively. A zero learning rate
// keeps each solver's own default.
func New(name string, lr float64) (training.Solver, error) {
	switch strings.ToLower(name) {
	case "sgd":
		return training.NewSGD(lr, 0, 0, false), nil
	case "adam":
		return training.NewAdam(lr, 0, 0, 0), nil
	case "rmsprop":
		return NewRMSProp(lr, 0, 0), nil
	}

	return nil, errors.Errorf("Unknown solver %q (valid: adam, rmsprop, sgd)", name)
}
