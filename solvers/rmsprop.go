// Package solvers supplies weight-update rules satisfying the
// training.Solver interface of the network library. SGD and Adam ship with
// the library; RMSProp is added here, along with a wrapper that keeps solver
// state alive across repeated Train calls.
package solvers

import (
	"math"
)

// RMSProp scales each update by a running average of recent squared
// gradients.
type RMSProp struct {
	lr, rho, eps float64

	cache []float64
}

// NewRMSProp returns a new RMSProp solver. Zero-valued parameters take the
// usual defaults: learning rate 0.001, decay 0.9, epsilon 1e-7.
func NewRMSProp(lr, rho, eps float64) *RMSProp {
	return &RMSProp{
		lr:  fparam(lr, 0.001),
		rho: fparam(rho, 0.9),
		eps: fparam(eps, 1e-7),
	}
}

// Init allocates the gradient cache for a network with size weights.
func (o *RMSProp) Init(size int) {
	o.cache = make([]float64, size)
}

// Update returns the delta to apply to the idx'th weight.
func (o *RMSProp) Update(value, gradient float64, iteration, idx int) float64 {
	o.cache[idx] = o.rho*o.cache[idx] + (1.0-o.rho)*gradient*gradient
	return -o.lr * gradient / (math.Sqrt(o.cache[idx]) + o.eps)
}

func fparam(val, fallback float64) float64 {
	if val == 0.0 {
		return fallback
	}
	return val
}
