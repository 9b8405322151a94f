package solvers

import (
	"github.com/patrikeh/go-deep/training"
)

// Stateful keeps a solver's internal state alive across repeated Train
// calls. The library's trainers call Init at the start of every Train and
// restart their iteration counter at 1, which would wipe accumulated moments
// and rewind bias correction whenever a network is trained one epoch at a
// time. Stateful allocates on the first Init only and rebases later
// iteration counters so the wrapped solver sees one continuous run.
type Stateful struct {
	inner training.Solver

	ready   bool
	offset  int
	highest int
}

// NewStateful wraps inner.
func NewStateful(inner training.Solver) *Stateful {
	return &Stateful{inner: inner}
}

// Init passes through on first use. Afterwards it only rebases the iteration
// counter to follow on from the previous Train call.
func (s *Stateful) Init(size int) {
	if !s.ready {
		s.inner.Init(size)
		s.ready = true
		return
	}
	s.offset = s.highest
}

// Update remaps iteration onto the continuous counter and delegates.
func (s *Stateful) Update(value, gradient float64, iteration, idx int) float64 {
	it := s.offset + iteration
	if it > s.highest {
		s.highest = it
	}
	return s.inner.Update(value, gradient, it, idx)
}
