package clinicalnets

import "fmt"

// Error is a wrapper for specific kinds of errors for which there is no
// additional information necessary. These errors are defined as global
// variables.
type Error struct{ string }

func (err Error) Error() string {
	return err.string
}

// These are the global errors that may be returned.
var (
	ErrEmptyTrainingSet = Error{"Training set is empty"}
	ErrEmptyTestSet     = Error{"Evaluation set is empty"}
)

// NilArgError documents errors resulting from certain arguments provided to
// a function being nil.
type NilArgError struct{ string }

func (err NilArgError) Error() string {
	return err.string + " is nil"
}

// SizeMismatchError documents inputs whose width does not match what the
// network was built for.
type SizeMismatchError struct {
	What string
	Got  int
	Want int
}

func (err SizeMismatchError) Error() string {
	return fmt.Sprintf("%s has %d values, want %d", err.What, err.Got, err.Want)
}
