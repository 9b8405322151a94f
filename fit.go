package clinicalnets

import (
	"fmt"
	"io"
	"os"

	"github.com/patrikeh/go-deep/training"
	"github.com/pkg/errors"

	"github.com/AlperHuseyn/clinical-nets/solvers"
)

// History records one value per epoch for each tracked series, in the order
// the epochs ran. The validation series stay empty when no validation split
// was requested.
type History struct {
	Epochs  []int
	Loss    []float64
	Acc     []float64
	ValLoss []float64
	ValAcc  []float64
}

// Len returns the number of recorded epochs.
func (h *History) Len() int {
	return len(h.Epochs)
}

// FitConfig carries the training arguments of a single Fit call.
type FitConfig struct {
	// Epochs is the number of passes over the training data.
	Epochs int

	// BatchSize selects batched weight updates when greater than one;
	// otherwise weights update after every example.
	BatchSize int

	// ValidationSplit carves the last fraction of the set off for per-epoch
	// validation scoring. Zero disables validation.
	ValidationSplit float64

	// Solver is the weight-update rule. Its state is carried across the
	// whole fit, not reset per epoch.
	Solver training.Solver

	// Parallelism is the worker count for batched updates. Zero means one.
	Parallelism int

	// Verbose prints one scoring line per epoch to Out.
	Verbose bool

	// Out defaults to standard output.
	Out io.Writer
}

// Fit trains the network for the configured number of epochs and returns the
// per-epoch history of loss and accuracy. The validation examples are the
// last fraction of the set, carved off before the trainer's own per-epoch
// shuffling ever sees them. The caller's set order is preserved.
func (c *Classifier) Fit(set training.Examples, cfg FitConfig) (*History, error) {
	if c == nil || c.Net == nil {
		return nil, NilArgError{"classifier"}
	}
	if len(set) == 0 {
		return nil, ErrEmptyTrainingSet
	}
	if cfg.Solver == nil {
		return nil, NilArgError{"solver"}
	}
	if cfg.Epochs < 1 {
		return nil, errors.Errorf("Can't fit %q for %d epochs", c.Name, cfg.Epochs)
	}
	if cfg.ValidationSplit < 0 || cfg.ValidationSplit >= 1 {
		return nil, errors.Errorf("Validation split %v is outside [0, 1)", cfg.ValidationSplit)
	}
	for i, e := range set {
		if len(e.Input) != c.Inputs() {
			return nil, SizeMismatchError{What: fmt.Sprintf("input %d", i), Got: len(e.Input), Want: c.Inputs()}
		}
	}

	train := set
	var val training.Examples
	if cfg.ValidationSplit > 0 {
		at := int(float64(len(set)) * (1 - cfg.ValidationSplit))
		if at < 1 {
			return nil, errors.Errorf("Validation split %v leaves no training data", cfg.ValidationSplit)
		}
		train, val = set[:at], set[at:]
	}

	// The solver must survive the per-epoch Train calls below, so its state
	// is wrapped rather than handed to the trainer directly.
	solver := solvers.NewStateful(cfg.Solver)

	var trainer training.Trainer
	if cfg.BatchSize > 1 {
		parallelism := cfg.Parallelism
		if parallelism < 1 {
			parallelism = 1
		}
		trainer = training.NewBatchTrainer(solver, 0, cfg.BatchSize, parallelism)
	} else {
		trainer = training.NewTrainer(solver, 0)
	}

	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}

	h := new(History)
	for epoch := 1; epoch <= cfg.Epochs; epoch++ {
		trainer.Train(c.Net, train, nil, 1)

		loss, acc, err := c.Evaluate(train)
		if err != nil {
			return nil, errors.Wrapf(err, "Couldn't score epoch %d", epoch)
		}
		h.Epochs = append(h.Epochs, epoch)
		h.Loss = append(h.Loss, loss)
		h.Acc = append(h.Acc, acc)

		var vLoss, vAcc float64
		if len(val) > 0 {
			if vLoss, vAcc, err = c.Evaluate(val); err != nil {
				return nil, errors.Wrapf(err, "Couldn't score validation at epoch %d", epoch)
			}
			h.ValLoss = append(h.ValLoss, vLoss)
			h.ValAcc = append(h.ValAcc, vAcc)
		}

		if cfg.Verbose {
			fmt.Fprintf(out, "Epoch %d/%d - loss: %.4f - accuracy: %.4f", epoch, cfg.Epochs, loss, acc)
			if len(val) > 0 {
				fmt.Fprintf(out, " - val_loss: %.4f - val_accuracy: %.4f", vLoss, vAcc)
			}
			fmt.Fprintln(out)
		}
	}

	return h, nil
}
