// Package clinicalnets trains and evaluates the small feed-forward
// classifiers behind the clinical prediction programs in cmd. The network
// math itself (forward and backward passes, gradient descent, weight layout)
// belongs to the deep-learning library underneath; this package owns the
// surrounding workflow: declarative model construction, an epoch-by-epoch
// fit loop with history capture, evaluation, prediction and artifact
// persistence.
//
// Building Models
//
// Models are built by naming them and their input width:
//
//		model, err := clinicalnets.NewBinary("pima-indians-diabetes", 8)
//		if err != nil {
//			return err
//		}
//
// NewBinary and NewMultiClass fix the architecture both predictors share,
// two ReLU hidden layers of 64 units feeding a sigmoid or softmax head. New
// accepts an explicit network configuration for anything else.
//
// Training and Evaluating
//
// Training follows with a FitConfig, a proxy for the optional fit arguments
// found in other languages:
//
//		solver, _ := solvers.New("adam", 0)
//		hist, err := model.Fit(trainSet, clinicalnets.FitConfig{
//			Epochs:          100,
//			BatchSize:       32,
//			ValidationSplit: 0.2,
//			Solver:          solver,
//			Verbose:         true,
//		})
//
// The returned History holds one loss and accuracy value per epoch, for the
// training data and, when a validation split was given, for the held-out
// validation slice; the plots package renders these series to the usual
// epoch-versus-metric curves. Evaluate scores a labeled set after training,
// and Predict runs single rows.
//
// Saving and Loading
//
// Fitted models Save to a single JSON file wrapping the library's own
// network dump together with an artifact id and timestamp:
//
//		func (c *Classifier) Save(path string, overwrite bool) error
//
// Load restores a classifier that predicts identically to the saved one.
// Fitted preprocessing (the min-max scaler and the one-hot encoder in the
// preprocess package) persists separately, since predictions on new data
// must pass through the exact transform the model was trained behind.
package clinicalnets
