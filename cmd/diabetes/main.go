// Trains a feed-forward classifier on the Pima Indians diabetes dataset and
// prints a verdict for every row of a separate prediction file.
//
// The training CSV must carry the nine columns named below, with Outcome
// last; the prediction CSV carries the same header minus Outcome. Rows with
// missing or non-numeric cells are dropped on load. The dataset itself is
// the usual Pima Indians file and is not bundled here.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/patrikeh/go-deep/training"

	clinicalnets "github.com/AlperHuseyn/clinical-nets"
	"github.com/AlperHuseyn/clinical-nets/dataset"
	"github.com/AlperHuseyn/clinical-nets/experiment"
)

const (
	// fraction of the dataset used for training; the rest is held out
	trainRatio float64 = 0.8

	modelName string = "Pima-Indians-Diabetes"
)

// columns of the dataset in training order; Outcome is the target
var columns = []string{
	"Pregnancies", "Glucose", "BloodPressure", "SkinThickness", "Insulin",
	"BMI", "DiabetesPedigreeFunction", "Age", "Outcome",
}

func load(path string, cfg *experiment.Config) (train, test training.Examples) {
	fmt.Print("Loading dataset...")
	t, err := dataset.ReadCSV(path)
	if err != nil {
		panic(err.Error())
	}
	if t, err = t.Select(columns...); err != nil {
		panic(err.Error())
	}
	fmt.Println(" Done!")

	fmt.Print(t.Describe())

	X, y := t.FeaturesTarget()
	set, err := dataset.BinaryExamples(X, y)
	if err != nil {
		panic(err.Error())
	}

	if train, test, err = dataset.Split(set, 1-trainRatio, cfg.RNG()); err != nil {
		panic(err.Error())
	}

	return train, test
}

func setup(inputs int) *clinicalnets.Classifier {
	fmt.Print("Setting up network...")
	model, err := clinicalnets.NewBinary(modelName, inputs)
	if err != nil {
		panic(err.Error())
	}
	fmt.Println(" Done!")

	model.Summary(os.Stdout)

	return model
}

func fit(model *clinicalnets.Classifier, train training.Examples, cfg *experiment.Config) {
	solver, err := cfg.NewSolver()
	if err != nil {
		panic(err.Error())
	}

	fmt.Println("Starting training...")
	_, err = model.Fit(train, clinicalnets.FitConfig{
		Epochs:          cfg.Epochs,
		BatchSize:       cfg.BatchSize,
		ValidationSplit: cfg.ValidationSplit,
		Solver:          solver,
		Verbose:         cfg.Verbose,
	})
	if err != nil {
		panic(err.Error())
	}
	fmt.Println("Done training!")
}

func evaluate(model *clinicalnets.Classifier, test training.Examples) {
	_, acc, err := model.Evaluate(test)
	if err != nil {
		panic(err.Error())
	}

	fmt.Println("Test accuracy:", acc)
}

func predict(model *clinicalnets.Classifier, path string) {
	t, err := dataset.ReadCSV(path)
	if err != nil {
		panic(err.Error())
	}

	preds, err := model.PredictBatch(t.Rows)
	if err != nil {
		panic(err.Error())
	}

	for _, p := range preds {
		if p[0] > 0.5 {
			fmt.Println("Person have got diabetes...")
		} else {
			fmt.Println("Person is healthy...")
		}
	}
}

func save(model *clinicalnets.Classifier, path string) {
	fmt.Print("Saving...")
	if err := model.Save(path, true); err != nil {
		panic(err.Error())
	}
	fmt.Println(" Done!")
}

func main() {
	dataPath := flag.String("data", "data/diabetes.csv", "path to the training CSV")
	predictPath := flag.String("predict", "data/diabetes-predict.csv", "path to the CSV of rows to classify")
	configPath := flag.String("config", "", "optional YAML run configuration")
	modelPath := flag.String("model", "", "optional path to save the trained model to")
	flag.Parse()

	def := experiment.Default()
	def.Name = modelName
	cfg, err := experiment.Load(*configPath, def)
	if err != nil {
		panic(err.Error())
	}

	train, test := load(*dataPath, cfg)

	model := setup(len(columns) - 1)
	fit(model, train, cfg)
	evaluate(model, test)
	predict(model, *predictPath)

	if *modelPath != "" {
		save(model, *modelPath)
	}
}
