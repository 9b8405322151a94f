// Classifies cardiotocographic exams into patient states using a
// feed-forward network trained on the CTG workbook.
//
// The workbook's "Raw Data" sheet carries the measurements; only the
// columns named below are used, with the NSP class code last. After
// training, the program prints evaluation metrics and a verdict for every
// row of a separate prediction CSV, and writes the epoch graphs together
// with the fitted model, scaler and encoder under -outdir. The workbook
// itself is the usual UCI cardiotocography file saved as xlsx and is not
// bundled here.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/patrikeh/go-deep/training"
	"gonum.org/v1/gonum/floats"

	clinicalnets "github.com/AlperHuseyn/clinical-nets"
	"github.com/AlperHuseyn/clinical-nets/dataset"
	"github.com/AlperHuseyn/clinical-nets/experiment"
	"github.com/AlperHuseyn/clinical-nets/metrics"
	"github.com/AlperHuseyn/clinical-nets/plots"
	"github.com/AlperHuseyn/clinical-nets/preprocess"
)

const (
	// main hyperparameters
	testFrac float64 = 0.2
	epochs   int     = 5

	defaultSheet string = "Raw Data"
	modelName    string = "cardiotocographic-predictor"
	scalerFile   string = "cardiotocographic-scaler.gob"
	encoderFile  string = "cardiotocographic-encoder.gob"

	banner string = "################################"
)

// columns used from the sheet, in training order; NSP is the target class
var columns = []string{
	"LB", "AC", "FM", "UC", "DL", "DS", "DP", "ASTV", "MSTV", "ALTV",
	"MLTV", "Width", "Min", "Max", "Nmax", "Nzeros", "Mode", "Mean",
	"Median", "Variance", "Tendency", "NSP",
}

// labels[i] names one-hot class i; the NSP codes 1, 2 and 3 sort into this
// order when the encoder is fitted
var labels = []string{"Normal patient", "Suspect patient", "Pathologic patient"}

func load(path, sheet string) *dataset.Table {
	fmt.Print("Loading workbook...")
	t, err := dataset.ReadXLSX(path, sheet, columns...)
	if err != nil {
		panic(err.Error())
	}
	fmt.Println(" Done!")

	return t
}

func split(t *dataset.Table, cfg *experiment.Config) (trainX, testX [][]float64, trainY, testY []float64) {
	X, y := t.FeaturesTarget()
	set, err := dataset.BinaryExamples(X, y)
	if err != nil {
		panic(err.Error())
	}

	train, test, err := dataset.Split(set, testFrac, cfg.RNG())
	if err != nil {
		panic(err.Error())
	}

	trainX, trainY = unzip(train)
	testX, testY = unzip(test)

	return trainX, testX, trainY, testY
}

func unzip(set training.Examples) (X [][]float64, y []float64) {
	X = make([][]float64, len(set))
	y = make([]float64, len(set))
	for i, e := range set {
		X[i] = e.Input
		y[i] = e.Response[0]
	}

	return X, y
}

// prepare scales the features to the unit interval and one-hot encodes the
// class codes. Both transforms are fitted on the training rows only.
func prepare(trainX, testX [][]float64, trainY, testY []float64) (train, test training.Examples, scaler *preprocess.MinMaxScaler, encoder *preprocess.OneHotEncoder) {
	scaler = new(preprocess.MinMaxScaler)
	trainX, err := scaler.FitTransform(trainX)
	if err != nil {
		panic(err.Error())
	}
	if testX, err = scaler.Transform(testX); err != nil {
		panic(err.Error())
	}

	encoder = new(preprocess.OneHotEncoder)
	trainHot, err := encoder.FitTransform(trainY)
	if err != nil {
		panic(err.Error())
	}
	testHot, err := encoder.Transform(testY)
	if err != nil {
		panic(err.Error())
	}

	if train, err = dataset.Examples(trainX, trainHot); err != nil {
		panic(err.Error())
	}
	if test, err = dataset.Examples(testX, testHot); err != nil {
		panic(err.Error())
	}

	return train, test, scaler, encoder
}

func setup(inputs, classes int) *clinicalnets.Classifier {
	fmt.Print("Setting up network...")
	model, err := clinicalnets.NewMultiClass(modelName, inputs, classes)
	if err != nil {
		panic(err.Error())
	}
	fmt.Println(" Done!")

	model.Summary(os.Stdout)

	return model
}

func fit(model *clinicalnets.Classifier, train training.Examples, cfg *experiment.Config) *clinicalnets.History {
	solver, err := cfg.NewSolver()
	if err != nil {
		panic(err.Error())
	}

	fmt.Println("Starting training...")
	hist, err := model.Fit(train, clinicalnets.FitConfig{
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

	return hist
}

func evaluate(model *clinicalnets.Classifier, test training.Examples) (loss, acc float64) {
	loss, acc, err := model.Evaluate(test)
	if err != nil {
		panic(err.Error())
	}

	return loss, acc
}

func predict(model *clinicalnets.Classifier, scaler *preprocess.MinMaxScaler, path string) [][]float64 {
	t, err := dataset.ReadCSV(path)
	if err != nil {
		panic(err.Error())
	}

	X, err := scaler.Transform(t.Rows)
	if err != nil {
		panic(err.Error())
	}

	preds, err := model.PredictBatch(X)
	if err != nil {
		panic(err.Error())
	}

	return preds
}

func save(model *clinicalnets.Classifier, scaler *preprocess.MinMaxScaler, encoder *preprocess.OneHotEncoder, dir string) {
	fmt.Print("Saving model, scaler and encoder...")
	if err := model.Save(filepath.Join(dir, modelName+".json"), true); err != nil {
		panic(err.Error())
	}
	if err := scaler.Save(filepath.Join(dir, scalerFile)); err != nil {
		panic(err.Error())
	}
	if err := encoder.Save(filepath.Join(dir, encoderFile)); err != nil {
		panic(err.Error())
	}
	fmt.Println(" Done!")
}

func plot(hist *clinicalnets.History, dir string) {
	fmt.Print("Plotting epoch graphs...")
	if err := plots.History(hist, "loss", filepath.Join(dir, "Epoch-Loss Graph.jpg")); err != nil {
		panic(err.Error())
	}
	if err := plots.History(hist, "categorical_accuracy", filepath.Join(dir, "Epoch-Categorical Accuracy Graph.jpg")); err != nil {
		panic(err.Error())
	}
	fmt.Println(" Done!")
}

func report(loss, acc float64) {
	fmt.Println(banner)
	fmt.Println("Model Evaluation Metrics:")
	fmt.Printf("loss: %v\ncategorical_accuracy: %v\n", loss, acc)
	fmt.Println(banner)
}

func confusion(model *clinicalnets.Classifier, test training.Examples) {
	X := make([][]float64, len(test))
	targets := make([][]float64, len(test))
	for i, e := range test {
		X[i] = e.Input
		targets[i] = e.Response
	}

	preds, err := model.PredictBatch(X)
	if err != nil {
		panic(err.Error())
	}

	m, err := metrics.ConfusionMatrix(preds, targets)
	if err != nil {
		panic(err.Error())
	}

	fmt.Println("Confusion matrix:")
	fmt.Print(metrics.FormatConfusion(m, labels))
}

func main() {
	dataPath := flag.String("data", "data/CTG.xlsx", "path to the CTG workbook")
	sheetName := flag.String("sheet", defaultSheet, "workbook sheet holding the measurements")
	predictPath := flag.String("predict", "data/ctg-predict.csv", "path to the CSV of rows to classify")
	configPath := flag.String("config", "", "optional YAML run configuration")
	outDir := flag.String("outdir", ".", "directory for plots and saved artifacts")
	flag.Parse()

	def := experiment.Default()
	def.Name = modelName
	def.Epochs = epochs
	def.Solver = "rmsprop"
	cfg, err := experiment.Load(*configPath, def)
	if err != nil {
		panic(err.Error())
	}

	table := load(*dataPath, *sheetName)
	trainX, testX, trainY, testY := split(table, cfg)
	train, test, scaler, encoder := prepare(trainX, testX, trainY, testY)

	model := setup(len(columns)-1, len(labels))
	hist := fit(model, train, cfg)
	loss, acc := evaluate(model, test)

	preds := predict(model, scaler, *predictPath)

	save(model, scaler, encoder, *outDir)
	plot(hist, *outDir)

	report(loss, acc)
	confusion(model, test)

	for _, p := range preds {
		fmt.Println(labels[floats.MaxIdx(p)])
	}
}
