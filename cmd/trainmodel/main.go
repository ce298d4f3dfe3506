package main

import (
	"flag"
	"fmt"
	"os"

	"ReviewLabeler/internal/domain"
	"ReviewLabeler/internal/infrastructure/storage"
	"ReviewLabeler/internal/logging"
	"ReviewLabeler/internal/training"
)

const defaultInput = "datasets/processed_and_labeled_for_training/goodreads_reviews_mystery_thriller_crime_substantiveness.csv"

func main() {
	input := flag.String("input", defaultInput, "labeled CSV produced by the pipeline")
	testSize := flag.Float64("test-size", 0.2, "test fold fraction")
	seed := flag.Int64("seed", 42, "split shuffle seed")
	iterations := flag.Int("iterations", 1000, "gradient descent iterations")
	learningRate := flag.Float64("learning-rate", 0.1, "gradient descent step size")
	logLevel := flag.String("log-level", "info", "log level")
	flag.Parse()

	// Logs go to stderr so stdout stays a clean report.
	logger := logging.NewWriter(os.Stderr, *logLevel)

	store := storage.NewCSVStore(logger.With("component", "storage"))
	reviews, err := store.ReadLabeled(*input)
	if err != nil {
		logger.Error("failed to load labeled table", "error", err)
		os.Exit(1)
	}
	logger.Info("loaded labeled table", "path", *input, "rows", len(reviews))

	x, y := featureMatrix(reviews)
	logger.Info("rows after filtering links", "rows", len(x))

	trainX, testX, trainY, testY, err := training.StratifiedSplit(x, y, *testSize, *seed)
	if err != nil {
		logger.Error("failed to split dataset", "error", err)
		os.Exit(1)
	}
	logger.Info("split dataset", "train", len(trainX), "test", len(testX))

	scaler := &training.StandardScaler{}
	scaledTrain, err := scaler.FitTransform(trainX)
	if err != nil {
		logger.Error("failed to scale features", "error", err)
		os.Exit(1)
	}
	scaledTest, err := scaler.Transform(testX)
	if err != nil {
		logger.Error("failed to scale test features", "error", err)
		os.Exit(1)
	}

	model := training.NewLogisticRegression()
	model.LearningRate = *learningRate
	model.MaxIter = *iterations

	logger.Info("training logistic regression",
		"features", len(domain.FeatureColumns),
		"classes", len(uniqueLabels(trainY)),
		"iterations", *iterations)

	if err := model.Fit(scaledTrain, trainY); err != nil {
		logger.Error("training failed", "error", err)
		os.Exit(1)
	}

	predictions, err := model.Predict(scaledTest)
	if err != nil {
		logger.Error("prediction failed", "error", err)
		os.Exit(1)
	}

	classes, matrix := training.ConfusionMatrix(testY, predictions)

	fmt.Printf("Accuracy: %.4f\n\n", training.Accuracy(testY, predictions))
	fmt.Println("Classification Report:")
	fmt.Println(training.ClassificationReport(testY, predictions))
	fmt.Println("Confusion Matrix:")
	fmt.Println(training.FormatConfusionMatrix(classes, matrix))
}

// featureMatrix excludes link-flagged rows and projects the model inputs.
func featureMatrix(reviews []domain.Review) ([][]float64, []int) {
	var (
		x [][]float64
		y []int
	)
	for _, review := range reviews {
		if review.ContainsLink {
			continue
		}
		x = append(x, review.FeatureVector())
		y = append(y, review.SubstantivenessLabel)
	}
	return x, y
}

func uniqueLabels(labels []int) map[int]struct{} {
	set := map[int]struct{}{}
	for _, label := range labels {
		set[label] = struct{}{}
	}
	return set
}
