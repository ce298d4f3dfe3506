package training

import (
	"fmt"
	"strings"
)

// Accuracy returns the fraction of matching predictions.
func Accuracy(yTrue, yPred []int) float64 {
	if len(yTrue) == 0 || len(yTrue) != len(yPred) {
		return 0
	}

	correct := 0
	for i, label := range yTrue {
		if yPred[i] == label {
			correct++
		}
	}
	return float64(correct) / float64(len(yTrue))
}

// ConfusionMatrix returns the sorted class labels and the matrix with true
// classes as rows and predicted classes as columns.
func ConfusionMatrix(yTrue, yPred []int) ([]int, [][]int) {
	classes := uniqueSorted(append(append([]int{}, yTrue...), yPred...))
	index := map[int]int{}
	for i, class := range classes {
		index[class] = i
	}

	matrix := make([][]int, len(classes))
	for i := range matrix {
		matrix[i] = make([]int, len(classes))
	}
	for i, label := range yTrue {
		matrix[index[label]][index[yPred[i]]]++
	}
	return classes, matrix
}

// ClassificationReport formats per-class precision, recall, and F1 with
// support counts, plus overall accuracy.
func ClassificationReport(yTrue, yPred []int) string {
	classes, matrix := ConfusionMatrix(yTrue, yPred)

	var b strings.Builder
	fmt.Fprintf(&b, "%8s %10s %10s %10s %10s\n", "class", "precision", "recall", "f1-score", "support")

	for i, class := range classes {
		truePositive := matrix[i][i]

		predicted := 0
		for r := range classes {
			predicted += matrix[r][i]
		}
		actual := 0
		for c := range classes {
			actual += matrix[i][c]
		}

		precision := safeRatio(truePositive, predicted)
		recall := safeRatio(truePositive, actual)
		f1 := 0.0
		if precision+recall > 0 {
			f1 = 2 * precision * recall / (precision + recall)
		}

		fmt.Fprintf(&b, "%8d %10.2f %10.2f %10.2f %10d\n", class, precision, recall, f1, actual)
	}

	fmt.Fprintf(&b, "\naccuracy: %.4f (%d samples)\n", Accuracy(yTrue, yPred), len(yTrue))
	return b.String()
}

// FormatConfusionMatrix renders the matrix with labeled rows and columns.
func FormatConfusionMatrix(classes []int, matrix [][]int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%8s", "true\\pred")
	for _, class := range classes {
		fmt.Fprintf(&b, " %6d", class)
	}
	b.WriteByte('\n')

	for i, class := range classes {
		fmt.Fprintf(&b, "%9d", class)
		for j := range classes {
			fmt.Fprintf(&b, " %6d", matrix[i][j])
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func safeRatio(numerator, denominator int) float64 {
	if denominator == 0 {
		return 0
	}
	return float64(numerator) / float64(denominator)
}
