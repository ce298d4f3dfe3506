package training

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// LogisticRegression is a multinomial (softmax) classifier trained with
// full-batch gradient descent on the cross-entropy loss.
type LogisticRegression struct {
	LearningRate float64
	MaxIter      int

	classes []int
	weights *mat.Dense // (features + 1) x classes, first row is the bias
}

// NewLogisticRegression returns a model with the defaults used by the
// training command.
func NewLogisticRegression() *LogisticRegression {
	return &LogisticRegression{
		LearningRate: 0.1,
		MaxIter:      1000,
	}
}

// Classes returns the sorted class labels seen during Fit.
func (m *LogisticRegression) Classes() []int {
	out := make([]int, len(m.classes))
	copy(out, m.classes)
	return out
}

// Fit estimates the weights from standardized features x and labels y.
func (m *LogisticRegression) Fit(x [][]float64, y []int) error {
	if len(x) == 0 || len(x) != len(y) {
		return fmt.Errorf("logreg: %d rows but %d labels", len(x), len(y))
	}
	if m.LearningRate <= 0 || m.MaxIter <= 0 {
		return fmt.Errorf("logreg: invalid hyperparameters")
	}

	n := len(x)
	d := len(x[0])

	m.classes = uniqueSorted(y)
	if len(m.classes) < 2 {
		return fmt.Errorf("logreg: need at least 2 classes, got %d", len(m.classes))
	}
	k := len(m.classes)

	classIndex := map[int]int{}
	for i, class := range m.classes {
		classIndex[class] = i
	}

	design := designMatrix(x)

	// One-hot target matrix.
	target := mat.NewDense(n, k, nil)
	for i, label := range y {
		target.Set(i, classIndex[label], 1)
	}

	m.weights = mat.NewDense(d+1, k, nil)

	var logits, diff, grad mat.Dense
	for iter := 0; iter < m.MaxIter; iter++ {
		logits.Mul(design, m.weights)
		softmaxRows(&logits)

		diff.Sub(&logits, target)
		grad.Mul(design.T(), &diff)
		grad.Scale(m.LearningRate/float64(n), &grad)
		m.weights.Sub(m.weights, &grad)
	}

	return nil
}

// Predict returns the most probable class per row.
func (m *LogisticRegression) Predict(x [][]float64) ([]int, error) {
	if m.weights == nil {
		return nil, fmt.Errorf("logreg: not fitted")
	}
	if len(x) == 0 {
		return nil, nil
	}
	if len(x[0])+1 != m.weights.RawMatrix().Rows {
		return nil, fmt.Errorf("logreg: row has %d features, fitted on %d", len(x[0]), m.weights.RawMatrix().Rows-1)
	}

	var logits mat.Dense
	logits.Mul(designMatrix(x), m.weights)

	n, k := logits.Dims()
	predictions := make([]int, n)
	for i := 0; i < n; i++ {
		best := 0
		for j := 1; j < k; j++ {
			if logits.At(i, j) > logits.At(i, best) {
				best = j
			}
		}
		predictions[i] = m.classes[best]
	}
	return predictions, nil
}

// designMatrix prepends the bias column.
func designMatrix(x [][]float64) *mat.Dense {
	n := len(x)
	d := len(x[0])

	design := mat.NewDense(n, d+1, nil)
	for i, row := range x {
		design.Set(i, 0, 1)
		for j, value := range row {
			design.Set(i, j+1, value)
		}
	}
	return design
}

// softmaxRows normalizes each row in place, shifting by the row maximum for
// numerical stability.
func softmaxRows(logits *mat.Dense) {
	n, k := logits.Dims()
	for i := 0; i < n; i++ {
		maxLogit := logits.At(i, 0)
		for j := 1; j < k; j++ {
			if v := logits.At(i, j); v > maxLogit {
				maxLogit = v
			}
		}

		sum := 0.0
		for j := 0; j < k; j++ {
			v := math.Exp(logits.At(i, j) - maxLogit)
			logits.Set(i, j, v)
			sum += v
		}
		for j := 0; j < k; j++ {
			logits.Set(i, j, logits.At(i, j)/sum)
		}
	}
}

func uniqueSorted(labels []int) []int {
	seen := map[int]struct{}{}
	var out []int
	for _, label := range labels {
		if _, ok := seen[label]; ok {
			continue
		}
		seen[label] = struct{}{}
		out = append(out, label)
	}
	sort.Ints(out)
	return out
}
