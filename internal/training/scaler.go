package training

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// StandardScaler centers each feature column to zero mean and unit variance.
// Fit on the training fold only; the same statistics transform the test fold.
type StandardScaler struct {
	means []float64
	stds  []float64
}

// Fit computes per-column mean and population standard deviation.
func (s *StandardScaler) Fit(x [][]float64) error {
	if len(x) == 0 || len(x[0]) == 0 {
		return fmt.Errorf("scaler: empty feature matrix")
	}

	columns := len(x[0])
	s.means = make([]float64, columns)
	s.stds = make([]float64, columns)

	column := make([]float64, len(x))
	for j := 0; j < columns; j++ {
		for i, row := range x {
			column[i] = row[j]
		}
		s.means[j] = stat.Mean(column, nil)
		s.stds[j] = stat.PopStdDev(column, nil)
		if s.stds[j] == 0 {
			// Constant column: leave it centered, not scaled.
			s.stds[j] = 1
		}
	}
	return nil
}

// Transform returns a scaled copy of x using the fitted statistics.
func (s *StandardScaler) Transform(x [][]float64) ([][]float64, error) {
	if s.means == nil {
		return nil, fmt.Errorf("scaler: not fitted")
	}

	scaled := make([][]float64, len(x))
	for i, row := range x {
		if len(row) != len(s.means) {
			return nil, fmt.Errorf("scaler: row has %d columns, fitted on %d", len(row), len(s.means))
		}
		out := make([]float64, len(row))
		for j, value := range row {
			out[j] = (value - s.means[j]) / s.stds[j]
		}
		scaled[i] = out
	}
	return scaled, nil
}

// FitTransform fits on x and returns its scaled copy.
func (s *StandardScaler) FitTransform(x [][]float64) ([][]float64, error) {
	if err := s.Fit(x); err != nil {
		return nil, err
	}
	return s.Transform(x)
}
