package training

import (
	"fmt"
	"math/rand"
	"sort"
)

// StratifiedSplit partitions (x, y) into train and test folds, preserving
// the class proportions of y. The shuffle is seeded, so splits are
// reproducible across runs.
func StratifiedSplit(x [][]float64, y []int, testFraction float64, seed int64) (trainX, testX [][]float64, trainY, testY []int, err error) {
	if len(x) != len(y) {
		return nil, nil, nil, nil, fmt.Errorf("split: %d rows but %d labels", len(x), len(y))
	}
	if len(x) == 0 {
		return nil, nil, nil, nil, fmt.Errorf("split: empty dataset")
	}
	if testFraction <= 0 || testFraction >= 1 {
		return nil, nil, nil, nil, fmt.Errorf("split: test fraction %v out of (0, 1)", testFraction)
	}

	byClass := map[int][]int{}
	for i, label := range y {
		byClass[label] = append(byClass[label], i)
	}

	classes := make([]int, 0, len(byClass))
	for class := range byClass {
		classes = append(classes, class)
	}
	sort.Ints(classes)

	rng := rand.New(rand.NewSource(seed))
	for _, class := range classes {
		indices := byClass[class]
		rng.Shuffle(len(indices), func(i, j int) {
			indices[i], indices[j] = indices[j], indices[i]
		})

		nTest := int(float64(len(indices))*testFraction + 0.5)
		if nTest == len(indices) && len(indices) > 1 {
			nTest--
		}

		for k, idx := range indices {
			if k < nTest {
				testX = append(testX, x[idx])
				testY = append(testY, y[idx])
			} else {
				trainX = append(trainX, x[idx])
				trainY = append(trainY, y[idx])
			}
		}
	}

	if len(trainX) == 0 {
		return nil, nil, nil, nil, fmt.Errorf("split: training fold is empty")
	}

	return trainX, testX, trainY, testY, nil
}
