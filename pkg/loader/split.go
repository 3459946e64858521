// Package loader splits datasets into the train and test parts that
// preprocessing rules are fitted and evaluated on.
package loader

import (
	"fmt"
	"math/rand"

	"featprep/pkg/data"
)

// TrainTestSplit shuffles rows with rng and puts testRatio of them in the
// test set.
func TrainTestSplit(ds *data.Dataset, testRatio float64, rng *rand.Rand) (train, test *data.Dataset, err error) {
	if testRatio < 0 || testRatio > 1 {
		return nil, nil, fmt.Errorf("test ratio %v outside [0, 1]", testRatio)
	}
	indices := rng.Perm(ds.Nrow())
	nTest := int(float64(ds.Nrow()) * testRatio)
	if test, err = ds.Rows(indices[:nTest]); err != nil {
		return nil, nil, err
	}
	if train, err = ds.Rows(indices[nTest:]); err != nil {
		return nil, nil, err
	}
	return train, test, nil
}

// Shuffle returns the rows of ds in a random order.
func Shuffle(ds *data.Dataset, rng *rand.Rand) (*data.Dataset, error) {
	return ds.Rows(rng.Perm(ds.Nrow()))
}

// Fold is one train/test pair of a k-fold split.
type Fold struct {
	Train *data.Dataset
	Test  *data.Dataset
}

// KFoldSplit deals shuffled rows round-robin into k test folds; each fold's
// train set is every other row.
func KFoldSplit(ds *data.Dataset, k int, rng *rand.Rand) ([]Fold, error) {
	n := ds.Nrow()
	if k < 2 || k > n {
		return nil, fmt.Errorf("k = %d must be in [2, %d]", k, n)
	}
	indices := rng.Perm(n)
	groups := make([][]int, k)
	for i := range n {
		groups[i%k] = append(groups[i%k], indices[i])
	}

	folds := make([]Fold, k)
	for f := range k {
		var trainIdx []int
		for g := range k {
			if g != f {
				trainIdx = append(trainIdx, groups[g]...)
			}
		}
		train, err := ds.Rows(trainIdx)
		if err != nil {
			return nil, err
		}
		test, err := ds.Rows(groups[f])
		if err != nil {
			return nil, err
		}
		folds[f] = Fold{Train: train, Test: test}
	}
	return folds, nil
}
