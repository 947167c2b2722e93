// Package modelselection provides cross-validation splitters and the
// k-fold log-loss scorer of the experiment.
package modelselection

import (
	"math/rand/v2"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/varitext/varitext/pkg/errors"
)

// Fold is one train/test partition of the sample rows.
type Fold struct {
	TrainIndices []int
	TestIndices  []int
}

// Splitter generates cross-validation folds. y is an n×1 label matrix;
// splitters that ignore labels accept nil.
type Splitter interface {
	Split(X, y mat.Matrix) ([]Fold, error)
	NSplits() int
}

// KFold splits samples into k contiguous folds, optionally shuffling
// first with a fixed seed.
type KFold struct {
	nSplits int
	shuffle bool
	seed    uint64
}

// NewKFold creates a k-fold splitter. Fewer than 2 splits falls back to 5.
func NewKFold(nSplits int, shuffle bool, seed uint64) *KFold {
	if nSplits < 2 {
		nSplits = 5
	}
	return &KFold{
		nSplits: nSplits,
		shuffle: shuffle,
		seed:    seed,
	}
}

// NSplits returns the number of folds.
func (kf *KFold) NSplits() int {
	return kf.nSplits
}

// Split generates the train/test indices for each fold.
func (kf *KFold) Split(X, _ mat.Matrix) ([]Fold, error) {
	nSamples, _ := X.Dims()
	if nSamples < kf.nSplits {
		return nil, errors.NewValueError("KFold.Split",
			"cannot have more folds than samples")
	}

	indices := make([]int, nSamples)
	for i := range indices {
		indices[i] = i
	}
	if kf.shuffle {
		r := rand.New(rand.NewPCG(kf.seed, kf.seed))
		r.Shuffle(len(indices), func(i, j int) {
			indices[i], indices[j] = indices[j], indices[i]
		})
	}

	folds := make([]Fold, kf.nSplits)
	foldSize := nSamples / kf.nSplits
	remainder := nSamples % kf.nSplits

	current := 0
	for i := 0; i < kf.nSplits; i++ {
		testSize := foldSize
		if i < remainder {
			testSize++
		}
		test := make([]int, testSize)
		copy(test, indices[current:current+testSize])
		folds[i] = Fold{
			TrainIndices: complementOf(indices, test),
			TestIndices:  test,
		}
		current += testSize
	}
	return folds, nil
}

// StratifiedKFold distributes each class evenly across the folds.
type StratifiedKFold struct {
	nSplits int
	shuffle bool
	seed    uint64
}

// NewStratifiedKFold creates a stratified k-fold splitter.
func NewStratifiedKFold(nSplits int, shuffle bool, seed uint64) *StratifiedKFold {
	if nSplits < 2 {
		nSplits = 5
	}
	return &StratifiedKFold{
		nSplits: nSplits,
		shuffle: shuffle,
		seed:    seed,
	}
}

// NSplits returns the number of folds.
func (skf *StratifiedKFold) NSplits() int {
	return skf.nSplits
}

// Split generates stratified train/test indices for each fold.
func (skf *StratifiedKFold) Split(X, y mat.Matrix) ([]Fold, error) {
	nSamples, _ := X.Dims()
	if y == nil {
		return nil, errors.NewValueError("StratifiedKFold.Split", "labels required")
	}
	yRows, _ := y.Dims()
	if yRows != nSamples {
		return nil, errors.NewDimensionError("StratifiedKFold.Split", nSamples, yRows, 0)
	}
	if nSamples < skf.nSplits {
		return nil, errors.NewValueError("StratifiedKFold.Split",
			"cannot have more folds than samples")
	}

	byClass := make(map[int][]int)
	for i := 0; i < nSamples; i++ {
		label := int(y.At(i, 0))
		byClass[label] = append(byClass[label], i)
	}
	classes := make([]int, 0, len(byClass))
	for c := range byClass {
		classes = append(classes, c)
	}
	sort.Ints(classes)

	if skf.shuffle {
		r := rand.New(rand.NewPCG(skf.seed, skf.seed))
		for _, c := range classes {
			idx := byClass[c]
			r.Shuffle(len(idx), func(i, j int) {
				idx[i], idx[j] = idx[j], idx[i]
			})
		}
	}

	folds := make([]Fold, skf.nSplits)
	for _, c := range classes {
		idx := byClass[c]
		foldSize := len(idx) / skf.nSplits
		remainder := len(idx) % skf.nSplits

		current := 0
		for i := 0; i < skf.nSplits; i++ {
			take := foldSize
			if i < remainder {
				take++
			}
			folds[i].TestIndices = append(folds[i].TestIndices, idx[current:current+take]...)
			current += take
		}
	}

	all := make([]int, nSamples)
	for i := range all {
		all[i] = i
	}
	for i := range folds {
		sort.Ints(folds[i].TestIndices)
		folds[i].TrainIndices = complementOf(all, folds[i].TestIndices)
	}
	return folds, nil
}

// complementOf returns the elements of universe not present in exclude,
// in universe order.
func complementOf(universe, exclude []int) []int {
	excluded := make(map[int]bool, len(exclude))
	for _, idx := range exclude {
		excluded[idx] = true
	}
	out := make([]int, 0, len(universe)-len(exclude))
	for _, idx := range universe {
		if !excluded[idx] {
			out = append(out, idx)
		}
	}
	return out
}
