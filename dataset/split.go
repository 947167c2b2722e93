package dataset

import (
	"math/rand/v2"
	"sort"

	"github.com/varitext/varitext/pkg/errors"
)

// Defaults of the experiment's 80/20 split.
const (
	DefaultTestSize = 0.2
	DefaultSeed     = 42
)

// SplitIndices computes a stratified train/test split over the variants
// table. Sampling is per class so the test set keeps the class proportions,
// and deterministic for a given seed. The returned positions are in
// ascending row order.
func SplitIndices(variants []Variant, testSize float64, seed uint64) (trainIdx, testIdx []int, err error) {
	if len(variants) == 0 {
		return nil, nil, errors.Wrap(errors.ErrEmptyData, "splitting variants")
	}
	if testSize <= 0 || testSize >= 1 {
		return nil, nil, errors.NewValidationError("testSize", "must be in (0, 1)", testSize)
	}

	byClass := make(map[int][]int)
	for i, v := range variants {
		byClass[v.Class] = append(byClass[v.Class], i)
	}

	r := rand.New(rand.NewPCG(seed, seed))

	// Deterministic iteration order over classes.
	classes := make([]int, 0, len(byClass))
	for c := range byClass {
		classes = append(classes, c)
	}
	sort.Ints(classes)

	inTest := make(map[int]bool, len(variants))
	for _, c := range classes {
		idx := byClass[c]
		shuffled := make([]int, len(idx))
		copy(shuffled, idx)
		r.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		nTest := int(float64(len(shuffled))*testSize + 0.5)
		if nTest == len(shuffled) && len(shuffled) > 1 {
			nTest--
		}
		for _, pos := range shuffled[:nTest] {
			inTest[pos] = true
		}
	}

	for i := range variants {
		if inTest[i] {
			testIdx = append(testIdx, i)
		} else {
			trainIdx = append(trainIdx, i)
		}
	}
	return trainIdx, testIdx, nil
}

// TrainTestSplit splits the documents and variants into training and test
// rows, stratified by class.
func TrainTestSplit(docs []Document, variants []Variant, testSize float64, seed uint64) (docsTrain, docsTest []Document, varsTrain, varsTest []Variant, err error) {
	if len(docs) != len(variants) {
		return nil, nil, nil, nil, errors.NewDimensionError("TrainTestSplit", len(variants), len(docs), 0)
	}

	trainIdx, testIdx, err := SplitIndices(variants, testSize, seed)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	docsTrain, err = SubsetDocuments(docs, trainIdx)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	docsTest, err = SubsetDocuments(docs, testIdx)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	varsTrain, err = SubsetVariants(variants, trainIdx)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	varsTest, err = SubsetVariants(variants, testIdx)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	return docsTrain, docsTest, varsTrain, varsTest, nil
}
