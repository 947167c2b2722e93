package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeStratified(nPerClass map[int]int) ([]Document, []Variant) {
	var docs []Document
	var variants []Variant
	id := 0
	for class := 1; class <= 9; class++ {
		for i := 0; i < nPerClass[class]; i++ {
			docs = append(docs, Document{ID: id, Text: "text"})
			variants = append(variants, Variant{ID: id, Class: class})
			id++
		}
	}
	return docs, variants
}

func TestSplitIndicesStratified(t *testing.T) {
	docs, variants := makeStratified(map[int]int{1: 50, 2: 30, 7: 20})
	require.Len(t, docs, 100)

	trainIdx, testIdx, err := SplitIndices(variants, 0.2, DefaultSeed)
	require.NoError(t, err)
	assert.Len(t, testIdx, 20)
	assert.Len(t, trainIdx, 80)

	// Every row lands in exactly one side.
	seen := make(map[int]int)
	for _, i := range trainIdx {
		seen[i]++
	}
	for _, i := range testIdx {
		seen[i]++
	}
	require.Len(t, seen, 100)
	for i, n := range seen {
		assert.Equal(t, 1, n, "row %d assigned %d times", i, n)
	}

	// Test set keeps the class proportions.
	perClass := make(map[int]int)
	for _, i := range testIdx {
		perClass[variants[i].Class]++
	}
	assert.Equal(t, 10, perClass[1])
	assert.Equal(t, 6, perClass[2])
	assert.Equal(t, 4, perClass[7])
}

func TestSplitIndicesDeterministic(t *testing.T) {
	_, variants := makeStratified(map[int]int{1: 40, 2: 40})

	train1, test1, err := SplitIndices(variants, 0.2, 42)
	require.NoError(t, err)
	train2, test2, err := SplitIndices(variants, 0.2, 42)
	require.NoError(t, err)

	assert.Equal(t, train1, train2)
	assert.Equal(t, test1, test2)

	_, test3, err := SplitIndices(variants, 0.2, 7)
	require.NoError(t, err)
	assert.NotEqual(t, test1, test3, "different seeds should select different rows")
}

func TestSplitIndicesValidation(t *testing.T) {
	_, variants := makeStratified(map[int]int{1: 10})

	_, _, err := SplitIndices(variants, 0.0, 42)
	assert.Error(t, err)
	_, _, err = SplitIndices(variants, 1.0, 42)
	assert.Error(t, err)
	_, _, err = SplitIndices(nil, 0.2, 42)
	assert.Error(t, err)
}

func TestTrainTestSplit(t *testing.T) {
	docs, variants := makeStratified(map[int]int{3: 20, 4: 20})

	docsTrain, docsTest, varsTrain, varsTest, err := TrainTestSplit(docs, variants, 0.2, DefaultSeed)
	require.NoError(t, err)
	assert.Len(t, docsTest, 8)
	assert.Len(t, docsTrain, 32)
	require.Len(t, varsTest, len(docsTest))
	require.Len(t, varsTrain, len(docsTrain))

	// Rows stay aligned between the two tables.
	for i := range docsTest {
		assert.Equal(t, docsTest[i].ID, varsTest[i].ID)
	}
}

func TestTrainTestSplitLengthMismatch(t *testing.T) {
	docs, variants := makeStratified(map[int]int{1: 10})
	_, _, _, _, err := TrainTestSplit(docs[:5], variants, 0.2, DefaultSeed)
	assert.Error(t, err)
}
