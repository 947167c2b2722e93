package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoinIsInner(t *testing.T) {
	variants := []Variant{
		{ID: 0, Class: 1},
		{ID: 1, Class: 2},
		{ID: 2, Class: 2}, // no text row
	}
	docs := []Document{
		{ID: 0, Text: "alpha"},
		{ID: 1, Text: "beta"},
		{ID: 9, Text: "orphan"}, // no variant row
	}

	records := Join(variants, docs)
	require.Len(t, records, 2)
	assert.Equal(t, "alpha", records[0].Text)
	assert.Equal(t, 2, records[1].Class)
	for _, r := range records {
		assert.NotEqual(t, 2, r.ID)
		assert.NotEqual(t, 9, r.ID)
	}
}

func TestJoinColumns(t *testing.T) {
	records := Join(
		[]Variant{{ID: 4, Gene: "CBL", Variation: "Q249E", Class: 7}},
		[]Document{{ID: 4, Text: "some text"}},
	)
	require.Len(t, records, 1)
	assert.Equal(t, Record{ID: 4, Gene: "CBL", Variation: "Q249E", Class: 7, Text: "some text"}, records[0])

	assert.Equal(t, []string{"some text"}, Texts(records))
	assert.Equal(t, []int{7}, Labels(records))
}

func TestUniqueClassText(t *testing.T) {
	variants := []Variant{
		{ID: 0, Class: 1},
		{ID: 1, Class: 1},
		{ID: 2, Class: 1},
		{ID: 3, Class: 2},
	}
	docs := []Document{
		{ID: 0, Text: "shared abstract"},
		{ID: 1, Text: "shared abstract"}, // duplicate, removed
		{ID: 2, Text: "distinct abstract"},
		{ID: 3, Text: "other class"},
	}

	got, err := UniqueClassText(variants, docs, 1)
	require.NoError(t, err)
	assert.Equal(t, "shared abstract\ndistinct abstract", got)
}

func TestUniqueClassTextExcludesOtherClasses(t *testing.T) {
	variants := []Variant{{ID: 0, Class: 3}, {ID: 1, Class: 5}}
	docs := []Document{{ID: 0, Text: "three"}, {ID: 1, Text: "five"}}

	got, err := UniqueClassText(variants, docs, 5)
	require.NoError(t, err)
	assert.Equal(t, "five", got)
}

func TestUniqueClassTextSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "class1.txt")
	variants := []Variant{{ID: 0, Class: 1}}
	docs := []Document{{ID: 0, Text: "saved text"}}

	got, err := UniqueClassText(variants, docs, 1, WithSaveTo(path), WithReport())
	require.NoError(t, err)
	assert.Equal(t, "saved text", got)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "saved text", string(content))
}
