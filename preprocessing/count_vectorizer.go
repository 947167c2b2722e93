// Package preprocessing converts documents and labels into the matrix
// representations the classifiers consume.
package preprocessing

import (
	"regexp"
	"sort"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/varitext/varitext/core/model"
	"github.com/varitext/varitext/core/parallel"
	"github.com/varitext/varitext/pkg/errors"
)

// tokenPattern matches tokens of two or more word characters, the same
// boundary rule scikit-learn's default token_pattern applies.
var tokenPattern = regexp.MustCompile(`\w\w+`)

// CountVectorizer turns documents into term-count vectors over a fixed
// vocabulary. Each row of the transformed matrix is one document, each
// column the count of one vocabulary term. Tokens outside the vocabulary
// are ignored.
type CountVectorizer struct {
	state *model.StateManager

	vocabulary []string
	index      map[string]int
}

// NewCountVectorizer creates a vectorizer with a fixed vocabulary. Terms
// are lowercased; an empty or duplicated vocabulary is rejected. Pass nil
// to learn the vocabulary from a corpus with Fit.
func NewCountVectorizer(vocabulary []string) (*CountVectorizer, error) {
	cv := &CountVectorizer{
		state: model.NewStateManager(),
	}
	if vocabulary == nil {
		return cv, nil
	}
	if len(vocabulary) == 0 {
		return nil, errors.NewValidationError("vocabulary", "must not be empty", vocabulary)
	}

	if err := cv.setVocabulary(vocabulary); err != nil {
		return nil, err
	}
	cv.state.SetFitted()
	return cv, nil
}

func (cv *CountVectorizer) setVocabulary(vocabulary []string) error {
	cv.vocabulary = make([]string, len(vocabulary))
	cv.index = make(map[string]int, len(vocabulary))
	for i, term := range vocabulary {
		term = strings.ToLower(term)
		if _, dup := cv.index[term]; dup {
			return errors.NewValidationError("vocabulary", "duplicate term '"+term+"'", i)
		}
		cv.vocabulary[i] = term
		cv.index[term] = i
	}
	return nil
}

// Fit learns the vocabulary from a corpus: all distinct tokens, sorted.
// Any vocabulary set at construction is replaced.
func (cv *CountVectorizer) Fit(docs []string) error {
	if len(docs) == 0 {
		return errors.Wrap(errors.ErrEmptyData, "CountVectorizer.Fit")
	}

	seen := make(map[string]struct{})
	for _, doc := range docs {
		for _, tok := range tokenize(doc) {
			seen[tok] = struct{}{}
		}
	}
	if len(seen) == 0 {
		return errors.NewValueError("CountVectorizer.Fit", "no tokens in corpus")
	}

	vocab := make([]string, 0, len(seen))
	for term := range seen {
		vocab = append(vocab, term)
	}
	sort.Strings(vocab)

	if err := cv.setVocabulary(vocab); err != nil {
		return err
	}
	cv.state.SetFitted()
	return nil
}

// Transform vectorizes the documents. Row i of the result is the count
// vector of docs[i].
func (cv *CountVectorizer) Transform(docs []string) (*mat.Dense, error) {
	if !cv.state.IsFitted() {
		return nil, errors.NewNotFittedError("CountVectorizer", "Transform")
	}
	if len(docs) == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "CountVectorizer.Transform")
	}

	X := mat.NewDense(len(docs), len(cv.vocabulary), nil)
	parallel.MaybeForRows(len(docs), parallel.RowThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			for _, tok := range tokenize(docs[i]) {
				if j, ok := cv.index[tok]; ok {
					X.Set(i, j, X.At(i, j)+1)
				}
			}
		}
	})
	return X, nil
}

// FitTransform learns the vocabulary from docs and vectorizes them.
func (cv *CountVectorizer) FitTransform(docs []string) (*mat.Dense, error) {
	if err := cv.Fit(docs); err != nil {
		return nil, err
	}
	return cv.Transform(docs)
}

// FeatureNames returns the vocabulary in column order.
func (cv *CountVectorizer) FeatureNames() []string {
	out := make([]string, len(cv.vocabulary))
	copy(out, cv.vocabulary)
	return out
}

func tokenize(doc string) []string {
	return tokenPattern.FindAllString(strings.ToLower(doc), -1)
}

var _ model.Transformer = (*CountVectorizer)(nil)
