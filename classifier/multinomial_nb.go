// Package classifier provides the bundled estimator of the experiment, a
// multinomial naive Bayes classifier suited to term-count feature vectors.
package classifier

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/varitext/varitext/core/model"
	"github.com/varitext/varitext/core/parallel"
	"github.com/varitext/varitext/metrics"
	"github.com/varitext/varitext/pkg/errors"
)

// MultinomialNB is a multinomial naive Bayes classifier with Lidstone
// smoothing. Labels are integers; feature values must be non-negative
// counts or count-like weights.
type MultinomialNB struct {
	state *model.StateManager

	alpha float64

	classes        []int
	classLogPrior  []float64
	featureLogProb [][]float64 // nClasses x nFeatures
	nFeatures      int
}

// Option is a functional option for MultinomialNB.
type Option func(*MultinomialNB)

// WithAlpha sets the additive smoothing parameter (default 1.0).
func WithAlpha(alpha float64) Option {
	return func(nb *MultinomialNB) {
		nb.alpha = alpha
	}
}

// NewMultinomialNB creates an unfitted MultinomialNB.
func NewMultinomialNB(opts ...Option) *MultinomialNB {
	nb := &MultinomialNB{
		state: model.NewStateManager(),
		alpha: 1.0,
	}
	for _, opt := range opts {
		opt(nb)
	}
	return nb
}

// Fit trains the classifier on X (n×d counts) and y (n×1 integer labels).
// A second call discards the previous state.
func (nb *MultinomialNB) Fit(X, y mat.Matrix) error {
	if nb.alpha < 0 {
		return errors.NewValidationError("alpha", "must be non-negative", nb.alpha)
	}
	nSamples, nFeatures := X.Dims()
	yRows, yCols := y.Dims()
	if nSamples == 0 || nFeatures == 0 {
		return errors.Wrap(errors.ErrEmptyData, "MultinomialNB.Fit")
	}
	if yRows != nSamples {
		return errors.NewDimensionError("MultinomialNB.Fit", nSamples, yRows, 0)
	}
	if yCols != 1 {
		return errors.NewValueError("MultinomialNB.Fit", "y must be a column vector")
	}

	classSet := make(map[int]struct{})
	for i := 0; i < nSamples; i++ {
		classSet[int(y.At(i, 0))] = struct{}{}
	}
	if len(classSet) < 2 {
		return errors.NewValueError("MultinomialNB.Fit", "need at least 2 classes")
	}

	nb.classes = make([]int, 0, len(classSet))
	for c := range classSet {
		nb.classes = append(nb.classes, c)
	}
	sort.Ints(nb.classes)
	classIdx := make(map[int]int, len(nb.classes))
	for i, c := range nb.classes {
		classIdx[c] = i
	}

	nClasses := len(nb.classes)
	classCount := make([]float64, nClasses)
	featureCount := make([][]float64, nClasses)
	for c := range featureCount {
		featureCount[c] = make([]float64, nFeatures)
	}

	for i := 0; i < nSamples; i++ {
		c := classIdx[int(y.At(i, 0))]
		classCount[c]++
		for j := 0; j < nFeatures; j++ {
			v := X.At(i, j)
			if v < 0 {
				return errors.NewValueError("MultinomialNB.Fit", "negative feature count")
			}
			featureCount[c][j] += v
		}
	}

	nb.nFeatures = nFeatures
	nb.classLogPrior = make([]float64, nClasses)
	nb.featureLogProb = make([][]float64, nClasses)
	for c := 0; c < nClasses; c++ {
		nb.classLogPrior[c] = math.Log(classCount[c] / float64(nSamples))

		var total float64
		for j := 0; j < nFeatures; j++ {
			total += featureCount[c][j]
		}
		denom := total + nb.alpha*float64(nFeatures)

		nb.featureLogProb[c] = make([]float64, nFeatures)
		for j := 0; j < nFeatures; j++ {
			nb.featureLogProb[c][j] = math.Log((featureCount[c][j] + nb.alpha) / denom)
		}
	}

	nb.state.SetDimensions(nFeatures, nSamples)
	nb.state.SetFitted()
	return nil
}

// jointLogLikelihood returns the unnormalized class log posteriors for one
// sample row.
func (nb *MultinomialNB) jointLogLikelihood(X mat.Matrix, row int) []float64 {
	jll := make([]float64, len(nb.classes))
	for c := range nb.classes {
		s := nb.classLogPrior[c]
		for j := 0; j < nb.nFeatures; j++ {
			if v := X.At(row, j); v != 0 {
				s += v * nb.featureLogProb[c][j]
			}
		}
		jll[c] = s
	}
	return jll
}

// Predict returns the most probable class label per row.
func (nb *MultinomialNB) Predict(X mat.Matrix) (mat.Matrix, error) {
	if !nb.state.IsFitted() {
		return nil, errors.NewNotFittedError("MultinomialNB", "Predict")
	}
	nSamples, nFeatures := X.Dims()
	if nFeatures != nb.nFeatures {
		return nil, errors.NewDimensionError("MultinomialNB.Predict", nb.nFeatures, nFeatures, 1)
	}

	pred := mat.NewDense(nSamples, 1, nil)
	for i := 0; i < nSamples; i++ {
		jll := nb.jointLogLikelihood(X, i)
		best := 0
		for c := 1; c < len(jll); c++ {
			if jll[c] > jll[best] {
				best = c
			}
		}
		pred.Set(i, 0, float64(nb.classes[best]))
	}
	return pred, nil
}

// PredictProba returns class probabilities per row, columns ordered like
// Classes(). Normalization is done in log space for stability.
func (nb *MultinomialNB) PredictProba(X mat.Matrix) (mat.Matrix, error) {
	if !nb.state.IsFitted() {
		return nil, errors.NewNotFittedError("MultinomialNB", "PredictProba")
	}
	nSamples, nFeatures := X.Dims()
	if nFeatures != nb.nFeatures {
		return nil, errors.NewDimensionError("MultinomialNB.PredictProba", nb.nFeatures, nFeatures, 1)
	}

	probas := mat.NewDense(nSamples, len(nb.classes), nil)
	parallel.MaybeForRows(nSamples, parallel.RowThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			jll := nb.jointLogLikelihood(X, i)

			maxLL := jll[0]
			for _, v := range jll[1:] {
				if v > maxLL {
					maxLL = v
				}
			}
			var sum float64
			for c, v := range jll {
				jll[c] = math.Exp(v - maxLL)
				sum += jll[c]
			}
			for c := range jll {
				probas.Set(i, c, jll[c]/sum)
			}
		}
	})
	return probas, nil
}

// Classes returns the class labels in ascending order.
func (nb *MultinomialNB) Classes() []int {
	out := make([]int, len(nb.classes))
	copy(out, nb.classes)
	return out
}

// Score returns the mean accuracy on the given data and labels.
func (nb *MultinomialNB) Score(X, y mat.Matrix) (float64, error) {
	pred, err := nb.Predict(X)
	if err != nil {
		return 0, err
	}

	n, _ := y.Dims()
	yTrue := mat.NewVecDense(n, nil)
	yPred := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		yTrue.SetVec(i, y.At(i, 0))
		yPred.SetVec(i, pred.At(i, 0))
	}
	return metrics.Accuracy(yTrue, yPred)
}

var _ model.Classifier = (*MultinomialNB)(nil)
