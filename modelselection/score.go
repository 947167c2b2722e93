package modelselection

import (
	"log/slog"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/varitext/varitext/core/model"
	"github.com/varitext/varitext/metrics"
	"github.com/varitext/varitext/pkg/errors"
	"github.com/varitext/varitext/pkg/log"
	"github.com/varitext/varitext/preprocessing"
)

// Result holds the per-fold scores of a cross-validation run.
type Result struct {
	Scores []float64
}

// Mean returns the mean score over the folds.
func (r *Result) Mean() float64 {
	if len(r.Scores) == 0 {
		return 0
	}
	var sum float64
	for _, s := range r.Scores {
		sum += s
	}
	return sum / float64(len(r.Scores))
}

// Std returns the sample standard deviation of the fold scores.
func (r *Result) Std() float64 {
	if len(r.Scores) <= 1 {
		return 0
	}
	mean := r.Mean()
	var sumSq float64
	for _, s := range r.Scores {
		diff := s - mean
		sumSq += diff * diff
	}
	return math.Sqrt(sumSq / float64(len(r.Scores)-1))
}

// CrossValidate fits the classifier on each fold's training rows and
// scores its predicted probabilities on the fold's test rows with
// multiclass log-loss. The label binarizer is fitted on the full label
// set before splitting, so a fold whose test rows miss a class still
// produces full-width one-hot rows.
func CrossValidate(clf model.Classifier, X, y mat.Matrix, splitter Splitter) (*Result, error) {
	if clf == nil {
		return nil, errors.NewValueError("CrossValidate", "nil classifier")
	}
	nSamples, _ := X.Dims()
	yRows, yCols := y.Dims()
	if yRows != nSamples {
		return nil, errors.NewDimensionError("CrossValidate", nSamples, yRows, 0)
	}
	if yCols != 1 {
		return nil, errors.NewValueError("CrossValidate", "y must be a column vector")
	}

	labels := make([]int, nSamples)
	for i := 0; i < nSamples; i++ {
		labels[i] = int(y.At(i, 0))
	}
	binarizer := preprocessing.NewLabelBinarizer()
	if err := binarizer.Fit(labels); err != nil {
		return nil, errors.Wrap(err, "binarizing labels")
	}

	folds, err := splitter.Split(X, y)
	if err != nil {
		return nil, err
	}

	result := &Result{Scores: make([]float64, len(folds))}
	for k, fold := range folds {
		trainX, trainY := subset(X, y, fold.TrainIndices)
		testX, _ := subset(X, y, fold.TestIndices)

		if err := clf.Fit(trainX, trainY); err != nil {
			return nil, errors.Wrapf(err, "fitting fold %d", k)
		}
		probas, err := clf.PredictProba(testX)
		if err != nil {
			return nil, errors.Wrapf(err, "predicting fold %d", k)
		}

		testLabels := make([]int, len(fold.TestIndices))
		for i, idx := range fold.TestIndices {
			testLabels[i] = labels[idx]
		}
		oneHot, err := binarizer.Transform(testLabels)
		if err != nil {
			return nil, errors.Wrapf(err, "binarizing fold %d labels", k)
		}

		score, err := metrics.LogLoss(oneHot, probas)
		if err != nil {
			return nil, errors.Wrapf(err, "scoring fold %d", k)
		}
		result.Scores[k] = score

		slog.Debug("fold scored",
			log.OperationKey, "cross_validate",
			log.FoldsKey, len(folds),
			"fold", k,
			log.ScoreKey, score,
		)
	}
	return result, nil
}

// KFoldScore cross-validates the classifier with contiguous k-fold splits
// and returns the mean log-loss over the folds.
func KFoldScore(clf model.Classifier, X, y mat.Matrix, splits int) (float64, error) {
	result, err := CrossValidate(clf, X, y, NewKFold(splits, false, 0))
	if err != nil {
		return 0, err
	}
	return result.Mean(), nil
}

// subset extracts the given rows of X and y as dense matrices.
func subset(X, y mat.Matrix, indices []int) (mat.Matrix, mat.Matrix) {
	_, xCols := X.Dims()
	_, yCols := y.Dims()

	xSub := mat.NewDense(len(indices), xCols, nil)
	ySub := mat.NewDense(len(indices), yCols, nil)
	for i, idx := range indices {
		for j := 0; j < xCols; j++ {
			xSub.Set(i, j, X.At(idx, j))
		}
		for j := 0; j < yCols; j++ {
			ySub.Set(i, j, y.At(idx, j))
		}
	}
	return xSub, ySub
}
