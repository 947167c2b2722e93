// Package metrics implements the classification metrics of the experiment:
// multiclass log-loss, accuracy and ROC/AUC with micro and macro averaging.
package metrics

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/varitext/varitext/pkg/errors"
)

// probEps clips predicted probabilities away from 0 and 1 so the loss
// stays finite, the same epsilon scikit-learn uses.
const probEps = 1e-15

// LogLoss computes the multiclass cross-entropy loss. yTrue is an n×k
// one-hot matrix, yProb an n×k matrix of predicted class probabilities.
// Probabilities are clipped to [probEps, 1-probEps] and each row is
// renormalized before the loss is taken, so the result is finite and
// non-negative for any valid input.
func LogLoss(yTrue, yProb mat.Matrix) (float64, error) {
	if yTrue == nil || yProb == nil {
		return 0, errors.NewValueError("LogLoss", "nil input")
	}
	r, c := yTrue.Dims()
	pr, pc := yProb.Dims()
	if r == 0 || c == 0 {
		return 0, errors.Wrap(errors.ErrEmptyData, "LogLoss")
	}
	if pr != r {
		return 0, errors.NewDimensionError("LogLoss", r, pr, 0)
	}
	if pc != c {
		return 0, errors.NewDimensionError("LogLoss", c, pc, 1)
	}
	if c < 2 {
		return 0, errors.NewValueError("LogLoss", "need at least 2 classes")
	}

	var total float64
	for i := 0; i < r; i++ {
		trueCol := -1
		for j := 0; j < c; j++ {
			switch yTrue.At(i, j) {
			case 0:
			case 1:
				if trueCol >= 0 {
					return 0, errors.NewValueError("LogLoss", "yTrue row is not one-hot")
				}
				trueCol = j
			default:
				return 0, errors.NewValueError("LogLoss", "yTrue entries must be 0 or 1")
			}
		}
		if trueCol < 0 {
			return 0, errors.NewValueError("LogLoss", "yTrue row is not one-hot")
		}

		var rowSum float64
		for j := 0; j < c; j++ {
			rowSum += clipProb(yProb.At(i, j))
		}
		p := clipProb(yProb.At(i, trueCol)) / rowSum
		total -= math.Log(p)
	}
	return total / float64(r), nil
}

func clipProb(p float64) float64 {
	if p < probEps {
		return probEps
	}
	if p > 1-probEps {
		return 1 - probEps
	}
	return p
}

// Accuracy returns the fraction of matching labels in yTrue and yPred.
func Accuracy(yTrue, yPred *mat.VecDense) (float64, error) {
	if yTrue == nil || yPred == nil {
		return 0, errors.NewValueError("Accuracy", "nil input")
	}
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.Wrap(errors.ErrEmptyData, "Accuracy")
	}
	if yPred.Len() != n {
		return 0, errors.NewDimensionError("Accuracy", n, yPred.Len(), 0)
	}

	correct := 0
	for i := 0; i < n; i++ {
		if yTrue.AtVec(i) == yPred.AtVec(i) {
			correct++
		}
	}
	return float64(correct) / float64(n), nil
}
