package metrics

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/varitext/varitext/pkg/errors"
)

// ROC is one receiver-operating-characteristic curve. FPR and TPR are
// non-decreasing and start at (0, 0); Thresholds holds the decision
// threshold that produced each point, beginning at +Inf.
type ROC struct {
	FPR        []float64
	TPR        []float64
	Thresholds []float64
	AUC        float64
}

// ROCCurve computes the binary ROC curve for 0/1 labels and real-valued
// scores. Points are emitted at every distinct score boundary, mirroring
// scikit-learn's roc_curve.
func ROCCurve(yTrue, yScore []float64) (*ROC, error) {
	n := len(yTrue)
	if n == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "ROCCurve")
	}
	if len(yScore) != n {
		return nil, errors.NewDimensionError("ROCCurve", n, len(yScore), 0)
	}

	var positives, negatives float64
	for _, y := range yTrue {
		switch y {
		case 0:
			negatives++
		case 1:
			positives++
		default:
			return nil, errors.NewValueError("ROCCurve", "labels must be 0 or 1")
		}
	}
	if positives == 0 || negatives == 0 {
		return nil, errors.NewValueError("ROCCurve", "only one class present")
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return yScore[order[a]] > yScore[order[b]]
	})

	fpr := []float64{0}
	tpr := []float64{0}
	thresholds := []float64{math.Inf(1)}

	var tps, fps float64
	for k, idx := range order {
		if yTrue[idx] == 1 {
			tps++
		} else {
			fps++
		}
		// Emit a point only where the score changes, so tied scores
		// collapse onto one operating point.
		if k+1 < n && yScore[order[k+1]] == yScore[idx] {
			continue
		}
		fpr = append(fpr, fps/negatives)
		tpr = append(tpr, tps/positives)
		thresholds = append(thresholds, yScore[idx])
	}

	auc, err := AUC(fpr, tpr)
	if err != nil {
		return nil, err
	}
	return &ROC{FPR: fpr, TPR: tpr, Thresholds: thresholds, AUC: auc}, nil
}

// AUC computes the area under a curve with the trapezoidal rule. x must be
// monotonic; a decreasing x is handled by negating the signed area.
func AUC(x, y []float64) (float64, error) {
	if len(x) < 2 {
		return 0, errors.NewValueError("AUC", "need at least 2 points")
	}
	if len(y) != len(x) {
		return 0, errors.NewDimensionError("AUC", len(x), len(y), 0)
	}

	increasing, decreasing := true, true
	for i := 1; i < len(x); i++ {
		if x[i] < x[i-1] {
			increasing = false
		}
		if x[i] > x[i-1] {
			decreasing = false
		}
	}
	if !increasing && !decreasing {
		return 0, errors.NewValueError("AUC", "x is neither increasing nor decreasing")
	}

	var area float64
	for i := 1; i < len(x); i++ {
		area += (x[i] - x[i-1]) * (y[i] + y[i-1]) / 2
	}
	if decreasing && !increasing {
		area = -area
	}
	return area, nil
}

// PerClassROC computes one ROC curve per class from an n×k one-hot label
// matrix and an n×k score matrix, treating each column as a binary
// problem.
func PerClassROC(yTrue, yScore mat.Matrix) ([]*ROC, error) {
	r, c, err := checkScorePair(yTrue, yScore, "PerClassROC")
	if err != nil {
		return nil, err
	}

	curves := make([]*ROC, c)
	labels := make([]float64, r)
	scores := make([]float64, r)
	for j := 0; j < c; j++ {
		for i := 0; i < r; i++ {
			labels[i] = yTrue.At(i, j)
			scores[i] = yScore.At(i, j)
		}
		curve, err := ROCCurve(labels, scores)
		if err != nil {
			return nil, errors.Wrapf(err, "class column %d", j)
		}
		curves[j] = curve
	}
	return curves, nil
}

// MicroAverageROC ravels the label and score matrices row-major and
// computes a single binary curve over all (sample, class) decisions.
func MicroAverageROC(yTrue, yScore mat.Matrix) (*ROC, error) {
	r, c, err := checkScorePair(yTrue, yScore, "MicroAverageROC")
	if err != nil {
		return nil, err
	}

	labels := make([]float64, 0, r*c)
	scores := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			labels = append(labels, yTrue.At(i, j))
			scores = append(scores, yScore.At(i, j))
		}
	}
	return ROCCurve(labels, scores)
}

// MacroAverageROC interpolates every curve onto the union of their false
// positive rate grids and averages the true positive rates.
func MacroAverageROC(curves []*ROC) (*ROC, error) {
	if len(curves) == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "MacroAverageROC")
	}

	gridSet := make(map[float64]struct{})
	for _, curve := range curves {
		for _, f := range curve.FPR {
			gridSet[f] = struct{}{}
		}
	}
	grid := make([]float64, 0, len(gridSet))
	for f := range gridSet {
		grid = append(grid, f)
	}
	sort.Float64s(grid)

	meanTPR := make([]float64, len(grid))
	for _, curve := range curves {
		for i, f := range grid {
			meanTPR[i] += interp(f, curve.FPR, curve.TPR)
		}
	}
	for i := range meanTPR {
		meanTPR[i] /= float64(len(curves))
	}

	auc, err := AUC(grid, meanTPR)
	if err != nil {
		return nil, err
	}
	return &ROC{FPR: grid, TPR: meanTPR, AUC: auc}, nil
}

// interp linearly interpolates fp at x over the non-decreasing grid xp.
// At a vertical jump (repeated xp values) the upper value is taken, and
// queries outside the grid clamp to the end values.
func interp(x float64, xp, fp []float64) float64 {
	if x <= xp[0] {
		return fp[0]
	}
	last := len(xp) - 1
	if x >= xp[last] {
		return fp[last]
	}

	// Rightmost index with xp[j] <= x.
	j := sort.Search(len(xp), func(i int) bool { return xp[i] > x }) - 1
	if xp[j] == x {
		return fp[j]
	}
	t := (x - xp[j]) / (xp[j+1] - xp[j])
	return fp[j] + t*(fp[j+1]-fp[j])
}

func checkScorePair(yTrue, yScore mat.Matrix, op string) (r, c int, err error) {
	if yTrue == nil || yScore == nil {
		return 0, 0, errors.NewValueError(op, "nil input")
	}
	r, c = yTrue.Dims()
	sr, sc := yScore.Dims()
	if r == 0 || c == 0 {
		return 0, 0, errors.Wrap(errors.ErrEmptyData, op)
	}
	if sr != r {
		return 0, 0, errors.NewDimensionError(op, r, sr, 0)
	}
	if sc != c {
		return 0, 0, errors.NewDimensionError(op, c, sc, 1)
	}
	return r, c, nil
}
