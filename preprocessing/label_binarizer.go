package preprocessing

import (
	"sort"
	"strconv"

	"gonum.org/v1/gonum/mat"

	"github.com/varitext/varitext/core/model"
	"github.com/varitext/varitext/pkg/errors"
)

// LabelBinarizer maps integer class labels to one-hot rows. Columns are
// ordered by ascending label. Unlike scikit-learn it always produces one
// column per class, including the two-class case.
type LabelBinarizer struct {
	state *model.StateManager

	classes []int
	index   map[int]int
}

// NewLabelBinarizer creates an unfitted LabelBinarizer.
func NewLabelBinarizer() *LabelBinarizer {
	return &LabelBinarizer{
		state: model.NewStateManager(),
	}
}

// Fit records the distinct labels.
func (lb *LabelBinarizer) Fit(labels []int) error {
	if len(labels) == 0 {
		return errors.Wrap(errors.ErrEmptyData, "LabelBinarizer.Fit")
	}

	seen := make(map[int]struct{})
	for _, y := range labels {
		seen[y] = struct{}{}
	}
	if len(seen) < 2 {
		return errors.NewValueError("LabelBinarizer.Fit", "need at least 2 distinct classes")
	}

	lb.classes = make([]int, 0, len(seen))
	for y := range seen {
		lb.classes = append(lb.classes, y)
	}
	sort.Ints(lb.classes)

	lb.index = make(map[int]int, len(lb.classes))
	for i, y := range lb.classes {
		lb.index[y] = i
	}
	lb.state.SetFitted()
	return nil
}

// Transform produces the n×k one-hot matrix for the labels. A label not
// seen at Fit time is an error.
func (lb *LabelBinarizer) Transform(labels []int) (*mat.Dense, error) {
	if !lb.state.IsFitted() {
		return nil, errors.NewNotFittedError("LabelBinarizer", "Transform")
	}
	if len(labels) == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "LabelBinarizer.Transform")
	}

	Y := mat.NewDense(len(labels), len(lb.classes), nil)
	for i, y := range labels {
		j, ok := lb.index[y]
		if !ok {
			return nil, errors.NewValueError("LabelBinarizer.Transform", "unseen label "+strconv.Itoa(y))
		}
		Y.Set(i, j, 1)
	}
	return Y, nil
}

// FitTransform fits on labels and transforms them.
func (lb *LabelBinarizer) FitTransform(labels []int) (*mat.Dense, error) {
	if err := lb.Fit(labels); err != nil {
		return nil, err
	}
	return lb.Transform(labels)
}

// InverseTransform maps one-hot (or probability) rows back to labels by
// the largest entry per row.
func (lb *LabelBinarizer) InverseTransform(Y mat.Matrix) ([]int, error) {
	if !lb.state.IsFitted() {
		return nil, errors.NewNotFittedError("LabelBinarizer", "InverseTransform")
	}
	r, c := Y.Dims()
	if c != len(lb.classes) {
		return nil, errors.NewDimensionError("LabelBinarizer.InverseTransform", len(lb.classes), c, 1)
	}

	labels := make([]int, r)
	for i := 0; i < r; i++ {
		best := 0
		for j := 1; j < c; j++ {
			if Y.At(i, j) > Y.At(i, best) {
				best = j
			}
		}
		labels[i] = lb.classes[best]
	}
	return labels, nil
}

// Classes returns the labels in column order.
func (lb *LabelBinarizer) Classes() []int {
	out := make([]int, len(lb.classes))
	copy(out, lb.classes)
	return out
}
