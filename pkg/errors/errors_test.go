package errors

import (
	"strings"
	"testing"
)

func TestNotFittedError(t *testing.T) {
	err := NewNotFittedError("CountVectorizer", "Transform")

	var nf *NotFittedError
	if !As(err, &nf) {
		t.Fatalf("As() failed to unwrap NotFittedError from %v", err)
	}
	if nf.EstimatorName != "CountVectorizer" || nf.Method != "Transform" {
		t.Errorf("unexpected fields: %+v", nf)
	}
	if !strings.Contains(err.Error(), "not fitted") {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

func TestDimensionError(t *testing.T) {
	err := NewDimensionError("LogLoss", 9, 3, 1)

	var de *DimensionError
	if !As(err, &de) {
		t.Fatalf("As() failed to unwrap DimensionError from %v", err)
	}
	if de.Expected != 9 || de.Got != 3 || de.Axis != 1 {
		t.Errorf("unexpected fields: %+v", de)
	}
	if !strings.Contains(err.Error(), "columns") {
		t.Errorf("axis 1 should report columns, got: %s", err.Error())
	}

	rowErr := NewDimensionError("LogLoss", 4, 2, 0)
	if !strings.Contains(rowErr.Error(), "rows") {
		t.Errorf("axis 0 should report rows, got: %s", rowErr.Error())
	}
}

func TestWrapKeepsChain(t *testing.T) {
	base := NewValueError("roc_curve", "only one class present")
	wrapped := Wrapf(base, "scoring fold %d", 2)

	var ve *ValueError
	if !As(wrapped, &ve) {
		t.Fatalf("wrapped error lost the ValueError: %v", wrapped)
	}
	if !strings.Contains(wrapped.Error(), "fold 2") {
		t.Errorf("wrap message missing: %s", wrapped.Error())
	}
}

func TestSentinels(t *testing.T) {
	err := Wrap(ErrEmptyData, "loading variants")
	if !Is(err, ErrEmptyData) {
		t.Errorf("Is() failed on wrapped sentinel")
	}
}
