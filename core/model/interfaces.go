package model

import (
	"gonum.org/v1/gonum/mat"
)

// Classifier is the contract cross-validation and the experiment driver
// program against. y is an n×1 matrix of integer class labels.
type Classifier interface {
	// Fit trains the classifier from scratch on X and y. A second call
	// discards the previous state.
	Fit(X, y mat.Matrix) error

	// Predict returns an n×1 matrix of predicted class labels.
	Predict(X mat.Matrix) (mat.Matrix, error)

	// PredictProba returns an n×k matrix of class probabilities, columns
	// ordered like Classes().
	PredictProba(X mat.Matrix) (mat.Matrix, error)

	// Classes returns the unique class labels seen during fitting, in
	// ascending order.
	Classes() []int
}

// Transformer converts documents into a numeric feature matrix.
type Transformer interface {
	Transform(docs []string) (*mat.Dense, error)
}
