package log

// Standard attribute keys for experiment logging. Keys use a dotted
// hierarchy so that filtering on a prefix selects a whole category.
const (
	// OperationKey names the operation being performed, e.g. "join",
	// "vectorize", "cross_validate", "submission".
	OperationKey = "op"

	// FileKey is the path of the file being read or written.
	FileKey = "file"

	// RowsKey is the number of table rows involved in an operation.
	RowsKey = "data.rows"

	// FeaturesKey is the number of feature columns in a matrix.
	FeaturesKey = "data.features"

	// ClassKey is the tumor class label an operation is restricted to.
	ClassKey = "data.class"

	// FoldsKey is the number of cross-validation folds.
	FoldsKey = "cv.folds"

	// ScoreKey is a metric value such as a fold log-loss.
	ScoreKey = "cv.score"
)
