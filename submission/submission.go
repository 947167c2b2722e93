// Package submission writes predicted class probabilities as a
// competition-style CSV file.
package submission

import (
	"encoding/csv"
	"io"
	"log/slog"
	"os"
	"strconv"

	"gonum.org/v1/gonum/mat"

	"github.com/varitext/varitext/pkg/errors"
	"github.com/varitext/varitext/pkg/log"
)

// Write streams the probability matrix to w as CSV. The header is
// ID,class1,...,classN where N is the matrix width, and each data row
// carries its ID followed by one probability per class. ids must have
// one entry per matrix row; when nil, rows are numbered from 1.
func Write(w io.Writer, probs mat.Matrix, ids []int) error {
	rows, cols := probs.Dims()
	if cols == 0 {
		return errors.NewValueError("submission.Write", "probability matrix has no columns")
	}
	if ids != nil && len(ids) != rows {
		return errors.NewDimensionError("submission.Write", rows, len(ids), 0)
	}

	cw := csv.NewWriter(w)

	header := make([]string, cols+1)
	header[0] = "ID"
	for j := 0; j < cols; j++ {
		header[j+1] = "class" + strconv.Itoa(j+1)
	}
	if err := cw.Write(header); err != nil {
		return errors.Wrap(err, "writing submission header")
	}

	record := make([]string, cols+1)
	for i := 0; i < rows; i++ {
		id := i + 1
		if ids != nil {
			id = ids[i]
		}
		record[0] = strconv.Itoa(id)
		for j := 0; j < cols; j++ {
			record[j+1] = strconv.FormatFloat(probs.At(i, j), 'g', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return errors.Wrapf(err, "writing submission row %d", i)
		}
	}

	cw.Flush()
	return errors.Wrap(cw.Error(), "flushing submission")
}

// WriteFile writes the submission to the named file, creating or
// truncating it.
func WriteFile(path string, probs mat.Matrix, ids []int) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	defer f.Close()

	if err := Write(f, probs, ids); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "closing %s", path)
	}

	rows, _ := probs.Dims()
	slog.Info("submission written",
		log.OperationKey, "submission",
		log.FileKey, path,
		log.RowsKey, rows,
	)
	return nil
}
