package dataset

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/varitext/varitext/pkg/errors"
)

// LoadIndex reads a plain index file listing row positions, one per line.
// Lines may carry extra comma-separated columns; only the first is used.
func LoadIndex(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening index file %s", path)
	}
	defer f.Close()

	var indices []int
	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		raw := strings.TrimSpace(sc.Text())
		if raw == "" {
			continue
		}
		first, _, _ := strings.Cut(raw, ",")
		idx, err := strconv.Atoi(strings.TrimSpace(first))
		if err != nil {
			return nil, errors.Wrapf(err, "index file %s line %d: bad row position %q", path, line, first)
		}
		indices = append(indices, idx)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "scanning index file %s", path)
	}
	if len(indices) == 0 {
		return nil, errors.Wrapf(errors.ErrEmptyData, "index file %s", path)
	}
	return indices, nil
}

// SaveIndex writes row positions to a plain index file, one per line.
func SaveIndex(path string, indices []int) error {
	var sb strings.Builder
	for _, idx := range indices {
		sb.WriteString(strconv.Itoa(idx))
		sb.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return errors.Wrapf(err, "writing index file %s", path)
	}
	return nil
}

// SubsetVariants selects variants rows by position.
func SubsetVariants(variants []Variant, indices []int) ([]Variant, error) {
	out := make([]Variant, len(indices))
	for i, idx := range indices {
		if idx < 0 || idx >= len(variants) {
			return nil, errors.NewValueError("SubsetVariants",
				"row position "+strconv.Itoa(idx)+" out of range for "+strconv.Itoa(len(variants))+" rows")
		}
		out[i] = variants[idx]
	}
	return out, nil
}

// SubsetDocuments selects document rows by position.
func SubsetDocuments(docs []Document, indices []int) ([]Document, error) {
	out := make([]Document, len(indices))
	for i, idx := range indices {
		if idx < 0 || idx >= len(docs) {
			return nil, errors.NewValueError("SubsetDocuments",
				"row position "+strconv.Itoa(idx)+" out of range for "+strconv.Itoa(len(docs))+" rows")
		}
		out[i] = docs[idx]
	}
	return out, nil
}

// LoadSubset loads both tables and selects the rows listed in the index
// file. The training and test halves of a precomputed split are loaded by
// pointing indexPath at train_index or test_index respectively. The test
// half is meant for the final score report, not for model selection.
func LoadSubset(variantsPath, textPath, indexPath string) ([]Document, []Variant, error) {
	indices, err := LoadIndex(indexPath)
	if err != nil {
		return nil, nil, err
	}
	variants, err := LoadVariants(variantsPath)
	if err != nil {
		return nil, nil, err
	}
	docs, err := LoadText(textPath)
	if err != nil {
		return nil, nil, err
	}

	subVariants, err := SubsetVariants(variants, indices)
	if err != nil {
		return nil, nil, err
	}
	subDocs, err := SubsetDocuments(docs, indices)
	if err != nil {
		return nil, nil, err
	}
	return subDocs, subVariants, nil
}
