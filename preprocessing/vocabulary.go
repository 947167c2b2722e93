package preprocessing

import (
	"bufio"
	"os"
	"strings"

	"github.com/varitext/varitext/pkg/errors"
)

// LoadVocabulary reads a vocabulary file with one token per line. Blank
// lines and surrounding whitespace are ignored.
func LoadVocabulary(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening vocabulary file %s", path)
	}
	defer f.Close()

	var vocab []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		token := strings.TrimSpace(sc.Text())
		if token == "" {
			continue
		}
		vocab = append(vocab, token)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "scanning vocabulary file %s", path)
	}
	if len(vocab) == 0 {
		return nil, errors.Wrapf(errors.ErrEmptyData, "vocabulary file %s", path)
	}
	return vocab, nil
}
