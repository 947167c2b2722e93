package dataset

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/varitext/varitext/pkg/errors"
)

// Clinical text rows run to megabytes; the scanner needs room.
const maxTextLine = 64 * 1024 * 1024

// LoadVariants reads a comma-separated variants file. The header must name
// an ID and a Class column; Gene and Variation are read when present.
func LoadVariants(path string) ([]Variant, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening variants file %s", path)
	}
	defer f.Close()

	return ReadVariants(f, path)
}

// ReadVariants parses variants rows from r. name is used in error messages.
func ReadVariants(r io.Reader, name string) ([]Variant, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		return nil, errors.Wrapf(err, "reading variants header from %s", name)
	}
	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.TrimSpace(h)] = i
	}
	idCol, ok := col["ID"]
	if !ok {
		return nil, errors.Newf("variants file %s: missing ID column", name)
	}
	classCol, ok := col["Class"]
	if !ok {
		return nil, errors.Newf("variants file %s: missing Class column", name)
	}
	geneCol, hasGene := col["Gene"]
	variationCol, hasVariation := col["Variation"]

	var variants []Variant
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "reading variants file %s line %d", name, line)
		}

		id, err := strconv.Atoi(strings.TrimSpace(rec[idCol]))
		if err != nil {
			return nil, errors.Wrapf(err, "variants file %s line %d: bad ID %q", name, line, rec[idCol])
		}
		class, err := strconv.Atoi(strings.TrimSpace(rec[classCol]))
		if err != nil {
			return nil, errors.Wrapf(err, "variants file %s line %d: bad Class %q", name, line, rec[classCol])
		}

		v := Variant{ID: id, Class: class}
		if hasGene {
			v.Gene = rec[geneCol]
		}
		if hasVariation {
			v.Variation = rec[variationCol]
		}
		variants = append(variants, v)
	}
	if len(variants) == 0 {
		return nil, errors.Wrapf(errors.ErrEmptyData, "variants file %s", name)
	}
	return variants, nil
}

// LoadText reads a double-pipe-delimited text file of the form "ID||Text".
// The first line is a header and is skipped. Only the first "||" separates
// the fields, so a literal "||" inside the text body survives.
func LoadText(path string) ([]Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening text file %s", path)
	}
	defer f.Close()

	return ReadText(f, path)
}

// ReadText parses text rows from r. name is used in error messages.
func ReadText(r io.Reader, name string) ([]Document, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 1024*1024), maxTextLine)

	var docs []Document
	line := 0
	for sc.Scan() {
		line++
		if line == 1 {
			continue // header
		}
		raw := sc.Text()
		if strings.TrimSpace(raw) == "" {
			continue
		}
		idField, text, found := strings.Cut(raw, "||")
		if !found {
			return nil, errors.Newf("text file %s line %d: missing \"||\" separator", name, line)
		}
		id, err := strconv.Atoi(strings.TrimSpace(idField))
		if err != nil {
			return nil, errors.Wrapf(err, "text file %s line %d: bad ID %q", name, line, idField)
		}
		docs = append(docs, Document{ID: id, Text: text})
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "scanning text file %s", name)
	}
	if len(docs) == 0 {
		return nil, errors.Wrapf(errors.ErrEmptyData, "text file %s", name)
	}
	return docs, nil
}

// LoadFullTable loads both files and inner-joins them on ID, the way the
// full experiment table is assembled.
func LoadFullTable(variantsPath, textPath string) ([]Record, error) {
	variants, err := LoadVariants(variantsPath)
	if err != nil {
		return nil, err
	}
	docs, err := LoadText(textPath)
	if err != nil {
		return nil, err
	}
	return Join(variants, docs), nil
}
