// Package dataset loads the variants and text tables of the experiment and
// provides the row operations the analysis scripts need: the ID-keyed inner
// join, per-class unique text extraction, index-file subsetting and the
// stratified train/test split.
package dataset

// Variant is one row of the variants table: per-sample metadata with an
// integer tumor class label in 1..9.
type Variant struct {
	ID        int
	Gene      string
	Variation string
	Class     int
}

// Document is one row of the text table: the clinical evidence text for a
// sample ID.
type Document struct {
	ID   int
	Text string
}

// Record is a joined row carrying both the variant metadata and its text.
type Record struct {
	ID        int
	Gene      string
	Variation string
	Class     int
	Text      string
}

// Join inner-joins variants and documents on ID. Rows whose ID is missing
// from either side are dropped. Output order follows the variants table;
// when an ID occurs more than once in docs the first occurrence wins.
func Join(variants []Variant, docs []Document) []Record {
	textByID := make(map[int]string, len(docs))
	for _, d := range docs {
		if _, ok := textByID[d.ID]; !ok {
			textByID[d.ID] = d.Text
		}
	}

	records := make([]Record, 0, len(variants))
	for _, v := range variants {
		text, ok := textByID[v.ID]
		if !ok {
			continue
		}
		records = append(records, Record{
			ID:        v.ID,
			Gene:      v.Gene,
			Variation: v.Variation,
			Class:     v.Class,
			Text:      text,
		})
	}
	return records
}

// Texts returns the text column of a record slice.
func Texts(records []Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Text
	}
	return out
}

// Labels returns the class column of a record slice.
func Labels(records []Record) []int {
	out := make([]int, len(records))
	for i, r := range records {
		out[i] = r.Class
	}
	return out
}
