// Package varitext implements a text classification pipeline for genetic
// variant annotations: clinical evidence text is joined to a variants
// table, vectorized over a term vocabulary, and scored with multiclass
// log-loss.
//
// # Packages
//
// - dataset: table loading, inner join on ID, stratified splitting
// - preprocessing: count vectorization and label binarization
// - classifier: multinomial naive Bayes
// - modelselection: k-fold splitting and cross-validated scoring
// - metrics: log-loss, ROC curves with micro and macro averages
// - rocplot: ROC curve rendering to image files
// - submission: probability CSV output
//
// # Quick Start
//
//	records, err := dataset.LoadFullTable("training_variants", "training_text")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	vec, _ := preprocessing.NewCountVectorizer(nil)
//	X, err := vec.FitTransform(dataset.Texts(records))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	labels := dataset.Labels(records)
//	y := mat.NewDense(len(labels), 1, nil)
//	for i, c := range labels {
//	    y.Set(i, 0, float64(c))
//	}
//
//	score, err := modelselection.KFoldScore(classifier.NewMultinomialNB(), X, y, 5)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("mean log-loss: %.4f\n", score)
//
// The cmd/varitext command drives the same pipeline from a YAML config.
package varitext
