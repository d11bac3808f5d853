// Package kernel implements the word kernel: a TF-IDF style vectorizer and the
// cosine similarity (Gram) matrix built on top of it.
//
// Fitting is two-phase. A Vectorizer carries settings and a tokenizer but no
// corpus state; Fit returns an immutable Model holding the corpus size, the
// ordered vocabulary and the document-frequency table. Every vector a Model
// produces uses the same vocabulary order, so dot products between them are
// meaningful.
//
// A vocabulary token t in a corpus of n documents receives, for a text in
// which it occurs c times, the weight
//
//	log(1 + c) * log(n / df(t))
//
// Tokens present in every document therefore weigh nothing.
package kernel
