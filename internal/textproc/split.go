package textproc

import "strings"

// Split turns the post-processed transducer output into a sentence
// matrix: split on "\n" for sentence boundaries, then on " " for token
// boundaries. No trimming, collapsing, or filtering is performed — empty
// tokens produced by repeated separators are preserved as-is.
func Split(raw string) [][]string {
	sentences := strings.Split(raw, "\n")
	matrix := make([][]string, len(sentences))
	for i, sentence := range sentences {
		matrix[i] = strings.Split(sentence, " ")
	}
	return matrix
}
