// Package match ranks names by how close they are to a misspelled one, for
// "did you mean" hints in lookup errors.
//
// Key functions:
//   - Fold: reduces an identifier to lower case without separators
//   - Levenshtein: edit distance between two strings, by rune
//   - Suggest: closest candidates to a name
package match
