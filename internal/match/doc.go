// Package match provides the string matching helpers used to advise authors
// about likely typos.
//
// Key functions:
//   - Levenshtein: computes edit distance between strings
//   - Closest: ranks candidate labels by edit distance
//   - Words: splits a phrase into lower-cased words for vocabulary lookups
package match
