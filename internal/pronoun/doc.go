// Package pronoun holds the fixed gender vocabulary: the identifiers a gender
// list may use, the pronouns conventionally associated with each, and the
// free-text classification applied to a character's selected gender.
//
// The pronoun sets are advisory. They drive warnings about phrases that look
// like they were written for another gender and never change which
// alternative is selected.
package pronoun
