// Package diagnostic provides structured warnings and errors for gender
// lists and sheets.
//
// Nothing in the engine prints. Parsers and transformers record typed
// findings in a Diagnostics collector; callers decide how to present them
// and whether any of them is fatal. A Notify hook streams each finding as it
// is recorded, so a long batch can report progress without waiting for the
// collector to be returned.
//
// Key capabilities:
//   - Malformed gender-list lines
//   - Unknown or unclassifiable gender labels, with suggestions
//   - Tokens and file names that reference undefined characters
//   - Alternative counts that disagree with a character's ordering
//   - Phrases whose pronouns look like another gender's
package diagnostic
