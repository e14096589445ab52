// Package genderlist parses gender lists: which gender each numbered
// character is played as, and the order in which that character's gendered
// alternatives are written in sheets and file names.
//
// # Line format
//
// One character per line, four colon-separated fields:
//
//	Alice : 3 : female/male : male
//	Sam   : 7 : neutral they/female/male : they
//
// The fields are the character's name, its number, the ordering of gender
// options as they appear left to right inside every "[3: .../...]" token, and
// the gender selected for this run. Blank lines and lines starting with "#"
// are skipped.
//
// Ordering entries must be one of the labels "female", "male",
// "neutral they" or "neutral ze", spelled exactly. Unknown labels are kept in
// place (so positions do not shift) and reported with suggestions.
//
// The selected gender is free text classified by pronoun.Classify, so "F",
// "Female" and "female" all select female.
//
// # YAML format
//
// The same data may be written as YAML:
//
//	characters:
//	  - name: Alice
//	    number: 3
//	    ordering: [female, male]
//	    gender: male
//	  - name: Sam
//	    number: 7
//	    ordering: neutral they/female/male
//	    gender: they
//
// # Errors
//
// A line that cannot be split into four fields, or whose number is not a
// non-negative integer, is a *MalformedLineError. It is recorded as an error
// diagnostic and parsing continues with the next line; the returned error
// joins every malformed line. Everything else (unknown labels, duplicate
// numbers, unclassifiable genders) is a warning.
package genderlist
