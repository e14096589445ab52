// Package sheet resolves gender-conditional markup in character sheets and
// their file names.
//
// # Body markup
//
// A token names a character and lists one alternative per entry of that
// character's ordering:
//
//	[3: she/he] draws [3: her/his] sword.
//
// With ordering female/male and character 3 played as male this becomes
// "he draws his sword." Alternatives run to the next "]" and may span lines.
// Everything outside tokens is copied byte for byte, so RTF control words
// pass through untouched.
//
// # File names
//
// A file name is split on ".": the character number, one section per
// ordering entry, any further sections, and the extension:
//
//	3.Alice.Bob.notes.txt  ->  3.Bob.notes.txt
//
// # Failure policy
//
// Nothing here returns an error. A token or file name that cannot be
// resolved is left as written (or, when no alternative matches the
// character's gender, replaced by nothing) and the reason is recorded in the
// returned diagnostics.
package sheet
