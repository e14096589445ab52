package batch

import "errors"

var (
	// ErrNoDefinitions is returned when the gender list defines no characters.
	ErrNoDefinitions = errors.New("no characters are defined in the gender list")

	// ErrSameDirectory is returned when the output directory holds input sheets.
	ErrSameDirectory = errors.New("output directory must differ from the directory of the input sheets")

	// ErrNoInput is returned when no input directory or files were given.
	ErrNoInput = errors.New("no input sheets given")
)
