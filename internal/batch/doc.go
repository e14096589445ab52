// Package batch applies a gender list to a set of character sheets on disk.
//
// A Runner discovers sheets in an input directory (or takes an explicit list
// of paths), transforms each one concurrently and writes the result to an
// output directory that must not hold any of the inputs. Diagnostics from
// every file are merged into a Report.
package batch
