// Package compare classifies filesystem entries and tests two regular
// files for byte equality.
package compare
