// Package data provides the embedded trivia question data loaded at startup.
package data

import "embed"

// dataFS embeds the static question records at build time.
//
//go:embed *.csv
var dataFS embed.FS

// Questions returns the raw CSV question records.
func Questions() ([]byte, error) {
	return dataFS.ReadFile("questions.csv")
}
