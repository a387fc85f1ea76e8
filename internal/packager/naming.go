package packager

import (
	"math/rand/v2"
	"strings"
)

// IDLength is the number of letters in a renamed entry point.
const IDLength = 10

const idLetters = "abcdefghijklmnopqrstuvwxyz"

// RandomID returns IDLength lowercase ASCII letters drawn uniformly with
// replacement.
func RandomID() string {
	b := make([]byte, IDLength)
	for i := range b {
		b[i] = idLetters[rand.IntN(len(idLetters))]
	}
	return string(b)
}

// SanitizeName derives the destination directory name from the project
// directory name: spaces become underscores, letters are lower-cased, and
// every occurrence of token (the entry point's extension) is removed.
func SanitizeName(name, token string) string {
	out := strings.ToLower(strings.ReplaceAll(name, " ", "_"))
	if token != "" {
		out = strings.ReplaceAll(out, strings.ToLower(token), "")
	}
	if out == "" {
		return "script"
	}
	return out
}
