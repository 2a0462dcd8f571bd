// Package langdetect names the language of a file being rewritten.
// It uses go-enry, so names follow GitHub Linguist ("Go", "Solidity", ...).
package langdetect

import (
	"path/filepath"

	"github.com/go-enry/go-enry/v2"
)

// Unknown is returned when no strategy is confident.
const Unknown = "Text"

// classifierCandidates limits the classifier to languages commonly carrying
// translated comments.
//
//nolint:gochecknoglobals // Read-only lookup table.
var classifierCandidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript", "Solidity",
	"Rust", "Java", "C", "C++", "C#", "Kotlin", "Swift", "SQL",
	"JSON", "YAML", "TOML", "HTML", "CSS", "Markdown",
}

// Detect returns the language of a file from its name and content.
//
// Strategies, most reliable first: exact filename, extension, shebang,
// then the content classifier. Returns Unknown when none is confident.
func Detect(path string, content []byte) string {
	name := filepath.Base(path)

	if lang, safe := enry.GetLanguageByFilename(name); safe && lang != "" {
		return lang
	}
	if lang, safe := enry.GetLanguageByExtension(name); safe && lang != "" {
		return lang
	}
	if lang, safe := enry.GetLanguageByShebang(content); safe && lang != "" {
		return lang
	}
	if len(content) == 0 {
		return Unknown
	}
	if lang, safe := enry.GetLanguageByClassifier(content, classifierCandidates); safe && lang != "" {
		return lang
	}
	return Unknown
}

// IsBinary reports whether content looks like binary data rather than text.
func IsBinary(content []byte) bool {
	return enry.IsBinary(content)
}
