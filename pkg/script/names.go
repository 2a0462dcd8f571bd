package script

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
)

// Names of the built-in ranges.
const (
	NameHanBasic = "han-basic"
	NameHan      = "han"
	NameHiragana = "hiragana"
	NameKatakana = "katakana"
	NameHangul   = "hangul"
	NameCJK      = "cjk"
	NameCyrillic = "cyrillic"
	NameGreek    = "greek"
	NameArabic   = "arabic"
)

// DefaultName is the range used when none is configured.
const DefaultName = NameHanBasic

// HanBasic is the CJK Unified Ideographs block up to U+9FA5.
//
//nolint:gochecknoglobals // Immutable lookup table.
var HanBasic = MustIntervals(NameHanBasic, Interval{Lo: 0x4E00, Hi: 0x9FA5})

//nolint:gochecknoglobals // Read-only registry.
var builtins = map[string]struct {
	description string
	build       func() Range
}{
	NameHanBasic: {"CJK Unified Ideographs U+4E00-U+9FA5", func() Range { return HanBasic }},
	NameHan:      {"Unicode Han script", func() Range { return FromTable(NameHan, unicode.Han) }},
	NameHiragana: {"Unicode Hiragana script", func() Range { return FromTable(NameHiragana, unicode.Hiragana) }},
	NameKatakana: {"Unicode Katakana script", func() Range { return FromTable(NameKatakana, unicode.Katakana) }},
	NameHangul:   {"Unicode Hangul script", func() Range { return FromTable(NameHangul, unicode.Hangul) }},
	NameCJK: {"Han, Hiragana, Katakana and Hangul", func() Range {
		return Union(NameCJK,
			FromTable(NameHan, unicode.Han),
			FromTable(NameHiragana, unicode.Hiragana),
			FromTable(NameKatakana, unicode.Katakana),
			FromTable(NameHangul, unicode.Hangul),
		)
	}},
	NameCyrillic: {"Unicode Cyrillic script", func() Range { return FromTable(NameCyrillic, unicode.Cyrillic) }},
	NameGreek:    {"Unicode Greek script", func() Range { return FromTable(NameGreek, unicode.Greek) }},
	NameArabic:   {"Unicode Arabic script", func() Range { return FromTable(NameArabic, unicode.Arabic) }},
}

// Info describes a built-in range.
type Info struct {
	Name        string
	Description string
}

// Lookup returns the built-in range with the given name (case-insensitive).
func Lookup(name string) (Range, error) {
	entry, ok := builtins[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Range{}, fmt.Errorf("%w: %q (known: %s)", ErrUnknownScript, name, strings.Join(Names(), ", "))
	}
	return entry.build(), nil
}

// Names returns the built-in range names, sorted.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Builtins describes every built-in range, sorted by name.
func Builtins() []Info {
	names := Names()
	out := make([]Info, len(names))
	for idx, name := range names {
		out[idx] = Info{Name: name, Description: builtins[name].description}
	}
	return out
}

// Resolve picks a range from a script name and an optional interval
// specification. A non-empty spec wins over the name; an empty name falls
// back to DefaultName.
func Resolve(name, spec string) (Range, error) {
	if strings.TrimSpace(spec) != "" {
		label := "custom"
		if name != "" {
			label = name
		}
		return ParseRange(label, spec)
	}
	if strings.TrimSpace(name) == "" {
		name = DefaultName
	}
	return Lookup(name)
}
