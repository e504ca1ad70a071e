package useragent

import (
	"maps"
	"strings"
)

// NormalizerKind enumerates the text transforms an extractor can apply to a
// captured substring.
type NormalizerKind uint8

const (
	NormalizeIdentity NormalizerKind = iota
	NormalizeLowercase
	NormalizeReplace
	NormalizeLookup
)

// Normalizer is a pure text-to-text transform. From and To are used by
// NormalizeReplace, Table by NormalizeLookup.
type Normalizer struct {
	Kind  NormalizerKind
	From  byte
	To    byte
	Table map[string]string
}

// Identity returns the input unchanged.
func Identity() Normalizer {
	return Normalizer{Kind: NormalizeIdentity}
}

// Lowercase folds ASCII letters to lower case. Other bytes are kept as is.
func Lowercase() Normalizer {
	return Normalizer{Kind: NormalizeLowercase}
}

// Replace substitutes every occurrence of the byte from with to.
func Replace(from, to byte) Normalizer {
	return Normalizer{Kind: NormalizeReplace, From: from, To: to}
}

// Lookup maps the input through table using an exact key match.
// Inputs missing from the table pass through unchanged. The table is copied,
// so later changes to it do not affect the normalizer.
func Lookup(table map[string]string) Normalizer {
	return Normalizer{Kind: NormalizeLookup, Table: maps.Clone(table)}
}

// Apply runs the transform. It never fails.
func (n Normalizer) Apply(s string) string {
	switch n.Kind {
	case NormalizeLowercase:
		return asciiLower(s)
	case NormalizeReplace:
		return replaceByte(s, n.From, n.To)
	case NormalizeLookup:
		if v, ok := n.Table[s]; ok {
			return v
		}
		return s
	default:
		return s
	}
}

func asciiLower(s string) string {
	i := 0
	for i < len(s) && !isASCIIUpper(s[i]) {
		i++
	}
	if i == len(s) {
		return s
	}
	b := []byte(s)
	for ; i < len(b); i++ {
		if isASCIIUpper(b[i]) {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}

func isASCIIUpper(c byte) bool { return 'A' <= c && c <= 'Z' }

func replaceByte(s string, from, to byte) string {
	if from == to || strings.IndexByte(s, from) < 0 {
		return s
	}
	b := []byte(s)
	for i := range b {
		if b[i] == from {
			b[i] = to
		}
	}
	return string(b)
}

// Lookup tables used by the default rules.
var (
	// safariVersions maps legacy WebKit build suffixes to Safari releases.
	safariVersions = map[string]string{
		"/8":   "1.0",
		"/1":   "1.2",
		"/3":   "1.3",
		"/412": "2.0",
		"/416": "2.0.2",
		"/417": "2.0.3",
		"/419": "2.0.4",
		"/":    "?",
	}

	amazonModels = map[string]string{
		"KF": "Fire Phone",
		"SD": "Fire Phone",
	}

	// windowsVersions maps NT kernel tokens to marketing names.
	windowsVersions = map[string]string{
		"4.90":    "ME",
		"NT3.51":  "NT 3.11",
		"NT4.0":   "NT 4.0",
		"NT 5.0":  "2000",
		"NT 5.1":  "XP",
		"NT 5.2":  "XP",
		"NT 6.0":  "Vista",
		"NT 6.1":  "7",
		"NT 6.2":  "8",
		"NT 6.3":  "8.1",
		"NT 6.4":  "10",
		"NT 10.0": "10",
		"ARM":     "RT",
	}

	sprintModels = map[string]string{
		"7373KT": "Evo Shift 4G",
	}

	sprintVendors = map[string]string{
		"APA": "HTC",
	}
)
