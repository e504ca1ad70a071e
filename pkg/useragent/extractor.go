package useragent

import "github.com/dlclark/regexp2"

// ExtractKind selects how an extractor produces its value.
type ExtractKind uint8

const (
	// ExtractCapture copies the bound capture group verbatim.
	ExtractCapture ExtractKind = iota
	// ExtractLiteral writes a fixed value regardless of the captures.
	ExtractLiteral
	// ExtractTransform writes the bound capture group after normalization.
	ExtractTransform
)

// Extractor writes one Result field from a successful match.
// Its position in a rule's extractor list selects the capture group it reads:
// the first extractor reads group 1, the second group 2 and so on.
type Extractor struct {
	Field      Field
	Kind       ExtractKind
	Value      string
	Normalizer Normalizer
}

// Capture binds field to its capture group.
func Capture(field Field) Extractor {
	return Extractor{Field: field, Kind: ExtractCapture}
}

// Literal sets field to value whenever the rule matches.
func Literal(field Field, value string) Extractor {
	return Extractor{Field: field, Kind: ExtractLiteral, Value: value}
}

// Transform binds field to its capture group, passed through n.
func Transform(field Field, n Normalizer) Extractor {
	return Extractor{Field: field, Kind: ExtractTransform, Normalizer: n}
}

// extract applies e to r using capture group `group` of m. The captured text
// is taken from src, the unmasked input m was matched against.
// A group that does not exist or did not participate in the match leaves
// the field untouched.
func (e Extractor) extract(m *regexp2.Match, group int, src []rune, r *Result) {
	dst := r.field(e.Field)
	if dst == nil {
		return
	}

	if e.Kind == ExtractLiteral {
		*dst = e.Value
		return
	}

	captured, ok := groupText(m, group, src)
	if !ok {
		return
	}
	if e.Kind == ExtractTransform {
		captured = e.Normalizer.Apply(captured)
	}
	*dst = captured
}

func groupText(m *regexp2.Match, n int, src []rune) (string, bool) {
	g := m.GroupByNumber(n)
	if g == nil || len(g.Captures) == 0 {
		return "", false
	}
	if g.Index < 0 || g.Index+g.Length > len(src) {
		return "", false
	}
	return string(src[g.Index : g.Index+g.Length]), true
}
