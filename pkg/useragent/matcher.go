package useragent

import (
	"log/slog"
	"slices"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
)

// Matcher is one compiled rule: alternative patterns tried in order and the
// extractors run against the first one that matches.
type Matcher struct {
	category   Category
	index      int
	patterns   []*regexp2.Regexp
	extractors []Extractor
}

// subject is the input as seen by the patterns. masked has every non-ASCII
// rune replaced by utf8.RuneError, so case folding and \s only ever see
// ASCII. Both slices have the same length, which keeps match offsets valid
// for captures read from runes.
type subject struct {
	runes  []rune
	masked []rune
}

func newSubject(input string) subject {
	runes := []rune(input)
	s := subject{runes: runes, masked: runes}
	copied := false
	for i, c := range runes {
		if c < utf8.RuneSelf {
			continue
		}
		if !copied {
			s.masked = slices.Clone(runes)
			copied = true
		}
		s.masked[i] = utf8.RuneError
	}
	return s
}

// tryMatch searches the subject with each alternative in declared order. On
// the first hit it runs every extractor once and reports matched; remaining
// alternatives are not tried.
//
// A search aborted by the match timeout counts as a miss for that
// alternative and is reported through aborted.
func (m *Matcher) tryMatch(in subject, r *Result, logger *slog.Logger) (matched, aborted bool) {
	for i, re := range m.patterns {
		match, err := re.FindRunesMatch(in.masked)
		if err != nil {
			logger.Warn("useragent: pattern search aborted",
				slog.String("category", string(m.category)),
				slog.Int("rule", m.index),
				slog.Int("pattern", i),
				slog.Int("input_length", len(in.runes)),
				slog.Any("error", err),
			)
			aborted = true
			continue
		}
		if match == nil {
			continue
		}

		for k, e := range m.extractors {
			e.extract(match, k+1, in.runes, r)
		}
		return true, aborted
	}
	return false, aborted
}
