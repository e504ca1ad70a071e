package useragent

import "errors"

// Parse itself never fails. These errors are returned while building a
// pattern table or loading configuration.
var (
	ErrInvalidPattern       = errors.New("invalid user agent pattern")
	ErrEmptyRule            = errors.New("rule has no patterns")
	ErrUnknownCategory      = errors.New("unknown rule category")
	ErrDuplicateCategory    = errors.New("duplicate rule category")
	ErrFieldOutsideCategory = errors.New("extractor writes a field outside its category")
	ErrParsingConfig        = errors.New("failed to parse user agent parser config")
	ErrInvalidConfig        = errors.New("invalid user agent parser config")
)
