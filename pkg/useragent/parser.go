package useragent

import (
	"log/slog"
)

// Parser classifies user agent strings against a compiled Table.
// A Parser is safe for concurrent use; build it once at startup and share it.
type Parser struct {
	table     *Table
	maxLength int
	cache     *resultCache
	logger    *slog.Logger
}

// New compiles the built-in rules and returns a Parser using them.
// An error here means the built-in table is broken and should stop startup.
func New(opts ...Option) (*Parser, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	table, err := NewTable(DefaultRules(), o.matchTimeout)
	if err != nil {
		return nil, err
	}

	p := newParser(table, o)
	p.logger.Debug("useragent: parser ready",
		slog.Int("browser_rules", table.Len(CategoryBrowser)),
		slog.Int("cpu_rules", table.Len(CategoryCPU)),
		slog.Int("device_rules", table.Len(CategoryDevice)),
		slog.Int("engine_rules", table.Len(CategoryEngine)),
		slog.Int("os_rules", table.Len(CategoryOS)),
		slog.Int("cache_size", o.cacheSize),
	)
	return p, nil
}

// MustNew works like New but panics if the built-in rules fail to compile.
func MustNew(opts ...Option) *Parser {
	p, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// NewWithTable returns a Parser using a previously compiled table.
// WithMatchTimeout has no effect here: the timeout is fixed by NewTable.
func NewWithTable(table *Table, opts ...Option) *Parser {
	if table == nil {
		panic("useragent: nil table")
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return newParser(table, o)
}

func newParser(table *Table, o *options) *Parser {
	p := &Parser{
		table:     table,
		maxLength: o.maxLength,
		logger:    o.logger,
	}
	if o.cacheSize > 0 {
		p.cache = newResultCache(o.cacheSize)
	}
	return p
}

// Table returns the compiled table used by p.
func (p *Parser) Table() *Table { return p.table }

// Parse classifies ua. It never fails: categories without a matching rule
// leave their fields empty, and the empty string yields an empty Result.
func (p *Parser) Parse(ua string) Result {
	if p.maxLength > 0 && len(ua) > p.maxLength {
		p.logger.Debug("useragent: input truncated",
			slog.Int("input_length", len(ua)),
			slog.Int("max_length", p.maxLength),
		)
		ua = ua[:p.maxLength]
	}

	if p.cache == nil {
		r, _ := p.table.classify(ua, p.logger)
		return r
	}

	if r, ok := p.cache.get(ua); ok {
		return r
	}
	r, aborted := p.table.classify(ua, p.logger)
	if !aborted {
		// Results degraded by a match timeout are not memoized.
		p.cache.put(ua, r)
	}
	return r
}
