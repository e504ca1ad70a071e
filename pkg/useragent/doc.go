// Package useragent classifies HTTP User-Agent strings into structured
// attributes for server-side request analysis.
//
// It extracts:
//   - Browser name and version – Chrome, Mobile Safari, Opera, IE, …
//   - CPU architecture – amd64, ia32, arm, ppc, sparc, …
//   - Device type, vendor and model – "mobile" Apple iPhone, "tablet" Amazon KFTT, …
//   - Rendering engine name and version – WebKit, Gecko, Presto, Trident, EdgeHTML
//   - Operating system name and version – Windows 7, iOS 9.1, Android 4.0.4, …
//
// Every field of Result is a plain string. An empty field means the
// corresponding rule category found nothing, which is a normal outcome for
// unknown or unusual clients, not an error.
//
// # Architecture
//
// Classification is driven by a Table of ordered regular expression rules,
// split into five independent categories evaluated in a fixed order:
// browser, cpu, device, engine, os.
//
//	┌──────────┐  UA string  ┌───────────────────────────────────────────┐
//	│  Parse   │────────────▶│ Table                                     │
//	└──────────┘             │  browser ─▶ rule 1 ─▶ rule 2 ─▶ …  (first  │
//	     ▲                   │  cpu     ─▶ rule 1 ─▶ …             match  │
//	     │                   │  device  ─▶ rule 1 ─▶ …             wins)  │
//	     │                   │  engine  ─▶ …                              │
//	     │                   │  os      ─▶ …                              │
//	     │                   └─────────────────────┬─────────────────────┘
//	     └────────────────── Result ◀──────────────┘
//
// Within a category the first rule that matches wins and the remaining rules
// are skipped. Within a rule, alternative patterns are tried in order and the
// first match is used. Each rule carries a list of extractors; the extractor
// at position k reads capture group k and writes one Result field, either
// verbatim (Capture), as a fixed value (Literal) or through a Normalizer
// (Transform). A group that did not take part in the match leaves its field
// untouched.
//
// Rule data lives in rules.go, the transforms in normalizer.go and the
// matching loop in table.go and matcher.go.
//
// # Usage
//
// Build the parser once at startup and share it:
//
//	import "github.com/dmitrymomot/uaparser/pkg/useragent"
//
//	parser, err := useragent.New(useragent.WithLogger(logger))
//	if err != nil {
//	    // the built-in table failed to compile
//	}
//
//	ua := parser.Parse(r.UserAgent())
//	log.Printf("browser=%s %s os=%s %s", ua.BrowserName, ua.BrowserVersion, ua.OSName, ua.OSVersion)
//
//	if ua.IsMobile() || ua.IsTablet() {
//	    // serve mobile-optimised assets
//	}
//
// To classify every request once, mount the middleware and read the result
// from the request context:
//
//	r.Use(useragent.Middleware(parser))
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    ua, _ := useragent.GetResultFromContext(r.Context())
//	    // ...
//	}
//
// Settings can be loaded from the environment (USERAGENT_MAX_LENGTH,
// USERAGENT_MATCH_TIMEOUT, USERAGENT_CACHE_SIZE):
//
//	cfg, err := useragent.LoadConfig()
//	parser, err := useragent.NewFromConfig(cfg)
//
// # Custom tables
//
// DefaultRules returns the built-in rules as data. Callers may filter or
// extend them and compile their own table:
//
//	rules := append(useragent.DefaultRules(), …)
//	table, err := useragent.NewTable(rules, time.Second)
//	parser := useragent.NewWithTable(table)
//
// NewTable rejects malformed patterns (ErrInvalidPattern), empty rules
// (ErrEmptyRule), unknown or repeated categories and extractors writing a
// field owned by another category (ErrFieldOutsideCategory).
//
// # Concurrency and limits
//
// Tables are immutable after construction and Parse keeps no state between
// calls, so one Parser may serve any number of goroutines. Patterns use
// lookahead and backreferences and therefore run on a backtracking engine
// (github.com/dlclark/regexp2). To keep adversarial input bounded, Parse only
// looks at the first DefaultMaxLength bytes and every search is limited by
// DefaultMatchTimeout; an aborted search is logged and treated as a miss.
// Both limits are configurable.
//
// Matching is ASCII only: letters fold case within A-Z, and non-ASCII
// characters never match pattern text or \s. Captured values are returned as
// they appear in the input.
package useragent
