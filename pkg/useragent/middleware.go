package useragent

import "net/http"

// Middleware classifies the request's User-Agent header once and stores the
// Result in the request context for downstream handlers.
func Middleware(p *Parser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := SetResultToContext(r.Context(), p.Parse(r.UserAgent()))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
