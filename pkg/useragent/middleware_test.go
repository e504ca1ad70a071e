package useragent_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/uaparser/pkg/useragent"
)

func TestMiddleware(t *testing.T) {
	t.Parallel()

	p := newParser(t, useragent.WithCacheSize(8))

	r := chi.NewRouter()
	r.Use(useragent.Middleware(p))
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		ua, ok := useragent.GetResultFromContext(req.Context())
		if !ok {
			http.Error(w, "missing user agent", http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(ua.BrowserName + "|" + ua.OSName + "|" + ua.DeviceType))
	})

	tests := []struct {
		name     string
		ua       string
		expected string
	}{
		{name: "iPhone", ua: iPhoneUA, expected: "Mobile Safari|iOS|mobile"},
		{name: "desktop", ua: chromeWindowsUA, expected: "Chrome|Windows|"},
		{name: "no header", ua: "", expected: "||"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.ua != "" {
				req.Header.Set("User-Agent", tc.ua)
			}
			rec := httptest.NewRecorder()

			r.ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tc.expected, rec.Body.String())
		})
	}
}

func TestResultContext(t *testing.T) {
	t.Parallel()

	_, ok := useragent.GetResultFromContext(context.Background())
	assert.False(t, ok)

	want := useragent.Result{BrowserName: "Opera", OSName: "Windows", OSVersion: "7"}
	ctx := useragent.SetResultToContext(context.Background(), want)

	got, ok := useragent.GetResultFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, want, got)
}
