package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/journal/pkg/httpx"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func hit(h http.Handler, remote string, mutate ...func(*http.Request)) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = remote
	for _, m := range mutate {
		m(req)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestIPKeyExtractor(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{"extracts from RemoteAddr", nil, "192.168.1.1"},
		{"prefers X-Forwarded-For", map[string]string{"X-Forwarded-For": "203.0.113.1, 192.168.1.1"}, "203.0.113.1"},
		{"uses X-Real-IP if X-Forwarded-For absent", map[string]string{"X-Real-IP": "203.0.113.2"}, "203.0.113.2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = "192.168.1.1:12345"
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			require.Equal(t, tt.want, httpx.IPKeyExtractor(req))
		})
	}
}

func TestCompositeKeyExtractor(t *testing.T) {
	extractor := httpx.CompositeKeyExtractor(":", httpx.IdentityKeyExtractor, httpx.IPKeyExtractor)

	t.Run("combines identity and ip", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.168.1.1:12345"
		req = req.WithContext(httpx.WithIdentity(req.Context(), "a@x.com"))
		require.Equal(t, "a@x.com:192.168.1.1", extractor(req))
	})

	t.Run("skips empty values", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.168.1.1:12345"
		require.Equal(t, "192.168.1.1", extractor(req))
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Run("allows requests under limit", func(t *testing.T) {
		h := httpx.RateLimitMiddleware(httpx.RateLimitConfig{RequestsPerWindow: 5, Window: time.Second, Burst: 5}, httpx.IPKeyExtractor)(okHandler)
		for i := range 5 {
			require.Equal(t, http.StatusOK, hit(h, "192.168.1.1:1").Code, "request %d should succeed", i+1)
		}
	})

	t.Run("blocks requests over limit and tracks keys separately", func(t *testing.T) {
		h := httpx.RateLimitByIP(httpx.RateLimitConfig{RequestsPerWindow: 2, Window: time.Minute, Burst: 2})(okHandler)

		require.Equal(t, http.StatusOK, hit(h, "192.168.1.1:1").Code)
		require.Equal(t, http.StatusOK, hit(h, "192.168.1.1:2").Code)

		rec := hit(h, "192.168.1.1:3")
		require.Equal(t, http.StatusTooManyRequests, rec.Code)
		require.NotEmpty(t, rec.Header().Get("Retry-After"))

		require.Equal(t, http.StatusOK, hit(h, "192.168.1.2:1").Code)
	})

	t.Run("rejected requests do not consume tokens", func(t *testing.T) {
		// 1 token per 100ms: after the first is spent, a rejected attempt
		// must not push the next token further out.
		h := httpx.RateLimitByIP(httpx.RateLimitConfig{RequestsPerWindow: 10, Window: time.Second, Burst: 1})(okHandler)

		require.Equal(t, http.StatusOK, hit(h, "10.0.0.1:1").Code)
		require.Equal(t, http.StatusTooManyRequests, hit(h, "10.0.0.1:1").Code)

		time.Sleep(150 * time.Millisecond)
		require.Equal(t, http.StatusOK, hit(h, "10.0.0.1:1").Code)
	})

	t.Run("allows request when key extractor returns empty", func(t *testing.T) {
		empty := func(*http.Request) string { return "" }
		h := httpx.RateLimitMiddleware(httpx.RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, Burst: 1}, empty)(okHandler)
		for range 3 {
			require.Equal(t, http.StatusOK, hit(h, "").Code)
		}
	})
}

func TestRateLimitByIdentity(t *testing.T) {
	h := httpx.RateLimitByIdentity(httpx.RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, Burst: 1})(okHandler)

	as := func(identity string) func(*http.Request) {
		return func(r *http.Request) {
			*r = *r.WithContext(httpx.WithIdentity(r.Context(), identity))
		}
	}

	require.Equal(t, http.StatusOK, hit(h, "10.0.0.1:1", as("a@x.com")).Code)
	require.Equal(t, http.StatusTooManyRequests, hit(h, "10.0.0.1:1", as("a@x.com")).Code)
	require.Equal(t, http.StatusOK, hit(h, "10.0.0.1:1", as("b@x.com")).Code)
}

func TestRateLimitHeaders(t *testing.T) {
	h := httpx.RateLimitByIP(httpx.RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, Burst: 1})(okHandler)

	require.Equal(t, http.StatusOK, hit(h, "192.168.1.1:1").Code)

	rec := hit(h, "192.168.1.1:1")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.Equal(t, "1", rec.Header().Get("X-RateLimit-Limit"))
	require.Equal(t, "1m0s", rec.Header().Get("X-RateLimit-Window"))
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Body.String(), "rate_limit_exceeded")
}

func TestRateLimitProfiles(t *testing.T) {
	for name, cfg := range map[string]httpx.RateLimitConfig{
		"strict":   httpx.StrictLimit,
		"moderate": httpx.ModerateLimit,
		"lenient":  httpx.LenientLimit,
		"public":   httpx.PublicLimit,
	} {
		t.Run(name, func(t *testing.T) {
			require.Positive(t, cfg.RequestsPerWindow)
			require.Positive(t, cfg.Window)
			require.Positive(t, cfg.Burst)
		})
	}
}

func TestParseRateLimitFromEnv(t *testing.T) {
	def := httpx.RateLimitConfig{RequestsPerWindow: 5, Window: time.Minute, Burst: 5}

	t.Setenv("RATELIMIT_TEST_REQUESTS", "50")
	t.Setenv("RATELIMIT_TEST_WINDOW_SEC", "10")
	t.Setenv("RATELIMIT_TEST_BURST", "-3")

	got := httpx.ParseRateLimitFromEnv("TEST", def)
	require.Equal(t, 50, got.RequestsPerWindow)
	require.Equal(t, 10*time.Second, got.Window)
	require.Equal(t, 5, got.Burst, "invalid values keep the default")

	_, set := os.LookupEnv("RATELIMIT_OTHER_REQUESTS")
	require.False(t, set)
	require.Equal(t, def, httpx.ParseRateLimitFromEnv("OTHER", def))
}
