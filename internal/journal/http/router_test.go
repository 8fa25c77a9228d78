package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/journal/internal/journal/domain"
	journalhttp "github.com/aussiebroadwan/journal/internal/journal/http"
	"github.com/aussiebroadwan/journal/internal/journal/service"
	"github.com/aussiebroadwan/journal/internal/journal/store"
	"github.com/aussiebroadwan/journal/internal/journal/store/drivers/jsonfile"
	"github.com/aussiebroadwan/journal/pkg/cryptox"
	"github.com/aussiebroadwan/journal/pkg/httpx"
	"github.com/aussiebroadwan/journal/pkg/journalsdk"
	"github.com/aussiebroadwan/journal/pkg/slogx"
)

var testSecret = []byte("router-test-secret-router-test-secret")

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "journal-http")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	// Every test talks from 127.0.0.1.
	httpx.StrictLimit = httpx.RateLimitConfig{RequestsPerWindow: 1000, Window: time.Minute, Burst: 1000}

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

type testServer struct {
	*httptest.Server
	client *journalsdk.Client
	tokens *service.TokenService
}

func newTestServer(t *testing.T, st store.Store) *testServer {
	t.Helper()

	if st == nil {
		js, err := jsonfile.NewStore(filepath.Join(t.TempDir(), "users.json"))
		require.NoError(t, err)
		st = js
	}
	repo := store.NewRepository(st, 2*time.Second)

	tokens, err := service.NewTokenService(testSecret, "journal-test", nil)
	require.NoError(t, err)

	logger := slogx.New(slogx.Config{Service: "journal-test", Level: "error", Output: io.Discard})
	router := journalhttp.NewRouter(tokens, "test", repo, logger)
	router.AccountService, err = service.NewAccountService(repo, nil)
	require.NoError(t, err)
	router.SubmissionService = &service.SubmissionService{Repo: repo}
	router.Reviewer = service.NewKeywordReviewer()
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testServer{Server: srv, client: journalsdk.NewClient(srv.URL), tokens: tokens}
}

func (s *testServer) do(t *testing.T, method, path, token, body string) (*http.Response, map[string]any) {
	t.Helper()

	req, err := http.NewRequest(method, s.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp, out
}

func TestJourney_RegisterSubmitList(t *testing.T) {
	s := newTestServer(t, nil)
	ctx := context.Background()

	session, auth, err := s.client.Register(ctx, journalsdk.RegisterRequest{
		Email:    "a@x.com",
		Name:     "Alice",
		Password: "pw1",
	})
	require.NoError(t, err)
	require.Equal(t, "User created successfully", auth.Message)
	require.Equal(t, "a@x.com", auth.User.Email)
	require.Equal(t, "Alice", auth.User.Name)
	require.NotEmpty(t, auth.AccessToken)
	require.WithinDuration(t, time.Now().Add(7*24*time.Hour), auth.ExpiresAt, time.Minute)

	profile, err := session.Profile(ctx)
	require.NoError(t, err)
	require.Equal(t, "a@x.com", profile.Email)
	require.Equal(t, 0, profile.PapersCount)

	p1, err := session.SubmitPaper(ctx, journalsdk.SubmitPaperRequest{Title: "T1", Authors: []string{"Alice"}, Abstract: "A1"})
	require.NoError(t, err)
	require.Equal(t, 1, p1.ID)
	require.Equal(t, "submitted", p1.Status)

	p2, err := session.SubmitPaper(ctx, journalsdk.SubmitPaperRequest{Title: "T2"})
	require.NoError(t, err)
	require.Equal(t, 2, p2.ID)
	require.Equal(t, []string{}, p2.Authors)

	papers, err := session.ListPapers(ctx)
	require.NoError(t, err)
	require.Len(t, papers, 2)
	require.Equal(t, "T1", papers[0].Title)
	require.Equal(t, "T2", papers[1].Title)

	login, auth, err := s.client.Login(ctx, "a@x.com", "pw1")
	require.NoError(t, err)
	require.Equal(t, "Login successful", auth.Message)

	profile, err = login.Profile(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, profile.PapersCount)
}

func TestRegister_Errors(t *testing.T) {
	s := newTestServer(t, nil)
	ctx := context.Background()

	_, _, err := s.client.Register(ctx, journalsdk.RegisterRequest{Email: "a@x.com", Password: "pw1"})
	require.NoError(t, err)

	t.Run("duplicate email", func(t *testing.T) {
		_, _, err := s.client.Register(ctx, journalsdk.RegisterRequest{Email: "a@x.com", Password: "other"})
		require.ErrorIs(t, err, journalsdk.ErrAlreadyExists)
	})

	t.Run("missing password", func(t *testing.T) {
		_, _, err := s.client.Register(ctx, journalsdk.RegisterRequest{Email: "b@x.com"})
		require.ErrorIs(t, err, journalsdk.ErrValidation)

		var apiErr *journalsdk.APIError
		require.True(t, errors.As(err, &apiErr))
		require.Equal(t, "required", apiErr.Details["password"])
	})

	t.Run("malformed body", func(t *testing.T) {
		resp, body := s.do(t, http.MethodPost, "/api/register", "", `{"email":`)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.Equal(t, journalsdk.ErrorCodeValidation, body["error"])
	})
}

func TestLogin_InvalidCredentials(t *testing.T) {
	s := newTestServer(t, nil)
	ctx := context.Background()

	_, _, err := s.client.Register(ctx, journalsdk.RegisterRequest{Email: "a@x.com", Password: "pw1"})
	require.NoError(t, err)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "a@x.com", "nope"},
		{"unknown email", "ghost@x.com", "pw1"},
	}

	var descriptions []string
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := s.client.Login(ctx, tt.email, tt.password)
			require.ErrorIs(t, err, journalsdk.ErrInvalidCredentials)

			var apiErr *journalsdk.APIError
			require.True(t, errors.As(err, &apiErr))
			require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
			descriptions = append(descriptions, apiErr.Description)
		})
	}
	require.Len(t, descriptions, 2)
	require.Equal(t, descriptions[0], descriptions[1], "responses must not reveal which field was wrong")
}

func TestProtectedRoutes_RejectBadTokens(t *testing.T) {
	s := newTestServer(t, nil)

	expiredTokens, err := service.NewTokenService(testSecret, "journal-test", func() time.Time {
		return time.Now().Add(-8 * 24 * time.Hour)
	})
	require.NoError(t, err)
	expired, _, err := expiredTokens.Issue("a@x.com")
	require.NoError(t, err)

	otherTokens, err := service.NewTokenService([]byte("a-completely-different-secret-value!!"), "journal-test", nil)
	require.NoError(t, err)
	foreign, _, err := otherTokens.Issue("a@x.com")
	require.NoError(t, err)

	tests := []struct {
		name     string
		token    string
		wantCode string
	}{
		{"no token", "", journalsdk.ErrorCodeInvalidToken},
		{"garbage", "not.a.jwt", journalsdk.ErrorCodeInvalidToken},
		{"other secret", foreign, journalsdk.ErrorCodeInvalidToken},
		{"expired", expired, journalsdk.ErrorCodeTokenExpired},
	}

	for _, tt := range tests {
		for _, path := range []string{"/api/profile", "/api/my-papers"} {
			t.Run(tt.name+" "+path, func(t *testing.T) {
				resp, body := s.do(t, http.MethodGet, path, tt.token, "")
				require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
				require.Equal(t, tt.wantCode, body["error"])
				require.Contains(t, resp.Header.Get("WWW-Authenticate"), tt.wantCode)
			})
		}
	}
}

func TestProtectedRoutes_AccountGone(t *testing.T) {
	s := newTestServer(t, nil)

	token, _, err := s.tokens.Issue("ghost@x.com")
	require.NoError(t, err)
	session := s.client.NewSession(token)

	_, err = session.Profile(context.Background())
	require.ErrorIs(t, err, journalsdk.ErrNotFound)

	_, err = session.SubmitPaper(context.Background(), journalsdk.SubmitPaperRequest{Title: "T"})
	require.ErrorIs(t, err, journalsdk.ErrNotFound)

	_, err = session.ListPapers(context.Background())
	require.ErrorIs(t, err, journalsdk.ErrNotFound)
}

func TestSubmitPaper_ConcurrentIDsAreUnique(t *testing.T) {
	s := newTestServer(t, nil)
	ctx := context.Background()

	session, _, err := s.client.Register(ctx, journalsdk.RegisterRequest{Email: "a@x.com", Password: "pw1"})
	require.NoError(t, err)

	const n = 15
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		ids  = map[int]bool{}
		errs []error
	)
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p, err := session.SubmitPaper(ctx, journalsdk.SubmitPaperRequest{Title: "T"})
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)
				return
			}
			ids[p.ID] = true
		}()
	}
	wg.Wait()

	require.Empty(t, errs)
	require.Len(t, ids, n)
	for i := 1; i <= n; i++ {
		require.True(t, ids[i], "missing id %d", i)
	}
}

func TestReview(t *testing.T) {
	s := newTestServer(t, nil)
	ctx := context.Background()

	session, _, err := s.client.Register(ctx, journalsdk.RegisterRequest{Email: "rev@x.com", Password: "pw"})
	require.NoError(t, err)

	tests := []struct {
		name      string
		content   string
		wantPass  bool
		wantScore float64
		wantKey   string
	}{
		{"keyword present", "A theory of Recognition.", true, 9.2, "strengths"},
		{"golden ratio", "the golden ratio appears", true, 9.2, "strengths"},
		{"no keyword", "ordinary draft", false, 6.5, "major_issues"},
		{"empty content", "", false, 6.5, "major_issues"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := session.Review(ctx, tt.content)
			require.NoError(t, err)
			require.Equal(t, tt.wantPass, got.Passed)
			require.InDelta(t, tt.wantScore, got.Score, 0.001)
			require.NotEmpty(t, got.Feedback[tt.wantKey])
		})
	}
}

func TestReview_RequiresToken(t *testing.T) {
	s := newTestServer(t, nil)

	resp, body := s.do(t, http.MethodPost, "/api/gpt-review", "", `{"content":"recognition"}`)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, journalsdk.ErrorCodeInvalidToken, body["error"])
	require.NotEmpty(t, resp.Header.Get("WWW-Authenticate"))
}

func TestHealthEndpoints(t *testing.T) {
	s := newTestServer(t, nil)
	ctx := context.Background()

	h, err := s.client.Health(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", h.Status)
	require.Equal(t, "Journal backend is running", h.Message)

	live, err := s.client.GetLiveness(ctx)
	require.NoError(t, err)
	require.Equal(t, "test", live.Version)

	ready, err := s.client.GetReadiness(ctx)
	require.NoError(t, err)
	require.NotNil(t, ready.Checks)
	require.Equal(t, "ok", ready.Checks.Store)
}

// brokenStore fails every operation the way an unreachable disk or bucket
// would.
type brokenStore struct{}

func (brokenStore) Load(context.Context) (domain.Accounts, error) {
	return nil, errors.New("disk on fire")
}

func (brokenStore) Save(context.Context, domain.Accounts) error {
	return errors.New("disk on fire")
}

func (brokenStore) Ping(context.Context) error { return errors.New("disk on fire") }

func (brokenStore) Close() error { return nil }

func TestStorageUnavailable(t *testing.T) {
	s := newTestServer(t, brokenStore{})
	ctx := context.Background()

	_, _, err := s.client.Register(ctx, journalsdk.RegisterRequest{Email: "a@x.com", Password: "pw1"})
	require.ErrorIs(t, err, journalsdk.ErrStorageUnavailable)

	var apiErr *journalsdk.APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)

	_, _, err = s.client.Login(ctx, "a@x.com", "pw1")
	require.ErrorIs(t, err, journalsdk.ErrStorageUnavailable)

	_, err = s.client.GetReadiness(ctx)
	require.Error(t, err)

	h, err := s.client.Health(ctx)
	require.NoError(t, err, "/health does not touch storage")
	require.Equal(t, "ok", h.Status)
}
