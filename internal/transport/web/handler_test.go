package web

//go:generate moq -out auth_service_mock_test.go -pkg web . authService
//go:generate moq -out pad_service_mock_test.go -pkg web . padService
//go:generate moq -out note_service_mock_test.go -pkg web . noteService
//go:generate moq -out session_resolver_mock_test.go -pkg web . sessionResolver
//go:generate moq -out pad_batch_repo_mock_test.go -pkg web . padBatchRepo

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/notejam/internal/auth"
	"github.com/heartmarshall/notejam/internal/domain"
	"github.com/heartmarshall/notejam/internal/service/access"
	"github.com/heartmarshall/notejam/internal/transport/middleware"
)

const (
	testSessionCookie = "notejam_session"
	liveToken         = "live-token"
	testFlashSecret   = "test-flash-secret-at-least-32-characters"
)

var alice = &domain.User{ID: 1, Email: "alice@example.com"}

type fixture struct {
	auth     *authServiceMock
	pads     *padServiceMock
	notes    *noteServiceMock
	sessions *sessionResolverMock
	batch    *padBatchRepoMock
	handler  *Handler
	router   http.Handler
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newFlashStore() *FlashStore {
	return NewFlashStore(auth.NewFlashCodec(testFlashSecret, "notejam-test", FlashTTL), false, discardLogger())
}

// newFixture wires the real router, renderer and flash store around mocked
// services. liveToken resolves to alice; any other cookie is anonymous.
func newFixture(t *testing.T, opts ...func(*Options)) *fixture {
	t.Helper()

	render, err := NewTemplateRenderer()
	require.NoError(t, err)

	f := &fixture{
		auth: &authServiceMock{},
		pads: &padServiceMock{
			ListFunc: func(ctx context.Context, ownerID int64) ([]domain.Pad, error) {
				return nil, nil
			},
		},
		notes: &noteServiceMock{},
		sessions: &sessionResolverMock{
			ResolveFunc: func(ctx context.Context, rawToken string) (domain.Identity, error) {
				if rawToken == liveToken {
					return domain.Authenticated(alice), nil
				}
				return domain.Anonymous(), nil
			},
		},
		batch: &padBatchRepoMock{
			GetOwnedByIDsFunc: func(ctx context.Context, ownerID int64, ids []int64) ([]domain.Pad, error) {
				return nil, nil
			},
		},
	}

	o := Options{SessionCookie: testSessionCookie}
	for _, fn := range opts {
		fn(&o)
	}

	logger := discardLogger()
	f.handler = NewHandler(logger, f.auth, f.pads, f.notes, render, newFlashStore(), o)

	limiter := middleware.NewRateLimiter(time.Minute)
	t.Cleanup(limiter.Stop)

	f.router = NewRouter(RouterDeps{
		Handler:         f.handler,
		Sessions:        f.sessions,
		PadBatch:        f.batch,
		Limiter:         limiter,
		Logger:          logger,
		QueryTimeout:    5 * time.Second,
		SignInPerMinute: 5,
	})
	return f
}

// do sends a request through the full router. A non-nil form is sent as an
// urlencoded POST body.
func (f *fixture) do(t *testing.T, method, target string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func signedIn() *http.Cookie {
	return &http.Cookie{Name: testSessionCookie, Value: liveToken}
}

func responseCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

type stubLoader[T any] struct{ v T }

func (s stubLoader[T]) GetOwned(context.Context, int64, int64) (*T, error) {
	v := s.v
	return &v, nil
}

func ownedPad(t *testing.T, p domain.Pad) access.Owned[domain.Pad] {
	t.Helper()
	o, err := access.LoadOwned[domain.Pad](context.Background(), stubLoader[domain.Pad]{p}, access.KindPad, p.ID, p.UserID)
	require.NoError(t, err)
	return o
}

func ownedNote(t *testing.T, n domain.Note) access.Owned[domain.Note] {
	t.Helper()
	o, err := access.LoadOwned[domain.Note](context.Background(), stubLoader[domain.Note]{n}, access.KindNote, n.ID, n.UserID)
	require.NoError(t, err)
	return o
}

func int64Ptr(v int64) *int64 { return &v }
