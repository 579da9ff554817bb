package session

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/campusops/student-api/internal/core/domain"
	redisdb "github.com/campusops/student-api/internal/infrastructure/db/redis"
)

func newTestManager(t *testing.T) (*Manager, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	store := redisdb.NewSessionStore(client, time.Hour)
	return NewManager(store, "test-secret", time.Hour), mr
}

// sessionCookie extracts the session cookie from a recorded response.
func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == CookieName {
			return cookie
		}
	}
	return nil
}

func TestManager_LazyCreation(t *testing.T) {
	m, mr := newTestManager(t)

	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/", func(c echo.Context) error {
		// Reads don't persist anything.
		if Get(c).Authenticated() {
			t.Fatalf("fresh session must not be authenticated")
		}
		return c.NoContent(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if sessionCookie(t, rec) != nil {
		t.Fatalf("read-only request must not set a session cookie")
	}
	if keys := mr.Keys(); len(keys) != 0 {
		t.Fatalf("read-only request must not touch the store, found keys %v", keys)
	}
}

func TestManager_WritePersistsAndSetsCookie(t *testing.T) {
	m, mr := newTestManager(t)

	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/", func(c echo.Context) error {
		return Get(c).SetProfile(c.Request().Context(), domain.Profile{Name: "n", Role: "r"})
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	cookie := sessionCookie(t, rec)
	if cookie == nil {
		t.Fatalf("expected session cookie after write")
	}
	if !cookie.HttpOnly {
		t.Fatalf("session cookie must be http-only")
	}
	if cookie.MaxAge != 3600 {
		t.Fatalf("expected 1h max age, got %d", cookie.MaxAge)
	}
	// The cookie carries a signed token, not a raw id.
	if strings.Count(cookie.Value, ".") != 2 {
		t.Fatalf("cookie value is not a signed token: %q", cookie.Value)
	}
	if _, err := parseToken([]byte("test-secret"), cookie.Value); err != nil {
		t.Fatalf("cookie token does not verify: %v", err)
	}
	if len(mr.Keys()) != 1 {
		t.Fatalf("expected one session key, got %v", mr.Keys())
	}
}

func TestManager_ViewCountAcrossRequests(t *testing.T) {
	m, _ := newTestManager(t)

	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/view-count", func(c echo.Context) error {
		n, err := Get(c).IncrementViewCount(c.Request().Context())
		if err != nil {
			return err
		}
		return c.String(http.StatusOK, fmt.Sprintf("%d", n))
	})

	var cookie *http.Cookie
	for want := 1; want <= 4; want++ {
		req := httptest.NewRequest(http.MethodGet, "/view-count", nil)
		if cookie != nil {
			req.AddCookie(cookie)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		if rec.Body.String() != fmt.Sprintf("%d", want) {
			t.Fatalf("call %d: expected body %d, got %q", want, want, rec.Body.String())
		}
		if c := sessionCookie(t, rec); c != nil {
			cookie = c
		}
	}
}

func TestManager_TamperedCookieGetsFreshSession(t *testing.T) {
	m, _ := newTestManager(t)

	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/view-count", func(c echo.Context) error {
		n, err := Get(c).IncrementViewCount(c.Request().Context())
		if err != nil {
			return err
		}
		return c.String(http.StatusOK, fmt.Sprintf("%d", n))
	})

	req := httptest.NewRequest(http.MethodGet, "/view-count", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	cookie := sessionCookie(t, rec)
	if cookie == nil {
		t.Fatalf("expected session cookie")
	}

	tampered := *cookie
	tampered.Value = cookie.Value[:len(cookie.Value)-2] + "xx"
	req = httptest.NewRequest(http.MethodGet, "/view-count", nil)
	req.AddCookie(&tampered)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("tampered cookie must not error, got %d", rec.Code)
	}
	if rec.Body.String() != "1" {
		t.Fatalf("tampered cookie must start a fresh session, got count %q", rec.Body.String())
	}
}

func TestManager_Destroy(t *testing.T) {
	m, mr := newTestManager(t)

	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/set", func(c echo.Context) error {
		return Get(c).SetProfile(c.Request().Context(), domain.Profile{Name: "n"})
	})
	e.GET("/destroy", func(c echo.Context) error {
		if err := Get(c).Destroy(c.Request().Context()); err != nil {
			return err
		}
		return c.NoContent(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/set", nil))
	cookie := sessionCookie(t, rec)
	if cookie == nil || len(mr.Keys()) != 1 {
		t.Fatalf("precondition failed: session not persisted")
	}

	req := httptest.NewRequest(http.MethodGet, "/destroy", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if len(mr.Keys()) != 0 {
		t.Fatalf("expected store emptied, found keys %v", mr.Keys())
	}
	cleared := sessionCookie(t, rec)
	if cleared == nil || cleared.MaxAge >= 0 {
		t.Fatalf("expected expired session cookie, got %+v", cleared)
	}
}

func TestManager_LogoutKeepsCounters(t *testing.T) {
	m, _ := newTestManager(t)

	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/login", func(c echo.Context) error {
		return Get(c).BindUser(c.Request().Context(), &domain.User{ID: "u1", Role: domain.RoleAdmin})
	})
	e.GET("/bump", func(c echo.Context) error {
		_, err := Get(c).IncrementVisited(c.Request().Context())
		return err
	})
	e.GET("/logout", func(c echo.Context) error {
		return Get(c).ClearUser(c.Request().Context())
	})
	e.GET("/check", func(c echo.Context) error {
		st := Get(c)
		if st.Authenticated() || st.IsAdmin() {
			t.Fatalf("identity must be cleared after logout")
		}
		if st.Session().Visited != 1 {
			t.Fatalf("counters must survive logout, got %d", st.Session().Visited)
		}
		return c.NoContent(http.StatusOK)
	})

	var cookie *http.Cookie
	for _, path := range []string{"/login", "/bump", "/logout", "/check"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if cookie != nil {
			req.AddCookie(cookie)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK && rec.Code != http.StatusNoContent {
			t.Fatalf("%s: unexpected status %d", path, rec.Code)
		}
		if c := sessionCookie(t, rec); c != nil {
			cookie = c
		}
	}
}
