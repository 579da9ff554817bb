// Package session implements the cookie-backed session lifecycle: an opaque
// id stored server-side, delivered to the client inside a signed cookie, and
// created lazily on the first write to session state.
package session

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/campusops/student-api/internal/core/domain"
	"github.com/campusops/student-api/internal/core/ports"
)

// CookieName is the session cookie. Its value is a signed token carrying the
// session id, not the id itself.
const CookieName = "sid"

const contextKey = "session"

// Manager resolves sessions from cookies and hands out per-request State.
type Manager struct {
	store  ports.SessionStore
	secret []byte
	ttl    time.Duration
}

func NewManager(store ports.SessionStore, secret string, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Manager{store: store, secret: []byte(secret), ttl: ttl}
}

// Middleware resolves the visitor's session before every handler. A missing,
// tampered or expired cookie gets a fresh in-memory session; nothing touches
// the store until a handler writes to the session.
func (m *Manager) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			st, err := m.resolve(c)
			if err != nil {
				return err
			}
			c.Set(contextKey, st)
			return next(c)
		}
	}
}

func (m *Manager) resolve(c echo.Context) (*State, error) {
	cookie, err := c.Cookie(CookieName)
	if err == nil {
		id, perr := parseToken(m.secret, cookie.Value)
		if perr == nil {
			sess, ferr := m.store.Find(c.Request().Context(), id)
			if ferr == nil {
				return &State{mgr: m, c: c, sess: sess, persisted: true}, nil
			}
			if !errors.Is(ferr, domain.ErrSessionNotFound) {
				return nil, ferr
			}
		}
	}

	return &State{
		mgr:  m,
		c:    c,
		sess: &domain.Session{ID: uuid.NewString()},
	}, nil
}

// Get returns the State installed by Middleware. It panics when called on a
// route that is not behind the session middleware.
func Get(c echo.Context) *State {
	st, ok := c.Get(contextKey).(*State)
	if !ok {
		panic("session: route not behind session middleware")
	}
	return st
}

// State is the per-request view of a session. Mutations write through to the
// store immediately and set the cookie on the response the first time the
// session is persisted.
type State struct {
	mgr       *Manager
	c         echo.Context
	sess      *domain.Session
	persisted bool
}

// Session exposes the current session values.
func (s *State) Session() *domain.Session { return s.sess }

func (s *State) UserID() string      { return s.sess.UserID }
func (s *State) Authenticated() bool { return s.sess.Authenticated() }
func (s *State) IsAdmin() bool       { return s.sess.IsAdmin() }

// BindUser attaches an authenticated account to the session. The role rides
// along with the identity; it is the only way a session gains capabilities.
func (s *State) BindUser(ctx context.Context, user *domain.User) error {
	s.sess.UserID = user.ID
	s.sess.Role = user.Role
	return s.save(ctx)
}

// ClearUser detaches the user identity and its role. Profile data and
// counters survive, matching the logout contract.
func (s *State) ClearUser(ctx context.Context) error {
	s.sess.UserID = ""
	s.sess.Role = ""
	return s.save(ctx)
}

// SetProfile stores the demo profile object under the session's user slot.
func (s *State) SetProfile(ctx context.Context, p domain.Profile) error {
	s.sess.Profile = &p
	return s.save(ctx)
}

// IncrementVisited bumps the visited counter atomically in the store.
func (s *State) IncrementVisited(ctx context.Context) (int64, error) {
	n, err := s.mgr.store.IncrementVisited(ctx, s.sess.ID)
	if err != nil {
		return 0, err
	}
	s.sess.Visited = n
	s.ensureCookie()
	return n, nil
}

// IncrementViewCount bumps the view counter atomically in the store.
func (s *State) IncrementViewCount(ctx context.Context) (int64, error) {
	n, err := s.mgr.store.IncrementViewCount(ctx, s.sess.ID)
	if err != nil {
		return 0, err
	}
	s.sess.ViewCount = n
	s.ensureCookie()
	return n, nil
}

// Destroy deletes the server-side state and expires the cookie client-side.
func (s *State) Destroy(ctx context.Context) error {
	if err := s.mgr.store.Delete(ctx, s.sess.ID); err != nil {
		return err
	}
	s.c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	s.sess = &domain.Session{ID: uuid.NewString()}
	s.persisted = false
	return nil
}

func (s *State) save(ctx context.Context) error {
	if err := s.mgr.store.Save(ctx, s.sess); err != nil {
		return err
	}
	s.ensureCookie()
	return nil
}

func (s *State) ensureCookie() {
	if s.persisted {
		return
	}

	token, err := signToken(s.mgr.secret, s.sess.ID, s.mgr.ttl)
	if err != nil {
		// Signing only fails on a broken secret; the session stays
		// server-side-only for this request.
		return
	}
	s.c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.mgr.ttl.Seconds()),
		HttpOnly: true,
		Secure:   false,
	})
	s.persisted = true
}
