package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campusops/student-api/internal/api/metrics"
	"github.com/campusops/student-api/internal/api/session"
	"github.com/campusops/student-api/internal/core/domain"
)

// customCookieName is the demo cookie set alongside the session cookie.
const customCookieName = "customCookie"

const customCookieValue = "This is a custom cookie value"

// SessionHandler exposes the session/cookie demonstration endpoints. These
// leak session state back to the client on purpose; they exist to exercise
// the session lifecycle and are not production surface.
type SessionHandler struct {
	cookieMaxAge int
}

// NewSessionHandler creates a SessionHandler whose demo cookie lives for
// cookieMaxAge seconds.
func NewSessionHandler(cookieMaxAge int) *SessionHandler {
	if cookieMaxAge <= 0 {
		cookieMaxAge = 3600
	}
	return &SessionHandler{cookieMaxAge: cookieMaxAge}
}

type sessionSnapshot struct {
	User      *domain.Profile `json:"user,omitempty"`
	Visited   int64           `json:"visited"`
	ViewCount int64           `json:"view_count"`
}

type setSessionResponse struct {
	Message     string          `json:"message"`
	SessionData sessionSnapshot `json:"sessionData"`
}

// Set handles GET /set-session-cookie: stores a fixed profile in the
// session, bumps the visited counter and sets the custom cookie. Unlike the
// surface it descends from, it grants no privileges: the admin capability
// only ever comes from a logged-in admin account.
func (h *SessionHandler) Set(c echo.Context) error {
	st := session.Get(c)
	ctx := c.Request().Context()

	if err := st.SetProfile(ctx, domain.Profile{Name: "Quratulan Ilyas", Role: "Student"}); err != nil {
		return err
	}
	if _, err := st.IncrementVisited(ctx); err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     customCookieName,
		Value:    customCookieValue,
		Path:     "/",
		MaxAge:   h.cookieMaxAge,
		HttpOnly: true,
		Secure:   false,
	})

	sess := st.Session()
	return c.JSON(http.StatusOK, setSessionResponse{
		Message: "session and cookie set successfully",
		SessionData: sessionSnapshot{
			User:      sess.Profile,
			Visited:   sess.Visited,
			ViewCount: sess.ViewCount,
		},
	})
}

type getSessionResponse struct {
	Session      any    `json:"session"`
	VisitedCount int64  `json:"visitedCount"`
	Cookie       string `json:"cookie"`
}

// Get handles GET /get-session-cookie: reads back the profile, the visited
// counter and the custom cookie, substituting sentinels when absent.
func (h *SessionHandler) Get(c echo.Context) error {
	sess := session.Get(c).Session()

	resp := getSessionResponse{
		Session:      any("No session data found"),
		VisitedCount: sess.Visited,
		Cookie:       "No cookie found",
	}
	if sess.Profile != nil {
		resp.Session = sess.Profile
	}
	if cookie, err := c.Cookie(customCookieName); err == nil {
		resp.Cookie = cookie.Value
	}

	return c.JSON(http.StatusOK, resp)
}

// Destroy handles GET /destroy-session-cookie: deletes the server-side
// session and expires both cookies on the client.
func (h *SessionHandler) Destroy(c echo.Context) error {
	if err := session.Get(c).Destroy(c.Request().Context()); err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     customCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	metrics.SessionsDestroyedTotal.Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "session and cookies cleared successfully"})
}

// ViewCount handles GET /view-count: increments the per-session counter
// atomically and reports it as plain text.
func (h *SessionHandler) ViewCount(c echo.Context) error {
	n, err := session.Get(c).IncrementViewCount(c.Request().Context())
	if err != nil {
		return err
	}
	return c.String(http.StatusOK, fmt.Sprintf("You have visited this page %d times.", n))
}
