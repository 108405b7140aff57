package handlers

import (
	"net/http"
	"time"

	"newsboard/internal/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionCookieName = "session"
	userIDCtxKey      = "userId"

	requestIDHeader = "X-Request-ID"
	loginPath       = "/login"
)

// identity resolves the session cookie to a user id once per request.
// Any failure (no cookie, bad signature, expired token, deleted user)
// leaves the request anonymous; it is never an error by itself.
func (h *Handler) identity(c *gin.Context) {
	token, err := c.Cookie(sessionCookieName)
	if err != nil || token == "" {
		c.Next()
		return
	}

	userID, err := h.services.ParseToken(token)
	if err != nil {
		c.Next()
		return
	}

	u, err := h.services.UserByID(c.Request.Context(), userID)
	if err != nil || u == nil {
		c.Next()
		return
	}

	c.Set(userIDCtxKey, u.ID)
	c.Next()
}

// loginRequired guards a route: anonymous callers are redirected to the
// login page instead of receiving a 401 body.
func (h *Handler) loginRequired(c *gin.Context) {
	if _, ok := c.Get(userIDCtxKey); !ok {
		c.Redirect(http.StatusFound, loginPath)
		c.Abort()
		return
	}
	c.Next()
}

// callerID returns the resolved user id, or 0 for anonymous callers.
func callerID(c *gin.Context) int {
	return c.GetInt(userIDCtxKey)
}

// requestLogger tags every request with an id and logs its outcome.
func (h *Handler) requestLogger(c *gin.Context) {
	requestID := c.GetHeader(requestIDHeader)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	c.Header(requestIDHeader, requestID)

	start := time.Now()
	c.Next()

	if h.log != nil {
		h.log.Infow("http_request",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

// respondError maps a service error onto the HTTP surface: JSON
// {"error": ...} with the matching status, except unauthenticated
// access which redirects to /login.
func (h *Handler) respondError(c *gin.Context, err error) {
	ae := apperror.From(err)
	if ae.Kind == apperror.Unauthenticated {
		c.Redirect(http.StatusFound, loginPath)
		c.Abort()
		return
	}
	if h.log != nil && ae.Kind == apperror.Internal {
		h.log.Errorw("request_failed", "err", err, "path", c.Request.URL.Path)
	}
	c.JSON(ae.StatusCode(), gin.H{"error": ae.Message})
}
