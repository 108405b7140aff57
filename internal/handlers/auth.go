package handlers

import (
	"net/http"

	"newsboard/internal/service"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	About           string `json:"about"`
	Password        string `json:"password" binding:"required"`
	PasswordConfirm string `json:"password_confirm" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Remember bool   `json:"remember"`
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// Returns false if the request was already handled, true otherwise.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]int
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /register [post]
func (h *Handler) register(c *gin.Context) {
	var input registerRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	id, err := h.services.Register(c.Request.Context(), service.RegisterInput{
		Name:            input.Name,
		Email:           input.Email,
		About:           input.About,
		Password:        input.Password,
		PasswordConfirm: input.PasswordConfirm,
	})
	if err != nil {
		if h.log != nil {
			h.log.Infow("register_failed", "email", input.Email, "err", err)
		}
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id})
}

// @Summary      Log in
// @Description  Sets the session cookie. remember=true makes it persistent.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /login [post]
func (h *Handler) login(c *gin.Context) {
	var input loginRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	token, err := h.services.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		if h.log != nil {
			h.log.Infow("login_failed", "email", input.Email)
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid login or password"})
		return
	}

	// A session cookie by default; remember keeps it for the full token
	// lifetime.
	maxAge := 0
	if input.Remember {
		maxAge = h.cfg.SessionMaxAge
	}
	c.SetCookie(sessionCookieName, token, maxAge, "/", "", false, true)

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// @Summary      Log out
// @Tags         auth
// @Success      302
// @Router       /logout [get]
func (h *Handler) logout(c *gin.Context) {
	c.SetCookie(sessionCookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}
