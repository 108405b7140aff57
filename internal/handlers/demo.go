package handlers

import (
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	visitCookieName   = "visit_count"
	counterCookieName = "visit_token"

	uploadedFileName = "loaded.png"

	visitCookieMaxAge   = 60 * 60 * 24 * 365 * 2 // two years
	counterCookieMaxAge = 60 * 60 * 24 * 31      // 31 days
	visitCookieCap      = 20
	counterCap          = 3
)

// @Summary      Current weather for a city
// @Tags         demo
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        town  formData  string  true  "City name"
// @Success      200  {object}  map[string]interface{}
// @Failure      502  {object}  map[string]string
// @Router       /weather_form [post]
func (h *Handler) weather(c *gin.Context) {
	town := c.PostForm("town")

	report, err := h.services.Weather.Current(c.Request.Context(), town)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("weather_lookup_failed", "town", town, "err", err)
		}
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// formSample saves the uploaded file to a fixed path and echoes the
// submitted form fields back.
func (h *Handler) formSample(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	dst := filepath.Join(h.cfg.UploadDir, uploadedFileName)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		if h.log != nil {
			h.log.Errorw("upload_save_failed", "dst", dst, "err", err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file"})
		return
	}

	fields := map[string]string{}
	if form := c.Request.MultipartForm; form != nil {
		for k, v := range form.Value {
			if len(v) > 0 {
				fields[k] = v[0]
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{"data": fields})
}

// cookieTest counts visits in a plain, client-visible cookie.
func (h *Handler) cookieTest(c *gin.Context) {
	count := 0
	if raw, err := c.Cookie(visitCookieName); err == nil {
		count, _ = strconv.Atoi(raw)
	}

	switch {
	case count > visitCookieCap:
		c.SetCookie(visitCookieName, "", -1, "/", "", false, false)
		c.String(http.StatusOK, "visit number %d", count+1)
	case count > 0:
		c.SetCookie(visitCookieName, strconv.Itoa(count+1), visitCookieMaxAge, "/", "", false, false)
		c.String(http.StatusOK, "visit number %d", count+1)
	default:
		c.SetCookie(visitCookieName, "1", visitCookieMaxAge, "/", "", false, false)
		c.String(http.StatusOK, "first visit in two years")
	}
}

// sessionTest counts visits in a signed cookie, the same mechanism as
// the login session.
func (h *Handler) sessionTest(c *gin.Context) {
	count := 0
	if raw, err := c.Cookie(counterCookieName); err == nil && raw != "" {
		count, _ = h.services.ParseVisitCount(raw)
	}
	count++

	if count > counterCap {
		c.SetCookie(counterCookieName, "", -1, "/", "", false, true)
	} else {
		token, err := h.services.IssueVisitCount(count)
		if err != nil {
			if h.log != nil {
				h.log.Errorw("visit_token_issue_failed", "err", err)
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue counter"})
			return
		}
		c.SetCookie(counterCookieName, token, counterCookieMaxAge, "/", "", false, true)
	}

	c.String(http.StatusOK, "visit number %d", count)
}
