package handlers

import (
	"net/http"
	"strconv"

	"newsboard/internal/service"

	"github.com/gin-gonic/gin"
)

type newsRequest struct {
	Title     string `json:"title" binding:"required"`
	Content   string `json:"content" binding:"required"`
	IsPrivate bool   `json:"is_private"`
}

// newsIDParam parses the :id path segment; writes a 400 JSON on failure.
func (h *Handler) newsIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid news id"})
		return 0, false
	}
	return id, true
}

// @Summary      List visible news
// @Description  Public posts for everyone plus the caller's own, newest first.
// @Tags         news
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, news"
// @Failure      500  {object}  map[string]string
// @Router       / [get]
func (h *Handler) index(c *gin.Context) {
	news, err := h.services.News.List(c.Request.Context(), callerID(c))
	if err != nil {
		if h.log != nil {
			h.log.Errorw("news_list_failed", "err", err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load news"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count": len(news),
		"news":  news,
	})
}

// @Summary      Create a post
// @Tags         news
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]int
// @Failure      400  {object}  map[string]string
// @Router       /news [post]
func (h *Handler) createNews(c *gin.Context) {
	var input newsRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	id, err := h.services.News.Create(c.Request.Context(), callerID(c), service.NewsInput{
		Title:     input.Title,
		Content:   input.Content,
		IsPrivate: input.IsPrivate,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id})
}

// @Summary      Fetch an owned post
// @Description  Non-owned and nonexistent ids both answer 404.
// @Tags         news
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /news/{id} [get]
func (h *Handler) getNews(c *gin.Context) {
	id, ok := h.newsIDParam(c)
	if !ok {
		return
	}

	n, err := h.services.News.Get(c.Request.Context(), id, callerID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, n)
}

// @Summary      Edit an owned post
// @Tags         news
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /news/{id} [post]
func (h *Handler) updateNews(c *gin.Context) {
	id, ok := h.newsIDParam(c)
	if !ok {
		return
	}

	var input newsRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	err := h.services.News.Update(c.Request.Context(), id, callerID(c), service.NewsInput{
		Title:     input.Title,
		Content:   input.Content,
		IsPrivate: input.IsPrivate,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// @Summary      Delete an owned post
// @Tags         news
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /news_del/{id} [post]
func (h *Handler) deleteNews(c *gin.Context) {
	id, ok := h.newsIDParam(c)
	if !ok {
		return
	}

	if err := h.services.News.Delete(c.Request.Context(), id, callerID(c)); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
