package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/blog-cms-api/internal/models"
	"github.com/blog-cms-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ArticleHandler handles article endpoints
type ArticleHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(services *service.Services, log zerolog.Logger) *ArticleHandler {
	return &ArticleHandler{
		services: services,
		log:      log.With().Str("handler", "article").Logger(),
	}
}

// ListArticles handles GET /v1/articles
// An optional ?search= query filters by case-insensitive substring match
// against title and tags.
func (h *ArticleHandler) ListArticles(c *gin.Context) {
	search := c.Query("search")

	articles, err := h.services.Article.List(c.Request.Context(), search)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list articles")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list articles"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"articles": articles,
		"total":    len(articles),
	})
}

// CreateArticle handles POST /v1/articles
func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	var input models.ArticleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	// The store accepts any title; empty titles are rejected at this
	// boundary the same way the article form does.
	if strings.TrimSpace(input.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title must not be empty"})
		return
	}

	article, err := h.services.Article.Create(c.Request.Context(), &input)
	if err != nil {
		if errors.Is(err, models.ErrDuplicateSlug) {
			c.JSON(http.StatusConflict, gin.H{
				"error": "an article with this slug already exists, choose a different title",
			})
			return
		}
		h.log.Error().Err(err).Msg("Failed to create article")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create article"})
		return
	}

	c.JSON(http.StatusCreated, article)
}

// GetArticle handles GET /v1/articles/:id
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid article id"})
		return
	}

	article, err := h.services.Article.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
			return
		}
		h.log.Error().Err(err).Int64("id", id).Msg("Failed to get article")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get article"})
		return
	}

	c.JSON(http.StatusOK, article)
}

// UpdateArticle handles PUT /v1/articles/:id
func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid article id"})
		return
	}

	var input models.ArticleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if strings.TrimSpace(input.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title must not be empty"})
		return
	}

	article, err := h.services.Article.Update(c.Request.Context(), id, &input)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
		case errors.Is(err, models.ErrDuplicateSlug):
			c.JSON(http.StatusConflict, gin.H{
				"error": "an article with this slug already exists, choose a different title",
			})
		default:
			h.log.Error().Err(err).Int64("id", id).Msg("Failed to update article")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update article"})
		}
		return
	}

	c.JSON(http.StatusOK, article)
}

// PreviewSlug handles GET /v1/slug
// Returns the slug that would be derived from the given title, so clients
// can show it while the title is being typed.
func (h *ArticleHandler) PreviewSlug(c *gin.Context) {
	title := c.Query("title")
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title query parameter is required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"title": title,
		"slug":  h.services.Article.Slug(title),
	})
}
