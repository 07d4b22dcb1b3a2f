package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hoops-content-api/internal/config"
	"github.com/hoops-content-api/internal/models"
	"github.com/hoops-content-api/internal/service"
	"github.com/hoops-content-api/internal/validation"
	"github.com/rs/zerolog"
)

// ArticleHandler handles article endpoints
type ArticleHandler struct {
	services *service.Services
	cfg      *config.Config
	log      zerolog.Logger
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(services *service.Services, cfg *config.Config, log zerolog.Logger) *ArticleHandler {
	return &ArticleHandler{
		services: services,
		cfg:      cfg,
		log:      log.With().Str("handler", "article").Logger(),
	}
}

// ListArticles handles GET /v1/articles
func (h *ArticleHandler) ListArticles(c *gin.Context) {
	ctx := c.Request.Context()
	limit, offset := h.pagination(c)

	articles, err := h.services.Content.ListArticles(ctx, limit, offset)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list articles")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list articles"})
		return
	}
	if articles == nil {
		articles = []*models.Article{}
	}

	c.JSON(http.StatusOK, gin.H{"articles": articles, "count": len(articles)})
}

// ListByCategory handles GET /v1/categories/:slug/articles
func (h *ArticleHandler) ListByCategory(c *gin.Context) {
	ctx := c.Request.Context()
	limit, offset := h.pagination(c)

	articles, err := h.services.Content.ListByCategory(ctx, c.Param("slug"), limit, offset)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list articles by category")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list articles"})
		return
	}
	if articles == nil {
		articles = []*models.Article{}
	}

	c.JSON(http.StatusOK, gin.H{"articles": articles, "count": len(articles)})
}

// GetArticle handles GET /v1/articles/:slug
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	ctx := c.Request.Context()

	article, err := h.services.Content.GetArticle(ctx, c.Param("slug"))
	if err != nil {
		h.log.Error().Err(err).Str("slug", c.Param("slug")).Msg("Failed to get article")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get article"})
		return
	}
	if article == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
		return
	}

	c.JSON(http.StatusOK, article)
}

// CreateArticle handles POST /v1/articles
func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	ctx := c.Request.Context()

	var article models.Article
	if err := c.ShouldBindJSON(&article); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if errs := validation.ValidateArticle(&article); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	if err := h.services.Content.CreateArticle(ctx, &article); err != nil {
		h.log.Error().Err(err).Str("title", article.Title).Msg("Failed to create article")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create article"})
		return
	}

	c.JSON(http.StatusCreated, article)
}

// GetRelated handles GET /v1/articles/:slug/related
func (h *ArticleHandler) GetRelated(c *gin.Context) {
	ctx := c.Request.Context()

	limit := h.cfg.Content.RelatedLimit
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 50 {
			limit = n
		}
	}

	related, err := h.services.Content.Related(ctx, c.Param("slug"), limit)
	if err != nil {
		h.log.Error().Err(err).Str("slug", c.Param("slug")).Msg("Failed to get related articles")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get related articles"})
		return
	}
	if related == nil {
		related = []*models.Article{}
	}

	c.JSON(http.StatusOK, gin.H{"articles": related, "count": len(related)})
}

// TrackView handles POST /v1/articles/:slug/track-view. The response shape
// is consumed by client-side script and kept stable:
// {"success": true, "views": N} or {"success": false, "error": "..."}.
func (h *ArticleHandler) TrackView(c *gin.Context) {
	ctx := c.Request.Context()

	identity := service.ResolveIdentity(
		c.Request.Header,
		c.Request.RemoteAddr,
		c.GetHeader("X-User-ID"),
	)

	result, err := h.services.View.RecordView(
		ctx,
		c.Param("slug"),
		identity,
		time.Now(),
		c.Request.UserAgent(),
	)
	if err != nil {
		h.log.Error().Err(err).Str("slug", c.Param("slug")).Msg("Failed to record view")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to record view"})
		return
	}
	if result == nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "article not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "views": result.ViewCount})
}

func (h *ArticleHandler) pagination(c *gin.Context) (limit, offset int) {
	limit = h.cfg.Content.PageSize
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	if raw := c.Query("offset"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			offset = n
		}
	}
	return limit, offset
}
