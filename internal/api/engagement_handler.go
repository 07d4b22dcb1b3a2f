package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hoops-content-api/internal/models"
	"github.com/hoops-content-api/internal/service"
	"github.com/hoops-content-api/internal/validation"
	"github.com/rs/zerolog"
)

// EngagementHandler handles newsletter and comment endpoints
type EngagementHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewEngagementHandler creates a new EngagementHandler
func NewEngagementHandler(services *service.Services, log zerolog.Logger) *EngagementHandler {
	return &EngagementHandler{
		services: services,
		log:      log.With().Str("handler", "engagement").Logger(),
	}
}

// Subscribe handles POST /v1/newsletter. Shares the AJAX response shape
// with the track-view endpoint.
func (h *EngagementHandler) Subscribe(c *gin.Context) {
	ctx := c.Request.Context()

	var req struct {
		Email string `json:"email" form:"email"`
	}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "email is required"})
		return
	}

	if errs := validation.ValidateSignup(req.Email); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": errs[0].Message})
		return
	}

	result, err := h.services.Engagement.Subscribe(ctx, req.Email)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to process newsletter signup")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "signup failed, please try again"})
		return
	}

	if !result.Created {
		c.JSON(http.StatusOK, gin.H{"success": false, "error": result.Message})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": result.Message})
}

// AddComment handles POST /v1/articles/:slug/comments
func (h *EngagementHandler) AddComment(c *gin.Context) {
	ctx := c.Request.Context()

	var req struct {
		AuthorName string  `json:"author_name"`
		Body       string  `json:"body"`
		ParentID   *string `json:"parent_id,omitempty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if errs := validation.ValidateComment(req.AuthorName, req.Body); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	comment := &models.Comment{
		AuthorName: req.AuthorName,
		Body:       req.Body,
		ParentID:   req.ParentID,
	}
	created, err := h.services.Engagement.AddComment(ctx, c.Param("slug"), comment)
	if err != nil {
		h.log.Error().Err(err).Str("slug", c.Param("slug")).Msg("Failed to add comment")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add comment"})
		return
	}
	if created == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ListComments handles GET /v1/articles/:slug/comments
func (h *EngagementHandler) ListComments(c *gin.Context) {
	ctx := c.Request.Context()

	comments, err := h.services.Engagement.ListComments(ctx, c.Param("slug"))
	if err != nil {
		h.log.Error().Err(err).Str("slug", c.Param("slug")).Msg("Failed to list comments")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list comments"})
		return
	}
	if comments == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments, "count": len(comments)})
}
