package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"streaming-service.backend/internal/domain/entities"
	domainerrors "streaming-service.backend/internal/domain/errors"
	"streaming-service.backend/internal/interfaces/http/middleware"
	"streaming-service.backend/internal/interfaces/http/response"
	"streaming-service.backend/internal/usecases"
	"streaming-service.backend/pkg/logger"
)

const defaultSeedRunsLimit = 20

// UpdateSubscriptionRequest is the body of a subscription change
type UpdateSubscriptionRequest struct {
	SubscriptionType string `json:"subscriptionType" binding:"required"`
}

// InsertReviewsRequest is the optional body of a review insert
type InsertReviewsRequest struct {
	Count int `json:"count"`
}

// AdminHandler serves the mutating admin endpoints
type AdminHandler struct {
	analyticsUsecase *usecases.AnalyticsUsecase
	seedUsecase      *usecases.SeedUsecase
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(analyticsUsecase *usecases.AnalyticsUsecase, seedUsecase *usecases.SeedUsecase) *AdminHandler {
	return &AdminHandler{
		analyticsUsecase: analyticsUsecase,
		seedUsecase:      seedUsecase,
	}
}

// UpdateSubscription moves a user to another tier
// PUT /api/v1/admin/users/:id/subscription
func (h *AdminHandler) UpdateSubscription(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid user ID"))
		return
	}

	var input UpdateSubscriptionRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	updated, err := h.analyticsUsecase.UpdateUserSubscription(c.Request.Context(), userID, input.SubscriptionType)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, updated)
}

// CreateReviewsTable recreates the reviews table
// POST /api/v1/admin/reviews/table
func (h *AdminHandler) CreateReviewsTable(c *gin.Context) {
	if err := h.analyticsUsecase.CreateReviewsTable(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"table": "user_reviews"})
}

// InsertReviews inserts random reviews and returns the table
// POST /api/v1/admin/reviews
func (h *AdminHandler) InsertReviews(c *gin.Context) {
	var input InsertReviewsRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			response.Error(c, domainerrors.BadRequest(err.Error()))
			return
		}
	}

	reviews, err := h.analyticsUsecase.InsertRandomReviews(c.Request.Context(), input.Count)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"items": reviews})
}

// Seed generates and loads a dataset
// POST /api/v1/admin/seed
func (h *AdminHandler) Seed(c *gin.Context) {
	var input entities.SeedInput
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			response.Error(c, domainerrors.BadRequest(err.Error()))
			return
		}
	}

	subject, _ := middleware.GetSubject(c)
	logger.Info(c.Request.Context(), "Seed requested",
		zap.String("subject", subject),
		zap.Int("users", input.Users),
		zap.Bool("truncate", input.Truncate),
	)

	run, err := h.seedUsecase.Run(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, run)
}

// Truncate empties the seeded tables
// POST /api/v1/admin/truncate
func (h *AdminHandler) Truncate(c *gin.Context) {
	if err := h.seedUsecase.Truncate(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"truncated": true})
}

// ListSeedRuns lists the most recent seed runs
// GET /api/v1/admin/seed-runs?limit=
func (h *AdminHandler) ListSeedRuns(c *gin.Context) {
	limit := defaultSeedRunsLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			response.Error(c, domainerrors.BadRequest("limit must be a positive integer"))
			return
		}
		limit = parsed
	}

	runs, err := h.seedUsecase.ListRuns(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": runs})
}
