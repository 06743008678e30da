package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nutrishop/backend/internal/domain"
	"github.com/nutrishop/backend/internal/usecase"
)

// ShoppingUsecase is the part of the shopping service used by the handlers
type ShoppingUsecase interface {
	Optimize(ctx context.Context, request *domain.OptimizeRequest) (*domain.OptimizationResult, error)
	Classify(needs []domain.ShoppingNeed) usecase.ClassifiedNeeds
	BuildShoppingList(plan usecase.MealPlan) ([]domain.ShoppingNeed, error)
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	shopping ShoppingUsecase
	logger   *zap.Logger
}

// NewHandler creates a new HTTP handler
func NewHandler(shopping ShoppingUsecase, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		shopping: shopping,
		logger:   logger,
	}
}

// classifyRequest is the body of POST /shopping/classify
type classifyRequest struct {
	Needs []domain.ShoppingNeed `json:"needs" binding:"required"`
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "nutrishop-backend",
		"version": "1.0.0",
	})
}

// OptimizeShopping handles shopping optimization requests
func (h *Handler) OptimizeShopping(c *gin.Context) {
	var request domain.OptimizeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Requête JSON invalide"})
		return
	}

	result, err := h.shopping.Optimize(c.Request.Context(), &request)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ClassifyNeeds splits needs into fresh and dry products
func (h *Handler) ClassifyNeeds(c *gin.Context) {
	var request classifyRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Requête JSON invalide"})
		return
	}

	c.JSON(http.StatusOK, h.shopping.Classify(request.Needs))
}

// BuildShoppingList aggregates the ingredients of a meal plan into needs
func (h *Handler) BuildShoppingList(c *gin.Context) {
	var plan usecase.MealPlan
	if err := c.ShouldBindJSON(&plan); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Requête JSON invalide"})
		return
	}

	needs, err := h.shopping.BuildShoppingList(plan)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": needs})
}

// respondError maps usecase errors to HTTP responses
func (h *Handler) respondError(c *gin.Context, err error) {
	status, message := statusForError(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed",
			zap.String("path", c.FullPath()),
			zap.String("request_id", c.GetString(requestIDKey)),
			zap.Error(err))
	}
	c.JSON(status, gin.H{
		"error":   message,
		"details": err.Error(),
	})
}

// statusForError returns the HTTP status and user-facing message for an error
func statusForError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrUnknownUnit):
		return http.StatusBadRequest, "Unité inconnue"
	case errors.Is(err, domain.ErrInvalidRequest):
		return http.StatusBadRequest, "Entrée invalide"
	case errors.Is(err, domain.ErrTooManyCombinations):
		return http.StatusUnprocessableEntity, "Trop de combinaisons de magasins, réduisez le nombre de magasins"
	case errors.Is(err, domain.ErrStoreNotFound):
		return http.StatusNotFound, "Magasin introuvable"
	case errors.Is(err, domain.ErrCatalogNotConfigured):
		return http.StatusServiceUnavailable, "Catalogue d'offres non configuré"
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return http.StatusGatewayTimeout, "Délai dépassé"
	case errors.Is(err, domain.ErrCatalogFailure):
		return http.StatusBadGateway, "Catalogue d'offres indisponible"
	default:
		return http.StatusInternalServerError, "Erreur inconnue"
	}
}
