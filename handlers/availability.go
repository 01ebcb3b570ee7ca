package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	catalogRepo "fixora/database/repository/catalog"
	"fixora/models"
	"fixora/services/availability"
	"fixora/utils"
)

// AvailabilityHandler exposes the matching engine over HTTP.
type AvailabilityHandler struct {
	Svc     availability.Service
	Catalog catalogRepo.CatalogRepository
	Cache   *redis.Client
	Logger  *zap.Logger
}

// NewAvailabilityHandler constructs an AvailabilityHandler.
func NewAvailabilityHandler(svc availability.Service, catalog catalogRepo.CatalogRepository, cache *redis.Client, logger *zap.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{Svc: svc, Catalog: catalog, Cache: cache, Logger: logger}
}

// FindOffers answers a MatchQuery with a priced, availability-checked offer
// list. Results are cached briefly per query fingerprint.
func (h *AvailabilityHandler) FindOffers(c *gin.Context) {
	var query models.MatchQuery
	if err := c.ShouldBindJSON(&query); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid query", err.Error())
		return
	}

	queryID := uuid.New().String()
	c.Header("X-Query-ID", queryID)

	cacheKey := utils.OfferCachePrefix + utils.QueryFingerprint(query)
	if cached, err := h.Cache.Get(c.Request.Context(), cacheKey).Result(); err == nil {
		var result models.OfferResult
		if json.Unmarshal([]byte(cached), &result) == nil {
			c.JSON(http.StatusOK, result)
			return
		}
	}

	result, err := h.Svc.FindAvailableOffers(c.Request.Context(), query)
	if err != nil {
		if availability.IsRetryable(err) {
			utils.JSONRetryableError(c, http.StatusServiceUnavailable, "availability lookup failed", err.Error())
			return
		}
		utils.JSONError(c, http.StatusBadRequest, "availability query rejected", err.Error())
		return
	}

	h.Logger.Info("availability query served",
		zap.String("queryID", queryID),
		zap.Int("offers", len(result.Offers)),
		zap.Bool("verified", result.Verified))

	if data, err := json.Marshal(result); err == nil {
		// Best effort: a cache write failure never fails the request.
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = h.Cache.Set(ctx, cacheKey, data, utils.OfferCacheTTL).Err()
	}

	c.JSON(http.StatusOK, result)
}

// CompanyAvailability returns the per-company verdict used for slot-picker
// messaging.
func (h *AvailabilityHandler) CompanyAvailability(c *gin.Context) {
	companyID := c.Param("companyID")
	serviceType := c.Query("service")
	date := c.Query("date")
	slotLabel := c.Query("slot")
	if serviceType == "" || date == "" || slotLabel == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing parameters", "service, date and slot are required")
		return
	}

	verdict, err := h.Svc.CompanyAvailability(c.Request.Context(), companyID, serviceType, date, slotLabel)
	if err != nil {
		utils.JSONRetryableError(c, http.StatusServiceUnavailable, "company availability failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, verdict)
}

// ResolveToken resolves one opaque service token against a company or
// category scope.
func (h *AvailabilityHandler) ResolveToken(c *gin.Context) {
	var input struct {
		Token      string `json:"token" binding:"required"`
		CompanyID  string `json:"companyId,omitempty"`
		CategoryID string `json:"categoryId,omitempty"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	var (
		candidates []models.ServiceCatalogEntry
		err        error
	)
	switch {
	case input.CompanyID != "":
		candidates, err = h.Catalog.ListByCompany(c.Request.Context(), input.CompanyID, true)
	case input.CategoryID != "":
		candidates, err = h.Catalog.ListByCategory(c.Request.Context(), input.CategoryID, true)
	default:
		utils.JSONError(c, http.StatusBadRequest, "missing scope", "companyId or categoryId is required")
		return
	}
	if err != nil {
		utils.JSONRetryableError(c, http.StatusServiceUnavailable, "catalog fetch failed", err.Error())
		return
	}

	entry := h.Svc.ResolveServiceToken(input.Token, candidates)
	if entry == nil {
		utils.JSONError(c, http.StatusNotFound, "token not resolved", input.Token)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// HealthHandler reports the latest store/cache health snapshot.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, utils.GetHealthStatus())
}
