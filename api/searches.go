package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/skyfare/flightbooking/internal/domain"
	"github.com/skyfare/flightbooking/internal/search"
)

type SearchHandler struct {
	engine search.Searcher
}

type recordSearchRequest struct {
	Origin          string `json:"origin" binding:"required"`
	Destination     string `json:"destination" binding:"required"`
	OriginCode      string `json:"origin_code" binding:"required"`
	DestinationCode string `json:"destination_code" binding:"required"`
	Date            string `json:"date" binding:"required"`
	Passengers      int    `json:"passengers" binding:"required,min=1"`
}

func NewSearchHandler(engine search.Searcher) *SearchHandler {
	return &SearchHandler{engine: engine}
}

func (h *SearchHandler) Register(router *gin.RouterGroup) {
	router.GET("/recent", h.recent)
	router.POST("/", h.record)
	router.DELETE("/recent", h.clear)
	router.GET("/popular", h.popular)
}

func (h *SearchHandler) recent(c *gin.Context) {
	searches, err := h.engine.RecentSearches(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, searches)
}

func (h *SearchHandler) record(c *gin.Context) {
	var req recordSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	err = h.engine.RecordSearch(c.Request.Context(), domain.RecentSearch{
		Origin:          req.Origin,
		Destination:     req.Destination,
		OriginCode:      req.OriginCode,
		DestinationCode: req.DestinationCode,
		Date:            date,
		Passengers:      req.Passengers,
		SearchedAt:      time.Now(),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *SearchHandler) clear(c *gin.Context) {
	if err := h.engine.ClearRecentSearches(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *SearchHandler) popular(c *gin.Context) {
	topN := 5
	if raw := c.Query("n"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid n"})
			return
		}
		topN = n
	}

	routes, err := h.engine.PopularRoutes(c.Request.Context(), topN)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, routes)
}
