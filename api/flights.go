package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skyfare/flightbooking/internal/catalog"
	"github.com/skyfare/flightbooking/internal/search"
)

type FlightHandler struct {
	engine search.Searcher
}

func NewFlightHandler(engine search.Searcher) *FlightHandler {
	return &FlightHandler{engine: engine}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.GET("/search", h.search)
	router.GET("/cheapest", h.cheapest)
	router.GET("/routes", h.routes)
	router.GET("/price-range", h.priceRange)
	router.GET("/destinations", h.destinations)
}

// list returns the catalog, optionally narrowed by the q= text filter.
func (h *FlightHandler) list(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusOK, h.engine.Catalog())
		return
	}
	c.JSON(http.StatusOK, h.engine.FilterByText(query))
}

func (h *FlightHandler) search(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to are required"})
		return
	}
	c.JSON(http.StatusOK, h.engine.SearchByRoute(from, to))
}

func (h *FlightHandler) cheapest(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to are required"})
		return
	}

	offer := h.engine.CheapestForRoute(from, to)
	if offer == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no flights on this route"})
		return
	}
	c.JSON(http.StatusOK, offer)
}

func (h *FlightHandler) routes(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.Routes(h.engine.Catalog()))
}

func (h *FlightHandler) priceRange(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to are required"})
		return
	}

	min, max, ok := catalog.PriceRange(h.engine.Catalog(), from, to)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no flights on this route"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"min": min, "max": max})
}

func (h *FlightHandler) destinations(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.Destinations())
}
