package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/skyfare/flightbooking/internal/domain"
	"github.com/skyfare/flightbooking/internal/search"
)

func TestSearchHandler_recent(t *testing.T) {
	mockSearcher := &MockSearcher{}
	handler := NewSearchHandler(mockSearcher)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/searches/recent", nil)

	mockSearcher.On("RecentSearches", c.Request.Context()).
		Return([]domain.RecentSearch{{OriginCode: "BOM", DestinationCode: "DEL"}}, nil)

	handler.recent(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSearcher.AssertExpectations(t)
}

func TestSearchHandler_record(t *testing.T) {
	mockSearcher := &MockSearcher{}
	handler := NewSearchHandler(mockSearcher)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest("POST", "/searches",
		`{"origin":"Mumbai","destination":"Delhi","origin_code":"BOM","destination_code":"DEL","date":"2026-09-15","passengers":2}`)

	mockSearcher.On("RecordSearch", mock.Anything, mock.MatchedBy(func(s domain.RecentSearch) bool {
		return s.OriginCode == "BOM" && s.DestinationCode == "DEL" && s.Passengers == 2
	})).Return(nil)

	handler.record(c)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, w.Code)
	mockSearcher.AssertExpectations(t)
}

func TestSearchHandler_record_BadDate(t *testing.T) {
	handler := NewSearchHandler(&MockSearcher{})

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest("POST", "/searches",
		`{"origin":"Mumbai","destination":"Delhi","origin_code":"BOM","destination_code":"DEL","date":"15/09/2026","passengers":2}`)

	handler.record(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchHandler_popular(t *testing.T) {
	mockSearcher := &MockSearcher{}
	handler := NewSearchHandler(mockSearcher)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/searches/popular?n=3", nil)

	mockSearcher.On("PopularRoutes", c.Request.Context(), 3).
		Return([]search.RouteCount{{Origin: "Mumbai", Destination: "Delhi", Count: 2}}, nil)

	handler.popular(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSearcher.AssertExpectations(t)
}

func TestSearchHandler_clear(t *testing.T) {
	mockSearcher := &MockSearcher{}
	handler := NewSearchHandler(mockSearcher)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("DELETE", "/searches/recent", nil)

	mockSearcher.On("ClearRecentSearches", c.Request.Context()).Return(nil)

	handler.clear(c)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, w.Code)
	mockSearcher.AssertExpectations(t)
}
