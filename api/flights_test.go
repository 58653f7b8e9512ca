package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/skyfare/flightbooking/internal/domain"
	"github.com/skyfare/flightbooking/internal/search"
)

// MockSearcher is a mock implementation of search.Searcher.
type MockSearcher struct {
	mock.Mock
}

func (m *MockSearcher) Catalog() []domain.FlightOffer {
	args := m.Called()
	return args.Get(0).([]domain.FlightOffer)
}

func (m *MockSearcher) SearchByRoute(originCode, destinationCode string) []domain.FlightOffer {
	args := m.Called(originCode, destinationCode)
	return args.Get(0).([]domain.FlightOffer)
}

func (m *MockSearcher) CheapestForRoute(originCode, destinationCode string) *domain.FlightOffer {
	args := m.Called(originCode, destinationCode)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*domain.FlightOffer)
}

func (m *MockSearcher) FilterByText(query string) []domain.FlightOffer {
	args := m.Called(query)
	return args.Get(0).([]domain.FlightOffer)
}

func (m *MockSearcher) RecordSearch(ctx context.Context, s domain.RecentSearch) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSearcher) RecentSearches(ctx context.Context) ([]domain.RecentSearch, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.RecentSearch), args.Error(1)
}

func (m *MockSearcher) ClearRecentSearches(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSearcher) PopularRoutes(ctx context.Context, topN int) ([]search.RouteCount, error) {
	args := m.Called(ctx, topN)
	return args.Get(0).([]search.RouteCount), args.Error(1)
}

func TestFlightHandler_list(t *testing.T) {
	mockSearcher := &MockSearcher{}
	handler := NewFlightHandler(mockSearcher)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/flights", nil)

	offers := []domain.FlightOffer{
		{ID: 1001, OriginCode: "BOM", DestinationCode: "DEL", Carrier: "IndiGo", Fare: 4500},
	}
	mockSearcher.On("Catalog").Return(offers)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSearcher.AssertExpectations(t)
}

func TestFlightHandler_list_WithQuery(t *testing.T) {
	mockSearcher := &MockSearcher{}
	handler := NewFlightHandler(mockSearcher)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/flights?q=goa", nil)

	mockSearcher.On("FilterByText", "goa").Return([]domain.FlightOffer{})

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSearcher.AssertExpectations(t)
	mockSearcher.AssertNotCalled(t, "Catalog")
}

func TestFlightHandler_search(t *testing.T) {
	mockSearcher := &MockSearcher{}
	handler := NewFlightHandler(mockSearcher)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/flights/search?from=BOM&to=DEL", nil)

	offers := []domain.FlightOffer{
		{ID: 1001, OriginCode: "BOM", DestinationCode: "DEL", Fare: 3800},
	}
	mockSearcher.On("SearchByRoute", "BOM", "DEL").Return(offers)

	handler.search(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSearcher.AssertExpectations(t)
}

func TestFlightHandler_search_MissingParams(t *testing.T) {
	handler := NewFlightHandler(&MockSearcher{})

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/flights/search?from=BOM", nil)

	handler.search(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFlightHandler_cheapest_NotFound(t *testing.T) {
	mockSearcher := &MockSearcher{}
	handler := NewFlightHandler(mockSearcher)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/flights/cheapest?from=BOM&to=XXX", nil)

	mockSearcher.On("CheapestForRoute", "BOM", "XXX").Return(nil)

	handler.cheapest(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
