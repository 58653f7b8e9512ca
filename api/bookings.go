package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/skyfare/flightbooking/internal/domain"
	"github.com/skyfare/flightbooking/internal/service/booking"
)

type BookingHandler struct {
	manager *booking.Manager
	service *booking.Service
	payment *booking.PaymentSimulator
}

type searchRequest struct {
	Origin      string `json:"origin" binding:"required"`
	Destination string `json:"destination" binding:"required"`
	Date        string `json:"date"`
	Passengers  int    `json:"passengers"`
}

type selectFlightRequest struct {
	OfferID int `json:"offer_id" binding:"required"`
}

type passengerRequest struct {
	Title           string   `json:"title"`
	FirstName       string   `json:"first_name"`
	LastName        string   `json:"last_name"`
	DateOfBirth     string   `json:"date_of_birth"`
	Gender          string   `json:"gender"`
	Nationality     string   `json:"nationality"`
	PassportNumber  string   `json:"passport_number"`
	PassportExpiry  string   `json:"passport_expiry"`
	SpecialRequests []string `json:"special_requests"`
}

type contactRequest struct {
	Email               string `json:"email" binding:"required"`
	Phone               string `json:"phone" binding:"required"`
	EmergencyName       string `json:"emergency_name"`
	EmergencyPhone      string `json:"emergency_phone"`
	SpecialRequirements string `json:"special_requirements"`
}

type promoRequest struct {
	Code string `json:"code" binding:"required"`
}

type filterRequest struct {
	Query string `json:"query"`
}

type sessionResponse struct {
	Token      string              `json:"token"`
	State      domain.BookingState `json:"state"`
	Passengers int                 `json:"passengers"`
	TotalPrice int                 `json:"total_price"`
	Reference  string              `json:"reference,omitempty"`
}

func NewBookingHandler(manager *booking.Manager, service *booking.Service, payment *booking.PaymentSimulator) *BookingHandler {
	return &BookingHandler{manager: manager, service: service, payment: payment}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.GET("/history", h.history)

	sessions := router.Group("/sessions")
	sessions.POST("/", h.create)
	sessions.GET("/:token", h.get)
	sessions.DELETE("/:token", h.remove)
	sessions.POST("/:token/search", h.search)
	sessions.POST("/:token/filter", h.submitFilter)
	sessions.GET("/:token/filter", h.filterResults)
	sessions.POST("/:token/flight", h.selectFlight)
	sessions.POST("/:token/passengers", h.addPassenger)
	sessions.PUT("/:token/contact", h.setContact)
	sessions.POST("/:token/promo", h.applyPromo)
	sessions.POST("/:token/payment", h.proceedToPayment)
	sessions.POST("/:token/complete", h.complete)
	sessions.POST("/:token/reset", h.reset)
	sessions.POST("/:token/new-search", h.startNewSearch)
}

func (h *BookingHandler) create(c *gin.Context) {
	session := h.manager.Create()
	c.JSON(http.StatusCreated, toSessionResponse(session))
}

func (h *BookingHandler) get(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"session": toSessionResponse(session),
		"booking": session.Booking(),
		"results": session.Results(),
	})
}

func (h *BookingHandler) remove(c *gin.Context) {
	h.manager.Remove(c.Param("token"))
	c.Status(http.StatusNoContent)
}

func (h *BookingHandler) search(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date := time.Now()
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		date = parsed
	}
	passengers := req.Passengers
	if passengers <= 0 {
		passengers = 1
	}

	results, err := session.Search(c.Request.Context(), req.Origin, req.Destination, date, passengers)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

func (h *BookingHandler) submitFilter(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req filterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	session.SubmitFilter(req.Query)
	c.Status(http.StatusAccepted)
}

func (h *BookingHandler) filterResults(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	results := session.FilterResults()
	if results == nil {
		results = []domain.FlightOffer{}
	}
	c.JSON(http.StatusOK, results)
}

func (h *BookingHandler) selectFlight(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req selectFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := session.SelectFlightByID(req.OfferID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSessionResponse(session))
}

func (h *BookingHandler) addPassenger(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req passengerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	passenger, err := toPassenger(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := session.AddPassenger(passenger); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSessionResponse(session))
}

func (h *BookingHandler) setContact(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := session.SetContact(booking.ContactInfo{
		Email:               req.Email,
		Phone:               req.Phone,
		EmergencyName:       req.EmergencyName,
		EmergencyPhone:      req.EmergencyPhone,
		SpecialRequirements: req.SpecialRequirements,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSessionResponse(session))
}

func (h *BookingHandler) applyPromo(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req promoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := session.ApplyPromo(req.Code); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSessionResponse(session))
}

func (h *BookingHandler) proceedToPayment(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	total, err := session.ProceedToPayment()
	if err != nil {
		respondError(c, err)
		return
	}

	stages := make([]booking.PaymentStatus, 0, 3)
	for stage := range h.payment.Process(c.Request.Context()) {
		stages = append(stages, stage)
	}

	c.JSON(http.StatusOK, gin.H{"total_price": total, "stages": stages})
}

func (h *BookingHandler) complete(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	completed, err := session.CompleteBooking(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reference":   completed.Reference,
		"total_price": completed.TotalPrice,
		"booked_at":   completed.BookingDate.Format(time.RFC3339),
		"state":       session.State(),
	})
}

func (h *BookingHandler) reset(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	session.Reset()
	c.JSON(http.StatusOK, toSessionResponse(session))
}

func (h *BookingHandler) startNewSearch(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	session.StartNewSearch()
	c.JSON(http.StatusOK, toSessionResponse(session))
}

func (h *BookingHandler) history(c *gin.Context) {
	refs, err := h.service.BookingHistory(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if refs == nil {
		refs = []string{}
	}
	c.JSON(http.StatusOK, refs)
}

func (h *BookingHandler) session(c *gin.Context) (*booking.Session, bool) {
	session, err := h.manager.Get(c.Param("token"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return nil, false
	}
	return session, true
}

func toSessionResponse(s *booking.Session) sessionResponse {
	b := s.Booking()
	return sessionResponse{
		Token:      s.Token(),
		State:      s.State(),
		Passengers: len(b.Passengers),
		TotalPrice: b.TotalPrice,
		Reference:  b.Reference,
	}
}

func toPassenger(req passengerRequest) (domain.Passenger, error) {
	p := domain.Passenger{
		Title:           req.Title,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Gender:          req.Gender,
		Nationality:     req.Nationality,
		PassportNumber:  req.PassportNumber,
		SpecialRequests: req.SpecialRequests,
	}
	if req.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err != nil {
			return domain.Passenger{}, errors.New("date_of_birth must be YYYY-MM-DD")
		}
		p.DateOfBirth = dob
	}
	if req.PassportExpiry != "" {
		exp, err := time.Parse("2006-01-02", req.PassportExpiry)
		if err != nil {
			return domain.Passenger{}, errors.New("passport_expiry must be YYYY-MM-DD")
		}
		p.PassportExpiry = exp
	}
	return p, nil
}

// respondError maps domain errors to HTTP statuses: illegal transitions are
// conflicts, validation failures are unprocessable, the rest are bad
// requests.
func respondError(c *gin.Context, err error) {
	var transition *domain.InvalidTransitionError
	switch {
	case errors.As(err, &transition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrIncompletePassengers),
		errors.Is(err, domain.ErrInvalidContact),
		errors.Is(err, domain.ErrInvalidPromo),
		errors.Is(err, domain.ErrNoFlightSelected):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}
