package handler

import (
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"feedboard/internal/service"
)

type FeedbackHandler struct {
	service service.FeedbackService
}

func NewFeedbackHandler(service service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{service: service}
}

func (h *FeedbackHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/feedback", h.List)
	e.POST("/feedback", h.Submit)
}

// Fields are bound as bare JSON values so absence, wrong types, and numeric
// strings can be told apart before coercion.
type submitRequest struct {
	Message any `json:"message"`
	Rating  any `json:"rating"`
}

type feedbackResponse struct {
	ID        int64  `json:"id"`
	Message   string `json:"message"`
	Rating    int    `json:"rating"`
	CreatedAt string `json:"created_at"`
}

// Submit stores a new feedback entry.
// @Summary Submit feedback
// @Description Store a feedback message with a numeric rating
// @Tags feedback
// @Accept json
// @Produce json
// @Param payload body submitRequest true "Feedback payload"
// @Success 201 {object} statusResponse
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /feedback [post]
func (h *FeedbackHandler) Submit(c echo.Context) error {
	var req submitRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	if req.Message == nil || req.Rating == nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "'message' and 'rating' are required"})
	}

	message, ok := req.Message.(string)
	if !ok {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "'message' must be text"})
	}

	rating, ok := coerceInt(req.Rating)
	if !ok {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "'rating' must be an integer"})
	}

	if _, err := h.service.Submit(c.Request().Context(), message, rating); err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, statusResponse{Status: "ok"})
}

// List returns stored feedback entries.
// @Summary List feedback
// @Description Get stored feedback, optionally filtered by rating, ordered by submission time
// @Tags feedback
// @Produce json
// @Param rating query int false "Only entries with this exact rating"
// @Param sort query string false "asc or desc (default desc; unrecognized values fall back to desc)"
// @Success 200 {array} feedbackResponse
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /feedback [get]
func (h *FeedbackHandler) List(c echo.Context) error {
	params := service.FeedbackListParams{
		Sort: c.QueryParam("sort"),
	}

	if raw := c.QueryParam("rating"); raw != "" {
		rating, err := strconv.Atoi(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "'rating' must be an integer"})
		}
		params.Rating = &rating
	}

	entries, err := h.service.List(c.Request().Context(), params)
	if err != nil {
		return writeServiceError(c, err)
	}

	items := make([]feedbackResponse, 0, len(entries))
	for _, entry := range entries {
		items = append(items, feedbackResponse{
			ID:        entry.ID,
			Message:   entry.Message,
			Rating:    entry.Rating,
			CreatedAt: entry.CreatedAt.UTC().Format(time.RFC3339Nano),
		})
	}

	return c.JSON(http.StatusOK, items)
}

// coerceInt accepts JSON numbers with no fractional part and numeric
// strings. encoding/json delivers all JSON numbers as float64.
func coerceInt(v any) (int, bool) {
	switch value := v.(type) {
	case float64:
		if value != math.Trunc(value) {
			return 0, false
		}
		return int(value), true
	case string:
		rating, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return 0, false
		}
		return rating, true
	default:
		return 0, false
	}
}
