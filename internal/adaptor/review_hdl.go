package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ViniciusSMLuz/movie-review/internal/dto/request"
	"github.com/ViniciusSMLuz/movie-review/internal/usecase"
	"github.com/ViniciusSMLuz/movie-review/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log.With(zap.String("handler", "review")),
	}
}

// GetMovieReviews handles GET /api/movies/{id}/reviews
func (h *ReviewHandler) GetMovieReviews(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")
	if movieID == "" {
		utils.ResponseBadRequest(w, "Movie ID is required", nil)
		return
	}

	reviews, err := h.service.GetMovieReviews(r.Context(), movieID)
	if err != nil {
		h.handleServiceError(w, err, "get movie reviews")
		return
	}

	utils.ResponseSuccess(w, "success", reviews)
}

// RecordReview handles POST /api/movies/{id}/reviews
func (h *ReviewHandler) RecordReview(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")
	if movieID == "" {
		utils.ResponseBadRequest(w, "Movie ID is required", nil)
		return
	}

	var req request.RecordReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	review, err := h.service.RecordReview(r.Context(), movieID, &req)
	if err != nil {
		h.handleServiceError(w, err, "record review")
		return
	}

	utils.ResponseCreated(w, "success", review)
}

// handleServiceError maps service errors to HTTP responses
func (h *ReviewHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	var validationErr *usecase.ValidationError
	if errors.As(err, &validationErr) {
		h.log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, "Validation failed", validationErr.Fields)
		return
	}

	h.log.Error("Failed to "+operation,
		zap.Error(err),
		zap.String("operation", operation))
	utils.ResponseInternalError(w, "Internal server error")
}
