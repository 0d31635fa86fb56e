package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ViniciusSMLuz/movie-review/internal/dto/request"
	"github.com/ViniciusSMLuz/movie-review/internal/usecase"
	"github.com/ViniciusSMLuz/movie-review/pkg/utils"

	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// GetMovies handles GET /api/movies
func (h *MovieHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := h.service.GetMovies(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get movies")
		return
	}

	utils.ResponseSuccess(w, "success", movies)
}

// RegisterMovie handles POST /api/movies
func (h *MovieHandler) RegisterMovie(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterMovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	movie, err := h.service.RegisterMovie(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "register movie")
		return
	}

	utils.ResponseCreated(w, "success", movie)
}

// handleServiceError maps service errors to HTTP responses. Validation
// failures carry their field map back to the caller; storage failures stay
// opaque.
func (h *MovieHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
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
