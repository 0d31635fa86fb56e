package request

type RegisterMovieRequest struct {
	Title string `json:"title" validate:"required"`
}
