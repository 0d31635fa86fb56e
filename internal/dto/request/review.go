package request

// RecordReviewRequest carries a new rating event. Rating is a pointer so a
// missing field is rejected while 0 and negative values pass through: the
// ledger applies no range check by contract.
type RecordReviewRequest struct {
	Reviewer string `json:"reviewer" validate:"required"`
	Rating   *int   `json:"rating" validate:"required"`
}
