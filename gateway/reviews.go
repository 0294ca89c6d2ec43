package gateway

import (
	"context"
	"net/http"
	"strconv"
)

// NewReview is the payload for a teacher's review of a thesis; at most one
// review per thesis is assumed.
type NewReview struct {
	Text         string `json:"text"`
	DateUploaded string `json:"dateUploaded"`
	Conclusion   bool   `json:"conclusion"`
	TeacherID    int    `json:"teacherId"`
	ThesisID     int    `json:"thesisId"`
}

func (c *Client) AddReview(ctx context.Context, token string, review NewReview) (Review, error) {
	var created Review
	err := c.send(ctx, "review.add", http.MethodPost, "/review/add", nil, token, review, &created)
	return created, err
}

// ReviewByThesisID returns the review for a thesis; a KindNotFound error
// means no review exists yet.
func (c *Client) ReviewByThesisID(ctx context.Context, token string, thesisID int) (Review, error) {
	var review Review
	err := c.get(ctx, "review.fetchByThesisId", "/review/fetchByThesisId/"+strconv.Itoa(thesisID), nil, token, &review)
	return review, err
}

// NegativeReviewCount is the number of students with a negative review conclusion.
func (c *Client) NegativeReviewCount(ctx context.Context, token string) (int, error) {
	var count int
	err := c.get(ctx, "review.negativeCount", "/review/negative-review-count", nil, token, &count)
	return count, err
}
