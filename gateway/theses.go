package gateway

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// NewThesis is the payload for submitting a thesis against an ACCEPTED application.
type NewThesis struct {
	Name          string `json:"name"`
	Text          string `json:"text"`
	DateUploaded  string `json:"dateUploaded"`
	ApplicationID int    `json:"applicationId"`
}

// Theses lists every thesis (the teacher's review pocket).
func (c *Client) Theses(ctx context.Context, token string) ([]Thesis, error) {
	var theses []Thesis
	err := c.get(ctx, "thesis.fetchAll", "/thesis/fetch/all", nil, token, &theses)
	return theses, err
}

func (c *Client) AddThesis(ctx context.Context, token string, thesis NewThesis) (Thesis, error) {
	var created Thesis
	err := c.send(ctx, "thesis.add", http.MethodPost, "/thesis/add", nil, token, thesis, &created)
	return created, err
}

// ThesesByGradeRange filters a teacher's theses by awarded grade.
func (c *Client) ThesesByGradeRange(ctx context.Context, token string, minGrade, maxGrade float64, teacherID int) ([]Thesis, error) {
	q := url.Values{}
	q.Set("minGrade", strconv.FormatFloat(minGrade, 'f', -1, 64))
	q.Set("maxGrade", strconv.FormatFloat(maxGrade, 'f', -1, 64))
	q.Set("teacherId", strconv.Itoa(teacherID))

	var theses []Thesis
	err := c.get(ctx, "thesis.byGradeRange", "/thesis/by-grade-range", q, token, &theses)
	return theses, err
}
