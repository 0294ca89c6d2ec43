package gateway

import (
	"context"
	"net/http"
	"strconv"
)

// NewApplication is the payload for creating an application. The teacher
// authors it and links a student to the proposed topic.
type NewApplication struct {
	Theme          string         `json:"theme"`
	Aim            string         `json:"aim"`
	Tasks          string         `json:"tasks"`
	Technologies   string         `json:"technologies"`
	StudentID      int            `json:"studentId"`
	TeacherID      int            `json:"teacherId"`
	AcceptanceType AcceptanceType `json:"acceptanceType"`
}

func (c *Client) AddApplication(ctx context.Context, token string, app NewApplication) (Application, error) {
	var created Application
	err := c.send(ctx, "application.add", http.MethodPost, "/application/add", nil, token, app, &created)
	return created, err
}

// EditApplication updates an existing application in place (PATCH semantics:
// the full record is sent, last write wins server-side).
func (c *Client) EditApplication(ctx context.Context, token string, app Application) (Application, error) {
	var updated Application
	err := c.send(ctx, "application.edit", http.MethodPatch, "/application/edit/"+strconv.Itoa(app.ID), nil, token, app, &updated)
	return updated, err
}
