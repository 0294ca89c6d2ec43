package gateway

import (
	"context"
	"net/url"
	"strconv"
)

// TeacherByUsername resolves the numeric teacher id for a decoded subject.
func (c *Client) TeacherByUsername(ctx context.Context, token, username string) (Teacher, error) {
	var t Teacher
	err := c.get(ctx, "teacher.fetchByUsername", "/teacher/fetchByUsername/"+url.PathEscape(username), nil, token, &t)
	return t, err
}

// Teachers lists all teachers for selection widgets.
func (c *Client) Teachers(ctx context.Context, token string) ([]Teacher, error) {
	var teachers []Teacher
	err := c.get(ctx, "teacher.fetchAll", "/teacher/fetch/all", nil, token, &teachers)
	return teachers, err
}

// TeacherApplications lists the applications authored by a teacher.
func (c *Client) TeacherApplications(ctx context.Context, token string, teacherID int) ([]Application, error) {
	var apps []Application
	err := c.get(ctx, "teacher.fetchApplications", "/teacher/fetchApplications/"+strconv.Itoa(teacherID), nil, token, &apps)
	return apps, err
}

// TeacherDefendings lists the defendings scheduled by a teacher.
func (c *Client) TeacherDefendings(ctx context.Context, token string, teacherID int) ([]Defending, error) {
	var defs []Defending
	err := c.get(ctx, "teacher.fetchDefendings", "/teacher/fetchDefendings/"+strconv.Itoa(teacherID), nil, token, &defs)
	return defs, err
}
