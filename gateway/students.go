package gateway

import (
	"context"
	"net/url"
	"strconv"
)

// StudentByUsername resolves the numeric student id for a decoded subject;
// the credential only carries the username, the relational queries need the id.
func (c *Client) StudentByUsername(ctx context.Context, token, username string) (Student, error) {
	var s Student
	err := c.get(ctx, "student.fetchByUsername", "/student/fetchByUsername/"+url.PathEscape(username), nil, token, &s)
	return s, err
}

// Students lists all students for selection widgets.
func (c *Client) Students(ctx context.Context, token string) ([]Student, error) {
	var students []Student
	err := c.get(ctx, "student.fetchAll", "/student/fetch/all", nil, token, &students)
	return students, err
}

// StudentApplications lists the applications linked to a student.
func (c *Client) StudentApplications(ctx context.Context, token string, studentID int) ([]Application, error) {
	var apps []Application
	err := c.get(ctx, "student.fetchApplications", "/student/fetchApplications/"+strconv.Itoa(studentID), nil, token, &apps)
	return apps, err
}

// StudentTheses lists the theses a student has submitted.
func (c *Client) StudentTheses(ctx context.Context, token string, studentID int) ([]Thesis, error) {
	var theses []Thesis
	err := c.get(ctx, "student.fetchTheses", "/student/fetchTheses/"+strconv.Itoa(studentID), nil, token, &theses)
	return theses, err
}

// StudentDefendings lists the defendings (with grades, once awarded) for a student.
func (c *Client) StudentDefendings(ctx context.Context, token string, studentID int) ([]Defending, error) {
	var defs []Defending
	err := c.get(ctx, "student.fetchDefendings", "/student/fetchDefendings/"+strconv.Itoa(studentID), nil, token, &defs)
	return defs, err
}
