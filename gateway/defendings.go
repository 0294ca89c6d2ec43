package gateway

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

type newDefending struct {
	DateDefending string `json:"dateDefending"`
}

type newThesisDefending struct {
	ThesisID    int `json:"thesisId"`
	DefendingID int `json:"defendingId"`
}

// AddDefending schedules a defending session on behalf of a teacher.
func (c *Client) AddDefending(ctx context.Context, token string, teacherID int, dateDefending string) (Defending, error) {
	q := url.Values{}
	q.Set("teacherId", strconv.Itoa(teacherID))

	var created Defending
	err := c.send(ctx, "defending.add", http.MethodPost, "/defending/add", q, token,
		newDefending{DateDefending: dateDefending}, &created)
	return created, err
}

// AddThesisDefending links a thesis to a scheduled defending.
func (c *Client) AddThesisDefending(ctx context.Context, token string, thesisID, defendingID int) error {
	return c.send(ctx, "thesisDefending.add", http.MethodPost, "/thesis-defendings/add", nil, token,
		newThesisDefending{ThesisID: thesisID, DefendingID: defendingID}, nil)
}

// AverageDefendingStudents is the average number of students per defending
// within a date range.
func (c *Client) AverageDefendingStudents(ctx context.Context, token, startDate, endDate string) (float64, error) {
	q := url.Values{}
	q.Set("startDate", startDate)
	q.Set("endDate", endDate)

	var avg float64
	err := c.get(ctx, "defending.averageStudents", "/defending/average-students", q, token, &avg)
	return avg, err
}

// GraduatedStudents lists students graduated within a date range.
func (c *Client) GraduatedStudents(ctx context.Context, token, startDate, endDate string) ([]GraduatedStudent, error) {
	q := url.Values{}
	q.Set("startDate", startDate)
	q.Set("endDate", endDate)

	var students []GraduatedStudent
	err := c.get(ctx, "thesisDefending.students", "/thesis-defendings/students", q, token, &students)
	return students, err
}

// GraduatedCountByTeacher counts a teacher's graduated students.
func (c *Client) GraduatedCountByTeacher(ctx context.Context, token string, teacherID int) (int, error) {
	q := url.Values{}
	q.Set("teacherId", strconv.Itoa(teacherID))

	var count int
	err := c.get(ctx, "thesisDefending.studentsGraduated", "/thesis-defendings/students-graduated", q, token, &count)
	return count, err
}
