package gateway

import "github.com/volatiletech/null/v8"

// AcceptanceType is the server-side decision state of an application.
type AcceptanceType string

const (
	AcceptanceUndefined AcceptanceType = "UNDEFINED"
	AcceptanceAccepted  AcceptanceType = "ACCEPTED"
	AcceptanceDenied    AcceptanceType = "DENIED"
)

// AcceptanceTypes lists the filter options in display order.
var AcceptanceTypes = []AcceptanceType{AcceptanceUndefined, AcceptanceAccepted, AcceptanceDenied}

// All entities below are server-owned records; the portal holds transient,
// non-authoritative copies that are replaced wholesale on each fetch.

type User struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type Student struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	FacultyNumber string `json:"facultyNumber"`
}

type Teacher struct {
	ID   int  `json:"id"`
	User User `json:"user"`
}

func (t Teacher) FullName() string {
	return t.User.FirstName + " " + t.User.LastName
}

type Application struct {
	ID             int            `json:"id"`
	Theme          string         `json:"theme"`
	Aim            string         `json:"aim"`
	Tasks          string         `json:"tasks"`
	Technologies   string         `json:"technologies"`
	StudentID      int            `json:"studentId,omitempty"`
	TeacherID      int            `json:"teacherId,omitempty"`
	AcceptanceType AcceptanceType `json:"acceptanceType"`
	Teacher        *Teacher       `json:"teacher,omitempty"`
}

type Thesis struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Text          string `json:"text"`
	DateUploaded  string `json:"dateUploaded"`
	ApplicationID int    `json:"applicationId,omitempty"`

	// Review is attached client-side by the student dashboard's fan-out
	// lookup; the upstream never nests it.
	Review *Review `json:"-"`
}

type Review struct {
	Text         string `json:"text"`
	DateUploaded string `json:"dateUploaded"`
	Conclusion   bool   `json:"conclusion"`
	TeacherID    int    `json:"teacherId"`
	ThesisID     int    `json:"thesisId"`
}

// Defending is a scheduled session at which theses are evaluated. Grade is
// only populated once the defending took place.
type Defending struct {
	ID            int          `json:"id"`
	DateDefending string       `json:"dateDefending"`
	Grade         null.Float64 `json:"grade,omitempty"`
}

// ThesisDefending links a thesis to a defending and carries the awarded grade.
type ThesisDefending struct {
	ThesisID    int          `json:"thesisId"`
	DefendingID int          `json:"defendingId"`
	Grade       null.Float64 `json:"grade,omitempty"`
}

type GraduatedStudent struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	DateGraduated string `json:"dateGraduated"`
}
