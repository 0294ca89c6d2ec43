package session

import (
	"github.com/dgrijalva/jwt-go"
	"github.com/pkg/errors"
)

// Role values as they appear in the upstream credential's `role` claim.
const (
	RoleStudent = "ROLE_STUDENT"
	RoleTeacher = "ROLE_TEACHER"
)

// Session is the identity derived from the upstream credential. Role and
// Subject are never received as separate fields from the login response;
// they only ever come from decoding the credential itself.
type Session struct {
	Token   string
	Subject string
	Role    string
}

func (s Session) IsTeacher() bool { return s.Role == RoleTeacher }

// IsStudent reports whether the session belongs to the student portal.
// An absent or unknown role falls through to the student branch; the
// role-gated routes still reject it since it matches no required role.
func (s Session) IsStudent() bool { return !s.IsTeacher() }

// Decode extracts the session identity from a credential. The signature is
// deliberately NOT verified here: the upstream API verifies it on every
// request, the portal only needs the claims for view composition. Missing
// claims yield zero values, never an error.
func Decode(token string) (Session, error) {
	claims := jwt.MapClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(token, claims); err != nil {
		return Session{}, errors.Wrap(err, "parsing credential")
	}

	s := Session{Token: token}
	if sub, ok := claims["sub"].(string); ok {
		s.Subject = sub
	}
	if role, ok := claims["role"].(string); ok {
		s.Role = role
	}
	return s, nil
}
