package domain

import (
	"errors"
	"strings"
	"time"
)

// Role is the closed set of actor roles. One canonical, uppercase spelling is
// used everywhere: at issuance, at the gate, and in client payloads.
const (
	RoleAdmin   = "ADMIN"
	RoleStaff   = "STAFF"
	RolePatient = "PATIENT"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUnauthenticated = errors.New("unauthenticated")
var ErrForbidden = errors.New("access forbidden")
var ErrAccountNotFound = errors.New("account not found")
var ErrAccountExists = errors.New("account already exists")
var ErrInvalidRole = errors.New("invalid role")
var ErrDepartmentNotAllowed = errors.New("patient accounts cannot belong to a department")

// NormalizeRole folds the spellings that appeared across app versions
// ("admin", "DepartmentMember", "doctor") into the canonical set. Unknown
// input yields the empty string, which every consumer treats as no role.
func NormalizeRole(raw string) string {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "ADMIN":
		return RoleAdmin
	case "STAFF", "DEPARTMENT_MEMBER", "DEPARTMENTMEMBER", "DOCTOR":
		return RoleStaff
	case "PATIENT":
		return RolePatient
	default:
		return ""
	}
}

// ValidRole reports whether role is one of the canonical constants.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleStaff || role == RolePatient
}

// Account models an identity record in the credential store.
// PasswordHash is never serialized outward.
type Account struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	DepartmentID string    `json:"department_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
