package domain

import (
	"errors"
	"time"
)

var ErrDepartmentNotFound = errors.New("department not found")
var ErrDuplicateDepartment = errors.New("department already exists")

// Department groups staff and doctor profiles. Accounts reference it by id
// only; deleting a department never cascades into accounts.
type Department struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}
