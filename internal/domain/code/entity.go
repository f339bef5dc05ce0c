package code

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyCodeValue   = errors.New("code value cannot be empty")
	ErrCodeValueTooLong = errors.New("code value is too long (max 512 characters)")
	ErrAlreadyAssigned  = errors.New("code is already assigned")
)

const MaxCodeValueLength = 512

type Status string

const (
	StatusAvailable Status = "available"
	StatusAssigned  Status = "assigned"
)

// Code is a single-use opaque string belonging to one product. It is created
// available and flips to assigned exactly once; assignee and assignment time
// are set iff the status is assigned.
type Code struct {
	id         uuid.UUID
	productID  string
	value      string
	status     Status
	assignedTo *string
	assignedAt *time.Time
}

func NewCode(productID, value string) (*Code, error) {
	if err := ValidateValue(value); err != nil {
		return nil, err
	}

	return &Code{
		id:        uuid.New(),
		productID: productID,
		value:     strings.TrimSpace(value),
		status:    StatusAvailable,
	}, nil
}

func ValidateValue(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return ErrEmptyCodeValue
	}
	if len(value) > MaxCodeValueLength {
		return ErrCodeValueTooLong
	}
	return nil
}

// Assign flips the code to assigned. The store-level conditional update is the
// authority under concurrency; this guard only rejects misuse in-process.
func (c *Code) Assign(user string, at time.Time) error {
	if c.status == StatusAssigned {
		return ErrAlreadyAssigned
	}
	c.status = StatusAssigned
	c.assignedTo = &user
	c.assignedAt = &at
	return nil
}

func (c *Code) ID() uuid.UUID          { return c.id }
func (c *Code) ProductID() string      { return c.productID }
func (c *Code) Value() string          { return c.value }
func (c *Code) Status() Status         { return c.status }
func (c *Code) AssignedTo() *string    { return c.assignedTo }
func (c *Code) AssignedAt() *time.Time { return c.assignedAt }
func (c *Code) IsAvailable() bool      { return c.status == StatusAvailable }
