package product

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrEmptyProductID     = errors.New("product id cannot be empty")
	ErrInvalidProductID   = errors.New("product id may contain only letters, digits, '-' and '_'")
	ErrProductIDTooLong   = errors.New("product id is too long (max 64 characters)")
	ErrEmptyProductName   = errors.New("product name cannot be empty")
	ErrProductNameTooLong = errors.New("product name is too long (max 255 characters)")
	ErrInvalidMaxPerUser  = errors.New("max_per_user must be positive")
	ErrInvalidStatus      = errors.New("invalid product status")
)

const (
	MaxProductIDLength   = 64
	MaxProductNameLength = 255

	// DefaultMaxPerUser applies when a product is created without a cap.
	DefaultMaxPerUser = 1
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func NewStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusActive, StatusInactive:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

var productIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Product is a catalog entry defining a pool of codes and a per-user cap.
// The id is caller-assigned; the allocation engine reads only maxPerUser and
// the active gate.
type Product struct {
	id          string
	name        string
	description *string
	maxPerUser  int
	status      Status
}

func NewProduct(id, name string, description *string, maxPerUser int) (*Product, error) {
	if err := validateProductID(id); err != nil {
		return nil, err
	}
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if maxPerUser == 0 {
		maxPerUser = DefaultMaxPerUser
	}
	if maxPerUser < 0 {
		return nil, ErrInvalidMaxPerUser
	}

	return &Product{
		id:          id,
		name:        strings.TrimSpace(name),
		description: description,
		maxPerUser:  maxPerUser,
		status:      StatusActive,
	}, nil
}

func validateProductID(id string) error {
	if id == "" {
		return ErrEmptyProductID
	}
	if len(id) > MaxProductIDLength {
		return ErrProductIDTooLong
	}
	if !productIDPattern.MatchString(id) {
		return ErrInvalidProductID
	}
	return nil
}

func validateProductName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyProductName
	}
	if len(name) > MaxProductNameLength {
		return ErrProductNameTooLong
	}
	return nil
}

func (p *Product) ID() string           { return p.id }
func (p *Product) Name() string         { return p.name }
func (p *Product) Description() *string { return p.description }
func (p *Product) MaxPerUser() int      { return p.maxPerUser }
func (p *Product) Status() Status       { return p.status }
func (p *Product) IsActive() bool       { return p.status == StatusActive }
