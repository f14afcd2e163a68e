package customer

import (
	"errors"
	"strings"
)

var (
	ErrFirstNameRequired = errors.New("first name is required")
	ErrLastNameRequired  = errors.New("last name is required")
	ErrAlreadySaved      = errors.New("customer already has an id")
)

// Fields is the mutable part of a customer.
type Fields struct {
	FirstName  string
	MiddleName string
	LastName   string
	Phone      string
	Notes      string
}

func (f Fields) normalize() (Fields, error) {
	f.FirstName = strings.TrimSpace(f.FirstName)
	f.MiddleName = strings.TrimSpace(f.MiddleName)
	f.LastName = strings.TrimSpace(f.LastName)
	f.Phone = strings.TrimSpace(f.Phone)

	if f.FirstName == "" {
		return Fields{}, ErrFirstNameRequired
	}
	if f.LastName == "" {
		return Fields{}, ErrLastNameRequired
	}
	return f, nil
}
