package customer

import (
	"strings"

	"lunchly/internal/domain/identity"
)

type Customer struct {
	identity identity.Identity
	fields   Fields
}

func New(f Fields) (*Customer, error) {
	f, err := f.normalize()
	if err != nil {
		return nil, err
	}
	return &Customer{identity: identity.Unsaved{}, fields: f}, nil
}

// Reconstruct rebuilds a persisted customer. Rows coming from storage are trusted.
func Reconstruct(id int64, f Fields) *Customer {
	return &Customer{identity: identity.Saved{ID: id}, fields: f}
}

func (c *Customer) Identity() identity.Identity { return c.identity }
func (c *Customer) FirstName() string           { return c.fields.FirstName }
func (c *Customer) MiddleName() string          { return c.fields.MiddleName }
func (c *Customer) LastName() string            { return c.fields.LastName }
func (c *Customer) Phone() string               { return c.fields.Phone }
func (c *Customer) Notes() string               { return c.fields.Notes }
func (c *Customer) Fields() Fields              { return c.fields }

// ID returns 0 for a customer that has not been saved.
func (c *Customer) ID() int64 {
	id, _ := identity.IDOf(c.identity)
	return id
}

func (c *Customer) IsSaved() bool {
	_, ok := identity.IDOf(c.identity)
	return ok
}

// FullName joins first, middle (when present) and last name with single spaces.
func (c *Customer) FullName() string {
	parts := make([]string, 0, 3)
	parts = append(parts, c.fields.FirstName)
	if c.fields.MiddleName != "" {
		parts = append(parts, c.fields.MiddleName)
	}
	parts = append(parts, c.fields.LastName)
	return strings.Join(parts, " ")
}

// Update replaces every mutable field. The id is left untouched.
func (c *Customer) Update(f Fields) error {
	f, err := f.normalize()
	if err != nil {
		return err
	}
	c.fields = f
	return nil
}

// AssignID records the id handed out by storage on first insert.
func (c *Customer) AssignID(id int64) error {
	if c.IsSaved() {
		return ErrAlreadySaved
	}
	c.identity = identity.Saved{ID: id}
	return nil
}
