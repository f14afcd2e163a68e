package reservation

import (
	"errors"
	"math"
	"time"
)

var (
	ErrCustomerRequired = errors.New("reservation must belong to a customer")
	ErrInvalidNumGuests = errors.New("number of guests must be a positive integer")
	ErrStartAtRequired  = errors.New("start time is required")
	ErrAlreadySaved     = errors.New("reservation already has an id")
)

type NumGuests int

func NewNumGuests(n int) (NumGuests, error) {
	if n < 1 || n > math.MaxInt32 {
		return 0, ErrInvalidNumGuests
	}
	return NumGuests(n), nil
}

func (n NumGuests) Int() int { return int(n) }

type StartAt struct {
	value time.Time
}

func NewStartAt(t time.Time) (StartAt, error) {
	if t.IsZero() {
		return StartAt{}, ErrStartAtRequired
	}
	return StartAt{value: t}, nil
}

func (s StartAt) Time() time.Time { return s.value }
