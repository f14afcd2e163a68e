package request

import (
	"errors"
	"strings"
	"time"

	"lunchly/internal/pkg/ptr"
	"lunchly/internal/usecase/commands"
)

var ErrInvalidStartAt = errors.New("startAt must be a date and time, e.g. 2024-03-01T18:30")

// Layouts accepted for startAt. Values without an offset are read in StartAtLocation.
var startAtLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

var StartAtLocation = time.Local

type CreateReservationRequest struct {
	NumGuests int    `form:"numGuests" json:"num_guests"`
	StartAt   string `form:"startAt" json:"start_at" binding:"required"`
	Notes     string `form:"notes" json:"notes" binding:"max=2000"`
}

type UpdateReservationRequest struct {
	NumGuests *int    `form:"numGuests" json:"num_guests"`
	StartAt   *string `form:"startAt" json:"start_at"`
	Notes     *string `form:"notes" json:"notes" binding:"omitempty,max=2000"`
}

func (r *CreateReservationRequest) ToInput() (commands.ReservationInput, error) {
	startAt, err := ParseStartAt(r.StartAt)
	if err != nil {
		return commands.ReservationInput{}, err
	}
	return commands.ReservationInput{
		NumGuests: r.NumGuests,
		StartAt:   startAt,
		Notes:     r.Notes,
	}, nil
}

func (r *UpdateReservationRequest) ToPatch() (commands.ReservationPatch, error) {
	p := commands.ReservationPatch{
		NumGuests: r.NumGuests,
		Notes:     r.Notes,
	}
	if r.StartAt != nil {
		startAt, err := ParseStartAt(*r.StartAt)
		if err != nil {
			return commands.ReservationPatch{}, err
		}
		p.StartAt = ptr.To(startAt)
	}
	return p, nil
}

func ParseStartAt(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidStartAt
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	for _, layout := range startAtLayouts {
		if t, err := time.ParseInLocation(layout, s, StartAtLocation); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidStartAt
}
