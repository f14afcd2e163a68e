package request

import (
	"lunchly/internal/usecase/commands"

	"github.com/jinzhu/copier"
)

// Form keys follow the HTML forms, JSON keys the rest of the API.
type CreateCustomerRequest struct {
	FirstName  string `form:"firstName" json:"first_name" binding:"required,max=100"`
	MiddleName string `form:"middleName" json:"middle_name" binding:"max=100"`
	LastName   string `form:"lastName" json:"last_name" binding:"required,max=100"`
	Phone      string `form:"phone" json:"phone" binding:"max=50"`
	Notes      string `form:"notes" json:"notes" binding:"max=2000"`
}

// UpdateCustomerRequest leaves absent fields untouched.
type UpdateCustomerRequest struct {
	FirstName  *string `form:"firstName" json:"first_name" binding:"omitempty,max=100"`
	MiddleName *string `form:"middleName" json:"middle_name" binding:"omitempty,max=100"`
	LastName   *string `form:"lastName" json:"last_name" binding:"omitempty,max=100"`
	Phone      *string `form:"phone" json:"phone" binding:"omitempty,max=50"`
	Notes      *string `form:"notes" json:"notes" binding:"omitempty,max=2000"`
}

func (r *CreateCustomerRequest) ToInput() (commands.CustomerInput, error) {
	var in commands.CustomerInput
	if err := copier.Copy(&in, r); err != nil {
		return commands.CustomerInput{}, err
	}
	return in, nil
}

func (r *UpdateCustomerRequest) ToPatch() (commands.CustomerPatch, error) {
	var p commands.CustomerPatch
	if err := copier.Copy(&p, r); err != nil {
		return commands.CustomerPatch{}, err
	}
	return p, nil
}
