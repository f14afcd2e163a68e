package commands

import (
	"context"

	"lunchly/internal/domain/customer"
	"lunchly/internal/infra"
	"lunchly/internal/pkg/errs"
	"lunchly/internal/pkg/ptr"

	"github.com/jinzhu/copier"
)

type CustomerCommands interface {
	Create(ctx context.Context, in CustomerInput) (int64, error)
	Update(ctx context.Context, id int64, p CustomerPatch) error
}

type customerCommandsImpl struct {
	store CustomerStore
}

func NewCustomerCommands(store CustomerStore) CustomerCommands {
	return &customerCommandsImpl{store: store}
}

func (uc *customerCommandsImpl) Create(ctx context.Context, in CustomerInput) (int64, error) {
	var fields customer.Fields
	if err := copier.Copy(&fields, &in); err != nil {
		return 0, errs.Wrap(err, "failed to copy customer input")
	}

	c, err := customer.New(fields)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDomainValidation)
	}
	if err := uc.store.Save(ctx, c); err != nil {
		return 0, err
	}
	return c.ID(), nil
}

func (uc *customerCommandsImpl) Update(ctx context.Context, id int64, p CustomerPatch) error {
	c, err := uc.store.FindByID(ctx, id)
	if err != nil {
		return markCustomerNotFound(err)
	}

	current := c.Fields()
	next := customer.Fields{
		FirstName:  ptr.ValueOr(p.FirstName, current.FirstName),
		MiddleName: ptr.ValueOr(p.MiddleName, current.MiddleName),
		LastName:   ptr.ValueOr(p.LastName, current.LastName),
		Phone:      ptr.ValueOr(p.Phone, current.Phone),
		Notes:      ptr.ValueOr(p.Notes, current.Notes),
	}
	if err := c.Update(next); err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := uc.store.Save(ctx, c); err != nil {
		return markCustomerNotFound(err)
	}
	return nil
}

func markCustomerNotFound(err error) error {
	if infra.IsKind(err, infra.KindNotFound) || infra.IsKind(err, infra.KindForeignKeyViolated) {
		return errs.Mark(err, errs.ErrCustomerNotFound)
	}
	return err
}
