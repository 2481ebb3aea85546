package validator

import (
	"context"
	v10validator "github.com/go-playground/validator/v10"
	"reflect"
	"shipdesk/internal/entity"
)

type Validator struct {
	engine Engine
}

type Engine interface {
	StructCtx(ctx context.Context, s any) error
	VarCtx(ctx context.Context, field any, tag string) error
}

func New(e Engine) *Validator {
	return &Validator{engine: e}
}

func (v *Validator) Struct(ctx context.Context, s any) error {
	return v.engine.StructCtx(ctx, s)
}

func (v *Validator) Var(ctx context.Context, field any, tag string) error {
	return v.engine.VarCtx(ctx, field, tag)
}

// ReportStatus validates that a string names one of the fulfillment
// statuses a report can assign.
func ReportStatus(fl v10validator.FieldLevel) bool {
	val := fl.Field()
	if val.Kind() != reflect.String {
		return false
	}

	switch entity.Status(val.String()) {
	case entity.StatusScheduled, entity.StatusDueToday, entity.StatusOverdue, entity.StatusNewlyApproved:
		return true
	}

	return false
}
