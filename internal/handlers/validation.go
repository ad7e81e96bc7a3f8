package handlers

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/SscSPs/personal_os/internal/core/domain"
	"github.com/SscSPs/personal_os/internal/dto"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var registerOnce sync.Once

// RegisterValidators teaches gin's validator about decimal amounts, calendar
// dates and the domain enums. It is safe to call more than once.
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
			return
		}

		// gt/gte on amounts compare the numeric value
		v.RegisterCustomTypeFunc(func(field reflect.Value) any {
			if d, ok := field.Interface().(decimal.Decimal); ok {
				return d.InexactFloat64()
			}
			return nil
		}, decimal.Decimal{})

		// required on a Date means "present"
		v.RegisterCustomTypeFunc(func(field reflect.Value) any {
			if d, ok := field.Interface().(dto.Date); ok && !d.IsZero() {
				return d.Time
			}
			return nil
		}, dto.Date{})

		if err = v.RegisterValidation("txntype", func(fl validator.FieldLevel) bool {
			return domain.TxnType(fl.Field().String()).IsValid()
		}); err != nil {
			return
		}
		err = v.RegisterValidation("schedule", func(fl validator.FieldLevel) bool {
			return domain.Schedule(fl.Field().String()).IsValid()
		})
	})
	return err
}
