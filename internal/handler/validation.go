package handler

import (
	"fmt"
	"sync"

	"selfcare_portal/internal/utils"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators adds the custom "phone" rule to gin's validator.
// A phone is valid when its normalized form is canonical.
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
			return
		}
		err = v.RegisterValidation("phone", validatePhone)
	})
	return err
}

func validatePhone(fl validator.FieldLevel) bool {
	return utils.IsCanonicalPhone(utils.NormalizePhone(fl.Field().String()))
}
