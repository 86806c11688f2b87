package handlers

import (
	"sync"

	"github.com/go-playground/validator/v10"

	allocationvo "github.com/GithubESPI/dotationsFrontend/internal/domain/allocation/valueobjects"
	equipmentvo "github.com/GithubESPI/dotationsFrontend/internal/domain/equipment/valueobjects"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/utils"
)

var registerValidatorsOnce sync.Once

// RegisterValidators installs the domain enum tags used in request bindings:
// equipment_type, equipment_status and return_condition. Empty values pass; use
// "required" to forbid them.
func RegisterValidators() {
	registerValidatorsOnce.Do(func() {
		mustRegister("equipment_type", func(fl validator.FieldLevel) bool {
			v := fl.Field().String()
			if v == "" {
				return true
			}
			_, err := equipmentvo.NewEquipmentType(v)
			return err == nil
		})
		mustRegister("equipment_status", func(fl validator.FieldLevel) bool {
			v := fl.Field().String()
			if v == "" {
				return true
			}
			_, err := equipmentvo.NewEquipmentStatus(v)
			return err == nil
		})
		mustRegister("return_condition", func(fl validator.FieldLevel) bool {
			_, err := allocationvo.NewCondition(fl.Field().String())
			return err == nil
		})
	})
}

func mustRegister(tag string, fn validator.Func) {
	if err := utils.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}
