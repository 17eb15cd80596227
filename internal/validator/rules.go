package validator

import (
	"github.com/go-playground/validator/v10"

	"k9hope_backend/internal/models"
)

// Domain validation tags: bloodgroup, urgency, userrole. Empty values
// pass so optional fields can combine with omitempty.
func registerDomainRules(v *validator.Validate) {
	_ = v.RegisterValidation("bloodgroup", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || models.IsValidBloodGroup(s)
	})

	_ = v.RegisterValidation("urgency", func(fl validator.FieldLevel) bool {
		switch models.Urgency(fl.Field().String()) {
		case models.UrgencyImmediate, models.UrgencyWithin24Hrs, models.UrgencyWithin3Days:
			return true
		}
		return fl.Field().String() == ""
	})

	_ = v.RegisterValidation("userrole", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || models.IsValidUserRole(models.UserRole(s))
	})
}
