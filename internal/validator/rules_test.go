package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type requestPayload struct {
	BloodGroup string `json:"blood_group" validate:"required,bloodgroup"`
	Urgency    string `json:"urgency" validate:"required,urgency"`
	Quantity   int    `json:"quantity" validate:"gt=0"`
}

func TestValidateStruct_Valid(t *testing.T) {
	errs := ValidateStruct(requestPayload{
		BloodGroup: "DEA 1.1+",
		Urgency:    "immediate",
		Quantity:   1,
	})
	assert.Nil(t, errs)
}

func TestValidateStruct_InvalidBloodGroup(t *testing.T) {
	errs := ValidateStruct(requestPayload{
		BloodGroup: "AB+",
		Urgency:    "immediate",
		Quantity:   1,
	})
	assert.Contains(t, errs, "blood_group")
}

func TestValidateStruct_InvalidUrgency(t *testing.T) {
	errs := ValidateStruct(requestPayload{
		BloodGroup: "Universal",
		Urgency:    "whenever",
		Quantity:   1,
	})
	assert.Contains(t, errs, "urgency")
}

func TestValidateStruct_FieldNamesFromJSONTags(t *testing.T) {
	errs := ValidateStruct(requestPayload{})
	assert.Contains(t, errs, "blood_group")
	assert.Contains(t, errs, "urgency")
	assert.Contains(t, errs, "quantity")
}
