package util

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

func NewValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterValidation("caseinsensitiveoneof", caseInsensitiveOneOf)

	return validate
}

func caseInsensitiveOneOf(fl validator.FieldLevel) bool {
	val := strings.ToLower(fl.Field().String())
	candidates := strings.Split(strings.ToLower(fl.Param()), " ")
	for _, v := range candidates {
		if val == v {
			return true
		}
	}
	return false
}

// Violation is a single failed validation rule in a flattened, loggable form.
type Violation struct {
	Field     string `json:"field"`
	Violation string `json:"violation"`
	Param     string `json:"param,omitempty"`
}

func Violations(err error) []Violation {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}
	out := make([]Violation, 0, len(ve))
	for _, fe := range ve {
		out = append(out, Violation{
			Field:     fe.Field(),
			Violation: fe.Tag(),
			Param:     fe.Param(),
		})
	}
	return out
}
