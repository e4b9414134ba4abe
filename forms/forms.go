package forms

import (
	"github.com/go-playground/validator/v10"
)

const fallbackMessage = "Something went wrong, please try again later"

// Message turns a binding error into a single human-readable message for
// the first failing field. Field-specific overrides win over the generic
// per-tag wording.
func Message(err error, overrides map[string]string) string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return "Invalid request"
	}

	for _, fe := range errs {
		if msg, ok := overrides[fe.Field()]; ok {
			return msg
		}
		switch fe.Tag() {
		case "required":
			return fe.Field() + " is required"
		case "email":
			return "Please enter a valid email"
		case "objectid":
			return fe.Field() + " must be a valid id"
		case "min", "max", "gte", "lte":
			return fe.Field() + " is out of range"
		default:
			return fe.Field() + " is invalid"
		}
	}

	return fallbackMessage
}
