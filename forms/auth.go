package forms

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
)

// AuthForm represents the base form structure for authentication forms
type AuthForm struct{}

// LoginForm contains the fields required for user login
type LoginForm struct {
	Email    string `form:"email" json:"email" binding:"required,email"`
	Password string `form:"password" json:"password" binding:"required,min=6,max=50"`
}

// RegisterForm contains the fields required for self-registration. The
// role is never accepted from the client; registration always produces a
// plain user.
type RegisterForm struct {
	Name     string `form:"name" json:"name" binding:"required"`
	Email    string `form:"email" json:"email" binding:"required,email"`
	Password string `form:"password" json:"password" binding:"required,min=6,max=50"`
	Age      int    `form:"age" json:"age" binding:"required,gte=0"`
	Gender   string `form:"gender" json:"gender" binding:"required"`
	Address  string `form:"address" json:"address" binding:"required"`
}

// Email validates and returns appropriate error messages for email field validation
func (f AuthForm) Email(tag string) (message string) {
	switch tag {
	case "required":
		return "Please enter your email"
	case "min", "max", "email":
		return "Please enter a valid email"
	default:
		return fallbackMessage
	}
}

// Password validates and returns appropriate error messages for password field validation
func (f AuthForm) Password(tag string) (message string) {
	switch tag {
	case "required":
		return "Please enter your password"
	case "min", "max":
		return "Your password should be between 6 and 50 characters"
	default:
		return fallbackMessage
	}
}

// Login validates the login form and returns appropriate error messages
func (f AuthForm) Login(err error) string {
	switch err.(type) {
	case validator.ValidationErrors:

		if _, ok := err.(*json.UnmarshalTypeError); ok {
			return fallbackMessage
		}

		for _, err := range err.(validator.ValidationErrors) {
			if err.Field() == "Email" {
				return f.Email(err.Tag())
			}
			if err.Field() == "Password" {
				return f.Password(err.Tag())
			}
		}

	default:
		return "Invalid request"
	}

	return fallbackMessage
}

// Register validates the registration form and returns appropriate error messages
func (f AuthForm) Register(err error) string {
	switch err.(type) {
	case validator.ValidationErrors:

		if _, ok := err.(*json.UnmarshalTypeError); ok {
			return fallbackMessage
		}

		for _, err := range err.(validator.ValidationErrors) {
			switch err.Field() {
			case "Email":
				return f.Email(err.Tag())
			case "Password":
				return f.Password(err.Tag())
			default:
				return Message(validator.ValidationErrors{err}, nil)
			}
		}

	default:
		return "Invalid request"
	}

	return fallbackMessage
}
