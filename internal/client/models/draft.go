package models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

const dateLayout = "2006-01-02"

// UserDraft is the register and edit-profile payload. Tags describe the
// edit dialog; registration is stricter (see ValidateRegistration).
type UserDraft struct {
	Username    string `json:"username" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password,omitempty"`
	Gender      string `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
	Mobile      string `json:"mobile,omitempty" validate:"omitempty,max=20"`
	DateOfBirth string `json:"dateOfBirth,omitempty" validate:"omitempty,isodate"`
	Description string `json:"description,omitempty" validate:"max=500"`
}

// Set assigns a form field by its JSON name. Unknown names are rejected.
func (d *UserDraft) Set(field, value string) error {
	switch field {
	case "username":
		d.Username = value
	case "email":
		d.Email = value
	case "password":
		d.Password = value
	case "gender":
		d.Gender = strings.ToLower(value)
	case "mobile":
		d.Mobile = value
	case "dateOfBirth":
		d.DateOfBirth = value
	case "description":
		d.Description = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	return nil
}

var ErrUnknownField = errors.New("unknown field")

// FieldError names the first field that failed validation.
type FieldError struct {
	Field string
	Rule  string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %s failed %s", e.Field, e.Rule)
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			return name
		})
		_ = validate.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
			_, err := time.Parse(dateLayout, fl.Field().String())
			return err == nil
		})
	})
	return validate
}

// Validate checks v's struct tags and converts the first violation into a
// *FieldError.
func Validate(v any) error {
	err := validatorInstance().Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return &FieldError{Field: verrs[0].Field(), Rule: verrs[0].Tag()}
	}
	return err
}

func (d UserDraft) Validate() error {
	return Validate(d)
}

// registration carries the register form's constraints: every field but
// the description is required.
type registration struct {
	Username    string `json:"username" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	Gender      string `json:"gender" validate:"required,oneof=male female other"`
	Mobile      string `json:"mobile" validate:"required,max=20"`
	DateOfBirth string `json:"dateOfBirth" validate:"required,isodate"`
}

// ValidateRegistration applies the register form's constraints to d.
func (d UserDraft) ValidateRegistration() error {
	return Validate(registration{
		Username:    d.Username,
		Email:       d.Email,
		Password:    d.Password,
		Gender:      d.Gender,
		Mobile:      d.Mobile,
		DateOfBirth: d.DateOfBirth,
	})
}
