package domain

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// JobDraft is a job posting that has not been created yet.
type JobDraft struct {
	Title       string   `json:"title" validate:"notblank"`
	Company     string   `json:"company" validate:"notblank"`
	Location    string   `json:"location" validate:"notblank"`
	Description string   `json:"description" validate:"notblank"`
	JobType     string   `json:"job_type"`
	Tags        []string `json:"tags,omitempty"`
}

// SpecialistDraft is a specialist profile that has not been created yet.
type SpecialistDraft struct {
	FullName   string   `json:"full_name" validate:"notblank"`
	Email      string   `json:"email" validate:"notblank,email"`
	Profession string   `json:"profession"`
	Location   string   `json:"location"`
	Skills     []string `json:"skills"`
	Bio        string   `json:"bio,omitempty"`
}

// Credentials is the body of a login request
type Credentials struct {
	Email    string `json:"email" validate:"notblank"`
	Password string `json:"password" validate:"notblank"`
}

// Registration is the body of a register request
type Registration struct {
	FullName string `json:"fullName" validate:"notblank"`
	Email    string `json:"email" validate:"notblank"`
	Password string `json:"password" validate:"notblank"`
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func draftValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// Report fields by their wire names
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})

		_ = validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
	})
	return validate
}

// Validate checks a draft's tagged fields and returns a *ValidationError
// naming every offending field, or nil.
func Validate(draft any) error {
	err := draftValidator().Struct(draft)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &ValidationError{Message: err.Error()}
	}

	fields := make([]string, 0, len(fieldErrs))
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fe.Field())
		switch fe.Tag() {
		case "notblank", "required":
			msgs = append(msgs, fe.Field()+" is required")
		case "email":
			msgs = append(msgs, fe.Field()+" must be a valid email address")
		default:
			msgs = append(msgs, fe.Field()+" is invalid")
		}
	}

	return &ValidationError{Fields: fields, Message: strings.Join(msgs, "; ")}
}
