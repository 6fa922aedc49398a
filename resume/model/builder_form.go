package model

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// BuilderForm is the resume draft a user submits for generation.
type BuilderForm struct {
	Title          string            `json:"title" validate:"max=200"`
	Personal       Personal          `json:"personal"`
	Experience     []ExperienceEntry `json:"experience" validate:"max=30,dive"`
	Education      []EducationEntry  `json:"education" validate:"max=20,dive"`
	Skills         []string          `json:"skills" validate:"max=100,dive,max=100"`
	TargetRegion   string            `json:"targetRegion" validate:"max=32"`
	TargetIndustry string            `json:"targetIndustry" validate:"max=64"`
}

// ExperienceEntry is one role as the user typed it. Description is the free
// text the AI rewrites into bullets. EndDate is ignored when IsCurrent is set.
type ExperienceEntry struct {
	ID          string `json:"id,omitempty"`
	Role        string `json:"role" validate:"max=200"`
	Company     string `json:"company" validate:"max=200"`
	Location    string `json:"location" validate:"max=200"`
	StartDate   string `json:"startDate" validate:"max=32"`
	EndDate     string `json:"endDate" validate:"max=32"`
	IsCurrent   bool   `json:"isCurrent"`
	Description string `json:"description" validate:"max=5000"`
}

// EducationEntry is one education record as the user typed it.
type EducationEntry struct {
	ID        string `json:"id,omitempty"`
	School    string `json:"school" validate:"max=200"`
	Degree    string `json:"degree" validate:"max=200"`
	Field     string `json:"field" validate:"max=200"`
	GPA       string `json:"gpa,omitempty" validate:"max=16"`
	StartDate string `json:"startDate" validate:"max=16"`
	EndDate   string `json:"endDate" validate:"max=16"`
}

// ErrInvalidForm is matched by every error Validate returns.
var ErrInvalidForm = errors.New("invalid form")

// FormError describes the first failing field using its JSON path.
type FormError struct {
	Field string
	Rule  string
}

func (e *FormError) Error() string {
	switch e.Rule {
	case "required", "notblank":
		return e.Field + " is required"
	case "max":
		return e.Field + " is too long"
	default:
		return fmt.Sprintf("%s is invalid (%s)", e.Field, e.Rule)
	}
}

func (e *FormError) Is(target error) bool { return target == ErrInvalidForm }

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func formValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
		validate = v
	})
	return validate
}

// Validate checks the form before generation. Only personal.name is
// mandatory; empty experience or education lists are accepted.
func (f BuilderForm) Validate() error {
	err := formValidator().Struct(f)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return &FormError{Field: fieldPath(verrs[0].Namespace()), Rule: verrs[0].Tag()}
	}
	return fmt.Errorf("%w: %v", ErrInvalidForm, err)
}

// fieldPath drops the root struct name: "BuilderForm.personal.name" -> "personal.name".
func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}
