package utils

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/GithubESPI/dotationsFrontend/internal/shared/errors"
)

var (
	validate     *validator.Validate
	registerOnce sync.Once
)

func init() {
	validate = validator.New()
	configureValidator(validate)
}

func configureValidator(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("notblank", validators.NotBlank)
}

// RegisterBindingValidations installs the same tag name function and custom tags on
// gin's binding validator so that binding errors read like ValidateStruct errors.
func RegisterBindingValidations() {
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			configureValidator(v)
		}
	})
}

// RegisterValidation adds a custom tag to both validators.
func RegisterValidation(tag string, fn validator.Func) error {
	RegisterBindingValidations()
	if err := validate.RegisterValidation(tag, fn); err != nil {
		return err
	}
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		return v.RegisterValidation(tag, fn)
	}
	return nil
}

// ValidateStruct validates s and returns a validation AppError listing every failed field.
func ValidateStruct(s any) error {
	return translateValidationError(validate.Struct(s))
}

// BindJSON decodes the request body and converts binding failures into validation errors.
func BindJSON(c *gin.Context, target any) error {
	RegisterBindingValidations()
	if err := c.ShouldBindJSON(target); err != nil {
		return translateValidationError(err)
	}
	return nil
}

func translateValidationError(err error) error {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if stderrors.As(err, &validationErrors) {
		messages := make([]string, 0, len(validationErrors))
		for _, fieldError := range validationErrors {
			messages = append(messages, getFieldErrorMessage(fieldError))
		}
		return errors.NewValidationError("Validation failed", strings.Join(messages, "; "))
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case stderrors.As(err, &syntaxErr):
		return errors.NewValidationError("Invalid JSON body", syntaxErr.Error())
	case stderrors.As(err, &typeErr):
		return errors.NewValidationError("Invalid JSON body", fmt.Sprintf("%s has an invalid type", typeErr.Field))
	}

	return errors.NewValidationError("Invalid request body", err.Error())
}

func getFieldErrorMessage(fe validator.FieldError) string {
	field := fe.Field()
	param := fe.Param()

	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("%s is required", field)
	case "required_without":
		return fmt.Sprintf("%s is required when %s is missing", field, param)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long", field, param)
		}
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must contain at least %s items", field, param)
		}
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters long", field, param)
		}
		return fmt.Sprintf("%s must be at most %s", field, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, param)
	case "uuid":
		return fmt.Sprintf("%s must be a valid UUID", field)
	default:
		return fmt.Sprintf("%s failed validation for '%s'", field, fe.Tag())
	}
}
