// Package validator turns go-playground/validator errors into response
// details keyed by JSON field name.
package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/ncobase/monoapi/ecode"
	"github.com/ncobase/monoapi/net/resp"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(jsonTagName)

	// gin binding reports the same field names
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonTagName)
	}
}

func jsonTagName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		if form := strings.SplitN(field.Tag.Get("form"), ",", 2)[0]; form != "" {
			return form
		}
		return field.Name
	}
	return name
}

// errorMessages maps validation tags to messages.
var errorMessages = map[string]string{
	"required": "field required",
	"email":    "value is not a valid email address",
	"min":      "must be at least %s characters long",
	"max":      "must be no longer than %s characters",
	"lte":      "must be less than or equal to %s",
	"gte":      "must be greater than or equal to %s",
	"gt":       "must be greater than %s",
	"lt":       "must be less than %s",
	"oneof":    "must be one of [%s]",
	"alphanum": "must be alphanumeric",
}

// parseMessage builds a readable message for a failed tag.
func parseMessage(e validator.FieldError) string {
	if msg, ok := errorMessages[e.Tag()]; ok {
		if strings.Contains(msg, "%s") {
			return fmt.Sprintf(msg, e.Param())
		}
		return msg
	}
	return fmt.Sprintf("is invalid: %s", e.Tag())
}

// ValidateStruct validates s and returns the failures as details.
func ValidateStruct(s any) []resp.Detail {
	return Translate(validate.Struct(s))
}

// Translate converts a validation, JSON decoding or query parsing error into
// details. It returns nil for other errors.
func Translate(err error) []resp.Detail {
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		details := make([]resp.Detail, 0, len(validationErrs))
		for _, e := range validationErrs {
			details = append(details, resp.Detail{
				Code:    ecode.ValidationError,
				Field:   e.Field(),
				Message: parseMessage(e),
				Value:   e.Value(),
			})
		}
		return details
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return []resp.Detail{{
			Code:    ecode.ValidationError,
			Field:   typeErr.Field,
			Message: fmt.Sprintf("must be of type %s", typeErr.Type),
			Value:   typeErr.Value,
		}}
	}

	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		msg := "value is not a valid integer"
		if numErr.Func == "ParseBool" {
			msg = "value could not be parsed to a boolean"
		}
		return []resp.Detail{{
			Code:    ecode.ValidationError,
			Message: msg,
			Value:   numErr.Num,
		}}
	}

	return nil
}
