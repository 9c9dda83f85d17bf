// Package validation turns request binding failures into the field-level
// messages reported to clients.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/yigit/devcamper/internal/pkg/apperrors"
)

// MessageTag holds per-rule messages on request DTO fields, e.g.
//
//	msg:"required=Please add a name;max=Name can not be more than 50 characters"
const MessageTag = "msg"

// FromBindError converts an error returned by gin's ShouldBindJSON for obj
// into an application error. Validation failures report every violated
// field, not just the first.
func FromBindError(err error, obj interface{}) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return apperrors.NewValidationError(Messages(verrs, obj)...)
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return apperrors.NewValidationError(fmt.Sprintf("Invalid value for %s", typeErr.Field))
	}

	if errors.Is(err, io.EOF) {
		return apperrors.NewBadRequestError("Request body is required")
	}
	return apperrors.NewBadRequestError("Invalid request body")
}

// Messages returns one message per failed rule, in field order, without
// duplicates.
func Messages(verrs validator.ValidationErrors, obj interface{}) []string {
	typ := reflect.TypeOf(obj)
	for typ != nil && typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}

	seen := make(map[string]bool, len(verrs))
	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msg := messageFor(typ, fe)
		if seen[msg] {
			continue
		}
		seen[msg] = true
		messages = append(messages, msg)
	}
	return messages
}

func messageFor(typ reflect.Type, fe validator.FieldError) string {
	// Dive errors name the element, e.g. "Careers[1]".
	name := fe.StructField()
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}

	jsonName := name
	if typ != nil && typ.Kind() == reflect.Struct {
		if sf, ok := typ.FieldByName(name); ok {
			if msg, ok := parseMessageTag(sf.Tag.Get(MessageTag))[fe.Tag()]; ok {
				return msg
			}
			if tag := strings.Split(sf.Tag.Get("json"), ",")[0]; tag != "" && tag != "-" {
				jsonName = tag
			}
		}
	}
	return formatValidationError(jsonName, fe)
}

func parseMessageTag(tag string) map[string]string {
	out := make(map[string]string)
	for _, part := range strings.Split(tag, ";") {
		rule, msg, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}
		out[strings.TrimSpace(rule)] = strings.TrimSpace(msg)
	}
	return out
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(field string, e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return field + " must be at least " + e.Param()
	case "max":
		return field + " must be at most " + e.Param()
	case "email":
		return field + " must be a valid email address"
	case "oneof":
		return field + " must be one of: " + e.Param()
	default:
		return field + " validation failed: " + e.Tag()
	}
}
