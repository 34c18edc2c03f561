package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// fieldLabels maps struct field names to the query-parameter names clients
// actually see.
var fieldLabels = map[string]string{
	"JobID":      "jobId",
	"MinScore":   "minScore",
	"MaxResults": "maxResults",
}

// Format turns validator errors into a single client-facing message.
// Non-validator errors pass through unchanged.
func Format(err error) string {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}

	messages := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		label := fieldLabels[fe.Field()]
		if label == "" {
			label = fe.Field()
		}
		messages = append(messages, messageFor(label, fe))
	}
	return strings.Join(messages, "; ")
}

func messageFor(label string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "min":
		return fmt.Sprintf("%s must be at least %s", label, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", label, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", label, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}
