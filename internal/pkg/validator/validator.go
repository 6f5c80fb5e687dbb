package validator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate returns field -> failed rule for every violated constraint,
// or nil when the struct is valid.
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	fields := make(map[string]string)
	for _, fe := range err.(validator.ValidationErrors) {
		fields[fe.Field()] = fe.Tag()
	}
	return fields
}

// Describe flattens a violation map into a single detail string suitable
// for the {"detail": ...} error envelope.
func Describe(fields map[string]string) string {
	if len(fields) == 0 {
		return ""
	}
	parts := make([]string, 0, len(fields))
	for f, rule := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, rule))
	}
	sort.Strings(parts)
	return strings.Join(parts, "; ")
}
