// Package primitive checks the lexical form of FHIR R4 primitive values.
//
// The regular expressions are those published in the R4 primitive type
// definitions. They are registered as custom go-playground validations so a
// value can be checked with a single tag, e.g. validate.Var(v, "fhir_date").
package primitive

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Errors returned by Check.
var (
	ErrUnknownType   = errors.New("unknown primitive type")
	ErrInvalidFormat = errors.New("invalid primitive value")
)

// patterns maps primitive type names to their R4 regex.
var patterns = map[string]string{
	"boolean":     `true|false`,
	"canonical":   `\S*`,
	"code":        `[^\s]+(\s[^\s]+)*`,
	"date":        `([0-9]([0-9]([0-9][1-9]|[1-9]0)|[1-9]00)|[1-9]000)(-(0[1-9]|1[0-2])(-(0[1-9]|[1-2][0-9]|3[0-1]))?)?`,
	"dateTime":    `([0-9]([0-9]([0-9][1-9]|[1-9]0)|[1-9]00)|[1-9]000)(-(0[1-9]|1[0-2])(-(0[1-9]|[1-2][0-9]|3[0-1])(T([01][0-9]|2[0-3]):[0-5][0-9]:([0-5][0-9]|60)(\.[0-9]+)?(Z|(\+|-)((0[0-9]|1[0-3]):[0-5][0-9]|14:00)))?)?)?`,
	"decimal":     `-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?`,
	"id":          `[A-Za-z0-9\-\.]{1,64}`,
	"instant":     `([0-9]([0-9]([0-9][1-9]|[1-9]0)|[1-9]00)|[1-9]000)-(0[1-9]|1[0-2])-(0[1-9]|[1-2][0-9]|3[0-1])T([01][0-9]|2[0-3]):[0-5][0-9]:([0-5][0-9]|60)(\.[0-9]+)?(Z|(\+|-)((0[0-9]|1[0-3]):[0-5][0-9]|14:00))`,
	"integer":     `-?([0]|([1-9][0-9]*))`,
	"markdown":    `\s*(\S|\s)*`,
	"oid":         `urn:oid:[0-2](\.(0|[1-9][0-9]*))+`,
	"positiveInt": `\+?[1-9][0-9]*`,
	"string":      `[ \r\n\t\S]+`,
	"time":        `([01][0-9]|2[0-3]):[0-5][0-9]:([0-5][0-9]|60)(\.[0-9]+)?`,
	"unsignedInt": `[0]|([1-9][0-9]*)`,
	"uri":         `\S*`,
	"url":         `\S*`,
}

// special holds types checked by code rather than by a regex.
var special = map[string]string{
	"base64Binary": "base64",
	"uuid":         "fhir_uuid",
	"xhtml":        "fhir_xhtml",
}

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New()
	for name, pattern := range patterns {
		re := regexp.MustCompile("^(?:" + pattern + ")$")
		// Registration only fails for empty tags or reserved names.
		_ = v.RegisterValidation(Tag(name), func(fl validator.FieldLevel) bool {
			return re.MatchString(fl.Field().String())
		})
	}
	_ = v.RegisterValidation("fhir_uuid", func(fl validator.FieldLevel) bool {
		return isUUID(fl.Field().String())
	})
	_ = v.RegisterValidation("fhir_xhtml", func(fl validator.FieldLevel) bool {
		return strings.HasPrefix(strings.TrimSpace(fl.Field().String()), "<div")
	})
	return v
}

// Tag returns the validator tag used for a primitive type, e.g. "fhir_dateTime".
func Tag(typeName string) string {
	if tag, ok := special[typeName]; ok {
		return tag
	}
	return "fhir_" + typeName
}

// Validator returns the shared validator with the FHIR primitive tags registered.
func Validator() *validator.Validate {
	return validate
}

// IsPrimitive reports whether typeName names an R4 primitive type.
func IsPrimitive(typeName string) bool {
	if _, ok := patterns[typeName]; ok {
		return true
	}
	_, ok := special[typeName]
	return ok
}

// Types returns the names of all primitive types in sorted order.
func Types() []string {
	names := make([]string, 0, len(patterns)+len(special))
	for name := range patterns {
		names = append(names, name)
	}
	for name := range special {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Check verifies that value is a valid lexical representation of typeName.
func Check(typeName, value string) error {
	if !IsPrimitive(typeName) {
		return errors.Wrapf(ErrUnknownType, "%q", typeName)
	}

	checked := value
	if typeName == "base64Binary" {
		// base64Binary permits embedded whitespace.
		checked = strings.Join(strings.Fields(value), "")
	}
	if err := validate.Var(checked, Tag(typeName)); err != nil {
		return invalid(typeName, value)
	}

	switch typeName {
	case "integer":
		return checkRange(typeName, value, math.MinInt32)
	case "unsignedInt":
		return checkRange(typeName, value, 0)
	case "positiveInt":
		return checkRange(typeName, value, 1)
	case "date", "dateTime", "instant":
		if len(value) >= 10 {
			if _, err := time.Parse(time.DateOnly, value[:10]); err != nil {
				return invalid(typeName, value)
			}
		}
	}
	return nil
}

func checkRange(typeName, value string, lowest int64) error {
	n, err := strconv.ParseInt(strings.TrimPrefix(value, "+"), 10, 64)
	if err != nil || n < lowest || n > math.MaxInt32 {
		return invalid(typeName, value)
	}
	return nil
}

func isUUID(s string) bool {
	rest, ok := strings.CutPrefix(s, "urn:uuid:")
	if !ok || len(rest) != 36 || strings.ToLower(rest) != rest {
		return false
	}
	_, err := uuid.Parse(rest)
	return err == nil
}

func invalid(typeName, value string) error {
	return errors.Wrapf(ErrInvalidFormat, "%q is not a valid %s", truncate(value), typeName)
}

// truncate shortens long values for messages.
func truncate(value string) string {
	const maxLen = 50
	if len(value) <= maxLen {
		return value
	}
	return value[:maxLen] + "..."
}
