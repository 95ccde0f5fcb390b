package model

import (
	"encoding/base64"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/gofhir/model/pkg/validation"
)

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func checkString(typ, fhirType string, value *string) error {
	if value == nil {
		return nil
	}
	return validation.CheckPrimitive(typ, "value", fhirType, *value)
}

func checkInt(typ, fhirType string, value *int32) error {
	if value == nil {
		return nil
	}
	return validation.CheckPrimitive(typ, "value", fhirType, strconv.FormatInt(int64(*value), 10))
}

func equalDecimal(a, b *decimal.Decimal) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

// NewDecimalFromString parses a FHIR decimal such as "12.50".
func NewDecimalFromString(s string) (*Decimal, error) {
	if err := validation.CheckPrimitive("decimal", "value", "decimal", s); err != nil {
		return nil, err
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, errors.Wrapf(err, "parse decimal %q", s)
	}
	return NewDecimal(d), nil
}

// MustDecimal is like NewDecimalFromString but panics on an invalid value.
func MustDecimal(s string) *Decimal {
	return must(NewDecimalFromString(s))
}

// NewBase64BinaryFromString decodes standard base64 text. Whitespace is
// ignored.
func NewBase64BinaryFromString(s string) (*Base64Binary, error) {
	data, err := base64.StdEncoding.DecodeString(strings.Join(strings.Fields(s), ""))
	if err != nil {
		return nil, errors.Wrap(err, "decode base64Binary")
	}
	return NewBase64Binary(data), nil
}

// Encoded returns the value as standard base64 text.
func (b *Base64Binary) Encoded() string {
	return base64.StdEncoding.EncodeToString(b.Value())
}

// NewRandomUUID creates a Uuid holding a random (version 4) UUID.
func NewRandomUUID() *Uuid {
	return MustUuid("urn:uuid:" + uuid.NewString())
}

// UUID parses the value as a UUID.
func (u *Uuid) UUID() (uuid.UUID, error) {
	return uuid.Parse(u.Value())
}

// Layouts accepted for the partial date forms of date and dateTime.
var dateLayouts = []string{"2006", "2006-01", time.DateOnly, time.RFC3339Nano}

func parseDate(typ, value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.Errorf("parse %s %q", typ, value)
}

// Time parses the date. Partial dates resolve to the first day of the period.
func (d *Date) Time() (time.Time, error) {
	return parseDate("date", d.Value())
}

// NewDateFromTime creates a Date with day precision.
func NewDateFromTime(t time.Time) *Date {
	return MustDate(t.Format(time.DateOnly))
}

// Time parses the dateTime. Partial dates resolve to the first day of the period.
func (d *DateTime) Time() (time.Time, error) {
	return parseDate("dateTime", d.Value())
}

// NewDateTimeFromTime creates a DateTime with the precision of t.
func NewDateTimeFromTime(t time.Time) *DateTime {
	return MustDateTime(t.Format(time.RFC3339Nano))
}

// Time parses the instant.
func (i *Instant) Time() (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, i.Value())
	return t, errors.Wrapf(err, "parse instant %q", i.Value())
}

// NewInstantFromTime creates an Instant with the precision of t.
func NewInstantFromTime(t time.Time) *Instant {
	return MustInstant(t.Format(time.RFC3339Nano))
}

// Duration returns the time of day as the offset from midnight.
func (t *Time) Duration() (time.Duration, error) {
	v, err := time.Parse("15:04:05.999999999", t.Value())
	if err != nil {
		return 0, errors.Wrapf(err, "parse time %q", t.Value())
	}
	return v.Sub(time.Date(v.Year(), v.Month(), v.Day(), 0, 0, 0, 0, time.UTC)), nil
}
