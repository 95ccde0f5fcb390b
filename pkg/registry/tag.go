package registry

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// TagName is the struct tag key holding element metadata.
const TagName = "fhir"

// Tag is the parsed form of a `fhir:"..."` struct tag.
//
//	fhir:"status,required,summary,modifier,binding=ChargeItemStatus,strength=required,valueSet=http://hl7.org/fhir/ValueSet/chargeitem-status|4.0.1"
//	fhir:"occurrence,choice=dateTime|Period|Timing,summary"
//	fhir:"subject,required,targets=Patient|Group,summary"
type Tag struct {
	Name     string
	Min      int
	Max      string
	Summary  bool
	Modifier bool
	Choice   []string
	Targets  []string
	Type     string
	Binding  *Binding
}

// ParseTag parses a fhir struct tag.
func ParseTag(tag string) (Tag, error) {
	parts := strings.Split(tag, ",")
	t := Tag{Name: parts[0]}
	if t.Name == "" {
		return t, errors.Errorf("fhir tag %q has no element name", tag)
	}
	for _, part := range parts[1:] {
		key, value, _ := strings.Cut(part, "=")
		switch key {
		case "required":
			t.Min = 1
		case "min":
			n, err := strconv.Atoi(value)
			if err != nil {
				return t, errors.Wrapf(err, "fhir tag %q: min", tag)
			}
			t.Min = n
		case "max":
			t.Max = value
		case "summary":
			t.Summary = true
		case "modifier":
			t.Modifier = true
		case "choice":
			t.Choice = strings.Split(value, "|")
		case "targets":
			t.Targets = strings.Split(value, "|")
		case "type":
			t.Type = value
		case "binding":
			t.binding().Name = value
		case "strength":
			t.binding().Strength = value
		case "valueSet":
			t.binding().ValueSet = value
		default:
			return t, errors.Errorf("fhir tag %q: unknown option %q", tag, key)
		}
	}
	return t, nil
}

func (t *Tag) binding() *Binding {
	if t.Binding == nil {
		t.Binding = &Binding{}
	}
	return t.Binding
}
