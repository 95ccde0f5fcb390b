package model

import (
	"reflect"
	"strings"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gofhir/model/pkg/registry"
	"github.com/gofhir/model/pkg/visitor"
)

const sampleURI = "http://example.org/fhir/sample"

var (
	elementType  = reflect.TypeOf((*Element)(nil)).Elem()
	resourceType = reflect.TypeOf((*Resource)(nil)).Elem()
)

// samples holds a valid value for each leaf Go type found in the model.
// Other complex types are filled with an empty struct, since Build only
// looks at the direct children.
func samples(t *testing.T) map[reflect.Type]reflect.Value {
	t.Helper()
	ref, err := NewReferenceBuilder().Display(MustString("sample")).Build()
	require.NoError(t, err)
	outcome, err := NewOperationOutcome(nil)
	require.NoError(t, err)

	values := []any{
		sampleURI,
		MustString("sample"),
		MustUri(sampleURI),
		MustUrl(sampleURI),
		MustCanonical(sampleURI),
		MustCode("USD"),
		MustId("a1"),
		MustMarkdown("sample"),
		MustOid("urn:oid:1.2.3"),
		MustUuid("urn:uuid:c757873d-ec9a-4326-a141-556f43239520"),
		MustDate("2020-01-01"),
		MustDateTime("2020-01-01"),
		MustInstant("2020-01-01T00:00:00Z"),
		MustTime("12:00:00"),
		MustDecimal("1.5"),
		MustPositiveInt(1),
		MustUnsignedInt(1),
		NewInteger(1),
		NewBoolean(true),
		NewBase64Binary([]byte("sample")),
		MustXhtml(`<div xmlns="http://www.w3.org/1999/xhtml">sample</div>`),
		ref,
		BundleTypeDocument.Code(),
		SearchEntryModeMatch.Code(),
		HTTPVerbGET.Code(),
		ChargeItemStatusPlanned.Code(),
		FinancialResourceStatusCodesActive.Code(),
		EligibilityRequestPurposeAuthRequirements.Code(),
		IdentifierUseUsual.Code(),
		QuantityComparatorLessThan.Code(),
		NarrativeStatusGenerated.Code(),
		UnitsOfTimeSecond.Code(),
		DayOfWeekMon.Code(),
		EventTimingMORN.Code(),
		IssueSeverityFatal.Code(),
		IssueTypeInvalid.Code(),
	}
	byType := make(map[reflect.Type]reflect.Value, len(values)+1)
	for _, v := range values {
		byType[reflect.TypeOf(v)] = reflect.ValueOf(v)
	}
	byType[resourceType] = reflect.ValueOf(outcome)
	return byType
}

func sampleValue(t *testing.T, byType map[reflect.Type]reflect.Value, el registry.ElementInfo, typ reflect.Type) reflect.Value {
	t.Helper()
	if v, ok := byType[typ]; ok {
		return v
	}
	switch {
	case typ == elementType:
		info, ok := registry.Lookup(el.Types[0])
		require.True(t, ok, "%s: no type %s", el.Path, el.Types[0])
		return sampleValue(t, byType, el, info.GoType)
	case typ.Kind() == reflect.Slice:
		list := reflect.MakeSlice(typ, 1, 1)
		list.Index(0).Set(sampleValue(t, byType, el, typ.Elem()))
		return list
	case typ.Kind() == reflect.Ptr && typ.Elem().Kind() == reflect.Struct:
		return reflect.New(typ.Elem())
	}
	t.Fatalf("%s: no sample for %s", el.Path, typ)
	return reflect.Value{}
}

// field returns a settable view of an unexported struct field.
func field(v reflect.Value, name string) reflect.Value {
	f := v.Elem().FieldByName(name)
	return reflect.NewAt(f.Type(), unsafe.Pointer(f.UnsafeAddr())).Elem()
}

func fill(t *testing.T, info *registry.TypeInfo) reflect.Value {
	t.Helper()
	byType := samples(t)
	v := reflect.New(info.GoType.Elem())
	for _, el := range info.Elements {
		f := field(v, el.Field)
		require.True(t, f.IsValid(), "%s: no field %s", el.Path, el.Field)
		f.Set(sampleValue(t, byType, el, f.Type()))
	}
	return v
}

func without(v reflect.Value, name string) reflect.Value {
	c := reflect.New(v.Type().Elem())
	c.Elem().Set(v.Elem())
	f := field(c, name)
	f.Set(reflect.Zero(f.Type()))
	return c
}

func rebuild(v reflect.Value) (Base, error) {
	out := v.MethodByName("ToBuilder").Call(nil)[0].MethodByName("Build").Call(nil)
	if err, _ := out[1].Interface().(error); err != nil {
		return nil, err
	}
	return out[0].Interface().(Base), nil
}

// childNames returns the names of the direct children visited under root.
func childNames(b Base) []string {
	var names []string
	for _, p := range visitor.Paths("root", b) {
		rest, ok := strings.CutPrefix(p, "root.")
		if !ok || strings.Contains(rest, ".") {
			continue
		}
		name, _, _ := strings.Cut(rest, "[")
		names = append(names, name)
	}
	return names
}

func modelTypes() []*registry.TypeInfo {
	var types []*registry.TypeInfo
	for _, info := range registry.Default.Types() {
		if info.Kind != registry.KindPrimitive {
			types = append(types, info)
		}
	}
	return types
}

func TestEveryTypeVisitsElementsInOrder(t *testing.T) {
	for _, info := range modelTypes() {
		t.Run(info.Name, func(t *testing.T) {
			b := fill(t, info).Interface().(Base)

			want := make([]string, len(info.Elements))
			for i, el := range info.Elements {
				want[i] = el.Name
			}
			assert.Equal(t, want, childNames(b))
		})
	}
}

func TestEveryTypeRoundTrips(t *testing.T) {
	for _, info := range modelTypes() {
		t.Run(info.Name, func(t *testing.T) {
			v := fill(t, info)
			b := v.Interface().(Base)

			built, err := rebuild(v)
			require.NoError(t, err)
			assert.True(t, built.equalBase(b))
			assert.True(t, b.equalBase(built))
		})
	}
}

func TestEveryElementTakesPartInEqual(t *testing.T) {
	for _, info := range modelTypes() {
		t.Run(info.Name, func(t *testing.T) {
			v := fill(t, info)
			b := v.Interface().(Base)

			for _, el := range info.Elements {
				other := without(v, el.Field).Interface().(Base)
				assert.False(t, b.equalBase(other), el.Name)
				assert.False(t, other.equalBase(b), el.Name)
			}
		})
	}
}

func TestEveryRequiredElementIsChecked(t *testing.T) {
	for _, info := range modelTypes() {
		t.Run(info.Name, func(t *testing.T) {
			v := fill(t, info)
			for _, el := range info.Elements {
				if el.Min == 0 {
					continue
				}
				_, err := rebuild(without(v, el.Field))
				assert.Error(t, err, el.Name)
			}
		})
	}
}
