// Package registry is a catalogue of the FHIR types implemented by the model.
//
// Type metadata is read from the `fhir` struct tags of the model structs, so
// the catalogue always matches the code. Elements are listed in declaration
// order, elements of the base type first.
package registry

import (
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"github.com/gofhir/model/pkg/logger"
)

// Kind classifies a registered type.
type Kind string

// Type kinds, aligned with StructureDefinition.kind plus backbone elements.
const (
	KindPrimitive Kind = "primitive-type"
	KindComplex   Kind = "complex-type"
	KindBackbone  Kind = "backbone"
	KindResource  Kind = "resource"
)

// Binding describes the terminology binding of a coded element.
type Binding struct {
	Name     string
	Strength string
	ValueSet string
}

// ElementInfo describes one element of a type.
type ElementInfo struct {
	Name    string
	Path    string
	Min     int
	Max     string
	Types   []string
	Targets []string
	Binding *Binding
	Summary bool
	// Modifier is set for modifier elements.
	Modifier bool
	Choice   bool
	// Inherited is set for elements declared by the base type.
	Inherited bool
	// Field is the Go struct field holding the element.
	Field string
}

// IsList reports whether the element repeats.
func (e ElementInfo) IsList() bool {
	return e.Max != "1" && e.Max != "0"
}

// TypeInfo describes a registered type.
type TypeInfo struct {
	Name     string
	Kind     Kind
	Base     string
	GoType   reflect.Type
	Elements []ElementInfo
}

// Element returns the named element.
func (t *TypeInfo) Element(name string) (ElementInfo, bool) {
	for _, e := range t.Elements {
		if e.Name == name {
			return e, true
		}
	}
	return ElementInfo{}, false
}

// OwnElements returns the elements not inherited from the base type.
func (t *TypeInfo) OwnElements() []ElementInfo {
	own := make([]ElementInfo, 0, len(t.Elements))
	for _, e := range t.Elements {
		if !e.Inherited {
			own = append(own, e)
		}
	}
	return own
}

// Registry holds TypeInfo by FHIR name and by Go type.
type Registry struct {
	mu       sync.RWMutex
	byName   map[string]*TypeInfo
	byGoType map[reflect.Type]*TypeInfo
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		byName:   make(map[string]*TypeInfo),
		byGoType: make(map[reflect.Type]*TypeInfo),
	}
}

// Register reads the struct tags of sample, a pointer to a model struct, and
// records the type under name.
func (r *Registry) Register(kind Kind, name string, sample any) (*TypeInfo, error) {
	rt := reflect.TypeOf(sample)
	if rt == nil || rt.Kind() != reflect.Ptr || rt.Elem().Kind() != reflect.Struct {
		return nil, errors.Errorf("register %s: sample must be a pointer to a struct, got %T", name, sample)
	}

	info := &TypeInfo{Name: name, Kind: kind, GoType: rt}
	if err := collectElements(info, rt.Elem(), false); err != nil {
		return nil, errors.Wrapf(err, "register %s", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byName[name]; exists {
		return nil, errors.Errorf("register %s: already registered", name)
	}
	r.byName[name] = info
	r.byGoType[rt] = info

	logger.Debug().Str("type", name).Str("kind", string(kind)).Int("elements", len(info.Elements)).Msg("registered model type")
	return info, nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(kind Kind, name string, sample any) *TypeInfo {
	info, err := r.Register(kind, name, sample)
	if err != nil {
		panic(err)
	}
	return info
}

func collectElements(info *TypeInfo, st reflect.Type, inherited bool) error {
	for i := 0; i < st.NumField(); i++ {
		f := st.Field(i)
		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			if info.Base == "" {
				info.Base = baseName(f.Type.Name())
			}
			if err := collectElements(info, f.Type, true); err != nil {
				return err
			}
			continue
		}
		raw, ok := f.Tag.Lookup(TagName)
		if !ok {
			continue
		}
		tag, err := ParseTag(raw)
		if err != nil {
			return err
		}
		info.Elements = append(info.Elements, elementInfo(info.Name, f, tag, inherited))
	}
	return nil
}

func elementInfo(typeName string, f reflect.StructField, tag Tag, inherited bool) ElementInfo {
	e := ElementInfo{
		Name:      tag.Name,
		Path:      typeName + "." + tag.Name,
		Min:       tag.Min,
		Max:       tag.Max,
		Targets:   tag.Targets,
		Binding:   tag.Binding,
		Summary:   tag.Summary,
		Modifier:  tag.Modifier,
		Choice:    len(tag.Choice) > 0,
		Inherited: inherited,
		Field:     f.Name,
	}

	ft := f.Type
	if ft.Kind() == reflect.Slice && ft.Elem().Kind() != reflect.Uint8 {
		ft = ft.Elem()
		if e.Max == "" {
			e.Max = "*"
		}
	}
	if e.Max == "" {
		e.Max = "1"
	}

	switch {
	case e.Choice:
		e.Types = tag.Choice
	case tag.Type != "":
		e.Types = []string{tag.Type}
	default:
		e.Types = []string{fhirTypeOf(ft)}
	}
	return e
}

type typed interface {
	FHIRType() string
}

// fhirTypeOf derives the FHIR type name of a Go field type.
func fhirTypeOf(t reflect.Type) string {
	if t.Kind() == reflect.Ptr {
		if v, ok := reflect.Zero(t).Interface().(typed); ok {
			return v.FHIRType()
		}
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int32, reflect.Int64:
		return "integer"
	default:
		return t.Name()
	}
}

// baseName maps an embedded base struct such as domainResource to its FHIR
// type name.
func baseName(goName string) string {
	if goName == "" {
		return ""
	}
	return strings.ToUpper(goName[:1]) + goName[1:]
}

// Lookup returns the type registered under name.
func (r *Registry) Lookup(name string) (*TypeInfo, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	info, ok := r.byName[name]
	return info, ok
}

// LookupValue returns the type of a model value.
func (r *Registry) LookupValue(v any) (*TypeInfo, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	info, ok := r.byGoType[reflect.TypeOf(v)]
	return info, ok
}

// Types returns all registered types sorted by name.
func (r *Registry) Types() []*TypeInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()
	types := make([]*TypeInfo, 0, len(r.byName))
	for _, info := range r.byName {
		types = append(types, info)
	}
	sort.Slice(types, func(i, j int) bool { return types[i].Name < types[j].Name })
	return types
}

// ByKind returns the registered types of one kind sorted by name.
func (r *Registry) ByKind(kind Kind) []*TypeInfo {
	var out []*TypeInfo
	for _, info := range r.Types() {
		if info.Kind == kind {
			out = append(out, info)
		}
	}
	return out
}

// Count returns the number of registered types.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byName)
}

// Default is the registry the model registers itself into.
var Default = New()

// MustRegister registers a type in the Default registry.
func MustRegister(kind Kind, name string, sample any) *TypeInfo {
	return Default.MustRegister(kind, name, sample)
}

// Lookup looks up a type in the Default registry.
func Lookup(name string) (*TypeInfo, bool) {
	return Default.Lookup(name)
}

// Types returns the types of the Default registry.
func Types() []*TypeInfo {
	return Default.Types()
}
