package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/gofhir/model/pkg/constraint"
	"github.com/gofhir/model/pkg/model"
	"github.com/gofhir/model/pkg/registry"
)

func (a *app) typesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "types",
		Short: "List the types of the model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, _ := cmd.Flags().GetString("kind")
			return a.listTypes(kind)
		},
	}
	cmd.Flags().String("kind", "", "Only list one kind: primitive-type, complex-type, backbone, resource")
	return cmd
}

// TypeOutput is the JSON form of a registered type.
type TypeOutput struct {
	Name     string          `json:"name"`
	Kind     string          `json:"kind"`
	Base     string          `json:"base,omitempty"`
	Elements []ElementOutput `json:"elements,omitempty"`
}

// ElementOutput is the JSON form of an element.
type ElementOutput struct {
	Name      string   `json:"name"`
	Min       int      `json:"min"`
	Max       string   `json:"max"`
	Types     []string `json:"types"`
	Targets   []string `json:"targets,omitempty"`
	ValueSet  string   `json:"valueSet,omitempty"`
	Strength  string   `json:"strength,omitempty"`
	Summary   bool     `json:"summary,omitempty"`
	Modifier  bool     `json:"modifier,omitempty"`
	Inherited bool     `json:"inherited,omitempty"`
}

func (a *app) listTypes(kind string) error {
	var types []*registry.TypeInfo
	if kind == "" {
		types = registry.Types()
	} else {
		types = registry.Default.ByKind(registry.Kind(kind))
		if len(types) == 0 {
			return errors.Errorf("unknown kind %q", kind)
		}
	}

	if a.cfg.JSONOutput() {
		out := make([]TypeOutput, len(types))
		for i, info := range types {
			out[i] = TypeOutput{Name: info.Name, Kind: string(info.Kind), Base: info.Base}
		}
		return writeJSON(a.out, out)
	}

	table := newTable(a.out, "NAME", "KIND", "BASE", "ELEMENTS")
	for _, info := range types {
		table.Append([]string{info.Name, string(info.Kind), info.Base, strconv.Itoa(len(info.OwnElements()))})
	}
	table.Render()
	return nil
}

func (a *app) describeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe <Type>",
		Short: "Show the elements and invariants of a type",
		Long: `Show the elements and invariants of a type.

Backbone elements are named by path, e.g. "Bundle.entry.request".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inherited, _ := cmd.Flags().GetBool("inherited")
			return a.describe(args[0], inherited)
		},
	}
	cmd.Flags().Bool("inherited", false, "Include elements of the base type")
	return cmd
}

func (a *app) describe(name string, inherited bool) error {
	info, ok := registry.Lookup(name)
	if !ok {
		return errors.Errorf("unknown type %q", name)
	}
	elements := info.OwnElements()
	if inherited {
		elements = info.Elements
	}
	constraints := model.ConstraintsOf(name)

	if a.cfg.JSONOutput() {
		out := TypeOutput{Name: info.Name, Kind: string(info.Kind), Base: info.Base}
		for _, e := range elements {
			out.Elements = append(out.Elements, toElementOutput(e))
		}
		return writeJSON(a.out, struct {
			TypeOutput
			Constraints []ConstraintOutput `json:"constraints,omitempty"`
		}{out, toConstraintOutputs(constraints)})
	}

	fmt.Fprintf(a.out, "%s (%s", info.Name, info.Kind)
	if info.Base != "" {
		fmt.Fprintf(a.out, ", base %s", info.Base)
	}
	fmt.Fprintln(a.out, ")")

	table := newTable(a.out, "ELEMENT", "CARD", "TYPE", "FLAGS", "BINDING")
	for _, e := range elements {
		types := strings.Join(e.Types, " | ")
		if len(e.Targets) > 0 {
			types += "(" + strings.Join(e.Targets, " | ") + ")"
		}
		binding := ""
		if e.Binding != nil {
			binding = e.Binding.ValueSet + " (" + e.Binding.Strength + ")"
		}
		table.Append([]string{e.Name, strconv.Itoa(e.Min) + ".." + e.Max, types, flags(e), binding})
	}
	table.Render()

	if len(constraints) > 0 {
		fmt.Fprintln(a.out)
		a.constraintTable(constraints)
	}
	return nil
}

func flags(e registry.ElementInfo) string {
	var f []string
	if e.Summary {
		f = append(f, "Σ")
	}
	if e.Modifier {
		f = append(f, "?!")
	}
	if e.Inherited {
		f = append(f, "^")
	}
	return strings.Join(f, " ")
}

func toElementOutput(e registry.ElementInfo) ElementOutput {
	out := ElementOutput{
		Name:      e.Name,
		Min:       e.Min,
		Max:       e.Max,
		Types:     e.Types,
		Targets:   e.Targets,
		Summary:   e.Summary,
		Modifier:  e.Modifier,
		Inherited: e.Inherited,
	}
	if e.Binding != nil {
		out.ValueSet = e.Binding.ValueSet
		out.Strength = e.Binding.Strength
	}
	return out
}

// ConstraintOutput is the JSON form of a declared invariant.
type ConstraintOutput struct {
	ID          string `json:"id"`
	Level       string `json:"level"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Expression  string `json:"expression"`
}

func toConstraintOutputs(constraints []constraint.Constraint) []ConstraintOutput {
	out := make([]ConstraintOutput, len(constraints))
	for i, c := range constraints {
		out[i] = ConstraintOutput{
			ID:          c.ID,
			Level:       string(c.Level),
			Location:    c.Location,
			Description: c.Description,
			Expression:  c.Expression,
		}
	}
	return out
}

func (a *app) constraintTable(constraints []constraint.Constraint) {
	table := newTable(a.out, "ID", "LEVEL", "LOCATION", "DESCRIPTION")
	for _, c := range constraints {
		table.Append([]string{c.ID, string(c.Level), c.Location, c.Description})
	}
	table.Render()
}
