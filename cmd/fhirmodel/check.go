package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	fhirmodel "github.com/gofhir/model"
	"github.com/gofhir/model/pkg/constraint"
	"github.com/gofhir/model/pkg/issue"
	"github.com/gofhir/model/pkg/logger"
	"github.com/gofhir/model/pkg/model"
	"github.com/gofhir/model/pkg/registry"
	"github.com/gofhir/model/pkg/schema"
)

var errCheckFailed = errors.New("check failed")

func (a *app) constraintsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "constraints [Type]",
		Short: "List the declared invariants",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			constraints := model.AllConstraints()
			if len(args) == 1 {
				if _, ok := registry.Lookup(args[0]); !ok {
					return errors.Errorf("unknown type %q", args[0])
				}
				constraints = model.ConstraintsOf(args[0])
			}
			if a.cfg.JSONOutput() {
				return writeJSON(a.out, toConstraintOutputs(constraints))
			}
			a.constraintTable(constraints)
			return nil
		},
	}
}

func (a *app) checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [resource.json...]",
		Short: "Check the model and evaluate invariants on resources",
		Long: `Check the model and evaluate invariants on resources.

Every declared invariant is compiled. With --schema the element metadata of
every type is compared with the StructureDefinitions of the core package.
Each file argument must hold a resource in FHIR JSON form; the invariants
declared on its resource type are evaluated against it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			withSchema, _ := cmd.Flags().GetBool("schema")
			packageDir, _ := cmd.Flags().GetString("package")
			if packageDir == "" {
				packageDir = a.cfg.PackageDir
			}
			return a.check(args, withSchema, packageDir)
		},
	}
	cmd.Flags().Bool("schema", false, "Compare the model with the core package StructureDefinitions")
	cmd.Flags().String("package", "", "Unpacked core package directory (default from config)")
	return cmd
}

type checkRun struct {
	source string
	result *issue.Result
}

func (a *app) check(files []string, withSchema bool, packageDir string) error {
	var runs []checkRun

	constraints := model.AllConstraints()
	compiler := constraint.Default()
	runs = append(runs, checkRun{"constraints", compiler.CheckAll(constraints)})
	logger.Info().Int("constraints", len(constraints)).Msg("compiled invariants")

	if withSchema {
		result, err := a.checkSchema(packageDir)
		if err != nil {
			return err
		}
		runs = append(runs, checkRun{fhirmodel.CorePackage(fhirmodel.R4), result})
	}

	for _, pattern := range files {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return errors.Wrapf(err, "pattern %s", pattern)
		}
		if len(matches) == 0 {
			return errors.Errorf("no files match pattern: %s", pattern)
		}
		for _, path := range matches {
			runs = append(runs, checkRun{path, a.checkFile(compiler, constraints, path)})
		}
	}

	failed := false
	outputs := make([]ResultOutput, 0, len(runs))
	for _, run := range runs {
		if run.result.HasErrors() {
			failed = true
		}
		if a.cfg.JSONOutput() {
			outputs = append(outputs, toOutput(run.source, run.result))
		} else {
			printTextResult(a.out, run.source, run.result)
		}
	}
	if a.cfg.JSONOutput() {
		if err := writeJSON(a.out, outputs); err != nil {
			return err
		}
	}

	if failed {
		return errCheckFailed
	}
	return nil
}

func (a *app) checkSchema(packageDir string) (*issue.Result, error) {
	if packageDir == "" {
		return nil, errors.New("no package directory configured")
	}
	pkg, err := schema.LoadPackage(packageDir)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", packageDir)
	}
	logger.Info().
		Str("dir", pkg.Dir).
		Int("structureDefinitions", pkg.Stats.Loaded).
		Msg("loaded core package")
	return schema.CompareAll(registry.Default, pkg), nil
}

func (a *app) checkFile(compiler *constraint.Compiler, constraints []constraint.Constraint, path string) *issue.Result {
	data, err := os.ReadFile(path)
	if err != nil {
		result := issue.NewResult()
		result.AddError(issue.CodeProcessing, fmt.Sprintf("Failed to read file: %v", err))
		return result
	}
	result, err := compiler.Validate(constraints, data)
	if err != nil {
		result = issue.NewResult()
		result.AddError(issue.CodeStructure, fmt.Sprintf("Invalid resource: %v", err))
	}
	return result
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(a.out, "fhirmodel v%s\n", fhirmodel.Version)
			fmt.Fprintf(a.out, "FHIR %s (%s)\n", fhirmodel.FHIRRelease(fhirmodel.R4), fhirmodel.CorePackage(fhirmodel.R4))
			return nil
		},
	}
}
