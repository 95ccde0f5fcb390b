// Package main implements the fhirmodel command, which inspects the FHIR R4
// model: its types, element metadata and declared invariants.
package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	fhirmodel "github.com/gofhir/model"
	"github.com/gofhir/model/internal/config"
	"github.com/gofhir/model/pkg/logger"
)

type app struct {
	out        io.Writer
	errOut     io.Writer
	configFile string
	cfg        *config.Config
	restore    func()
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	rootCmd := &cobra.Command{
		Use:          "fhirmodel",
		Short:        "Inspect the FHIR R4 object model",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.reset()
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", "Config file (default ./fhirmodel.yaml)")
	rootCmd.PersistentFlags().String("output", "", "Output format: text, json")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(a.typesCmd())
	rootCmd.AddCommand(a.describeCmd())
	rootCmd.AddCommand(a.constraintsCmd())
	rootCmd.AddCommand(a.checkCmd())
	rootCmd.AddCommand(a.versionCmd())

	// Persistent post-run hooks are skipped when RunE fails.
	for _, c := range rootCmd.Commands() {
		a.resetAfter(c)
	}
	return rootCmd
}

func (a *app) resetAfter(cmd *cobra.Command) {
	runE := cmd.RunE
	if runE == nil {
		return
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		defer a.reset()
		return runE(cmd, args)
	}
}

// reset undoes the options applied by setup.
func (a *app) reset() {
	if a.restore != nil {
		a.restore()
		a.restore = nil
	}
}

// setup loads the configuration; flags override the loaded values.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configFile)
	if err != nil {
		return err
	}
	if output, _ := cmd.Flags().GetString("output"); output != "" {
		cfg.Output = output
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.LogLevel = level
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	logger.SetDefault(cfg.Logger(a.errOut))
	a.restore = fhirmodel.Configure(cfg.Options()...)
	logger.Debug().Str("output", cfg.Output).Str("packageDir", cfg.PackageDir).Msg("configuration loaded")
	return nil
}
