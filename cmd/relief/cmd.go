package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/couchcryptid/relief-calc/internal/properties"
	"github.com/couchcryptid/relief-calc/internal/study"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "relief",
		Short:        "Relief-flow calculations for pressure vessel studies",
		SilenceUsage: true,
	}
	root.AddCommand(newEvaluateCmd(), newSampleCmd(), newFluidsCmd(), newGasesCmd())
	return root
}

func newEvaluateCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "evaluate <study file>",
		Short: "Evaluate a study and print the design basis",
		Long: `Evaluate reads a study in YAML (.yaml, .yml) or JSON (.json) and
calculates every case it declares. Selected, calculated cases compete for the
design basis; the largest ASME VIII design flow governs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := readStudy(args[0])
			if err != nil {
				return err
			}
			result := study.NewEngine(nil).Evaluate(s)
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}
			return writeResult(cmd.OutOrStdout(), result)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full result as JSON")
	return cmd
}

func newSampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sample",
		Short: "Print a sample study in YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(study.Sample()); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}

func newFluidsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fluids",
		Short: "List the built-in fluid property table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tHEAT OF VAP (Btu/lb)\tMW\tDENSITY (lb/ft³)")
			for _, f := range properties.Default().Fluids() {
				fmt.Fprintf(w, "%s\t%.1f\t%.2f\t%.2f\n", f.Name, f.HeatOfVaporization, f.MolecularWeight, f.LiquidDensity)
			}
			return w.Flush()
		},
	}
}

func newGasesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gases",
		Short: "List the built-in gas property table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tMW\tSG\tZ\tk")
			for _, g := range properties.Default().Gases() {
				fmt.Fprintf(w, "%s\t%.2f\t%.3f\t%.2f\t%.2f\n", g.Name, g.MolecularWeight, g.SpecificGravity, g.DefaultCompressibilityFactor, g.SpecificHeatRatio)
			}
			return w.Flush()
		},
	}
}

var errUnknownFormat = errors.New("study file must end in .yaml, .yml or .json")

func readStudy(path string) (study.Study, error) {
	f, err := os.Open(path)
	if err != nil {
		return study.Study{}, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return study.DecodeYAML(f)
	case ".json":
		return study.DecodeJSON(f)
	default:
		return study.Study{}, fmt.Errorf("%s: %w", path, errUnknownFormat)
	}
}

func writeResult(out io.Writer, r study.Result) error {
	fmt.Fprintf(out, "Study %s", r.StudyID)
	if r.Name != "" {
		fmt.Fprintf(out, " (%s)", r.Name)
	}
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CASE\tSELECTED\tFLOW\tUNIT\tMASS (lb/hr)\tASME (lb/hr)\tSTATUS")
	for _, c := range r.Cases {
		status := "ok"
		switch {
		case len(c.Errors) > 0:
			status = "error: " + strings.Join(c.Errors, "; ")
		case !c.IsCalculated:
			status = "not calculated"
		case len(c.Warnings) > 0:
			status = "warning: " + strings.Join(c.Warnings, "; ")
		}
		fmt.Fprintf(w, "%s\t%t\t%.1f\t%s\t%.1f\t%.1f\t%s\n",
			c.CaseID, c.IsSelected, c.CalculatedRelievingFlow, c.FlowUnit, c.MassFlowRate, c.ASMEVIIIDesignFlow, status)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if r.DesignBasis == nil {
		fmt.Fprintln(out, "\nNo design basis: no selected case calculated a flow.")
		return nil
	}
	fmt.Fprintf(out, "\nDesign basis: %.1f lb/hr (%s)\n", r.DesignBasis.Flow, r.DesignBasis.GoverningCaseID)
	return nil
}
