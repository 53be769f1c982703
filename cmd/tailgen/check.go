package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aethelur/tailgen"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report utility class coverage without writing CSS",
	Long: `Scan sources and report which class tokens the parsers recognize.
Unrecognized classes are listed with file locations in golangci-lint
format; strict mode fails the build below a coverage threshold.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runCheck,
}

func init() {
	f := checkCmd.Flags()
	f.StringSlice("paths", nil, "Glob patterns for source files to scan")
	f.Bool("strict", false, "Exit 1 on any issue (CI mode)")
	f.Float64("threshold", 0.0, "Minimum coverage percentage for strict mode")
	f.String("output-format", "", "Output format: issues|summary|full|json")
	f.Int("max-issues", 0, "Max issues to show (0=unlimited)")
	f.Int("max-same-issues", 0, "Max repeated issues to show (0=unlimited)")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (tailgen) suffix on issues")
}

func runCheck(_ *cobra.Command, _ []string) error {
	verbose := getBoolWithFallback("verbose", "verbose", false)
	quiet := getBoolWithFallback("quiet", "quiet", false)
	log := newLogger(verbose, quiet)
	defer log.Sync()

	config := buildCheckConfig()

	gen, err := tailgen.New(buildGeneratorConfig(), log)
	if err != nil {
		return err
	}

	result, err := tailgen.Check(config, gen, log)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	outputFormat := getStringWithFallback("output-format", "check.output-format", "")
	format := tailgen.DetermineOutputFormat(outputFormat, quiet)

	if !quiet {
		tailgen.WriteOutput(os.Stdout, result, format, config)
	}

	// Exit code logic: strict fails on any issue or below-threshold
	// coverage; default mode always exits 0 since unrecognized classes
	// are warnings, not errors.
	if config.Strict {
		if len(result.Issues) > 0 {
			os.Exit(1)
		}
		if config.Threshold > 0 && result.CoveragePercentage < config.Threshold {
			if !quiet {
				fmt.Fprintf(os.Stderr, "\nStrict mode: coverage %.1f%% is below threshold %.1f%%\n",
					result.CoveragePercentage, config.Threshold)
			}
			os.Exit(1)
		}
	}

	return nil
}
