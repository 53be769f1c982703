package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aethelur/tailgen"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Scan sources and write the generated stylesheet",
	Long: `Scan the configured source globs for class attributes, compile every
recognized utility class, and write the resulting CSS file.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runBuild,
}

func init() {
	f := buildCmd.Flags()
	f.StringSlice("paths", nil, "Glob patterns for source files to scan")
	f.StringP("out", "o", "tailgen.css", "Output CSS file")
	f.Bool("minify", false, "Emit minified CSS")
	f.Bool("verify", false, "Re-parse the emitted CSS and fail on syntax errors")
	f.Bool("tree-shake-keyframes", false, "Only emit @keyframes referenced by animate- classes")
	f.StringSlice("disable", nil, "Utility categories to disable (e.g. svg,tables)")
}

func runBuild(cmd *cobra.Command, _ []string) error {
	verbose := getBoolWithFallback("verbose", "verbose", false)
	quiet := getBoolWithFallback("quiet", "quiet", false)
	log := newLogger(verbose, quiet)
	defer log.Sync()

	gen, err := tailgen.New(buildGeneratorConfig(), log)
	if err != nil {
		return err
	}

	matches, stats, err := tailgen.ScanFiles(scanPaths(), log)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	classes := tailgen.UniqueClasses(matches)
	report := gen.AddClasses(classes)

	css := gen.CSS()

	verify, _ := cmd.Flags().GetBool("verify")
	if verify {
		if err := tailgen.VerifyCSS(css); err != nil {
			return fmt.Errorf("output verification failed: %w", err)
		}
	}

	out := getStringWithFallback("out", "build.out", "tailgen.css")
	if err := os.WriteFile(out, []byte(css), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}

	if !quiet {
		fmt.Printf("Wrote %s\n", out)
		fmt.Printf("  Files scanned:   %d\n", stats.FilesScanned)
		fmt.Printf("  Classes found:   %d (%d distinct)\n", stats.ClassesFound, report.Total())
		fmt.Printf("  Recognized:      %d (%.1f%%)\n", report.Succeeded, report.Coverage())
		fmt.Printf("  Rules written:   %d\n", gen.RuleCount())

		if len(report.Failed) > 0 {
			fmt.Printf("  Unrecognized:    %d (run `tailgen check` for locations)\n", len(report.Failed))
		}
	}

	return nil
}
