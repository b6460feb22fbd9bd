package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/dshills/winequality/internal/features"
	"github.com/dshills/winequality/internal/model"
	"github.com/dshills/winequality/internal/render"
	"github.com/dshills/winequality/internal/report"
	"github.com/dshills/winequality/internal/sample"
	"github.com/dshills/winequality/internal/schema"
)

type predictFlags struct {
	format       string
	out          string
	explain      bool
	strictRanges bool
	failBelow    string
	verbose      bool
	values       map[string]*float64
}

func newPredictCmd() *cobra.Command {
	f := &predictFlags{values: make(map[string]*float64)}

	cmd := &cobra.Command{
		Use:   "predict [sample-file]",
		Short: "Estimate quality for one sample",
		Long: "Estimate quality for one sample read from a JSON or YAML file and/or flags.\n" +
			"Flags override file values; anything left unset uses the documented default.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			overrides := make(map[string]float64)
			for key, v := range f.values {
				if cmd.Flags().Changed(flagName(key)) {
					overrides[key] = *v
				}
			}
			return runPredict(cmd.OutOrStdout(), cmd.ErrOrStderr(), path, overrides, f)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.format, "format", "json", "Output format: json or md")
	flags.StringVar(&f.out, "out", "", "Output file path (default: stdout)")
	flags.BoolVar(&f.explain, "explain", false, "Include linear score and nearest neighbors")
	flags.BoolVar(&f.strictRanges, "strict-ranges", false, "Exit non-zero if any value is outside its declared range")
	flags.StringVar(&f.failBelow, "fail-below", "", "Exit non-zero if the category ranks below this one")
	flags.BoolVar(&f.verbose, "verbose", false, "Print processing steps to stderr")

	for _, s := range features.Catalog() {
		v := new(float64)
		f.values[s.Key] = v
		flags.Float64Var(v, flagName(s.Key), s.Default, fmt.Sprintf("%s (%s)", s.Description, unitOrNone(s.Unit)))
	}

	return cmd
}

func runPredict(stdout, stderr io.Writer, samplePath string, overrides map[string]float64, f *predictFlags) error {
	logger := log.New(stderr, "", 0)
	verbose := func(msg string, args ...any) {
		if f.verbose {
			logger.Printf(msg, args...)
		}
	}

	var minCategory model.Category
	if f.failBelow != "" {
		c, ok := model.ParseCategory(f.failBelow)
		if !ok {
			return exitError(3, "unknown category for --fail-below: %s", f.failBelow)
		}
		minCategory = c
	}

	// 1. Load sample
	var raw map[string]any
	var input report.Input
	if samplePath != "" {
		verbose("Loading sample: %s", samplePath)
		s, err := sample.Load(samplePath)
		if err != nil {
			return exitError(3, "failed to load sample: %v", err)
		}
		raw = s.Raw
		input.SampleFile = filepath.Base(s.FilePath)
		input.SampleHash = s.Hash
	}

	// 2. Resolve defaults, then apply flag overrides
	resolved, defaulted := features.Resolve(raw)
	resolved, err := features.Override(resolved, overrides)
	if err != nil {
		return exitError(3, "%v", err)
	}
	for key := range overrides {
		input.Overrides = append(input.Overrides, key)
	}
	for _, key := range defaulted {
		if _, ok := overrides[key]; !ok {
			input.Defaulted = append(input.Defaulted, key)
		}
	}
	verbose("Resolved %d features (%d defaulted, %d from flags)", model.NumFeatures, len(input.Defaulted), len(overrides))

	// 3. Estimate
	rep := report.Build(resolved, report.Options{
		Version: version,
		Input:   input,
		Explain: f.explain,
	})
	verbose("Estimated quality %.1f (%s)", rep.Prediction.Quality, rep.Prediction.Category)

	// 4. Validate
	if errs := schema.Validate(&rep.Prediction); len(errs) > 0 {
		fmt.Fprintln(stderr, "Prediction failed validation:")
		for _, e := range errs {
			fmt.Fprintf(stderr, "  %s\n", e)
		}
		return exitError(5, "prediction failed validation")
	}
	for _, w := range rep.Warnings {
		verbose("Warning: %s", w)
	}

	// 5. Output
	var output string
	switch f.format {
	case "json":
		data, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		output = string(data) + "\n"
	case "md":
		output = render.Markdown(rep)
	default:
		return exitError(3, "unknown format: %s", f.format)
	}

	if f.out != "" {
		verbose("Writing output to %s", f.out)
		if err := os.WriteFile(f.out, []byte(output), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else {
		fmt.Fprint(stdout, output)
	}

	// 6. Exit code
	if f.strictRanges && len(rep.Warnings) > 0 {
		return exitError(2, "%d value(s) outside declared ranges", len(rep.Warnings))
	}
	if minCategory != "" && report.BelowThreshold(rep, minCategory) {
		return exitError(2, "category %s is below %s", rep.Prediction.Category, minCategory)
	}

	return nil
}

// flagName converts a JSON key such as freeSulfurDioxide to free-sulfur-dioxide.
func flagName(key string) string {
	if key == "pH" {
		return "ph"
	}
	var b strings.Builder
	runes := []rune(key)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && !unicode.IsUpper(runes[i-1]) {
				b.WriteByte('-')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

func unitOrNone(u string) string {
	if u == "" {
		return "unitless"
	}
	return u
}
