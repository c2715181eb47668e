package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/fmfug/fmfug/internal/config"
	"github.com/fmfug/fmfug/internal/core"
	"github.com/fmfug/fmfug/internal/core/engine"
	"github.com/fmfug/fmfug/internal/core/format"
	"github.com/fmfug/fmfug/internal/observability"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate username candidates",
	Long: `Generate username wordlists from a file of full names, or from the
cross product of separate first-name and last-name lists`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringP("input", "i", "users.txt", "Input file with full names, one per line")
	generateCmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")
	generateCmd.Flags().StringArrayP("format", "f", nil, "Add a format pattern (repeatable)")
	generateCmd.Flags().String("formats-file", "", "File with format patterns, # lines are comments")
	generateCmd.Flags().String("first-names", "", "First names file (cross-product mode)")
	generateCmd.Flags().String("last-names", "", "Last names file (cross-product mode)")
	generateCmd.Flags().IntP("workers", "w", 4, "Parallel generation workers")
	generateCmd.Flags().Bool("case-sensitive", false, "Preserve input casing instead of lowercasing output")
	generateCmd.Flags().Bool("suffix-truncation", false, "Apply bracket truncation to numeric-suffix patterns (first[2]5)")

	_ = viper.BindPFlag("workers", generateCmd.Flags().Lookup("workers"))
	_ = viper.BindPFlag("case_sensitive", generateCmd.Flags().Lookup("case-sensitive"))
	_ = viper.BindPFlag("suffix_truncation", generateCmd.Flags().Lookup("suffix-truncation"))
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	formats, err := resolveFormats(cmd)
	if err != nil {
		return err
	}

	source, totalItems, err := resolveSource(cmd)
	if err != nil {
		return err
	}

	outPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	outSink, err := openSink(outPath)
	if err != nil {
		return err
	}
	defer outSink.close() // nolint:errcheck // best-effort cleanup; flush errors surface from the pipeline

	generator := format.NewGenerator(formats, format.Options{
		CaseSensitive:    cfg.CaseSensitive,
		SuffixTruncation: cfg.SuffixTruncation,
	})

	runID := uuid.NewString()
	logger := observability.CLILogger
	logger.Debug("Starting generation",
		zap.String("run_id", runID),
		zap.Int("names", totalItems),
		zap.Int("formats", generator.Formats()),
		zap.Int("workers", cfg.Workers),
		zap.String("output", outSink.path),
	)

	var (
		sink     engine.Sink
		reporter engine.Reporter = engine.NopReporter{}
		bar      *progressReporter
	)
	if outSink.isFile() {
		sink = engine.NewBufferedSink(outSink.writer, cfg.Buffer.Lines)
		// Progress rendering is suppressed in stdout mode so it never
		// interleaves with generated usernames.
		bar = newProgressReporter(totalItems)
		reporter = bar
	} else {
		sink = engine.NewLineSink(outSink.writer)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pipeline := &engine.Pipeline{
		Task:     generator,
		Workers:  cfg.Workers,
		Reporter: reporter,
		OnError: func(ev engine.ErrorEvent) {
			logger.Warn("Failed to process item",
				zap.String("run_id", runID),
				zap.String("item", ev.Item.String()),
				zap.Error(ev.Err),
			)
		},
	}

	startedAt := time.Now()
	total, runErr := pipeline.Run(ctx, source, sink)
	if bar != nil {
		bar.Stop()
	}

	if runErr != nil {
		if errors.Is(runErr, context.Canceled) {
			// The sink was flushed before Run returned; report the partial
			// total instead of crashing silently.
			logger.Warn("Interrupted",
				zap.String("run_id", runID),
				zap.Int64("generated", total),
			)
			return nil
		}
		return fmt.Errorf("generation failed after %d usernames: %w", total, runErr)
	}

	logger.Info("Generation complete",
		zap.String("run_id", runID),
		zap.Int64("generated", total),
	)
	logThroughput(total, startedAt)
	return nil
}

// resolveSource builds the work-item source: the lazy cross product when
// both name-part files are given, otherwise the flat input file.
func resolveSource(cmd *cobra.Command) (core.Source, int, error) {
	firstPath, err := cmd.Flags().GetString("first-names")
	if err != nil {
		return nil, 0, err
	}
	lastPath, err := cmd.Flags().GetString("last-names")
	if err != nil {
		return nil, 0, err
	}

	if (strings.TrimSpace(firstPath) == "") != (strings.TrimSpace(lastPath) == "") {
		return nil, 0, errors.New("--first-names and --last-names must be used together")
	}

	if strings.TrimSpace(firstPath) != "" {
		firsts, err := readNamesFile(firstPath)
		if err != nil {
			return nil, 0, fmt.Errorf("loading first names: %w", err)
		}
		lasts, err := readNamesFile(lastPath)
		if err != nil {
			return nil, 0, fmt.Errorf("loading last names: %w", err)
		}
		total := len(firsts) * len(lasts)
		observability.CLILogger.Debug("Combination mode",
			zap.Int("first_names", len(firsts)),
			zap.Int("last_names", len(lasts)),
			zap.Int("combinations", total),
		)
		return core.Product(firsts, lasts), total, nil
	}

	inputPath, err := cmd.Flags().GetString("input")
	if err != nil {
		return nil, 0, err
	}
	names, err := readNamesFile(inputPath)
	if err != nil {
		return nil, 0, fmt.Errorf("loading input: %w", err)
	}
	if len(names) == 0 {
		return nil, 0, fmt.Errorf("no names found in %s", inputPath)
	}
	return core.Names(names), len(names), nil
}

// resolveFormats returns the configured pattern list: literal --format
// flags, or the contents of --formats-file. An empty result selects the
// default pattern set downstream.
func resolveFormats(cmd *cobra.Command) ([]string, error) {
	formatsFile, err := cmd.Flags().GetString("formats-file")
	if err != nil {
		return nil, err
	}
	literals, err := cmd.Flags().GetStringArray("format")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(formatsFile) != "" {
		if len(literals) > 0 {
			return nil, errors.New("cannot combine --format with --formats-file")
		}
		return readFormatsFile(formatsFile)
	}
	return literals, nil
}

func logThroughput(count int64, startedAt time.Time) {
	if count <= 0 {
		return
	}
	elapsed := time.Since(startedAt)
	if elapsed <= 0 {
		return
	}
	rate := float64(count) / elapsed.Seconds()
	observability.CLILogger.Info(
		"Generation throughput",
		zap.Int64("usernames", count),
		zap.Duration("elapsed", elapsed),
		zap.Float64("rate_per_sec", rate),
	)
}
