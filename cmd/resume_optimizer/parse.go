package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-optimizer/internal/config"
	"github.com/jonathan/resume-optimizer/internal/extraction"
	"github.com/jonathan/resume-optimizer/internal/observability"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>...",
	Short: "Extract structured resumes from uploaded documents",
	Long:  "Extract a structured resume from each PDF, DOCX, or HTML document. Multiple files are processed concurrently.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runParse,
}

var (
	parseStrategy string
	parseOutDir   string
	parseAPIKey   string
)

func init() {
	parseCmd.Flags().StringVar(&parseStrategy, "strategy", "heuristic", "Parsing strategy: heuristic or llm")
	parseCmd.Flags().StringVarP(&parseOutDir, "out", "o", "", "Directory for output JSON files (default: stdout)")
	parseCmd.Flags().StringVar(&parseAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	if parseAPIKey != "" {
		cfg.APIKey = parseAPIKey
	}
	if !cmd.Flags().Changed("strategy") && cfg.ParserStrategy != "" {
		parseStrategy = cfg.ParserStrategy
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	strategy := extraction.Strategy(parseStrategy)
	extractor, cleanup, err := newExtractor(ctx, strategy, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	if parseOutDir != "" {
		if err := os.MkdirAll(parseOutDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	results := make([]extraction.Result, len(args))

	g, gctx := errgroup.WithContext(ctx)
	for i, path := range args {
		g.Go(func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}
			result, err := extractor.ExtractFile(gctx, filepath.Base(path), data)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stderr)
	for i, path := range args {
		result := results[i]

		if verbose {
			printer.PrintResume(result.Resume, result.Warnings)
		}

		jsonBytes, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}

		if parseOutDir == "" {
			fmt.Fprintln(cmd.OutOrStdout(), string(jsonBytes))
			continue
		}

		base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		outPath := filepath.Join(parseOutDir, base+".json")
		if err := os.WriteFile(outPath, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Extracted %s -> %s\n", path, outPath)
	}

	return nil
}

// newExtractor builds an extractor for the given strategy, creating an oracle
// client only when the strategy requires one. The returned cleanup closes it.
func newExtractor(ctx context.Context, strategy extraction.Strategy, cfg config.Config) (*extraction.Extractor, func(), error) {
	if strategy != extraction.StrategyLLM {
		return extraction.NewExtractor(strategy, nil), func() {}, nil
	}

	client, err := newOracleClient(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = client.Close()
	}
	return extraction.NewExtractor(strategy, client), cleanup, nil
}
