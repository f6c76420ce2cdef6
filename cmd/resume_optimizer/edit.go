package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-optimizer/internal/analysis"
	"github.com/jonathan/resume-optimizer/internal/observability"
	"github.com/jonathan/resume-optimizer/internal/types"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Rewrite a snippet of resume text per an instruction",
	Long:  "Rewrite a single snippet of resume text following an instruction. With no --text the command writes new content from scratch.",
	RunE:  runEdit,
}

var (
	editText        string
	editInstruction string
	editSection     string
	editJobFile     string
	editOutFile     string
	editAPIKey      string
)

func init() {
	editCmd.Flags().StringVar(&editText, "text", "", "Current text to rewrite (empty asks for new content)")
	editCmd.Flags().StringVar(&editInstruction, "instruction", "", "What to do with the text")
	editCmd.Flags().StringVar(&editSection, "section", "", "Section kind the text belongs to (experience, education, ...)")
	editCmd.Flags().StringVar(&editJobFile, "job", "", "Path to job description text file for targeting")
	editCmd.Flags().StringVarP(&editOutFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	editCmd.Flags().StringVar(&editAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	_ = editCmd.MarkFlagRequired("instruction")

	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	if editAPIKey != "" {
		cfg.APIKey = editAPIKey
	}

	var jobDescription string
	if editJobFile != "" {
		data, err := os.ReadFile(editJobFile)
		if err != nil {
			return fmt.Errorf("failed to read job description: %w", err)
		}
		jobDescription = string(data)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	client, err := newOracleClient(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	editCtx := analysis.EditContext{
		SectionKind:    types.ParseSectionKind(editSection),
		JobDescription: jobDescription,
	}
	result := analysis.NewService(client).EditSnippet(ctx, editText, editInstruction, editCtx)

	if verbose {
		observability.NewPrinter(os.Stderr).PrintEdit(&result)
	}

	return writeJSON(cmd, editOutFile, result)
}
