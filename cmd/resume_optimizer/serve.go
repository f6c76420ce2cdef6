package main

import (
	"context"
	"log"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-optimizer/internal/extraction"
	"github.com/jonathan/resume-optimizer/internal/llm"
	"github.com/jonathan/resume-optimizer/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for resume extraction, analysis, and rendering.`,
	RunE:  runServe,
}

var (
	servePort     int
	serveStrategy string
)

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveStrategy, "strategy", "", "Default parsing strategy: heuristic or llm")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("port") && cfg.Port != 0 {
		servePort = cfg.Port
	}
	if serveStrategy == "" {
		serveStrategy = cfg.ParserStrategy
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Oracle-backed endpoints degrade gracefully without a client, so a
	// missing API key only warrants a warning here.
	var client llm.Client
	if cfg.APIKey != "" {
		client, err = newOracleClient(ctx, cfg)
		if err != nil {
			return err
		}
	} else {
		log.Println("GEMINI_API_KEY not set; analysis and LLM parsing will return fallback results")
	}

	srv := server.New(server.Config{
		Port:           servePort,
		Client:         client,
		ParserStrategy: extraction.Strategy(serveStrategy),
	})

	return srv.Start()
}
