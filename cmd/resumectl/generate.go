package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"resume-builder/internal/generation"
	"resume-builder/internal/generationlogs"
	"resume-builder/internal/llm/gemini"
	"resume-builder/internal/resumes"
	"resume-builder/internal/shared/config"
)

const cliOwnerID = "cli"

func newGenerateCmd() *cobra.Command {
	var (
		formFile string
		timeout  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate resume content from a builder form",
		Long:  "Runs one generation against Gemini using GEMINI_API_KEY and LLM_MODEL and prints the resume content JSON. Nothing is persisted.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			form, err := readForm(formFile)
			if err != nil {
				return err
			}
			cfg := config.Load()
			if strings.TrimSpace(cfg.GeminiAPIKey) == "" {
				return fmt.Errorf("GEMINI_API_KEY is required")
			}
			if timeout <= 0 {
				timeout = cfg.GenerationTimeout
			}

			ctx := cmd.Context()
			client, err := gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.LLMModel, gemini.OptionsFromTemperature(cfg.LLMTemperature)...)
			if err != nil {
				return err
			}
			svc := &generation.Service{
				LLM:     client,
				Resumes: resumes.NewMemoryRepo(),
				Logs:    generationlogs.NewMemoryRepo(),
				Model:   cfg.LLMModel,
				Timeout: timeout,
			}
			result, err := svc.Generate(ctx, cliOwnerID, form)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "generated in %dms\n", result.LatencyMs)
			return writeJSON(cmd.OutOrStdout(), result.Content)
		},
	}
	cmd.Flags().StringVarP(&formFile, "form", "f", "", "Path to builder form JSON (required)")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Model call timeout (default GENERATION_TIMEOUT)")
	_ = cmd.MarkFlagRequired("form")
	return cmd
}
