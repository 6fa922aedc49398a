package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"resume-builder/internal/generation"
)

func newPromptCmd() *cobra.Command {
	var formFile string

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Print the generation prompt for a builder form",
		Long:  "Normalizes the builder form the same way the API does and prints the prompt that would be sent to the model.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			form, err := readForm(formFile)
			if err != nil {
				return err
			}
			if err := form.Validate(); err != nil {
				return err
			}
			prompt, err := generation.BuildPrompt(generation.Normalize(form))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), prompt)
			return err
		},
	}
	cmd.Flags().StringVarP(&formFile, "form", "f", "", "Path to builder form JSON (required)")
	_ = cmd.MarkFlagRequired("form")
	return cmd
}
