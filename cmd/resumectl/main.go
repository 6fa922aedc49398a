// Package main provides resumectl, a local companion to the API for
// inspecting prompts, running a single generation and rendering exports.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"resume-builder/resume/model"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "resumectl",
		Short:         "Resume builder command line tools",
		Long:          "resumectl builds generation prompts, runs a one-off generation against Gemini, replays saved model replies through the parser and renders resume content to Word, HTML or PDF.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newPromptCmd(), newGenerateCmd(), newParseCmd(), newExportCmd())
	return root
}

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func readForm(path string) (model.BuilderForm, error) {
	var form model.BuilderForm
	if err := readJSONFile(path, &form); err != nil {
		return model.BuilderForm{}, err
	}
	return form, nil
}

func readJSONFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
