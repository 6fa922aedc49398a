package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"resume-builder/resume/model"
	"resume-builder/resume/render"
)

func newExportCmd() *cobra.Command {
	var (
		contentFile string
		format      string
		outFile     string
		chromePath  string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render resume content to doc, html or pdf",
		Long:  "Renders a resume content JSON file. Output goes to --out, or stdout when --out is \"-\". PDF needs a local Chrome.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var content model.ResumeContent
			if err := readJSONFile(contentFile, &content); err != nil {
				return err
			}
			f, err := render.ParseFormat(format)
			if err != nil {
				return err
			}

			renderer := render.Renderer{}
			if f == render.FormatPDF {
				renderer.PDF = &render.ChromePDF{ExecPath: chromePath}
			}
			body, err := renderer.Render(cmd.Context(), content, f)
			if err != nil {
				return err
			}

			if outFile == "-" {
				_, err = cmd.OutOrStdout().Write(body)
				return err
			}
			if outFile == "" {
				outFile = render.FileName(content, f)
			}
			if err := os.WriteFile(outFile, body, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", outFile, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (%d bytes)\n", outFile, len(body))
			return nil
		},
	}
	cmd.Flags().StringVarP(&contentFile, "content", "c", "", "Path to resume content JSON (required)")
	cmd.Flags().StringVar(&format, "format", "doc", "Export format: doc, html or pdf")
	cmd.Flags().StringVarP(&outFile, "out", "o", "", "Output path, \"-\" for stdout (default <Name>_Resume.<ext>)")
	cmd.Flags().StringVar(&chromePath, "chrome", "", "Chrome executable for pdf (default: search PATH)")
	_ = cmd.MarkFlagRequired("content")
	return cmd
}
