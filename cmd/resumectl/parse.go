package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"resume-builder/internal/generation"
)

func newParseCmd() *cobra.Command {
	var (
		replyFile string
		formFile  string
	)

	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Parse a saved model reply into resume content",
		Long:  "Runs a raw model reply through the same parse and schema checks as the API, attaches personal details from the form and prints the content JSON.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			reply, err := os.ReadFile(replyFile)
			if err != nil {
				return fmt.Errorf("read %s: %w", replyFile, err)
			}
			form, err := readForm(formFile)
			if err != nil {
				return err
			}

			content, err := generation.ParseReply(string(reply), form.Personal)
			if err != nil {
				var verr *generation.SchemaValidationError
				if errors.As(err, &verr) {
					for _, f := range verr.Fields {
						fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", f.Field, f.Description)
					}
				}
				return err
			}
			return writeJSON(cmd.OutOrStdout(), content)
		},
	}
	cmd.Flags().StringVarP(&replyFile, "reply", "r", "", "Path to the raw model reply (required)")
	cmd.Flags().StringVarP(&formFile, "form", "f", "", "Path to the builder form JSON the reply was generated from (required)")
	_ = cmd.MarkFlagRequired("reply")
	_ = cmd.MarkFlagRequired("form")
	return cmd
}
