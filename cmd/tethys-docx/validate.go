package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tngraf/tethys-docx-go/pkg/docx"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file.docx>",
	Short: "Check a document's structure and report findings",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := docx.Open(args[0], docx.WithLogger(logger))
		if err != nil {
			return err
		}
		findings := doc.Validate()
		for _, f := range findings {
			cmd.Printf("%s: %s (%s, %s)\n", f.Kind, f.Description, f.Part, f.Path)
		}
		if len(findings) > 0 {
			return fmt.Errorf("%d validation finding(s)", len(findings))
		}
		cmd.Println("no findings")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
