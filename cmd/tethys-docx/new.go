package main

import (
	"github.com/spf13/cobra"

	"github.com/tngraf/tethys-docx-go/pkg/docx"
)

var newCmd = &cobra.Command{
	Use:   "new <out.docx>",
	Short: "Create a blank document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc := docx.New(docx.WithLogger(logger))
		if err := doc.SaveAs(args[0]); err != nil {
			return err
		}
		cmd.Printf("created %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
}
