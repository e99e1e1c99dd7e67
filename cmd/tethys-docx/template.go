package main

import (
	"github.com/spf13/cobra"

	"github.com/tngraf/tethys-docx-go/pkg/docx"
)

var flagOpenAfterCopy bool

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Work with document templates",
}

var templateCopyCmd = &cobra.Command{
	Use:   "copy <template> <target.docx>",
	Short: "Copy a template to a target path, overwriting it",
	Long: `Copy a template to a target path, overwriting any existing file.
A bare template name is resolved against the configured template_dir.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		src := cfg.resolveTemplate(args[0])
		if err := docx.CopyTemplate(src, args[1], logger); err != nil {
			return err
		}
		cmd.Printf("copied %s to %s\n", src, args[1])
		if flagOpenAfterCopy {
			return docx.OpenInWordProcessor(args[1], cfg.WordProcessor, logger)
		}
		return nil
	},
}

var openCmd = &cobra.Command{
	Use:   "open <file.docx>",
	Short: "Open a document in the host word processor",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return docx.OpenInWordProcessor(args[0], cfg.WordProcessor, logger)
	},
}

func init() {
	templateCopyCmd.Flags().BoolVar(&flagOpenAfterCopy, "open", false, "open the copy in the word processor")
	templateCmd.AddCommand(templateCopyCmd)
	rootCmd.AddCommand(templateCmd, openCmd)
}
