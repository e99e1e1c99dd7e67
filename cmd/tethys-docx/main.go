// Command tethys-docx exposes the docx helper library on the command line:
// creating blank documents, validating files, editing custom properties,
// copying templates and opening results in the host word processor.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
