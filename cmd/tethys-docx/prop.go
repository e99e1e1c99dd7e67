package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/tngraf/tethys-docx-go/pkg/docx"
)

var flagPropKind string

var propCmd = &cobra.Command{
	Use:   "prop",
	Short: "Read and write custom document properties",
}

var propSetCmd = &cobra.Command{
	Use:   "set <file.docx> <name> <value>",
	Short: "Set or overwrite a custom property",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := docx.ParsePropertyKind(flagPropKind)
		if err != nil {
			return err
		}
		value, err := parsePropertyValue(kind, args[2])
		if err != nil {
			return err
		}
		doc, err := docx.Open(args[0], docx.WithLogger(logger))
		if err != nil {
			return err
		}
		previous, existed, err := doc.SetCustomProperty(args[1], value)
		if err != nil {
			return err
		}
		if err := doc.Save(); err != nil {
			return err
		}
		if existed {
			cmd.Printf("replaced %s (was %q)\n", args[1], previous)
		} else {
			cmd.Printf("set %s\n", args[1])
		}
		return nil
	},
}

var propGetCmd = &cobra.Command{
	Use:   "get <file.docx> <name>",
	Short: "Print a custom property's value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := docx.Open(args[0], docx.WithLogger(logger))
		if err != nil {
			return err
		}
		value, ok := doc.CustomProperty(args[1])
		if !ok {
			return fmt.Errorf("property %q not found", args[1])
		}
		cmd.Println(value)
		return nil
	},
}

var propDelCmd = &cobra.Command{
	Use:   "del <file.docx> <name>",
	Short: "Remove a custom property",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := docx.Open(args[0], docx.WithLogger(logger))
		if err != nil {
			return err
		}
		removed, err := doc.RemoveCustomProperty(args[1])
		if err != nil {
			return err
		}
		if !removed {
			return fmt.Errorf("property %q not found", args[1])
		}
		if err := doc.Save(); err != nil {
			return err
		}
		cmd.Printf("removed %s\n", args[1])
		return nil
	},
}

var propListCmd = &cobra.Command{
	Use:   "list <file.docx>",
	Short: "List all custom properties",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := docx.Open(args[0], docx.WithLogger(logger))
		if err != nil {
			return err
		}
		props, err := doc.CustomProperties()
		if err != nil {
			return err
		}
		for _, p := range props {
			cmd.Printf("%s\t%s\t%s\n", p.Name, p.Value.Type, p.Value.Value)
		}
		return nil
	},
}

// parsePropertyValue converts the command-line text into a typed property
// value for the declared kind.
func parsePropertyValue(kind docx.PropertyKind, text string) (docx.PropertyValue, error) {
	switch kind {
	case docx.PropertyText:
		return docx.Text(text), nil
	case docx.PropertyYesNo:
		b, err := strconv.ParseBool(text)
		if err != nil {
			return docx.PropertyValue{}, fmt.Errorf("invalid yes/no value %q", text)
		}
		return docx.YesNo(b), nil
	case docx.PropertyInteger:
		n, err := strconv.ParseInt(text, 10, 32)
		if err != nil {
			return docx.PropertyValue{}, fmt.Errorf("invalid integer value %q", text)
		}
		return docx.Integer(int32(n)), nil
	case docx.PropertyDouble:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return docx.PropertyValue{}, fmt.Errorf("invalid double value %q", text)
		}
		return docx.Double(f), nil
	case docx.PropertyDateTime:
		t, err := time.Parse(time.RFC3339, text)
		if err != nil {
			return docx.PropertyValue{}, fmt.Errorf("invalid date-time value %q (want RFC3339)", text)
		}
		return docx.DateTime(t), nil
	default:
		return docx.PropertyValue{}, fmt.Errorf("unsupported property kind %s", kind)
	}
}

func init() {
	propSetCmd.Flags().StringVar(&flagPropKind, "kind", "text", "property kind: text, yesno, integer, double, datetime")
	propCmd.AddCommand(propSetCmd, propGetCmd, propDelCmd, propListCmd)
	rootCmd.AddCommand(propCmd)
}
