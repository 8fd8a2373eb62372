// registryctl inspects the enumeration registry from the command line:
// error codes with their HTTP mapping, DICOM character sets, value
// representations and the resource hierarchy.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pacscore/dicom-registry/pkg/config"
	"github.com/pacscore/dicom-registry/pkg/enums"
	"github.com/pacscore/dicom-registry/pkg/errors"
	"github.com/pacscore/dicom-registry/pkg/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "registryctl",
		Short:         "Inspect the imaging server enumeration registry",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(newErrorCmd())
	root.AddCommand(newEncodingsCmd())
	root.AddCommand(newVRCmd())
	root.AddCommand(newResourcesCmd())
	root.AddCommand(newMimeCmd())

	return root
}

func newErrorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "error <code>",
		Short: "Describe a numeric error code and its HTTP status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.WrapBadParameterType(err, "error code must be an integer")
			}
			code := errors.Code(n)
			status := enums.ConvertErrorCodeToHTTPStatus(code)
			cmd.Printf("name:        %s\n", code)
			cmd.Printf("description: %s\n", code.Description())
			cmd.Printf("http status: %d %s\n", int(status), status)
			if code.IsPluginCode() {
				cmd.Println("range:       plugin-defined")
			}
			return nil
		},
	}
}

func newEncodingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encodings",
		Short: "List character encodings and their DICOM defined terms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.New(logger.Config{Level: "WARNING", Format: "text"})
			cfg, err := config.LoadConfig(log)
			if err != nil {
				return err
			}

			for _, e := range enums.AllEncodings() {
				label := e.SpecificCharacterSet()
				if label == "" {
					label = "-"
				}
				marker := " "
				if e == cfg.DefaultEncoding {
					marker = "*"
				}
				cmd.Printf("%s %-18s %s\n", marker, e, label)
			}
			cmd.Println("\n(* = configured default encoding)")
			return nil
		},
	}
}

func newVRCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vr <token>",
		Short: "Classify a DICOM value representation token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vr, err := enums.ParseValueRepresentation(args[0], true)
			if err != nil {
				return err
			}
			kind := "text"
			if vr.IsBinary() {
				kind = "binary"
			}
			cmd.Printf("%s: value %d, %s\n", vr, int(vr), kind)
			return nil
		},
	}
}

func newResourcesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resources",
		Short: "Print the resource hierarchy with metadata modules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			levels := []enums.ResourceType{
				enums.ResourceTypePatient,
				enums.ResourceTypeStudy,
				enums.ResourceTypeSeries,
				enums.ResourceTypeInstance,
			}
			for _, t := range levels {
				module, err := t.Module()
				if err != nil {
					return err
				}
				cmd.Printf("%d %-8s module=%s\n", int(t), t, module)
			}
			return nil
		},
	}
}

func newMimeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mime <token>",
		Short: "Resolve a MIME token against the registry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t := enums.ParseMIMEType(args[0])
			cmd.Printf("%s (value %d)\n", t, int(t))
			if t == enums.MIMETypeBinary && args[0] != enums.MIMEBinary {
				fmt.Fprintln(cmd.OutOrStdout(), "unrecognized token, fell back to octet-stream")
			}
			return nil
		},
	}
}
