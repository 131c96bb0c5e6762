package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qrforge/qrforge/internal/decode"
)

// decodeCmd represents the decode command.
var decodeCmd = &cobra.Command{
	Use:   "decode IMAGE",
	Short: "Read the QR code in an image",
	Long: `Decode the QR code contained in an image file and print its text.

An image without a code is not an error; the command prints a notice and
exits with code 1. Unexpected decoder failures and unreadable files exit
non-zero with a diagnostic.

Examples:
  qrforge decode photo.jpg
  qrforge decode code.png`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, found, err := decode.New().DecodeFile(args[0])
		if err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "decode failed: %v\n", err)
			return err
		}
		if !found {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No QR code found.")
			return errNoCodeFound
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), text)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}
