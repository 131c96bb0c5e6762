package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qrforge/qrforge/internal/config"
	"github.com/qrforge/qrforge/internal/encode"
)

// encodeCmd represents the encode command.
var encodeCmd = &cobra.Command{
	Use:   "encode TEXT",
	Short: "Encode text as a QR code",
	Long: `Encode text as a QR code and write it to a file, or print an ASCII
rendering to stdout when no output file is given.

The output format follows the file extension. Icon-versus-error-correction
diagnostics are printed to stderr; they never stop the encode.

Examples:
  qrforge encode "Hello, World!"
  qrforge encode "Hello, World!" --output hello.png --module-size 8
  qrforge encode "https://example.com" -o code.png --icon logo.png --ecc-level high`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		text := args[0]
		opts, err := optionsFromFlags(cmd)
		if err != nil {
			return err
		}
		output, _ := cmd.Flags().GetString("output")

		enc := encode.New()
		if output == "" {
			data, diags, err := enc.Encode(text, ".txt", opts)
			printDiagnostics(cmd, diags)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}

		diags, err := enc.EncodeToFile(text, output, opts)
		printDiagnostics(cmd, diags)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", output)
		return nil
	},
}

// optionsFromFlags translates the encode flags into EncodeOptions.
// Color flags accept names or hex literals.
func optionsFromFlags(cmd *cobra.Command) (config.EncodeOptions, error) {
	opts := config.DefaultEncodeOptions()
	flags := cmd.Flags()

	levelName, _ := flags.GetString("ecc-level")
	level, err := config.ParseECCLevel(levelName)
	if err != nil {
		return opts, err
	}
	opts.Level = level

	if s, _ := flags.GetString("light"); s != "" {
		if opts.Light, err = config.ParseColor(s); err != nil {
			return opts, err
		}
	}
	if s, _ := flags.GetString("dark"); s != "" {
		if opts.Dark, err = config.ParseColor(s); err != nil {
			return opts, err
		}
	}
	if s, _ := flags.GetString("background"); s != "" {
		if opts.Background, err = config.ParseColor(s); err != nil {
			return opts, err
		}
	}
	if s, _ := flags.GetString("icon-background"); s != "" {
		if opts.IconBackground, err = config.ParseColor(s); err != nil {
			return opts, err
		}
	}

	opts.IconPath, _ = flags.GetString("icon")
	opts.IconSizePercent, _ = flags.GetInt("icon-size")
	opts.IconBorderWidth, _ = flags.GetInt("icon-border")
	opts.ModuleSize, _ = flags.GetInt("module-size")
	opts.NoPadding, _ = flags.GetBool("no-padding")
	return opts, nil
}

func printDiagnostics(cmd *cobra.Command, diags []encode.Diagnostic) {
	for _, d := range diags {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", d.Severity, d.Message)
	}
}

func init() {
	rootCmd.AddCommand(encodeCmd)

	defaults := config.DefaultEncodeOptions()
	encodeCmd.Flags().StringP("output", "o", "", "output file; the extension selects the format")
	encodeCmd.Flags().StringP("ecc-level", "l", defaults.Level.String(), "error-correction level (low, medium, quartile, high)")
	encodeCmd.Flags().String("light", "", "light module color (name or #RRGGBB)")
	encodeCmd.Flags().String("dark", "", "dark module color (name or #RRGGBB)")
	encodeCmd.Flags().String("background", "", "background color (name or #RRGGBB)")
	encodeCmd.Flags().String("icon", "", "image to overlay on the symbol center")
	encodeCmd.Flags().Int("icon-size", defaults.IconSizePercent, "icon edge as a percentage of the symbol edge (1-99)")
	encodeCmd.Flags().Int("icon-border", defaults.IconBorderWidth, "border around the icon in pixels")
	encodeCmd.Flags().String("icon-background", "", "fill behind the icon (defaults to the light color)")
	encodeCmd.Flags().Int("module-size", defaults.ModuleSize, "pixels per module")
	encodeCmd.Flags().Bool("no-padding", false, "omit the quiet zone around the symbol")
}
