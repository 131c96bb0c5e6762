package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/qrforge/qrforge/internal/render"
	"github.com/qrforge/qrforge/internal/version"
)

// Exit codes mirror the tool's contract: 0 success, 1 no code found,
// 2 operation not supported on this platform.
const (
	exitOK          = 0
	exitNoCodeFound = 1
	exitUnsupported = 2
	exitFailure     = 1
)

// errNoCodeFound marks the expected "nothing to decode" outcome so that
// Execute can map it to its exit code without treating it as a failure.
var errNoCodeFound = errors.New("no QR code found")

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "qrforge",
	Short: "Generate and read QR codes",
	Long: `qrforge turns text into scannable QR codes and recovers text from
images that contain one.

Output formats are selected by file extension: .txt, .png, .bmp, .gif,
.tif, .svg and .pdf. An icon can be overlaid on the symbol center at the
cost of error-correction budget; qrforge reports when the icon eats more
budget than the chosen level can recover.

Examples:
  qrforge encode "Hello, World!" --output hello.png
  qrforge encode "https://example.com" -o code.svg --ecc-level high
  qrforge decode photo.jpg`,
	RunE: func(cmd *cobra.Command, args []string) error {
		v, _ := cmd.PersistentFlags().GetBool("version")
		if v {
			ver, commit, date := version.Info()
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "qrforge %s (commit: %s, built: %s)\n", ver, commit, date)
			return nil
		}
		return cmd.Help()
	},
}

// Execute runs the CLI and exits with the documented code.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
	os.Exit(exitOK)
}

func exitCode(err error) int {
	if errors.Is(err, errNoCodeFound) {
		return exitNoCodeFound
	}
	var ufe *render.UnsupportedFormatError
	if errors.As(err, &ufe) {
		return exitUnsupported
	}
	return exitFailure
}

// GetRootCommand returns the root command for testing purposes.
// This allows tests to execute commands without calling os.Exit().
func GetRootCommand() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output (equivalent to --log-level=debug)")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("version", false, "print version information and exit")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.SetEnvPrefix("QRFORGE")
	viper.AutomaticEnv()

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		var logLevel slog.Level
		if viper.GetBool("verbose") {
			logLevel = slog.LevelDebug
		} else {
			switch viper.GetString("log_level") {
			case "debug":
				logLevel = slog.LevelDebug
			case "info":
				logLevel = slog.LevelInfo
			case "error":
				logLevel = slog.LevelError
			default:
				logLevel = slog.LevelWarn
			}
		}
		logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: logLevel,
		}))
		slog.SetDefault(logger)
	}
}
