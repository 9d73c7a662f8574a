package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"digispark-uploader/internal/logger"
)

// debug enables cyan debug output; toggled with --debug.
var debug bool

// rootCmd runs the whole flow when invoked without a subcommand: make sure
// arduino-cli is usable, refresh the sketches, let the operator pick one,
// then compile and upload it.
var rootCmd = &cobra.Command{
	Use:   "digispark-uploader",
	Short: "Compile and flash example sketches onto a Digispark",
	Long: `digispark-uploader installs arduino-cli with the Digistump board package next
to itself, downloads the Digispark-Scripts sketch collection, asks which sketch
to use, compiles it and uploads it to a Digispark plugged in when prompted.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,

	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(debug)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		return s.upload(cmd.Context())
	},
}

// Execute runs the root command and exits non-zero on any fatal error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("[ERROR] %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(sketchesCmd)
}
