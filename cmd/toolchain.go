package cmd

import (
	"github.com/spf13/cobra"
)

// verifyCmd resolves a usable arduino-cli the same way the full flow does,
// installing it if needed, and prints the executable path.
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify arduino-cli and the Digistump core, installing them if missing",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		res, err := s.installer().Verify(cmd.Context())
		if err != nil {
			return err
		}
		s.printf("%s (%s)\n", res.Path, res.Source)
		return nil
	},
}

// installCmd always performs a fresh install, discarding any existing toolchain.
var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Reinstall arduino-cli and the Digistump core from scratch",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		exe, err := s.installer().Install(cmd.Context())
		if err != nil {
			return err
		}
		s.printf("%s\n", exe)
		return nil
	},
}
