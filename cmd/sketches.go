package cmd

import (
	"github.com/spf13/cobra"

	"digispark-uploader/internal/sketch"
)

// sketchesCmd refreshes the sketch collection and lists it without prompting.
var sketchesCmd = &cobra.Command{
	Use:   "sketches",
	Short: "Download the sketch collection and list the available sketches",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		sketches, err := s.refreshAndList(cmd.Context())
		if err != nil {
			return err
		}
		for i, path := range sketches {
			s.printf("%d. %s\t%s\n", i+1, sketch.DisplayName(path), path)
		}
		return nil
	},
}
