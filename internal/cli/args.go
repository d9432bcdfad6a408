package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// OptionalDirectory accepts zero or one directory argument.
func OptionalDirectory(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf(`accepts at most 1 arg(s), received %d

Usage: %s

Example:
  %s ./data`, len(args), cmd.UseLine(), cmd.CommandPath())
	}
	return nil
}
