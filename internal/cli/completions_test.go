package cli

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestCompleteDirectories(t *testing.T) {
	cmd := &cobra.Command{}

	t.Run("returns FilterDirs directive for first arg", func(t *testing.T) {
		_, directive := completeDirectories(cmd, nil, "")
		if directive != cobra.ShellCompDirectiveFilterDirs {
			t.Errorf("expected ShellCompDirectiveFilterDirs, got %v", directive)
		}
	})

	t.Run("returns NoFileComp when args already provided", func(t *testing.T) {
		_, directive := completeDirectories(cmd, []string{"./existing"}, "")
		if directive != cobra.ShellCompDirectiveNoFileComp {
			t.Errorf("expected ShellCompDirectiveNoFileComp, got %v", directive)
		}
	})
}
