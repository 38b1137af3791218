package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deadelineurz/rustupolis-downloads/internal/platform"
)

// detectCmd returns the detect command.
func detectCmd() *cobra.Command {
	var (
		nav platform.Navigator
		out outputOptions
	)

	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Guess the operating system from navigator values",
		Long: `Classify a browser from its navigator.platform and navigator.userAgent.

Prints one of Windows, MacOS, Linux, Android or NoOs. NoOs means the values
were empty or not recognised.

Examples:
  rustupolis-dl detect --platform MacIntel
  rustupolis-dl detect --platform "Linux armv81" --user-agent "Mozilla/5.0 (Linux; Android 14)"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			detected := platform.Detect(nav.Environment())

			w := cmd.OutOrStdout()
			if out.json {
				return writeJSON(w, map[string]platform.OS{"os": detected})
			}
			fmt.Fprintln(w, detected)
			return nil
		},
	}

	cmd.Flags().StringVar(&nav.Platform, "platform", "", "value of navigator.platform")
	cmd.Flags().StringVar(&nav.UserAgent, "user-agent", "", "value of navigator.userAgent")
	out.register(cmd.Flags())

	return cmd
}
