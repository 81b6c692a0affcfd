package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"lookup/internal/ui"
	"lookup/internal/ui/input/types"
)

func newKeysCommand() *cobra.Command {
	var noPager bool

	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Show the key bindings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content := ui.NewHelpRenderer().RenderHelpContent(types.DefaultKeyMap())
			if noPager || !term.IsTerminal(int(os.Stdout.Fd())) {
				_, err := fmt.Fprint(cmd.OutOrStdout(), content)
				return err
			}
			return ui.NewPagerOps(nil).ShowInPager(content)
		},
	}
	cmd.Flags().BoolVar(&noPager, "no-pager", false, "print instead of opening the pager")
	return cmd
}
