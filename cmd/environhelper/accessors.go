package environhelper

import (
	"fmt"

	"github.com/environhelper/environhelper/internal/filesystems"
	"github.com/spf13/cobra"
)

var accessorsCmd = &cobra.Command{
	Use:   "accessors",
	Short: "List the env.<accessor> names recognized in settings files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		accessors, err := loadCatalog(filesystems.NewLocalFS())
		if err != nil {
			return err
		}

		for _, name := range accessors.Names() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(accessorsCmd)
}
