package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Remove a stored session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.Sessions.Delete(args[0]); err != nil {
				return err
			}
			fmt.Printf("Session %q deleted.\n", args[0])
			return nil
		},
	}
}
