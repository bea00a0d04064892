package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <name>",
		Short: "Show a session's index, context and key fingerprint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePassphrase(); err != nil {
				return err
			}
			sess, kdfName, err := loadSession(args[0])
			if err != nil {
				return err
			}
			defer sess.Wipe()

			ctx := sess.Context()
			fmt.Printf("Session:         %s\n", args[0])
			fmt.Printf("KDF:             %s\n", kdfName)
			fmt.Printf("Next index:      %d\n", sess.Index())
			fmt.Printf("Context:         %x\n", ctx.Slice())
			fmt.Printf("Key fingerprint: %s\n", sess.Fingerprint())
			return nil
		},
	}
}
