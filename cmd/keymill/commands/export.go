package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// exportCmd prints the plaintext session record. The record carries the
// master key, so the command warns loudly and supports writing straight to a
// file with restrictive permissions instead of stdout.
func exportCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export <name>",
		Short: "Write a session record as plaintext JSON (contains the master key)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePassphrase(); err != nil {
				return err
			}
			sess, _, err := loadSession(args[0])
			if err != nil {
				return err
			}
			defer sess.Wipe()

			data, err := json.Marshal(sess)
			if err != nil {
				return err
			}

			fmt.Fprintln(os.Stderr, "WARNING: the exported record contains the master key in the clear.")
			if outPath == "" {
				fmt.Printf("%s\n", data)
				return nil
			}
			if err := os.WriteFile(outPath, append(data, '\n'), 0o600); err != nil {
				return err
			}
			fmt.Printf("Session %q exported to %s\n", args[0], outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "", "write the record to a file instead of stdout")
	return cmd
}
