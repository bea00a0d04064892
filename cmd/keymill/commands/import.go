package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"keymill/internal/app"
	"keymill/internal/util/memzero"
	"keymill/kdf"
)

// importCmd reads a plaintext session record and stores it encrypted. The
// decode is strict: records with missing, unknown or duplicated fields are
// rejected rather than patched with defaults.
func importCmd() *cobra.Command {
	var kdfName string
	var force bool

	cmd := &cobra.Command{
		Use:   "import <name> <file>",
		Short: "Import a session record from a JSON file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePassphrase(); err != nil {
				return err
			}
			name, path := args[0], args[1]
			if _, err := app.DeriverByName(kdfName); err != nil {
				return err
			}

			if !force {
				names, err := appCtx.Sessions.List()
				if err != nil {
					return err
				}
				for _, existing := range names {
					if existing == name {
						return fmt.Errorf("session %q already exists (use --force to replace)", name)
					}
				}
			}

			raw, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			var sess kdf.Session
			err = json.Unmarshal(raw, &sess)
			memzero.Zero(raw)
			if err != nil {
				return fmt.Errorf("decoding session record: %w", err)
			}
			defer sess.Wipe()

			if err := appCtx.Sessions.Save(name, passphrase, kdfName, &sess); err != nil {
				return err
			}
			fmt.Printf("Session %q imported (kdf: %s, next index: %d).\n", name, kdfName, sess.Index())
			return nil
		},
	}

	cmd.Flags().StringVar(&kdfName, "kdf", app.DefaultKDF, "derivation primitive the record belongs to")
	cmd.Flags().BoolVar(&force, "force", false, "replace an existing session of the same name")
	return cmd
}
