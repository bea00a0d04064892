package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"keymill/internal/app"
	"keymill/kdf"
)

func initCmd() *cobra.Command {
	var contextLabel string
	var kdfName string

	cmd := &cobra.Command{
		Use:   "init <name>",
		Short: "Create a session with a fresh master key and store it securely",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePassphrase(); err != nil {
				return err
			}
			name := args[0]
			if _, err := app.DeriverByName(kdfName); err != nil {
				return err
			}

			names, err := appCtx.Sessions.List()
			if err != nil {
				return err
			}
			for _, existing := range names {
				if existing == name {
					return fmt.Errorf("session %q already exists", name)
				}
			}

			b := kdf.NewSessionBuilder().Index(0).RandomKey()
			if contextLabel == "" {
				b.RandomContext()
			} else {
				raw := []byte(contextLabel)
				if len(raw) != kdf.ContextBytes {
					return fmt.Errorf("context must be exactly %d bytes, got %d", kdf.ContextBytes, len(raw))
				}
				b.Context(kdf.MustContext(raw))
			}
			sess, err := b.BuildFull()
			if err != nil {
				return err
			}
			defer sess.Wipe()

			if err := appCtx.Sessions.Save(name, passphrase, kdfName, sess); err != nil {
				return err
			}
			fmt.Printf("Session %q created (kdf: %s).\nKey fingerprint: %s\n", name, kdfName, sess.Fingerprint())
			return nil
		},
	}

	cmd.Flags().StringVar(&contextLabel, "context", "", fmt.Sprintf("%d-byte context label (default random)", kdf.ContextBytes))
	cmd.Flags().StringVar(&kdfName, "kdf", app.DefaultKDF, "derivation primitive (blake2b, hkdf, blake3)")
	return cmd
}
