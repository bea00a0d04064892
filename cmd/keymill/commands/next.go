package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"keymill/internal/util/memzero"
	"keymill/kdf"
)

// nextCmd derives the next subkey(s) in the sequence and persists the
// advanced index before printing anything, so a crash can repeat output but
// never reuse an index silently.
func nextCmd() *cobra.Command {
	var length int
	var count int

	cmd := &cobra.Command{
		Use:   "next <name>",
		Short: "Derive the next subkey(s) from a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePassphrase(); err != nil {
				return err
			}
			if count < 1 {
				return fmt.Errorf("count must be at least 1")
			}

			sess, kdfName, err := loadSession(args[0])
			if err != nil {
				return err
			}
			defer sess.Wipe()

			type derived struct {
				index  uint64
				subkey []byte
			}
			out := make([]derived, 0, count)
			for i := 0; i < count; i++ {
				buf := make([]byte, length)
				idx, err := sess.GenerateNextKey(buf)
				if err != nil {
					return fmt.Errorf("deriving subkey: %w", err)
				}
				out = append(out, derived{index: idx, subkey: buf})
			}

			if err := appCtx.Sessions.Save(args[0], passphrase, kdfName, sess); err != nil {
				return fmt.Errorf("persisting session index: %w", err)
			}

			for _, d := range out {
				fmt.Printf("%d: %x\n", d.index, d.subkey)
				memzero.Zero(d.subkey)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&length, "length", 32,
		fmt.Sprintf("subkey length in bytes (%d..%d)", kdf.DerivedKeyBytesMin, kdf.DerivedKeyBytesMax))
	cmd.Flags().IntVar(&count, "count", 1, "number of subkeys to derive")
	return cmd
}
