package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"keymill/internal/app"
	"keymill/kdf"
)

var (
	home       string
	passphrase string
	appCtx     *app.App
)

func Execute() error {
	root := &cobra.Command{
		Use:   "keymill",
		Short: "Deterministic subkey derivation sessions",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".keymill")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			var err error
			appCtx, err = app.NewWire(app.Config{Home: home})
			return err
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.keymill)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting stored sessions")

	root.AddCommand(initCmd(), nextCmd(), infoCmd(), listCmd(), exportCmd(), importCmd(), deleteCmd())
	return root.Execute()
}

func requirePassphrase() error {
	if passphrase == "" {
		return fmt.Errorf("passphrase required (-p)")
	}
	return nil
}

// loadSession fetches a stored session plus the deriver it was created with.
func loadSession(name string) (*kdf.Session, string, error) {
	sess, kdfName, ok, err := appCtx.Sessions.Load(name, passphrase)
	if err != nil {
		return nil, "", err
	}
	if !ok {
		return nil, "", fmt.Errorf("no session named %q", name)
	}
	d, err := app.DeriverByName(kdfName)
	if err != nil {
		return nil, "", err
	}
	sess.UseDeriver(d)
	return sess, kdfName, nil
}
