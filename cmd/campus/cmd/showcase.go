package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/campusui/campus/cmd/campus/internal/screen"
	"github.com/campusui/campus/cmd/campus/internal/showcase"
)

type userOptions struct {
	name  string
	email string
}

func (u *userOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&u.name, "user", "Ada Lovelace", "signed-in user shown in the account menu")
	cmd.Flags().StringVar(&u.email, "email", "ada@campus.edu", "email shown in the account menu")
}

func newShowcaseCommand(opts *rootOptions) *cobra.Command {
	user := &userOptions{}
	cmd := &cobra.Command{
		Use:   "showcase",
		Short: "Run the admin header interactively",
		Long: `Run the admin header full screen. Tab moves between controls, arrows move
through an open menu, Enter and Space select, Escape closes, and mouse
presses go to whatever is drawn under the pointer.

Logs are discarded unless --log-file is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			logger, restore, err := opts.setupLogging(io.Discard, cfg.Verbose)
			if err != nil {
				return err
			}
			defer restore()

			driver := screen.NewDriver(screen.Admin{Config: cfg, User: user.name, Email: user.email, Logger: logger})
			driver.Logger = logger
			defer driver.Close()
			logger.Info("showcase started", "app", cfg.AppName, "root", cfg.Root)
			return showcase.Run(driver, cfg.AppName)
		},
	}
	user.register(cmd)
	return cmd
}
