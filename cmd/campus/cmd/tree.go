package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/campusui/campus/cmd/campus/internal/screen"
	"github.com/campusui/campus/pkg/animation"
	"github.com/campusui/campus/pkg/dom"
)

// settleLimit bounds the simulated time spent finishing animations after
// each replayed action.
const settleLimit = 5 * time.Second

type keyStroke struct {
	key   string
	shift bool
}

var keyNames = map[string]keyStroke{
	"up":        {key: dom.KeyArrowUp},
	"down":      {key: dom.KeyArrowDown},
	"enter":     {key: dom.KeyEnter},
	"space":     {key: dom.KeySpace},
	"esc":       {key: dom.KeyEscape},
	"escape":    {key: dom.KeyEscape},
	"tab":       {key: dom.KeyTab},
	"shift+tab": {key: dom.KeyTab, shift: true},
	"home":      {key: dom.KeyHome},
	"end":       {key: dom.KeyEnd},
}

func parseKeys(names []string) ([]keyStroke, error) {
	strokes := make([]keyStroke, 0, len(names))
	for _, name := range names {
		k, ok := keyNames[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, fmt.Errorf("unknown key %q", name)
		}
		strokes = append(strokes, k)
	}
	return strokes, nil
}

func newTreeCommand(opts *rootOptions) *cobra.Command {
	var (
		user    = &userOptions{}
		presses []string
		keys    []string
		text    string
		painted bool
	)
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Replay input on the admin header and print the document",
		Long: `Mount the admin header, replay presses, typed text and keys in that order,
and print the resulting document. Each --press names a node by data-testid,
aria-label or visible text. Animations are run to completion after every
step.`,
		Example: `  campus tree --press "Select a term" --keys down,down,enter
  campus tree --press course-search --text calc --screen`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			strokes, err := parseKeys(keys)
			if err != nil {
				return err
			}
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			logger, restore, err := opts.setupLogging(cmd.ErrOrStderr(), cfg.Verbose)
			if err != nil {
				return err
			}
			defer restore()

			clock := animation.NewManualClock(time.Unix(0, 0))
			defer clock.Install()()
			driver := screen.NewDriver(screen.Admin{Config: cfg, User: user.name, Email: user.email, Logger: logger})
			driver.Logger = logger
			defer driver.Close()

			step := func(what string, fn func() error) error {
				if err := fn(); err != nil {
					return err
				}
				logger.Debug("replayed", "step", what)
				return driver.Settle(clock, settleLimit)
			}
			for _, name := range presses {
				if err := step("press "+name, func() error { return driver.Press(name) }); err != nil {
					return err
				}
			}
			if text != "" {
				err := step("type", func() error {
					if !driver.Type(text) {
						return fmt.Errorf("no text field has focus for --text")
					}
					return nil
				})
				if err != nil {
					return err
				}
			}
			for i, k := range strokes {
				if err := step("key "+keys[i], func() error { driver.Key(k.key, k.shift); return nil }); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			if painted {
				_, err = fmt.Fprintln(out, driver.Screen().Plain())
			} else {
				_, err = fmt.Fprint(out, driver.Dump())
			}
			return err
		},
	}
	user.register(cmd)
	cmd.Flags().StringArrayVar(&presses, "press", nil, "press the named node (repeatable)")
	cmd.Flags().StringSliceVar(&keys, "keys", nil, "comma-separated keys: up, down, enter, space, esc, tab, shift+tab, home, end")
	cmd.Flags().StringVar(&text, "text", "", "text to type into the focused field")
	cmd.Flags().BoolVar(&painted, "screen", false, "print the painted terminal screen instead of markup")
	return cmd
}
