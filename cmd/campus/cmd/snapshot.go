package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/campusui/campus/pkg/disclosure"
	"github.com/campusui/campus/pkg/render"
)

func newSnapshotCommand(opts *rootOptions) *cobra.Command {
	var (
		side   string
		align  string
		offset int
		output string
	)
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Draw a panel placement diagram as PNG",
		Long: `Draw where a menu panel lands against its trigger for one side, alignment
and offset. Unset flags fall back to the disclosure settings in campus.yaml.`,
		Example: `  campus snapshot --side top --align end -o top-end.png`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			logger, restore, err := opts.setupLogging(cmd.ErrOrStderr(), cfg.Verbose)
			if err != nil {
				return err
			}
			defer restore()

			d := render.Diagram{
				Side:   cfg.Defaults.Side,
				Align:  cfg.Defaults.Align,
				Offset: cfg.Defaults.Gap(),
			}
			if cmd.Flags().Changed("side") {
				if d.Side, err = disclosure.ParseSide(side); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("align") {
				if d.Align, err = disclosure.ParseAlign(align); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("offset") {
				if offset < 0 {
					return fmt.Errorf("offset cannot be negative (got %d)", offset)
				}
				d.Offset = offset
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", output, err)
			}
			if err := d.WritePNG(f); err != nil {
				f.Close()
				return fmt.Errorf("failed to encode %s: %w", output, err)
			}
			if err := f.Close(); err != nil {
				return err
			}
			logger.Info("wrote placement diagram", "path", output, "side", d.Side, "align", d.Align, "offset", d.Offset, "panel", d.PanelRect())
			return nil
		},
	}
	cmd.Flags().StringVar(&side, "side", string(disclosure.SideBottom), "trigger edge: top, bottom, left or right")
	cmd.Flags().StringVar(&align, "align", string(disclosure.AlignStart), "alignment along the edge: start, center or end")
	cmd.Flags().IntVar(&offset, "offset", disclosure.DefaultOffset, "gap between trigger and panel")
	cmd.Flags().StringVarP(&output, "output", "o", "placement.png", "output file")
	return cmd
}
