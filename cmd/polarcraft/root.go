package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/polarcraft/optics/export"
	"github.com/polarcraft/optics/render"
)

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "polarcraft",
		Short:         "Polarization-optics demos: sweeps, reports and charts",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		newMalusCommand(),
		newFresnelCommand(),
		newBirefringenceCommand(),
		newScatteringCommand(),
		newRotationCommand(),
		newStokesCommand(),
		newMuellerCommand(),
	)
	return cmd
}

// outputOpts are the flags shared by every data-producing subcommand.
type outputOpts struct {
	format string
	out    string
	plot   string
}

// register wires the shared flags onto a subcommand.
func (o *outputOpts) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.format, "format", "csv", "output format: csv or json")
	cmd.Flags().StringVar(&o.out, "out", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&o.plot, "plot", "", "also render a PNG chart to this path")
}

// destination resolves --out to a writer, defaulting to stdout.
func (o *outputOpts) destination() (io.Writer, func() error, error) {
	if o.out == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(o.out)
	if err != nil {
		return nil, nil, fmt.Errorf("create %s: %w", o.out, err)
	}
	return f, f.Close, nil
}

// emitPlotData writes a sweep in the chosen format and optionally
// renders it.
func (o *outputOpts) emitPlotData(title string, data export.PlotData, meta export.Metadata) error {
	w, closeFn, err := o.destination()
	if err != nil {
		return err
	}

	switch o.format {
	case "csv":
		err = data.WriteCSV(w, meta)
	case "json":
		err = data.WriteJSON(w, meta)
	default:
		err = fmt.Errorf("unsupported format %q (use csv or json)", o.format)
	}
	if err != nil {
		closeFn()
		return err
	}

	if o.plot != "" {
		p, err := render.LinePlot(render.DarkTheme(), title, data)
		if err != nil {
			return err
		}
		if err := render.SavePNG(p, 10, 6, o.plot); err != nil {
			return err
		}
	}
	return closeFn()
}
