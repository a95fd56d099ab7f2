package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/kovidgoyal/gammas"
	"github.com/kovidgoyal/gammas/display"
)

var _ = fmt.Print

type options struct {
	config     string
	mode       string
	display    uint
	prefix     string
	sheet      bool
	apng       bool
	dump       bool
	scale      int
	watch      time.Duration
	verbose    bool
	show_usage bool
}

func parse_args(args []string) (*options, error) {
	var o options
	fs := flag.NewFlagSet("gammas", flag.ContinueOnError)
	fs.StringVar(&o.config, "config", "", "YAML file describing displays, their profiles and driver tables. Defaults to the displays of this computer")
	fs.StringVar(&o.mode, "mode", "all", "Curve source: lut, trc, vcgt, ndin or all")
	fs.UintVar(&o.display, "display", 0, "Only show the display with this id, 0 means all displays")
	fs.StringVar(&o.prefix, "o", "gammas", "Prefix for the names of the output files")
	fs.BoolVar(&o.sheet, "sheet", false, "Write one image per mode with all displays side by side")
	fs.BoolVar(&o.apng, "apng", false, "Write one animated PNG per display cycling through all modes")
	fs.BoolVar(&o.dump, "dump", false, "Print the curves as text instead of writing images")
	fs.IntVar(&o.scale, "scale", 1, "Scale factor for the plots")
	fs.DurationVar(&o.watch, "watch", 0, "Redraw at this interval until interrupted, for example 2s")
	fs.BoolVar(&o.verbose, "v", false, "Log decoding details to stderr")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	if o.sheet && o.apng {
		return nil, fmt.Errorf("-sheet and -apng cannot be used together")
	}
	return &o, nil
}

func (o *options) modes() ([]gammas.Mode, error) {
	if o.mode == "all" {
		return gammas.Modes, nil
	}
	m, err := gammas.ParseMode(o.mode)
	if err != nil {
		return nil, err
	}
	return []gammas.Mode{m}, nil
}

func (o *options) provider() (display.Provider, error) {
	if o.config == "" {
		return display.NewSystem(), nil
	}
	c, err := display.LoadConfig(o.config)
	if err != nil {
		return nil, err
	}
	return display.FromConfig(c), nil
}

func (o *options) displays(p display.Provider) ([]display.Display, error) {
	all, err := p.Displays()
	if err != nil {
		return nil, err
	}
	if o.display == 0 {
		return all, nil
	}
	for _, d := range all {
		if d.ID == display.ID(o.display) {
			return []display.Display{d}, nil
		}
	}
	return nil, fmt.Errorf("no display with id %d", o.display)
}

func save_png(path string, img image.Image) (err error) {
	out, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o666)
	if err != nil {
		return
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(out, img)
}

func run_once(o *options, p display.Provider) error {
	displays, err := o.displays(p)
	if err != nil {
		return err
	}
	modes, err := o.modes()
	if err != nil {
		return err
	}
	opts := []gammas.RenderOption{gammas.WithScale(o.scale)}
	switch {
	case o.dump:
		return dump(os.Stdout, p, displays, modes)
	case o.sheet:
		for _, m := range modes {
			img, err := gammas.RenderSheet(p, displays, m, opts...)
			if img == nil {
				return err
			}
			if err != nil {
				slog.Warn("some displays are shown as identity", "mode", m, "err", err)
			}
			path := fmt.Sprintf("%s-%s.png", o.prefix, m)
			if err = save_png(path, img); err != nil {
				return err
			}
			fmt.Println("Sheet saved to:", path)
		}
	case o.apng:
		for _, d := range displays {
			path := fmt.Sprintf("%s-%d.png", o.prefix, d.ID)
			out, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o666)
			if err != nil {
				return err
			}
			err = gammas.EncodeModeAnimation(out, p, d.ID, gammas.DefaultFrameDelay, opts...)
			err = errors.Join(err, out.Close())
			if err != nil {
				return err
			}
			fmt.Println("Animation saved to:", path)
		}
	default:
		for _, d := range displays {
			for _, m := range modes {
				c, _ := gammas.LoadOrDefault(p, d.ID, m)
				path := fmt.Sprintf("%s-%d-%s.png", o.prefix, d.ID, m)
				if err := save_png(path, gammas.RenderPlot(c, opts...)); err != nil {
					return err
				}
				fmt.Println("Plot saved to:", path)
			}
		}
	}
	return nil
}

func run(o *options) (err error) {
	if o.verbose {
		l := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		gammas.SetLogger(l)
		slog.SetDefault(l)
	}
	p, err := o.provider()
	if err != nil {
		return
	}
	if err = run_once(o, p); err != nil || o.watch <= 0 {
		return
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ticker := time.NewTicker(o.watch)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err = run_once(o, p); err != nil {
				return
			}
		}
	}
}

func main() {
	var err error
	defer func() {
		if err != nil {
			if !errors.Is(err, flag.ErrHelp) {
				fmt.Fprintln(os.Stderr, err)
			}
			os.Exit(1)
		}
	}()
	o, err := parse_args(os.Args[1:])
	if err != nil {
		return
	}
	err = run(o)
}
