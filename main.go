package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"go-launchvol/app"
	"go-launchvol/canvas"
	"go-launchvol/config"
	"go-launchvol/debug"
	"go-launchvol/engine"
	"go-launchvol/grid"
	"go-launchvol/layout"
	"go-launchvol/midi"
	"go-launchvol/theme"
	"go-launchvol/tui"
	"go-launchvol/volume"
)

func main() {
	os.Exit(run())
}

type options struct {
	configPath string
	model      string
	port       string
	tui        bool
	virtual    bool
	debug      bool
}

func run() int {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "config file (default ~/.config/launchvol/config.toml)")
	flag.StringVar(&opts.model, "model", "", "controller model: mini or x")
	flag.StringVar(&opts.port, "port", "", "MIDI port name substring")
	flag.BoolVar(&opts.tui, "tui", false, "show a terminal mirror of the pads")
	flag.BoolVar(&opts.virtual, "virtual", false, "no hardware: click the terminal pads, in-memory volume")
	flag.BoolVar(&opts.debug, "debug", false, "write ~/.config/launchvol/debug.log")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := launch(ctx, cancel, opts); err != nil {
		fmt.Fprintf(os.Stderr, "launchvol: %v\n", err)
		return 1
	}
	return 0
}

func launch(ctx context.Context, cancel context.CancelFunc, opts options) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.model != "" {
		cfg.Model = opts.model
	}
	if opts.port != "" {
		cfg.Port = opts.port
	}
	if opts.debug {
		cfg.Debug = true
	}

	if cfg.Debug {
		if err := debug.Enable(); err != nil {
			return fmt.Errorf("enable debug log: %w", err)
		}
		defer debug.Disable()
	}

	var provider volume.Provider
	if opts.virtual {
		provider = volume.NewMemory(0.5)
	} else {
		provider, err = volume.New(volume.Kind(cfg.Mixer), cfg.MixerDevice, cfg.MixerControl)
		if err != nil {
			return err
		}
	}

	model, err := midi.ModelByName(cfg.Model)
	if err != nil {
		return err
	}

	var (
		backends []canvas.Backend
		sources  []<-chan grid.Message
		devices  *midi.DeviceManager
	)
	if !opts.virtual {
		devices = midi.NewDeviceManager(model, cfg.Port)
		defer midi.CloseDriver()
		backends = append(backends, devices)
		sources = append(sources, devices.Events())
	}

	var mirror *tui.Mirror
	var clicks chan grid.Message
	if opts.tui || opts.virtual {
		mirror = tui.NewMirror()
		backends = append(backends, mirror)
		if opts.virtual {
			clicks = make(chan grid.Message, 32)
			sources = append(sources, clicks)
		}
	}

	root := app.Build(provider, cfg)
	c := canvas.New(canvas.Multi(backends...))
	blank(c)
	eng, err := engine.New(root, c, engine.WithTick(cfg.Tick))
	if err != nil {
		return fmt.Errorf("start engine: %w", err)
	}
	debug.Log("main", "model=%s port=%q mixer=%q tick=%s virtual=%v", model.Name(), cfg.Port, cfg.Mixer, cfg.Tick, opts.virtual)

	var workers []func(context.Context)
	if devices != nil {
		workers = append(workers, devices.Run)
	}

	events := merge(ctx, sources...)

	if mirror == nil {
		return serve(ctx, eng, events, workers...)
	}

	engineErr := make(chan error, 1)
	go func() {
		engineErr <- serve(ctx, eng, events, workers...)
		cancel()
	}()

	status := func() tui.Status {
		var s tui.Status
		if devices != nil {
			s.Device = devices.Device()
		}
		s.Volume, s.Known = provider.Get()
		s.Depth = eng.Depth()
		return s
	}
	m := tui.NewModel(mirror, theme.Default(), status, cancel)
	m.Virtual = opts.virtual
	m.Pads = clicks
	m.Bar = layout.BarStyle{Empty: cfg.Colors.Empty, Filled: cfg.Colors.Filled, Marker: cfg.Colors.Marker}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	go func() {
		<-ctx.Done()
		p.Quit()
	}()
	if _, err := p.Run(); err != nil {
		cancel()
		return fmt.Errorf("tui: %w", err)
	}
	cancel()
	return <-engineErr
}

// blank turns off whatever an earlier run left lit
func blank(c *canvas.Canvas) {
	if err := c.Clear(); err != nil {
		debug.Log("main", "startup %v", err)
	}
}

type loop interface {
	Run(ctx context.Context, events <-chan grid.Message) error
}

// serve runs the engine with workers alongside it. When the engine stops,
// for any reason, the workers are cancelled and waited for.
func serve(ctx context.Context, eng loop, events <-chan grid.Message, workers ...func(context.Context)) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	for _, work := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			work(ctx)
		}()
	}

	err := eng.Run(ctx, events)
	cancel()
	wg.Wait()
	return err
}

// merge fans the pad sources into one stream. The stream closes when every
// source has closed.
func merge(ctx context.Context, sources ...<-chan grid.Message) <-chan grid.Message {
	out := make(chan grid.Message, 32)
	var wg sync.WaitGroup
	for _, src := range sources {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for msg := range src {
				select {
				case out <- msg:
				case <-ctx.Done():
					return
				}
			}
		}()
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}
