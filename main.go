/*
Runs one of the OpenGL tutorials in a window. Press Escape or send an
interrupt to quit.
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/oglc/engine"
	"github.com/spaghettifunk/oglc/engine/core"
	"github.com/spaghettifunk/oglc/engine/platform"
	"github.com/spaghettifunk/oglc/engine/renderer/gldriver"
	"github.com/spaghettifunk/oglc/engine/renderer/opengl"
	"github.com/spaghettifunk/oglc/engine/resources"
	"github.com/spaghettifunk/oglc/testbed"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML configuration file")
	tutorial := flag.String("tutorial", "", fmt.Sprintf("tutorial to run, one of %v", testbed.Names()))
	flag.Parse()

	if err := run(*configPath, *tutorial); err != nil {
		core.LogFatal("%s", err)
	}
}

func run(configPath, tutorial string) error {
	cfg, err := core.LoadConfig(configPath)
	if err != nil {
		return err
	}

	game, err := testbed.New(tutorial, cfg)
	if err != nil {
		return err
	}

	e, err := engine.New(game,
		engine.WithWindow(func(cfg *core.Config) (engine.Window, error) {
			p, err := platform.New()
			if err != nil {
				return nil, err
			}
			if err := p.Startup(cfg); err != nil {
				return nil, err
			}
			return p, nil
		}),
		engine.WithDriver(func() (opengl.Driver, error) {
			d, err := gldriver.New()
			if err != nil {
				return nil, err
			}
			core.LogInfo("OpenGL %s on %s", d.Version(), d.Renderer())
			return d, nil
		}),
		engine.WithResources(resources.FS),
	)
	if err != nil {
		return err
	}
	defer func() {
		if err := e.Shutdown(); err != nil {
			core.LogError("shutdown: %s", err)
		}
	}()

	if err := e.Initialize(); err != nil {
		return err
	}

	// signals cancel the frame loop, which then returns normally
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	return e.Run(ctx)
}
