// Package testbed holds the tutorial programs. Each one fills in the
// callbacks of an engine.Game.
package testbed

import (
	"fmt"
	"sort"

	"github.com/spaghettifunk/oglc/engine"
	"github.com/spaghettifunk/oglc/engine/core"
)

type tutorial func(g *engine.Game)

var tutorials = map[string]tutorial{
	"triangle": newTriangle,
	"quad":     newQuad,
	"textures": newTextures,
}

// Names lists the tutorials New accepts.
func Names() []string {
	names := make([]string, 0, len(tutorials))
	for n := range tutorials {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// New builds the game for the named tutorial. An empty name uses the one
// in cfg.
func New(name string, cfg *core.Config) (*engine.Game, error) {
	if cfg == nil {
		cfg = core.DefaultConfig()
	}
	if name == "" {
		name = cfg.Tutorial
	}
	build, ok := tutorials[name]
	if !ok {
		return nil, fmt.Errorf("unknown tutorial %q, have %v", name, Names())
	}
	cfg.Tutorial = name

	g := &engine.Game{Config: cfg}
	build(g)
	core.LogInfo("running tutorial %s", name)
	return g, nil
}
