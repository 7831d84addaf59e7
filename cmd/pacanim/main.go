package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"
	"github.com/twinj/uuid"
	"gopkg.in/yaml.v3"

	"github.com/pacarena/pacanim"
)

type options struct {
	SpriteDir string `short:"i" long:"sprite-dir" description:"Directory with atlas JSON files (blue.json, red.json)" required:"true"`
	Config    string `short:"c" long:"config"     description:"Arena config file (YAML)"`
	Tick      string `short:"t" long:"tick"       description:"Render tick interval" default:"100ms"`
	Ticks     int    `short:"n" long:"ticks"      description:"Number of ticks to run" default:"40"`
	Verbose   bool   `short:"v" long:"verbose"    description:"Enable debug logging"`
}

type arenaConfig struct {
	Tick  string      `yaml:"tick"`
	Ticks int         `yaml:"ticks"`
	Pacs  []pacConfig `yaml:"pacs"`
}

type pacConfig struct {
	ID    string `yaml:"id"`
	Color string `yaml:"color"`
	Type  int    `yaml:"type"`
}

func parseCmd() options {
	var opts options
	var cmdParser = flags.NewParser(&opts, flags.Default)
	var err error

	if _, err = cmdParser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		} else {
			panic(err)
		}
	}

	return opts
}

func loadConfig(path string) (arenaConfig, error) {
	var cfg arenaConfig
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func applyConfig(opts *options, cfg arenaConfig) {
	if cfg.Tick != "" {
		opts.Tick = cfg.Tick
	}
	if cfg.Ticks > 0 {
		opts.Ticks = cfg.Ticks
	}
}

func defaultPacs() []pacConfig {
	return []pacConfig{
		{Color: "blue", Type: 1},
		{Color: "red", Type: 1},
	}
}

func spawnPacs(manager *pacanim.Manager, pacs []pacConfig) []string {
	ids := make([]string, 0, len(pacs))
	for _, pac := range pacs {
		id := pac.ID
		if id == "" {
			id = uuid.NewV4().String()
		}

		_, err := manager.CreateAnimator(id, pacanim.Color(pac.Color), pacanim.PacType(pac.Type))
		if err != nil {
			logrus.Errorf("Skipping pac: %v", err)
			continue
		}
		if _, ok := manager.PlayAnimation(id, pacanim.KindWalk); !ok {
			logrus.Errorf("Pac %s has no walk animation, removing", id)
			manager.RemoveAnimator(id)
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

func printSnapshot(tick int, snapshot map[string]string) {
	ids := make([]string, 0, len(snapshot))
	for id := range snapshot {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("tick %3d:", tick)
	for _, id := range ids {
		fmt.Printf("  %s=%s", id, snapshot[id])
	}
	fmt.Println()
}

func fired(done <-chan struct{}) bool {
	select {
	case <-done:
		return true
	default:
		return false
	}
}

func main() {
	opts := parseCmd()
	if opts.Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	pacs := defaultPacs()
	if opts.Config != "" {
		cfg, err := loadConfig(opts.Config)
		if err != nil {
			logrus.Fatal(err)
		}
		applyConfig(&opts, cfg)
		if len(cfg.Pacs) > 0 {
			pacs = cfg.Pacs
		}
	}

	tickInterval, err := time.ParseDuration(opts.Tick)
	if err != nil {
		logrus.Fatalf("Bad tick value '%s': %v", opts.Tick, err)
	}

	logrus.Debug("Loading sprite atlases")
	frameNames, err := pacanim.LoadAtlasDir(opts.SpriteDir)
	if err != nil {
		logrus.Fatal(err)
	}

	catalog, err := pacanim.BuildCatalog(frameNames, pacanim.DefaultBuilderConfig())
	if err != nil {
		logrus.Fatal(err)
	}
	for _, key := range catalog.Keys() {
		logrus.Debugf("Sprite set %s/%d: %v", key.Color, key.Type, catalog.Kinds(key))
	}

	manager := pacanim.NewManager(catalog)
	ids := spawnPacs(manager, pacs)
	if len(ids) == 0 {
		logrus.Fatal("No pacs to animate")
	}

	// Scripted demo: the first pac bounces off a wall a third of the way
	// in, the last one dies at the halfway mark and leaves the arena.
	bumper, victim := ids[0], ids[len(ids)-1]
	collisionTick := opts.Ticks / 3
	deathTick := opts.Ticks / 2

	var collisionDone, deathDone <-chan struct{}

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for tick := 1; tick <= opts.Ticks; tick++ {
		<-ticker.C

		if tick == collisionTick {
			collisionDone, _ = manager.PlayAnimation(bumper, pacanim.KindCollision)
		}
		if tick == deathTick {
			deathDone, _ = manager.PlayAnimation(victim, pacanim.KindDeath)
		}

		printSnapshot(tick, manager.AdvanceAll(tickInterval))

		if collisionDone != nil && fired(collisionDone) {
			collisionDone = nil
			manager.PlayAnimation(bumper, pacanim.KindWalk)
		}
		if deathDone != nil && fired(deathDone) {
			deathDone = nil
			logrus.Infof("Pac %s is gone", victim)
			manager.RemoveAnimator(victim)
		}
	}
}
