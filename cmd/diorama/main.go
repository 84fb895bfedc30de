package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"diorama/internal/commands"
	"diorama/internal/config"
	"diorama/internal/env"
	"diorama/internal/layout"
	"diorama/internal/logger"
)

const program = "diorama"

// sceneFlags are shared by view and dump.
type sceneFlags struct {
	configPath string
	scene      string
}

func (f *sceneFlags) register(fs *flag.FlagSet, defaultPath string) {
	fs.StringVar(&f.configPath, "config", defaultPath, "path to the YAML config file")
	fs.StringVar(&f.scene, "scene", "", "scene to build: pit or cross (default from config)")
}

// load reads the config, applies flag overrides and validates the result.
func (f *sceneFlags) load(log *logger.Logger) (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return cfg, err
	}
	if err := config.Apply(&cfg, config.Config{Scene: f.scene}); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	log.Logf("config %s: scene %s", f.configPath, cfg.Scene)
	return cfg, nil
}

func main() {
	log := logger.New(logger.DefaultPath)
	log.SetEcho(os.Stderr)
	if set, err := env.Load(".env"); err != nil {
		log.Logf("warning: %v", err)
	} else if len(set) > 0 {
		log.Logf(".env: set %d variables", len(set))
	}
	configPath := env.Or(env.ConfigVar, config.DefaultPath)
	cache := layout.NewCache()

	reg := commands.NewRegistry("view")

	var viewFlags sceneFlags
	viewFS := flag.NewFlagSet("view", flag.ContinueOnError)
	viewFlags.register(viewFS, configPath)
	reg.Register("view", "open a window and render the diorama", viewFS, func([]string) error {
		return runView(log, cache, &viewFlags)
	})

	var dumpFlags sceneFlags
	dumpFS := flag.NewFlagSet("dump", flag.ContinueOnError)
	dumpFlags.register(dumpFS, configPath)
	reg.Register("dump", "print the generated layout as YAML", dumpFS, func([]string) error {
		return runDump(log, cache, &dumpFlags, os.Stdout)
	})

	initFS := flag.NewFlagSet("init", flag.ContinueOnError)
	initPath := initFS.String("config", configPath, "path of the config file to write")
	force := initFS.Bool("force", false, "overwrite an existing file")
	reg.Register("init", "write the default config file", initFS, func([]string) error {
		return runInit(log, *initPath, *force)
	})

	for _, fs := range []*flag.FlagSet{viewFS, dumpFS, initFS} {
		fs.Usage = func() { reg.Usage(os.Stderr, program) }
	}

	if err := reg.Execute(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Logf("error: %v", err)
		if errors.Is(err, commands.ErrUnknownCommand) {
			reg.Usage(os.Stderr, program)
		}
		os.Exit(1)
	}
}

func runInit(log *logger.Logger, path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("init: %s already exists (use -force to overwrite)", path)
	}
	if err := config.Save(path, config.Default()); err != nil {
		return err
	}
	log.Logf("wrote default config to %s", path)
	return nil
}
