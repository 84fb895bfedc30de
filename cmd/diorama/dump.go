package main

import (
	"io"

	"diorama/internal/layout"
	"diorama/internal/logger"
)

func runDump(log *logger.Logger, cache *layout.Cache, f *sceneFlags, w io.Writer) error {
	cfg, err := f.load(log)
	if err != nil {
		return err
	}
	prims := cfg.Layout(cache)
	log.Logf("dump: %d primitives", len(prims))
	return layout.Dump(w, prims)
}
