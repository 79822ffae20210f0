package main

import (
	"fmt"

	"github.com/vovakirdan/borno/internal/config"
	"github.com/vovakirdan/borno/internal/games/danmaku"
	"github.com/vovakirdan/borno/internal/registry"
	"github.com/vovakirdan/borno/internal/storage"
)

// applyTuningPath points registered stages at the --config tuning file.
func applyTuningPath() {
	danmaku.SetTuningPath(flagConfig)
}

// loadGame resolves a stage reference: a registered ID or a stage file.
func loadGame(ref string) (registry.Game, error) {
	if !config.IsStageFile(ref) {
		if !registry.Exists(ref) {
			return nil, fmt.Errorf("unknown stage %q (run 'borno list' to see built-in stages)", ref)
		}
		game, err := registry.Create(ref)
		if err != nil {
			return nil, err
		}
		if g, ok := game.(interface{ Err() error }); ok && g.Err() != nil {
			return nil, g.Err()
		}
		return game, nil
	}

	stage, err := config.LoadStageFile(ref)
	if err != nil {
		return nil, err
	}
	tuning, err := config.LoadTuning(flagConfig)
	if err != nil {
		return nil, err
	}
	return danmaku.New(stage, tuning)
}

// openStore opens the scores database, logging and continuing without
// storage when it is unavailable.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

// watchStage starts a watcher for a stage file reference. Built-in IDs
// are not watched.
func watchStage(ref string) (*config.StageWatcher, <-chan string) {
	if !config.IsStageFile(ref) {
		logger.Warn("--watch only applies to stage files", "stage", ref)
		return nil, nil
	}
	w, err := config.WatchStages(ref)
	if err != nil {
		logger.Warn("could not watch stage file", "path", ref, "err", err)
		return nil, nil
	}
	return w, w.Events
}
