// Package persistence keeps the player's progress across runs.
package persistence

import (
	"encoding/json"
	"log"

	"github.com/automoto/boxhop/components"
	cfg "github.com/automoto/boxhop/config"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// SavedProgress represents the progress data stored on disk
type SavedProgress struct {
	LevelIndex  int `json:"levelIndex"`
	TotalDeaths int `json:"totalDeaths"`
}

// itemStore is the part of *gdata.Manager used here.
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// store is nil until Init succeeds; every operation is then a no-op.
var store itemStore

// Init opens the gdata store for progress storage
func Init() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Persistence.AppName,
	})
	if err != nil {
		return err
	}
	store = m
	return nil
}

// LoadProgress loads progress from disk. A nil result with a nil error means
// nothing was saved yet.
func LoadProgress() (*SavedProgress, error) {
	if store == nil {
		return nil, nil
	}

	data, err := store.LoadItem(cfg.Persistence.ProgressKey)
	if err != nil {
		log.Printf("Warning: Could not load progress: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var progress SavedProgress
	if err := json.Unmarshal(data, &progress); err != nil {
		log.Printf("Warning: Could not parse saved progress: %v", err)
		return nil, err
	}
	return &progress, nil
}

// SaveProgress saves progress to disk. Failures are logged; the game keeps
// running on its in-memory progress.
func SaveProgress(p *SavedProgress) {
	if store == nil {
		return
	}

	data, err := json.Marshal(p)
	if err != nil {
		log.Printf("Warning: Could not serialize progress: %v", err)
		return
	}

	if err := store.SaveItem(cfg.Persistence.ProgressKey, data); err != nil {
		log.Printf("Warning: Could not save progress: %v", err)
	}
}

// UpdateProgress writes the progress component to disk when it changed.
func UpdateProgress(e *ecs.ECS) {
	entry, ok := components.Progress.First(e.World)
	if !ok {
		return
	}
	progress := components.Progress.Get(entry)
	if !progress.Dirty {
		return
	}
	progress.Dirty = false
	SaveProgress(&SavedProgress{
		LevelIndex:  progress.LevelIndex,
		TotalDeaths: progress.TotalDeaths,
	})
}
