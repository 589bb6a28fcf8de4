package systems

import (
	"encoding/json"
	"slices"

	cfg "github.com/automoto/ninja-platformer/config"
	"github.com/quasilyte/gdata"
	"github.com/rs/zerolog/log"
)

// SavedGameProgress is the on-disk record of finished levels.
type SavedGameProgress struct {
	Completed []string `json:"completed"`
}

const progressKey = "progress"

var gdataManager *gdata.Manager

// progress mirrors the saved record. It is used as is when no save
// directory is available.
var progress SavedGameProgress

// InitPersistence opens the save directory and loads the saved progress.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "ninja-platformer",
	})
	if err != nil {
		log.Warn().Err(err).Msg("could not initialize persistence")
		return err
	}
	gdataManager = m

	if saved, err := LoadGameProgress(); err == nil && saved != nil {
		progress = *saved
	}
	return nil
}

// LoadGameProgress reads the saved record. It returns nil without error when
// nothing has been saved yet.
func LoadGameProgress() (*SavedGameProgress, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(progressKey)
	if err != nil {
		log.Warn().Err(err).Msg("could not load game progress")
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var saved SavedGameProgress
	if err := json.Unmarshal(data, &saved); err != nil {
		log.Warn().Err(err).Msg("could not parse saved progress")
		return nil, err
	}
	return &saved, nil
}

// SaveGameProgress writes the current record.
func SaveGameProgress() error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(progress)
	if err != nil {
		return err
	}
	if err := gdataManager.SaveItem(progressKey, data); err != nil {
		log.Warn().Err(err).Msg("could not save game progress")
		return err
	}
	return nil
}

// MarkLevelCompleted records a finished level and saves the progress.
func MarkLevelCompleted(name string) {
	if IsLevelCompleted(name) {
		return
	}
	progress.Completed = append(progress.Completed, name)
	_ = SaveGameProgress()
}

func IsLevelCompleted(name string) bool {
	return slices.Contains(progress.Completed, name)
}

// IsLevelUnlocked reports whether roster entry i can be played: the first
// level always, any other once the level before it is completed.
func IsLevelUnlocked(roster []cfg.LevelDef, i int) bool {
	if i <= 0 {
		return i == 0 && len(roster) > 0
	}
	if i >= len(roster) {
		return false
	}
	return IsLevelCompleted(roster[i-1].Name)
}

// ResetProgress forgets every completed level in memory.
func ResetProgress() {
	progress = SavedGameProgress{}
}
