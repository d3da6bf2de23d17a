package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
)

// SavedSettings is the settings data stored on disk.
type SavedSettings struct {
	Fullscreen bool `json:"fullscreen"`
}

var gdataManager *gdata.Manager

// InitPersistence opens the gdata store. Failure disables persistence
// but never blocks the game.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "timewheel",
	})
	if err != nil {
		log.Printf("[persist] storage unavailable: %v", err)
		return err
	}
	gdataManager = m
	return nil
}

// LoadSettings returns the saved settings, or nil when none exist.
func LoadSettings() *SavedSettings {
	if gdataManager == nil {
		return nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("[persist] could not load settings: %v", err)
		return nil
	}
	if len(data) == 0 {
		return nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("[persist] could not parse saved settings: %v", err)
		return nil
	}
	return &settings
}

// SaveSettings writes the settings to the store.
func SaveSettings(s *SavedSettings) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("[persist] could not save settings: %v", err)
		return err
	}
	return nil
}
