package config

import (
	"errors"
	"io/fs"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// UserConfig is the optional on-disk override file. Every field is a
// pointer so an absent key leaves the compiled default untouched.
type UserConfig struct {
	Width     *int    `yaml:"width"`
	Height    *int    `yaml:"height"`
	LevelsDir *string `yaml:"levels_dir"`
	Verbose   *bool   `yaml:"verbose"`
	SkipMenu  *bool   `yaml:"skip_menu"`
}

const userConfigFile = "timewheel.yaml"

// LoadUserConfig overlays timewheel.yaml (if present in the working
// directory) onto the compiled defaults. A missing file is not an
// error; a malformed file is reported and ignored.
func LoadUserConfig() {
	data, err := os.ReadFile(userConfigFile)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("[config] could not read %s: %v", userConfigFile, err)
		}
		return
	}

	var uc UserConfig
	if err := yaml.Unmarshal(data, &uc); err != nil {
		log.Printf("[config] ignoring malformed %s: %v", userConfigFile, err)
		return
	}

	if uc.Width != nil && *uc.Width > 0 {
		C.Width = *uc.Width
	}
	if uc.Height != nil && *uc.Height > 0 {
		C.Height = *uc.Height
	}
	if uc.LevelsDir != nil {
		C.LevelsDir = *uc.LevelsDir
	}
	if uc.Verbose != nil {
		Debug.Verbose = *uc.Verbose
	}
	if uc.SkipMenu != nil {
		Debug.SkipMenu = *uc.SkipMenu
	}
}
