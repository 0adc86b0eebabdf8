// This file is part of Frameinput.
//
// Frameinput is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Frameinput is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Frameinput.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"errors"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/jetsetilly/frameinput/curated"
	"gopkg.in/yaml.v3"
)

// Sentinal error patterns.
const (
	FileError    = "prefs: file: %v"
	EnvError     = "prefs: environment: %v"
	InvalidValue = "prefs: invalid value for %s (%v)"
)

// Prefs are the preferences for the module.
type Prefs struct {
	Pointer          bool    `yaml:"pointer" env:"FRAMEINPUT_POINTER"`
	Vibration        bool    `yaml:"vibration" env:"FRAMEINPUT_VIBRATION"`
	Deadzone         float32 `yaml:"deadzone" env:"FRAMEINPUT_DEADZONE"`
	TriggerThreshold float32 `yaml:"trigger_threshold" env:"FRAMEINPUT_TRIGGER_THRESHOLD"`
	FPS              int     `yaml:"fps" env:"FRAMEINPUT_FPS"`
	HoldFrames       int     `yaml:"hold_frames" env:"FRAMEINPUT_HOLD_FRAMES"`
	Statsview        bool    `yaml:"statsview" env:"FRAMEINPUT_STATSVIEW"`
}

// Defaults returns the default preferences.
func Defaults() Prefs {
	return Prefs{
		Pointer:          true,
		Vibration:        true,
		Deadzone:         0.24,
		TriggerThreshold: 0.12,
		FPS:              60,
		HoldFrames:       6,
		Statsview:        false,
	}
}

// Load preferences from the YAML file at path. The path can be empty, in
// which case only the environment is consulted.
func Load(path string) (Prefs, error) {
	p := Defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return p, curated.Errorf(FileError, err)
			}
		} else {
			err = yaml.Unmarshal(data, &p)
			if err != nil {
				return p, curated.Errorf(FileError, err)
			}
		}
	}

	err := env.Parse(&p)
	if err != nil {
		return p, curated.Errorf(EnvError, err)
	}

	return p, p.validate()
}

func (p Prefs) validate() error {
	if p.Deadzone < 0.0 || p.Deadzone >= 1.0 {
		return curated.Errorf(InvalidValue, "deadzone", p.Deadzone)
	}
	if p.TriggerThreshold < 0.0 || p.TriggerThreshold > 1.0 {
		return curated.Errorf(InvalidValue, "trigger_threshold", p.TriggerThreshold)
	}
	if p.FPS <= 0 {
		return curated.Errorf(InvalidValue, "fps", p.FPS)
	}
	if p.HoldFrames <= 0 {
		return curated.Errorf(InvalidValue, "hold_frames", p.HoldFrames)
	}
	return nil
}

// Save writes the preferences to the YAML file at path. Invalid preferences
// are not written.
func (p Prefs) Save(path string) error {
	err := p.validate()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(p)
	if err != nil {
		return curated.Errorf(FileError, err)
	}
	err = os.WriteFile(path, data, 0600)
	if err != nil {
		return curated.Errorf(FileError, err)
	}
	return nil
}
