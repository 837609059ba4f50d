package domain

import "math"

// Settings is the device-wide preference bag.
type Settings struct {
	Volume         float64 `json:"volume"`
	AutoSave       bool    `json:"autoSave"`
	SkipMeditation bool    `json:"skipMeditation"`
	DebugMode      bool    `json:"debugMode"`
}

// DefaultSettings returns the settings created on first access.
func DefaultSettings() *Settings {
	return &Settings{
		Volume:   0.6,
		AutoSave: true,
	}
}

// Validate checks the settings ranges.
func (s *Settings) Validate() error {
	if math.IsNaN(s.Volume) || s.Volume < 0 || s.Volume > 1 {
		return ErrInvalidVolume
	}
	return nil
}

// SettingsPatch lists the settings a caller may change. Nil fields are left untouched.
type SettingsPatch struct {
	Volume         *float64 `json:"volume,omitempty"`
	AutoSave       *bool    `json:"autoSave,omitempty"`
	SkipMeditation *bool    `json:"skipMeditation,omitempty"`
	DebugMode      *bool    `json:"debugMode,omitempty"`
}

// Apply merges the patch into s.
func (p SettingsPatch) Apply(s *Settings) {
	if p.Volume != nil {
		s.Volume = *p.Volume
	}
	if p.AutoSave != nil {
		s.AutoSave = *p.AutoSave
	}
	if p.SkipMeditation != nil {
		s.SkipMeditation = *p.SkipMeditation
	}
	if p.DebugMode != nil {
		s.DebugMode = *p.DebugMode
	}
}
