package domain

// Snapshot is the whole-state export document. Its JSON shape is the stable
// wire format used for backup and restore.
type Snapshot struct {
	User          *User     `json:"user"`
	Planets       []Planet  `json:"planets"`
	CurrentPlanet int       `json:"currentPlanet"`
	Settings      *Settings `json:"settings"`
	ExportedAt    Millis    `json:"exportedAt"`
	Version       string    `json:"version"`
}

// ImportSnapshot is a possibly partial snapshot. Absent sections are nil and
// leave the stored state untouched. ExportedAt and Version are informational.
type ImportSnapshot struct {
	User          *User          `json:"user,omitempty"`
	Planets       []Planet       `json:"planets,omitempty"`
	CurrentPlanet *int           `json:"currentPlanet,omitempty"`
	Settings      *SettingsPatch `json:"settings,omitempty"`
	ExportedAt    *Millis        `json:"exportedAt,omitempty"`
	Version       string         `json:"version,omitempty"`
}

// Stats aggregates all planets.
type Stats struct {
	TotalYears        int         `json:"totalYears"`
	TotalWishes       int         `json:"totalWishes"`
	TotalHours        float64     `json:"totalHours"`
	TotalAchievements int         `json:"totalNFTs"`
	Yearly            []YearStats `json:"yearlyStats"`
}

// YearStats is the per-planet line of Stats.
type YearStats struct {
	Year   int     `json:"year"`
	Wishes int     `json:"wishes"`
	Hours  float64 `json:"hours"`
	Minted bool    `json:"nftMinted"`
	Tier   int     `json:"tier"`
}

// AsImport turns a full export back into an import document that replaces
// every section.
func (s *Snapshot) AsImport() ImportSnapshot {
	in := ImportSnapshot{
		User:       s.User,
		Planets:    s.Planets,
		ExportedAt: &s.ExportedAt,
		Version:    s.Version,
	}
	if in.Planets == nil {
		in.Planets = []Planet{}
	}
	if s.CurrentPlanet != 0 {
		year := s.CurrentPlanet
		in.CurrentPlanet = &year
	}
	if s.Settings != nil {
		set := *s.Settings
		in.Settings = &SettingsPatch{
			Volume:         &set.Volume,
			AutoSave:       &set.AutoSave,
			SkipMeditation: &set.SkipMeditation,
			DebugMode:      &set.DebugMode,
		}
	}
	return in
}
