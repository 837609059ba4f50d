package domain

import "time"

// Planet is one year's goal cycle. It exclusively owns its wishes, focus
// records, vision board and achievement.
//
// TotalHours always equals the sum of FocusRecords[*].Hours, and the sum of
// Wishes[*].FocusHours as long as every record references an existing wish.
type Planet struct {
	Year      int    `json:"year"`
	CreatedAt Millis `json:"createdAt"`

	MeditationCompleted       bool    `json:"meditationCompleted"`
	MeditationCompletedAt     *Millis `json:"meditationCompletedAt"`
	DreamFragmentsCompleted   bool    `json:"dreamFragmentsCompleted"`
	DreamFragmentsCompletedAt *Millis `json:"dreamFragmentsCompletedAt"`
	VisionBoardCompleted      bool    `json:"visionBoardCompleted"`
	VisionBoardCompletedAt    *Millis `json:"visionBoardCompletedAt"`

	Wishes       []Wish        `json:"wishes"`
	VisionBoard  VisionBoard   `json:"visionBoard"`
	FocusRecords []FocusRecord `json:"focusRecords"`
	TotalHours   float64       `json:"totalHours"`
	Achievement  Achievement   `json:"nft"`
}

// NewPlanet returns the default shape of a freshly created planet.
func NewPlanet(year int, now time.Time) (*Planet, error) {
	if err := ValidateYear(year); err != nil {
		return nil, err
	}
	return &Planet{
		Year:         year,
		CreatedAt:    MillisOf(now),
		Wishes:       []Wish{},
		VisionBoard:  NewVisionBoard(),
		FocusRecords: []FocusRecord{},
	}, nil
}

// ValidateYear checks that year is usable as a planet key.
func ValidateYear(year int) error {
	if year < 1 || year > 9999 {
		return ErrInvalidYear
	}
	return nil
}

// Wish returns the index of the wish with the given id, or -1.
func (p *Planet) Wish(id string) int {
	for i := range p.Wishes {
		if p.Wishes[i].ID == id {
			return i
		}
	}
	return -1
}

// Milestone is one of the three sequential steps of a planet's lifecycle.
type Milestone string

const (
	MilestoneMeditation     Milestone = "meditation"
	MilestoneDreamFragments Milestone = "dream_fragments"
	MilestoneVisionBoard    Milestone = "vision_board"
)

// Milestones returns the lifecycle steps in completion order.
func Milestones() []Milestone {
	return []Milestone{MilestoneMeditation, MilestoneDreamFragments, MilestoneVisionBoard}
}

// Previous returns the milestone that must be complete before m, if any.
func (m Milestone) Previous() (Milestone, bool) {
	switch m {
	case MilestoneDreamFragments:
		return MilestoneMeditation, true
	case MilestoneVisionBoard:
		return MilestoneDreamFragments, true
	}
	return "", false
}

// Valid reports whether m is a known milestone.
func (m Milestone) Valid() bool {
	switch m {
	case MilestoneMeditation, MilestoneDreamFragments, MilestoneVisionBoard:
		return true
	}
	return false
}

func (p *Planet) milestoneFields(m Milestone) (*bool, **Millis) {
	switch m {
	case MilestoneMeditation:
		return &p.MeditationCompleted, &p.MeditationCompletedAt
	case MilestoneDreamFragments:
		return &p.DreamFragmentsCompleted, &p.DreamFragmentsCompletedAt
	case MilestoneVisionBoard:
		return &p.VisionBoardCompleted, &p.VisionBoardCompletedAt
	}
	return nil, nil
}

// Completed reports whether milestone m is done.
func (p *Planet) Completed(m Milestone) bool {
	done, _ := p.milestoneFields(m)
	return done != nil && *done
}

// Complete marks m done at now. It reports false when m was already
// complete, in which case the first timestamp is kept.
func (p *Planet) Complete(m Milestone, now time.Time) bool {
	done, at := p.milestoneFields(m)
	if done == nil || *done {
		return false
	}
	*done = true
	*at = MillisPtr(now)
	return true
}

// PlanetPatch lists the planet fields a caller may change directly. The
// aggregates, wishes, records, board and achievement have dedicated operations.
type PlanetPatch struct {
	MeditationCompleted       *bool   `json:"meditationCompleted,omitempty"`
	MeditationCompletedAt     *Millis `json:"meditationCompletedAt,omitempty"`
	DreamFragmentsCompleted   *bool   `json:"dreamFragmentsCompleted,omitempty"`
	DreamFragmentsCompletedAt *Millis `json:"dreamFragmentsCompletedAt,omitempty"`
	VisionBoardCompleted      *bool   `json:"visionBoardCompleted,omitempty"`
	VisionBoardCompletedAt    *Millis `json:"visionBoardCompletedAt,omitempty"`
}

// Apply merges the patch into p.
func (pp PlanetPatch) Apply(p *Planet) {
	if pp.MeditationCompleted != nil {
		p.MeditationCompleted = *pp.MeditationCompleted
	}
	if pp.MeditationCompletedAt != nil {
		v := *pp.MeditationCompletedAt
		p.MeditationCompletedAt = &v
	}
	if pp.DreamFragmentsCompleted != nil {
		p.DreamFragmentsCompleted = *pp.DreamFragmentsCompleted
	}
	if pp.DreamFragmentsCompletedAt != nil {
		v := *pp.DreamFragmentsCompletedAt
		p.DreamFragmentsCompletedAt = &v
	}
	if pp.VisionBoardCompleted != nil {
		p.VisionBoardCompleted = *pp.VisionBoardCompleted
	}
	if pp.VisionBoardCompletedAt != nil {
		v := *pp.VisionBoardCompletedAt
		p.VisionBoardCompletedAt = &v
	}
}
