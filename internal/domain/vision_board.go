package domain

// Layout is the arrangement mode of a vision board.
type Layout string

const (
	LayoutGrid Layout = "grid"
	LayoutFree Layout = "free"
)

// BoardItemType tags what a board item shows.
type BoardItemType string

const (
	BoardItemWish    BoardItemType = "wish"
	BoardItemImage   BoardItemType = "image"
	BoardItemText    BoardItemType = "text"
	BoardItemSticker BoardItemType = "sticker"
)

func (t BoardItemType) valid() bool {
	switch t {
	case BoardItemWish, BoardItemImage, BoardItemText, BoardItemSticker:
		return true
	}
	return false
}

// Position places a board item in 2D. Rotation is in degrees.
type Position struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Rotation float64 `json:"rotation"`
}

// BoardItem is one placed element of a vision board. WishID optionally
// references a wish of the same planet.
type BoardItem struct {
	ID       string         `json:"id"`
	Type     BoardItemType  `json:"type"`
	WishID   string         `json:"wishId"`
	Content  string         `json:"content"`
	Position Position       `json:"position"`
	Style    map[string]any `json:"style,omitempty"`
}

// VisionBoard is the layout of a planet's board.
type VisionBoard struct {
	Layout     Layout      `json:"layout"`
	Items      []BoardItem `json:"items"`
	Background string      `json:"background"`
	SavedAt    *Millis     `json:"savedAt"`
}

// NewVisionBoard returns the empty board of a new planet.
func NewVisionBoard() VisionBoard {
	return VisionBoard{Layout: LayoutGrid, Items: []BoardItem{}}
}

// Validate checks the layout and every item.
func (b *VisionBoard) Validate() error {
	if b.Layout != LayoutGrid && b.Layout != LayoutFree {
		return ErrInvalidLayout
	}
	for i := range b.Items {
		it := &b.Items[i]
		if !it.Type.valid() || it.Position.Width < 0 || it.Position.Height < 0 {
			return ErrInvalidBoardItem
		}
	}
	return nil
}
