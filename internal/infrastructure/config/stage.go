package config

// StageConfig is the root config for stage files
type StageConfig struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Size        StageSizeConfig `json:"size"`
	PlayerSpawn *PositionConfig `json:"playerSpawn,omitempty"` // nil = centered on the display

	Platforms    []RectConfig   `json:"platforms"`
	Collectibles []PickupConfig `json:"collectibles"`
	Jumpboosts   []RectConfig   `json:"jumpboosts"`
	Powers       []PickupConfig `json:"powers"`
	Enemies      []RectConfig   `json:"enemies"`
}

type StageSizeConfig struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type PositionConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type RectConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// PickupConfig is a pickup box carrying a value (score or power)
type PickupConfig struct {
	RectConfig
	Value int `json:"value"`
}

// pickupValue returns the pickup's value, defaulting to 1
func pickupValue(v int) int {
	if v <= 0 {
		return 1
	}
	return v
}

// normalize fills defaults that zero values leave ambiguous
func (s *StageConfig) normalize() {
	for i := range s.Collectibles {
		s.Collectibles[i].Value = pickupValue(s.Collectibles[i].Value)
	}
	for i := range s.Powers {
		s.Powers[i].Value = pickupValue(s.Powers[i].Value)
	}
}
