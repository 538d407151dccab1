package replay

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int     `json:"f"`            // Frame number
	L  bool    `json:"l,omitempty"`  // Left
	R  bool    `json:"r,omitempty"`  // Right
	U  bool    `json:"u,omitempty"`  // Up (jump)
	G  bool    `json:"g,omitempty"`  // Gamepad connected
	AX float64 `json:"ax,omitempty"` // Gamepad stick X
	AY float64 `json:"ay,omitempty"` // Gamepad stick Y
	B  uint16  `json:"b,omitempty"`  // Gamepad buttons bitmask
}

// ReplayData contains all data needed to replay a game session.
// Timed effects are frame-driven, so Framerate plus the inputs fully
// determine the session.
type ReplayData struct {
	Version   string       `json:"version"`
	Stage     string       `json:"stage"`
	Framerate int          `json:"framerate"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
