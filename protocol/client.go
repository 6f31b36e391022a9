package protocol

// Messages coming in from the client. All share a flat "type" tag.

type Join struct {
	Type     string `json:"type"`
	RoomCode string `json:"roomCode"`
}

type Input struct {
	Type string  `json:"type"`
	VX   float64 `json:"vx"`             // horizontal velocity, client authoritative
	Jump bool    `json:"jump,omitempty"` // ignored while airborne
}

type Start struct {
	Type string `json:"type"`
}
