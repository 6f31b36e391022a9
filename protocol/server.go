package protocol

type Joined struct {
	Type        string `json:"type"`
	PlayerIndex int    `json:"playerIndex"`
}

type Full struct {
	Type string `json:"type"`
}

type State struct {
	Type  string   `json:"type"`
	State Snapshot `json:"state"`
}

// Snapshot is the per-tick view of one room's world and match, shaped for the
// renderer: index 0 is the left slime, 1 the right.
type Snapshot struct {
	Tick   int             `json:"tick"`
	Slimes []SlimeSnapshot `json:"slimes"`
	Ball   BallSnapshot    `json:"ball"`
	Match  MatchSnapshot   `json:"match"`
}

type SlimeSnapshot struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Score int     `json:"score"`
}

type BallSnapshot struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type MatchSnapshot struct {
	Started bool   `json:"started"`
	Sets    [2]int `json:"sets"`
	BestOf  int    `json:"bestOf"`
}

func NewJoined(playerIndex int) Joined {
	return Joined{Type: MsgJoined, PlayerIndex: playerIndex}
}

func NewFull() Full {
	return Full{Type: MsgFull}
}

func NewState(snapshot Snapshot) State {
	return State{Type: MsgState, State: snapshot}
}
