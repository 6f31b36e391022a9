package protocol

const (
	MsgJoin   = "join"
	MsgInput  = "input"
	MsgStart  = "start"
	MsgJoined = "joined"
	MsgFull   = "full"
	MsgState  = "state"
)

// TickHz is the fixed simulation and broadcast rate per room.
const TickHz = 60
