package room

// Conn is the outbound handle for one connected player. Implementations must
// not block in Send; the tick loop calls it for every slot every frame.
type Conn interface {
	Send([]byte) error
	Close() error
}

// Join: issued once per connection after its join message is parsed.
type Join struct {
	Conn  Conn
	Reply chan<- JoinResult
}

// JoinResult reports the assigned slime index, or Full when both slots are
// taken. A full room leaves the connection untouched.
type JoinResult struct {
	PlayerIndex int
	Full        bool
}

// Input: a player's latest movement intent, applied directly to their slime.
type Input struct {
	Slot int
	VX   float64
	Jump bool
}

// Start: begin (or silently restart) the match.
type Start struct{}

// Leave: issued on disconnect.
type Leave struct {
	Slot int
}
