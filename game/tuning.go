package game

const (
	ArenaWidth  = 1000.0
	ArenaHeight = 500.0 // floor line, y grows downward

	NetHeight    = 100.0
	NetHalfWidth = 5.0

	SlimeRadius  = 50.0
	SlimeGravity = 1.2
	JumpSpeed    = 18.0 // applied as negative vy (upward)

	BallRadius  = 15.0
	BallGravity = 0.4 // lighter than slime gravity, floatier rallies
	BallServeVX = 6.0
	BallServeVY = 4.0
	BallResetY  = 100.0
	KickSpeed   = 14.0 // fixed outward speed imparted on slime contact
	KickRadius  = SlimeRadius + BallRadius

	SetPoint = 5 // rally points to win a set
)
