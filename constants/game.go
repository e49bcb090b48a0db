package constants

import "time"

// Game Loop Timing Constants
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// GameUpdateInterval is the game logic update interval (clock tick)
	GameUpdateInterval = 16 * time.Millisecond
)

// Board Dimensions
const (
	// BoardWidth is the default number of columns on the play board
	BoardWidth = 10

	// BoardHeight is the default number of visible rows on the play board
	BoardHeight = 20

	// MinBoardWidth and MaxBoardWidth bound the configurable board width
	MinBoardWidth = 4
	MaxBoardWidth = 40

	// MinBoardHeight and MaxBoardHeight bound the configurable board height
	MinBoardHeight = 4
	MaxBoardHeight = 60
)

// Piece Queue
const (
	// QueueDepth is the number of lookahead pieces shown to the player
	QueueDepth = 3
)
