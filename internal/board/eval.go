package board

// Material value for each piece type.
var pieceScores = [numPieceTypes]int{0, 100, 100, 300, 500, 900, 0}

// Positional bonus for each piece type at each location, indexed by padded
// square so no conversion is needed on the hot path. The pawn tables are
// asymmetric: each color is rewarded for advancing toward its promotion rank.
var squareScores = [numPieceTypes][paddedArea]int{
	// NoPieceType
	{},
	// WhitePawn
	{
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 2, 2, 2, 2, 2, 2, 0, 0,
		0, 0, 5, 5, 7, 7, 5, 5, 0, 0,
		0, 0, 10, 10, 10, 10, 10, 10, 0, 0,
		0, 0, 30, 30, 30, 30, 30, 30, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	},
	// BlackPawn
	{
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 30, 30, 30, 30, 30, 30, 0, 0,
		0, 0, 10, 10, 10, 10, 10, 10, 0, 0,
		0, 0, 5, 5, 7, 7, 5, 5, 0, 0,
		0, 0, 2, 2, 2, 2, 2, 2, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	},
	// Knight: knights on the rim are dim.
	{
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, -5, -5, -5, -5, -5, -5, 0, 0,
		0, 0, -5, 5, 5, 5, 5, -5, 0, 0,
		0, 0, -5, 5, 10, 10, 5, -5, 0, 0,
		0, 0, -5, 5, 10, 10, 5, -5, 0, 0,
		0, 0, -5, 5, 5, 5, 5, -5, 0, 0,
		0, 0, -5, -5, -5, -5, -5, -5, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	},
	// Rook: slight weight toward the centre.
	{
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 1, 1, 1, 1, 0, 0, 0,
		0, 0, 0, 1, 1, 1, 1, 0, 0, 0,
		0, 0, 0, 1, 1, 1, 1, 0, 0, 0,
		0, 0, 0, 1, 1, 1, 1, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	},
	// Queen
	{
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 2, 2, 2, 2, 0, 0, 0,
		0, 0, 0, 2, 5, 5, 2, 0, 0, 0,
		0, 0, 0, 2, 5, 5, 2, 0, 0, 0,
		0, 0, 0, 2, 2, 2, 2, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	},
	// King
	{
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 2, 2, 2, 2, 0, 0, 0,
		0, 0, 0, 2, 5, 5, 2, 0, 0, 0,
		0, 0, 0, 2, 5, 5, 2, 0, 0, 0,
		0, 0, 0, 2, 2, 2, 2, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	},
}
