package elo

import "math"

type Points float64

const (
	Win  Points = 1
	Lose Points = 0
)

const (
	// InitialRating is given to a player on first appearance.
	InitialRating = 1500
	// CalibrationGames is how many first games count as calibration.
	CalibrationGames = 15
	// KCalibration moves the rating faster while calibrating.
	KCalibration = 40
	KDefault     = 32
)

// Expected win probability for a player rated ra against an opponent
// rated rb.
func Expected(ra float64, rb float64) float64 {
	return 1.0 / (1.0 + math.Pow(10, (rb-ra)/400.0))
}

// KFactor picks the coefficient by the number of games played before
// the current match.
func KFactor(gamesPlayed int) int {
	if gamesPlayed < CalibrationGames {
		return KCalibration
	}
	return KDefault
}

// Delta calculates the rating change.
// ra - player rating.
// rb - opponent rating (for doubles the mean of the opposing pair).
// k - coefficient, see KFactor.
// sa - points: 1 for win; 0 for lose.
// The change is rounded half away from zero, so win and loss between
// equal sides stay symmetric.
func Delta(ra float64, rb float64, k int, sa Points) int {
	return int(math.Round(float64(k) * (float64(sa) - Expected(ra, rb))))
}
