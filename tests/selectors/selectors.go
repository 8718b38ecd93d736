package sel

const (
	Logo = ".brand-logo"

	NavSignIn  = "#signin"
	NavSignOut = "#signout"

	SignInFormUsername = "#username"
	SignInFormPass     = "#password"
	SignInFormSubmit   = "#submit-signin"

	SignUpFormUsername = "#username"
	SignUpFormPass     = "#password"
	SignUpFormRepeat   = "#password-repeat"
	SignUpFormSubmit   = "#submit-signup"

	NewPlayerFormName   = "#name"
	NewPlayerFormSubmit = "#submit-player"

	NewMatchFormPlayerA1 = "#player-a1"
	NewMatchFormPlayerA2 = "#player-a2"
	NewMatchFormPlayerB1 = "#player-b1"
	NewMatchFormPlayerB2 = "#player-b2"
	NewMatchFormScoreA   = "#score-a"
	NewMatchFormScoreB   = "#score-b"
	NewMatchFormSubmit   = "#submit-match"

	RatingTable    = "#rating-table"
	MatchesTable   = "#matches-table"
	StandingsTable = ".standings-table"

	ErrorMessage = ".error-message"
)
