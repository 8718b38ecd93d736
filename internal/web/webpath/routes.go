package webpath

const (
	Signin  = "/signin"
	Signup  = "/signup"
	Signout = "/signout"
	Home    = "/"

	Api            = "/api"
	ApiHome        = Api + Home
	ApiMatchesList = Api + "/matches-list"
	ApiNewMatch    = Api + "/matches"
	ApiPlayers     = Api + "/players"
	ApiGetPlayers  = ApiPlayers + "/:id"
	ApiPlayerChart = ApiPlayers + "/:id/chart.png"
	ApiNewPlayer   = ApiPlayers
	ApiTournaments = Api + "/tournaments"
	ApiTournament  = ApiTournaments + "/:id"
	ApiImport      = Api + "/import"
	ApiExport      = Api + "/export"
	ApiStandings   = Api + "/standings"
	ApiLeague      = ApiStandings + "/:id"
	ApiLeagueXLSX  = ApiStandings + "/:id/standings.xlsx"
)

func Path() map[string]string {
	return map[string]string{
		"SignUp":         Signup,
		"SignIn":         Signin,
		"SignOut":        Signout,
		"Home":           Home,
		"Api":            Api,
		"ApiHome":        ApiHome,
		"ApiNewMatch":    ApiNewMatch,
		"ApiMatches":     ApiMatchesList,
		"ApiPlayers":     ApiPlayers,
		"ApiNewPlayer":   ApiNewPlayer,
		"ApiTournaments": ApiTournaments,
		"ApiImport":      ApiImport,
		"ApiExport":      ApiExport,
		"ApiStandings":   ApiStandings,
	}
}
