package web

import (
	"errors"
	"io"
	"io/fs"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html"
	"github.com/google/uuid"

	embedded "github.com/sandcourt/beachrank"
	authservice "github.com/sandcourt/beachrank/auth/service"
	"github.com/sandcourt/beachrank/auth/users"
	"github.com/sandcourt/beachrank/internal/config"
	"github.com/sandcourt/beachrank/internal/domain"
	"github.com/sandcourt/beachrank/internal/gender"
	"github.com/sandcourt/beachrank/internal/metrics"
	"github.com/sandcourt/beachrank/internal/normalize"
	"github.com/sandcourt/beachrank/internal/service"
	"github.com/sandcourt/beachrank/internal/standings"
	"github.com/sandcourt/beachrank/internal/web/webpath"
)

type Server struct {
	auth          *authservice.Service
	playerService *service.PlayerService
	app           *fiber.App
	cfg           config.Server
}

func New(ps *service.PlayerService, cfg config.Server, authService *authservice.Service) (*Server, error) {
	server := Server{
		playerService: ps,
		auth:          authService,
		cfg:           cfg,
	}

	fsFS, err := fs.Sub(embedded.Views, "views")
	if err != nil {
		return nil, err
	}
	engine := html.NewFileSystem(http.FS(fsFS), ".html")
	engine.Reload(cfg.Debug)
	engine.Debug(cfg.Debug)
	engine.AddFunc("FormatDate", formatDate)

	app := fiber.New(fiber.Config{
		Views: engine,
	})
	app.Use(metrics.Middleware())
	app.Use(webpath.Api, func(c *fiber.Ctx) error {
		tokenCookie := c.Cookies("token")
		user, err := authService.Auth(c.Context(), tokenCookie, c.Method(), c.OriginalURL())
		if err != nil {
			switch {
			case errors.Is(err, authservice.ErrForbidden):
				c.Status(fiber.StatusForbidden)
			case errors.Is(err, authservice.ErrNotAuthorized):
				c.Status(fiber.StatusUnauthorized)
			default:
				c.Status(fiber.StatusInternalServerError)
			}
			return nil
		}
		c.Context().SetUserValue(userKey, user)
		return c.Next()
	})
	app.Get(webpath.Signin, server.HandleGetSignIn)
	app.Post(webpath.Signin, server.HandlePostSignIn)
	app.Get(webpath.Signup, server.HandleGetSignup)
	app.Post(webpath.Signup, server.HandlePostSignup)
	app.Get(webpath.Signout, server.HandleSignOut)
	app.Get(webpath.Home, func(ctx *fiber.Ctx) error {
		return ctx.Redirect(webpath.Api)
	})

	app.Get(webpath.ApiHome, server.handleMain)
	app.Get(webpath.ApiMatchesList, server.handleMatches)
	app.Get(webpath.ApiNewMatch, server.handleCreateMatchGet)
	app.Post(webpath.ApiNewMatch, server.handleCreateMatchPost)
	app.Get(webpath.ApiGetPlayers, server.HandlePlayerInfo)
	app.Get(webpath.ApiPlayerChart, server.HandlePlayerChart)
	app.Get(webpath.ApiNewPlayer, server.handleNewPlayerGet)
	app.Post(webpath.ApiNewPlayer, server.handleNewPlayerPost)
	app.Get(webpath.ApiTournaments, server.handleTournaments)
	app.Get(webpath.ApiTournament, server.handleTournament)
	app.Get(webpath.ApiLeague, server.handleStandings)
	app.Get(webpath.ApiLeagueXLSX, server.handleStandingsXLSX)
	app.Get(webpath.ApiImport, server.handleImportGet)
	app.Post(webpath.ApiImport, server.handleImportPost)
	app.Get(webpath.ApiExport, server.handleExport)
	server.app = app
	return &server, nil
}

func (s *Server) Serve() error {
	return s.app.Listen(s.cfg.Host + ":" + strconv.Itoa(s.cfg.Port))
}

func (s *Server) Stop() error {
	return s.app.Shutdown()
}

const userKey = "user"

func (s *Server) handleMain(ctx *fiber.Ctx) error {
	user, _ := ctx.Context().UserValue(userKey).(users.User)
	globalRating := s.playerService.GetRatings()
	filter := gender.Gender(ctx.Query("gender"))
	if filter != gender.Male && filter != gender.Female {
		filter = gender.Unknown
	}
	if filter != gender.Unknown {
		filtered := make([]domain.Player, 0, len(globalRating))
		for _, player := range globalRating {
			if player.Gender == filter {
				filtered = append(filtered, player)
			}
		}
		globalRating = filtered
	}
	return ctx.Render("index",
		newData("Рейтинг").
			WithButton("rating").
			WithUser(user).
			With("Players", globalRating).
			With("Gender", string(filter)),
		"layouts/main")
}

func (s *Server) handleMatches(ctx *fiber.Ctx) error {
	user, _ := ctx.Context().UserValue(userKey).(users.User)
	matches, err := s.playerService.GetMatches()
	if err != nil {
		return err
	}
	return ctx.Render("matches",
		newData("Список матчей").
			WithButton("matches").
			WithUser(user).
			With("Matches", matches),
		"layouts/main")
}

func (s *Server) handleCreateMatchGet(ctx *fiber.Ctx) error {
	user, _ := ctx.Context().UserValue(userKey).(users.User)
	return s.renderNewMatch(ctx, user, nil)
}

func (s *Server) handleCreateMatchPost(ctx *fiber.Ctx) error {
	user, _ := ctx.Context().UserValue(userKey).(users.User)
	form, err := parseCreateMatch(ctx)
	if err != nil {
		return s.renderNewMatch(ctx, user, err)
	}
	match, err := s.resolveMatch(form)
	if err != nil {
		return s.renderNewMatch(ctx, user, err)
	}
	if _, err := s.playerService.CreateMatch(match); err != nil {
		return s.renderNewMatch(ctx, user, err)
	}
	return ctx.Redirect(webpath.ApiMatchesList)
}

func (s *Server) renderNewMatch(ctx *fiber.Ctx, user users.User, err error) error {
	d := newData("Добавить игру").
		WithButton("newMatch").
		WithUser(user).
		With("Players", s.playerService.GetRatings())
	if err != nil {
		d = d.WithErrors(err)
	}
	return ctx.Render("newMatch", d, "layouts/main")
}

// resolveMatch looks the four form names up and assembles the match.
// Lookup failures for all names are reported at once.
func (s *Server) resolveMatch(form createMatch) (domain.Match, error) {
	var err error
	resolve := func(name string) domain.Player {
		player, getErr := s.playerService.GetByName(name)
		if getErr != nil {
			err = errors.Join(err, errors.New(name+" не найден"))
		}
		return player
	}
	match := domain.Match{
		TeamA:  domain.Team{resolve(form.PlayerA1), resolve(form.PlayerA2)},
		TeamB:  domain.Team{resolve(form.PlayerB1), resolve(form.PlayerB2)},
		ScoreA: form.ScoreA,
		ScoreB: form.ScoreB,
		Date:   time.Now(),
	}
	if err != nil {
		return domain.Match{}, err
	}
	return match, nil
}

func (s *Server) HandlePlayerInfo(ctx *fiber.Ctx) error {
	user, _ := ctx.Context().UserValue(userKey).(users.User)
	strID := ctx.Params("id")
	id, err := uuid.Parse(strID)
	if err != nil {
		return err
	}
	data, err := s.playerService.GetPlayerData(id)
	if err != nil {
		return err
	}
	return ctx.Render("playerCard",
		newData(data.Player.Name).
			WithButton("playerCard").
			WithUser(user).
			With("Data", data),
		"layouts/main")
}

func (s *Server) HandlePlayerChart(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return err
	}
	data, err := s.playerService.GetPlayerData(id)
	if err != nil {
		return err
	}
	png, err := renderRatingChart(data.History)
	if err != nil {
		return err
	}
	ctx.Set(fiber.HeaderContentType, "image/png")
	return ctx.Send(png)
}

func (s *Server) HandleGetSignIn(ctx *fiber.Ctx) error {
	return ctx.Render("signin", newData("Войти"), "layouts/main")
}

func (s *Server) HandlePostSignIn(ctx *fiber.Ctx) error {
	req, err := parseSignInRequest(ctx)
	if err != nil {
		return ctx.Render("signin", newData("Войти").WithErrors(err), "layouts/main")
	}
	user, err := s.auth.Login(ctx.Context(), req.name, req.password)
	if err != nil {
		return ctx.Render("signin",
			newData("Войти").WithErrors(errors.New("неверное имя пользователя или пароль")),
			"layouts/main")
	}
	cookie, err := s.auth.GenerateJWTCookie(user.ID, s.cfg.Host)
	if err != nil {
		return err
	}
	ctx.Cookie(cookie)
	return ctx.Redirect(webpath.ApiHome)
}

func (s *Server) HandleGetSignup(ctx *fiber.Ctx) error {
	return ctx.Render("signup", newData("Зарегистрироваться"), "layouts/main")
}

func (s *Server) HandlePostSignup(ctx *fiber.Ctx) error {
	req, err := parseSignUpRequest(ctx)
	if err != nil {
		return ctx.Render("signup", newData("Зарегистрироваться").WithErrors(err), "layouts/main")
	}
	err = s.auth.SignUp(ctx.Context(), req.name, req.password)
	if err != nil {
		return ctx.Render("signup", newData("Зарегистрироваться").WithErrors(err), "layouts/main")
	}
	return ctx.Redirect(webpath.Signin)
}

func (s *Server) HandleSignOut(ctx *fiber.Ctx) error {
	ctx.ClearCookie("token")
	return ctx.Redirect(webpath.ApiHome)
}

func (s *Server) handleNewPlayerGet(ctx *fiber.Ctx) error {
	user, _ := ctx.Context().UserValue(userKey).(users.User)
	return ctx.Render("newPlayer", newData("Добавить игрока").WithUser(user), "layouts/main")
}

func (s *Server) handleNewPlayerPost(ctx *fiber.Ctx) error {
	user, _ := ctx.Context().UserValue(userKey).(users.User)
	name := ctx.FormValue("name", "")
	_, err := s.playerService.CreatePlayer(name)
	if err != nil {
		return ctx.Render("newPlayer",
			newData("Добавить игрока").WithUser(user).WithErrors(err),
			"layouts/main")
	}
	return ctx.Redirect(webpath.ApiHome)
}

func (s *Server) handleTournaments(ctx *fiber.Ctx) error {
	user, _ := ctx.Context().UserValue(userKey).(users.User)
	tournaments, err := s.playerService.ListTournaments()
	if err != nil {
		return err
	}
	return ctx.Render("tournaments",
		newData("Турниры").
			WithButton("tournaments").
			WithUser(user).
			With("Tournaments", tournaments),
		"layouts/main")
}

func (s *Server) handleTournament(ctx *fiber.Ctx) error {
	user, _ := ctx.Context().UserValue(userKey).(users.User)
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return err
	}
	tournament, err := s.playerService.GetTournament(id)
	if err != nil {
		return err
	}
	return ctx.Render("tournament",
		newData(tournament.Name).
			WithButton("tournaments").
			WithUser(user).
			With("Tournament", tournament),
		"layouts/main")
}

func (s *Server) handleStandings(ctx *fiber.Ctx) error {
	user, _ := ctx.Context().UserValue(userKey).(users.User)
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return err
	}
	league, err := s.playerService.GetLeague(id)
	if err != nil {
		return err
	}
	tournament, err := s.playerService.GetTournament(league.TournamentID)
	if err != nil {
		return err
	}
	strategy := standings.Italian
	if ctx.Query("strategy") == string(standings.WinLoss) {
		strategy = standings.WinLoss
	}
	groups, err := s.playerService.GetStandings(id, strategy)
	if err != nil {
		return err
	}
	return ctx.Render("standings",
		newData(tournament.Name+", "+league.Name).
			WithButton("tournaments").
			WithUser(user).
			With("Tournament", tournament).
			With("League", league).
			With("Groups", groups).
			With("Strategy", string(strategy)),
		"layouts/main")
}

func (s *Server) handleStandingsXLSX(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return err
	}
	strategy := standings.Italian
	if ctx.Query("strategy") == string(standings.WinLoss) {
		strategy = standings.WinLoss
	}
	groups, err := s.playerService.GetStandings(id, strategy)
	if err != nil {
		return err
	}
	book, err := renderStandingsXLSX(groups)
	if err != nil {
		return err
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="standings.xlsx"`)
	return ctx.Send(book)
}

func (s *Server) handleImportGet(ctx *fiber.Ctx) error {
	user, _ := ctx.Context().UserValue(userKey).(users.User)
	return ctx.Render("importTournament",
		newData("Импорт турнира").WithButton("tournaments").WithUser(user),
		"layouts/main")
}

func (s *Server) handleImportPost(ctx *fiber.Ctx) error {
	user, _ := ctx.Context().UserValue(userKey).(users.User)
	d := newData("Импорт турнира").WithButton("tournaments").WithUser(user)

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Render("importTournament",
			d.WithErrors(errors.New("файл протокола не выбран")),
			"layouts/main")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer file.Close()
	payload, err := io.ReadAll(file)
	if err != nil {
		return err
	}

	report, err := s.playerService.ImportTournament(payload, parseAliases(ctx.FormValue("aliases", "")))
	if err != nil {
		return ctx.Render("importTournament", d.WithErrors(err), "layouts/main")
	}
	return ctx.Render("importTournament", d.With("Report", report), "layouts/main")
}

// parseAliases reads "как в протоколе = как в базе" lines.
func parseAliases(text string) map[string]string {
	aliases := make(map[string]string)
	for _, line := range strings.Split(text, "\n") {
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		from := normalize.Name(parts[0])
		to := strings.TrimSpace(parts[1])
		if from == "" || to == "" {
			continue
		}
		aliases[from] = to
	}
	return aliases
}

func (s *Server) handleExport(ctx *fiber.Ctx) error {
	payload, err := s.playerService.Export()
	if err != nil {
		return err
	}
	ctx.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="beachrank.json"`)
	return ctx.Send(payload)
}

func formatDate(t time.Time) string {
	return t.Format("02.01.2006г.")
}
