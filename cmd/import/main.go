package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/urfave/cli/v2"

	"github.com/sandcourt/beachrank/internal/config"
	"github.com/sandcourt/beachrank/internal/logger"
	"github.com/sandcourt/beachrank/internal/normalize"
	"github.com/sandcourt/beachrank/internal/service"
	"github.com/sandcourt/beachrank/internal/storage/sqlite"
	"github.com/sandcourt/beachrank/internal/tournament"
)

func main() {
	app := &cli.App{
		Name:  "beachrank-import",
		Usage: "загрузка протоколов турниров и восстановление базы",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "server-config",
				Value: "configs/server.toml",
				Usage: "путь к конфигу сервера",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "tournament",
				Usage: "импорт протокола турнира (JSON)",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "file",
						Aliases:  []string{"f"},
						Required: true,
						Usage:    "файл протокола",
					},
					&cli.StringSliceFlag{
						Name:    "alias",
						Aliases: []string{"a"},
						Usage:   "псевдоним вида 'как в протоколе=как в базе', можно несколько",
					},
					&cli.StringFlag{
						Name:  "aliases-file",
						Usage: "toml-файл с таблицей [aliases]",
					},
					&cli.BoolFlag{
						Name:  "dry-run",
						Usage: "проверить протокол и показать сводку, в базу не писать",
					},
				},
				Action: importTournament,
			},
			{
				Name:  "dump",
				Usage: "восстановление базы из выгрузки /api/export",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "file",
						Aliases:  []string{"f"},
						Required: true,
						Usage:    "файл выгрузки",
					},
				},
				Action: importDump,
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func newService(c *cli.Context) (*service.PlayerService, error) {
	cfg, err := config.NewServer(c.String("server-config"))
	if err != nil {
		return nil, err
	}
	log := logger.New(cfg.Debug)
	store, err := sqlite.New(log, cfg)
	if err != nil {
		return nil, err
	}
	return service.New(store, store, store, log), nil
}

func importTournament(c *cli.Context) error {
	payload, err := os.ReadFile(c.String("file"))
	if err != nil {
		return err
	}
	aliases, err := loadAliases(c.String("aliases-file"), c.StringSlice("alias"))
	if err != nil {
		return err
	}
	if c.Bool("dry-run") {
		return dryRun(payload, aliases)
	}
	svc, err := newService(c)
	if err != nil {
		return err
	}
	report, err := svc.ImportTournament(payload, aliases)
	if err != nil {
		return err
	}
	fmt.Printf("турнир %q загружен: матчей %d, новых игроков %d, ничьих пропущено %d\n",
		report.Tournament.Name, report.MatchesImported, report.PlayersCreated, report.DrawsSkipped)
	return nil
}

// dryRun parses the protocol and prints what the import would store,
// without touching the database.
func dryRun(payload []byte, aliases map[string]string) error {
	file, err := tournament.Parse(payload)
	if err != nil {
		return err
	}
	players := make(map[string]bool)
	countMatch := func(m tournament.Match, matches, draws *int) {
		if m.IsDraw() {
			*draws++
		} else {
			*matches++
		}
		for _, raw := range append(append([]string{}, m.TeamA...), m.TeamB...) {
			name := normalize.Name(raw)
			if canonical, ok := aliases[name]; ok {
				name = normalize.Name(canonical)
			}
			players[name] = true
		}
	}

	fmt.Printf("турнир %q, дата %s", file.Name, file.Date.Format("02.01.2006"))
	if file.Season != "" {
		fmt.Printf(", сезон %q", file.Season)
	}
	fmt.Println()
	var totalMatches, totalDraws int
	for _, league := range file.Leagues {
		var matches, playoff, draws int
		for _, group := range league.Groups {
			for _, m := range group.Matches {
				countMatch(m, &matches, &draws)
			}
		}
		for _, round := range league.Playoff {
			for _, m := range round.Matches {
				countMatch(m, &playoff, &draws)
			}
		}
		fmt.Printf("  лига %q: групп %d, матчей в группах %d, в плейофф %d, ничьих %d\n",
			league.Name, len(league.Groups), matches, playoff, draws)
		totalMatches += matches + playoff
		totalDraws += draws
	}
	fmt.Printf("итого: матчей %d, ничьих %d, игроков %d\n", totalMatches, totalDraws, len(players))
	return nil
}

type aliasFile struct {
	Aliases map[string]string `toml:"aliases"`
}

// loadAliases merges the toml file with the -a pairs, pairs win.
func loadAliases(path string, pairs []string) (map[string]string, error) {
	aliases := make(map[string]string)
	if path != "" {
		var f aliasFile
		if _, err := toml.DecodeFile(path, &f); err != nil {
			return nil, err
		}
		for from, to := range f.Aliases {
			from = normalize.Name(from)
			to = strings.TrimSpace(to)
			if from == "" || to == "" {
				return nil, errors.New("пустой псевдоним в " + path)
			}
			aliases[from] = to
		}
	}
	for _, pair := range pairs {
		from, to, ok := strings.Cut(pair, "=")
		from = normalize.Name(from)
		to = strings.TrimSpace(to)
		if !ok || from == "" || to == "" {
			return nil, errors.New("псевдоним должен быть вида 'как в протоколе=как в базе': " + pair)
		}
		aliases[from] = to
	}
	return aliases, nil
}

func importDump(c *cli.Context) error {
	svc, err := newService(c)
	if err != nil {
		return err
	}
	payload, err := os.ReadFile(c.String("file"))
	if err != nil {
		return err
	}
	if err := svc.Import(payload); err != nil {
		return err
	}
	fmt.Println("база восстановлена из выгрузки")
	return nil
}
