package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/sandcourt/beachrank/internal/config"
	"github.com/sandcourt/beachrank/internal/domain"
	"github.com/sandcourt/beachrank/internal/gender"
	"github.com/sandcourt/beachrank/internal/logger"
	"github.com/sandcourt/beachrank/internal/service"
	"github.com/sandcourt/beachrank/internal/storage/sqlite"
)

var firstNames = []string{
	"Вася", "Петя", "Коля", "Миша", "Дима", "Саша", "Женя", "Костя",
	"Андрей", "Сергей", "Олег", "Никита", "Илья", "Рома", "Паша", "Гриша",
	"Аня", "Катя", "Маша", "Оля", "Настя", "Лена", "Света", "Юля",
	"Даша", "Таня", "Ира", "Вера", "Люба", "Ксюша",
}

var lastNames = []string{
	"Иванов", "Петров", "Сидоров", "Смирнов", "Кузнецов", "Попов",
	"Волков", "Морозов", "Новиков", "Козлов", "Лебедев", "Соколов",
	"Павлов", "Семенов", "Голубев", "Виноградов",
}

func main() {
	if err := run(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	var serverConfigPath string
	var playerCount, matchCount int
	var seed int64
	flag.StringVar(&serverConfigPath, "server-config", "configs/server.toml", "path to server config")
	flag.IntVar(&playerCount, "players", 16, "сколько игроков создать")
	flag.IntVar(&matchCount, "matches", 120, "сколько матчей создать")
	flag.Int64Var(&seed, "seed", time.Now().UnixNano(), "зерно генератора")
	flag.Parse()

	if playerCount < 4 {
		return errors.New("нужно минимум четыре игрока")
	}

	cfg, err := config.NewServer(serverConfigPath)
	if err != nil {
		return err
	}
	log := logger.New(cfg.Debug)
	store, err := sqlite.New(log, cfg)
	if err != nil {
		return err
	}
	svc := service.New(store, store, store, log)

	faker := gofakeit.New(uint64(seed))

	players := make([]domain.Player, 0, playerCount)
	for len(players) < playerCount {
		player, err := svc.CreatePlayer(randomName(faker))
		if errors.Is(err, service.ErrPlayerExists) {
			continue
		}
		if err != nil {
			return err
		}
		players = append(players, player)
	}

	date := time.Now().AddDate(0, 0, -90)
	for i := 0; i < matchCount; i++ {
		idx := make([]int, len(players))
		for j := range idx {
			idx[j] = j
		}
		for j := len(idx) - 1; j > 0; j-- {
			k := faker.Number(0, j)
			idx[j], idx[k] = idx[k], idx[j]
		}
		date = date.Add(time.Duration(faker.Number(1, 18)) * time.Hour)
		scoreA, scoreB := randomScore(faker)
		_, err := svc.CreateMatch(domain.Match{
			TeamA:  domain.Team{players[idx[0]], players[idx[1]]},
			TeamB:  domain.Team{players[idx[2]], players[idx[3]]},
			ScoreA: scoreA,
			ScoreB: scoreB,
			Date:   date,
		})
		if err != nil {
			return err
		}
	}

	fmt.Printf("создано игроков: %d, матчей: %d\n", len(players), matchCount)
	return nil
}

func randomName(faker *gofakeit.Faker) string {
	first := firstNames[faker.Number(0, len(firstNames)-1)]
	last := lastNames[faker.Number(0, len(lastNames)-1)]
	if gender.Guess(first) == gender.Female {
		last += "а"
	}
	return first + " " + last
}

// randomScore never returns a draw. A two-point margin shows up now
// and then so both scoring branches of group tables get data.
func randomScore(faker *gofakeit.Faker) (int, int) {
	winner, loser := 21, faker.Number(5, 19)
	switch faker.Number(0, 9) {
	case 0, 1:
		winner = faker.Number(22, 26)
		loser = winner - 2
	case 2:
		winner, loser = 15, 13
	}
	if faker.Number(0, 1) == 0 {
		return winner, loser
	}
	return loser, winner
}
