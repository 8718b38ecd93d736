package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/sandcourt/beachrank/internal/cache/mem"
	"github.com/sandcourt/beachrank/internal/domain"
	"github.com/sandcourt/beachrank/internal/elo"
	"github.com/sandcourt/beachrank/internal/gender"
	"github.com/sandcourt/beachrank/internal/metrics"
	"github.com/sandcourt/beachrank/internal/normalize"
	"github.com/sandcourt/beachrank/internal/rating"
	"github.com/sandcourt/beachrank/internal/storage"
)

var (
	ErrPlayerExists   = errors.New("игрок с таким именем уже есть")
	ErrEmptyName      = errors.New("пустое имя игрока")
	ErrDraw           = errors.New("ничьи не записываются")
	ErrSamePlayer     = errors.New("игрок не может играть сам с собой")
	ErrNegativeScore  = errors.New("отрицательный счет")
	ErrPlayerNotFound = errors.New("игрок не найден")
)

type PlayerService struct {
	playerStorage     storage.PlayerStorage
	matchStorage      storage.MatchStorage
	tournamentStorage storage.TournamentStorage
	cache             *mem.Cache
	log               *logrus.Entry
}

func New(
	playerStorage storage.PlayerStorage,
	matchStorage storage.MatchStorage,
	tournamentStorage storage.TournamentStorage,
	l *logrus.Logger,
) *PlayerService {
	return &PlayerService{
		playerStorage:     playerStorage,
		matchStorage:      matchStorage,
		tournamentStorage: tournamentStorage,
		cache:             mem.New(),
		log:               l.WithField("name", "player-service"),
	}
}

func (s *PlayerService) ListPlayers() ([]domain.Player, error) {
	return s.playerStorage.ListPlayers()
}

// GetRatings returns the leaderboard. The whole match log is replayed
// on a cache miss, every write invalidates the cache.
func (s *PlayerService) GetRatings() []domain.Player {
	if s.cache.Valid() {
		return s.cache.GetRatings()
	}
	players, err := s.refreshRatings()
	if err != nil {
		s.log.WithError(err).Error("unable to refresh ratings")
		return nil
	}
	return players
}

func (s *PlayerService) refreshRatings() ([]domain.Player, error) {
	matches, err := s.matchStorage.ListMatches()
	if err != nil {
		return nil, err
	}
	result := rating.Compute(matches)
	glicko := s.glickoRatings(matches)

	players := make([]domain.Player, 0, len(result.Leaderboard))
	for i, pr := range result.Leaderboard {
		player := pr.Player
		player.EloRating = pr.Rating
		player.GamesPlayed = pr.GamesPlayed
		player.Calibrated = pr.Calibrated
		player.RatingChange = pr.LastChange
		player.RatingRank = i + 1
		player.Glicko2Rating = glicko[player.ID]
		players = append(players, player)
	}

	// players without a single match still show up, unranked
	all, err := s.playerStorage.ListPlayers()
	if err != nil {
		return nil, err
	}
	rated := make(map[uuid.UUID]bool, len(players))
	for _, player := range players {
		rated[player.ID] = true
	}
	for _, player := range all {
		if rated[player.ID] {
			continue
		}
		player.EloRating = elo.InitialRating
		players = append(players, player)
	}

	metrics.RatingRecomputes.Inc()
	metrics.PlayersRegistered.Set(float64(len(players)))
	s.cache.Update(players)
	return players, nil
}

// GetMatches returns the match log annotated with rating changes,
// newest first.
func (s *PlayerService) GetMatches() ([]rating.MatchResult, error) {
	matches, err := s.matchStorage.ListMatches()
	if err != nil {
		return nil, err
	}
	result := rating.Compute(matches)
	annotated := make([]rating.MatchResult, len(result.Matches))
	copy(annotated, result.Matches)
	reverse(annotated)
	return annotated, nil
}

func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func (s *PlayerService) Get(id uuid.UUID) (domain.Player, error) {
	for _, player := range s.GetRatings() {
		if player.ID == id {
			return player, nil
		}
	}
	return domain.Player{}, ErrPlayerNotFound
}

func (s *PlayerService) GetByName(name string) (domain.Player, error) {
	if player, ok := s.cache.GetPlayerByName(name); ok {
		return player, nil
	}
	players, err := s.refreshRatings()
	if err != nil {
		return domain.Player{}, err
	}
	normalized := normalize.Name(name)
	for _, player := range players {
		if player.Name == normalized {
			return player, nil
		}
	}
	return domain.Player{}, ErrPlayerNotFound
}

func (s *PlayerService) CreatePlayer(name string) (domain.Player, error) {
	normalized := normalize.Name(name)
	if normalized == "" {
		return domain.Player{}, ErrEmptyName
	}
	_, err := s.playerStorage.GetByName(normalized)
	if err == nil {
		return domain.Player{}, ErrPlayerExists
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return domain.Player{}, err
	}
	player := domain.Player{
		ID:           uuid.New(),
		Name:         normalized,
		Gender:       gender.Guess(normalized),
		RegisteredAt: time.Now(),
	}
	err = s.playerStorage.CreatePlayer(player)
	if err != nil {
		return domain.Player{}, err
	}
	s.cache.Invalidate()
	s.log.WithField("player", player.Name).Info("new player")
	return player, nil
}

// CreateMatch stores a standalone game added through the web form.
func (s *PlayerService) CreateMatch(match domain.Match) (domain.Match, error) {
	if err := validateMatch(match); err != nil {
		return domain.Match{}, err
	}
	if match.ID == uuid.Nil {
		match.ID = uuid.New()
	}
	if match.Date.IsZero() {
		match.Date = time.Now()
	}
	err := s.matchStorage.Create(match)
	if err != nil {
		return domain.Match{}, err
	}
	s.cache.Invalidate()
	return match, nil
}

func validateMatch(match domain.Match) error {
	var err error
	if match.ScoreA < 0 || match.ScoreB < 0 {
		err = errors.Join(err, ErrNegativeScore)
	}
	if match.ScoreA == match.ScoreB {
		err = errors.Join(err, ErrDraw)
	}
	seen := make(map[uuid.UUID]bool, 4)
	for _, player := range match.Players() {
		if player.ID == uuid.Nil {
			err = errors.Join(err, ErrPlayerNotFound)
			continue
		}
		if seen[player.ID] {
			err = errors.Join(err, ErrSamePlayer)
		}
		seen[player.ID] = true
	}
	return err
}

// PlayerCard is everything the player page shows.
type PlayerCard struct {
	Player   domain.Player
	History  []rating.Snapshot
	Rivals   []domain.PlayerStats
	Partners []domain.PlayerStats
	Matches  []rating.MatchResult
}

func (s *PlayerService) GetPlayerData(id uuid.UUID) (PlayerCard, error) {
	matches, err := s.matchStorage.ListMatches()
	if err != nil {
		return PlayerCard{}, err
	}
	result := rating.Compute(matches)

	player, err := s.Get(id)
	if err != nil {
		return PlayerCard{}, err
	}
	card := PlayerCard{Player: player}

	if pr, ok := result.Get(id); ok {
		card.History = pr.History
	}

	rivals := make(map[uuid.UUID]*domain.PlayerStats)
	partners := make(map[uuid.UUID]*domain.PlayerStats)
	tally := func(m map[uuid.UUID]*domain.PlayerStats, other domain.Player, won bool) {
		stats, ok := m[other.ID]
		if !ok {
			stats = &domain.PlayerStats{Player: other}
			m[other.ID] = stats
		}
		if won {
			stats.Wins++
		} else {
			stats.Loses++
		}
	}
	var rivalOrder, partnerOrder []uuid.UUID
	for i := range result.Matches {
		match := result.Matches[i]
		if !match.HasPlayer(id) {
			continue
		}
		card.Matches = append(card.Matches, match)

		us, them := match.TeamsOf(id)
		won := match.WinnerTeam().Has(id)
		partner := us.PartnerOf(id)
		if _, ok := partners[partner.ID]; !ok {
			partnerOrder = append(partnerOrder, partner.ID)
		}
		tally(partners, partner, won)
		for _, rival := range them {
			if _, ok := rivals[rival.ID]; !ok {
				rivalOrder = append(rivalOrder, rival.ID)
			}
			tally(rivals, rival, won)
		}
	}
	for _, rivalID := range rivalOrder {
		card.Rivals = append(card.Rivals, *rivals[rivalID])
	}
	for _, partnerID := range partnerOrder {
		card.Partners = append(card.Partners, *partners[partnerID])
	}
	reverse(card.Matches)
	return card, nil
}
