package service

import (
	"github.com/google/uuid"

	"github.com/sandcourt/beachrank/internal/standings"
)

// GroupStandings is the table of one round robin group.
type GroupStandings struct {
	Stage string
	Rows  []standings.Row
}

// GetStandings builds the group tables of one league, one table per
// group in play order. Playoff matches don't count toward the tables.
func (s *PlayerService) GetStandings(leagueID uuid.UUID, strategy standings.Strategy) ([]GroupStandings, error) {
	matches, err := s.matchStorage.ListLeagueMatches(leagueID)
	if err != nil {
		return nil, err
	}
	tables := make(map[uuid.UUID]*standings.Table)
	names := make(map[uuid.UUID]string)
	var order []uuid.UUID
	for _, match := range matches {
		if match.IsPlayoff() {
			continue
		}
		table, ok := tables[match.StageID]
		if !ok {
			table = standings.New()
			tables[match.StageID] = table
			names[match.StageID] = match.Stage
			order = append(order, match.StageID)
		}
		table.Add(match)
	}
	groups := make([]GroupStandings, 0, len(order))
	for _, stageID := range order {
		groups = append(groups, GroupStandings{
			Stage: names[stageID],
			Rows:  tables[stageID].Rows(strategy),
		})
	}
	return groups, nil
}
