// Package tournament reads the protocol files the organizers export
// after a tournament day. One file holds the whole day: leagues, their
// round robin groups and the playoff bracket.
package tournament

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sandcourt/beachrank/internal/normalize"
)

var ErrInvalidFile = errors.New("файл турнира не прошел проверку")

type File struct {
	Name    string   `json:"name"`
	Season  string   `json:"season"`
	Date    Date     `json:"date"`
	Leagues []League `json:"leagues"`
}

type League struct {
	Name    string  `json:"name"`
	Groups  []Group `json:"groups"`
	Playoff []Round `json:"playoff"`
}

type Group struct {
	Name    string  `json:"name"`
	Matches []Match `json:"matches"`
}

type Round struct {
	Name    string  `json:"name"`
	Matches []Match `json:"matches"`
}

type Match struct {
	TeamA  []string `json:"team_a"`
	TeamB  []string `json:"team_b"`
	ScoreA int      `json:"score_a"`
	ScoreB int      `json:"score_b"`
}

// IsDraw reports an unplayable result. Draws are not stored, the
// importer skips them and reports how many were dropped.
func (m Match) IsDraw() bool {
	return m.ScoreA == m.ScoreB
}

// Date is a calendar day in "2006-01-02" form.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(time.DateOnly))
}

func Parse(data []byte) (File, error) {
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return File{}, errors.Join(ErrInvalidFile, err)
	}
	if err := f.Validate(); err != nil {
		return File{}, errors.Join(ErrInvalidFile, err)
	}
	return f, nil
}

// Validate checks the whole file and reports every problem at once.
func (f File) Validate() error {
	var err error
	if f.Name == "" {
		err = errors.Join(err, errors.New("турнир без названия"))
	}
	if f.Date.IsZero() {
		err = errors.Join(err, errors.New("не указана дата турнира"))
	}
	if len(f.Leagues) == 0 {
		err = errors.Join(err, errors.New("в файле нет лиг"))
	}
	for i, league := range f.Leagues {
		name := league.Name
		if name == "" {
			err = errors.Join(err, fmt.Errorf("лига %d без названия", i+1))
			name = fmt.Sprintf("%d", i+1)
		}
		for _, group := range league.Groups {
			if group.Name == "" {
				err = errors.Join(err, fmt.Errorf("лига %q: группа без названия", name))
			}
			for i, match := range group.Matches {
				err = errors.Join(err, validateMatch(match, fmt.Sprintf("лига %q, группа %q, матч %d", name, group.Name, i+1)))
			}
		}
		for _, round := range league.Playoff {
			if round.Name == "" {
				err = errors.Join(err, fmt.Errorf("лига %q: раунд плейофф без названия", name))
			}
			for i, match := range round.Matches {
				err = errors.Join(err, validateMatch(match, fmt.Sprintf("лига %q, %s, матч %d", name, round.Name, i+1)))
			}
		}
	}
	return err
}

func validateMatch(m Match, where string) error {
	var err error
	if len(m.TeamA) != 2 || len(m.TeamB) != 2 {
		err = errors.Join(err, fmt.Errorf("%s: в команде должно быть два игрока", where))
	}
	seen := make(map[string]bool, 4)
	for _, name := range append(append([]string{}, m.TeamA...), m.TeamB...) {
		if name == "" {
			err = errors.Join(err, fmt.Errorf("%s: пустое имя игрока", where))
			continue
		}
		key := normalize.Name(name)
		if seen[key] {
			err = errors.Join(err, fmt.Errorf("%s: игрок %q указан дважды", where, name))
		}
		seen[key] = true
	}
	if m.ScoreA < 0 || m.ScoreB < 0 {
		err = errors.Join(err, fmt.Errorf("%s: отрицательный счет", where))
	}
	return err
}
