package tournament

import (
	"errors"
	"strings"
	"testing"
	"time"
)

const protocolJSON = `{
  "name": "Кубок открытия",
  "season": "Лето 2023",
  "date": "2023-06-03",
  "leagues": [
    {
      "name": "Высшая лига",
      "groups": [
        {
          "name": "Группа А",
          "matches": [
            {"team_a": ["Вася Пупкин", "Петя Иванов"], "team_b": ["Коля Смирнов", "Миша Белов"], "score_a": 21, "score_b": 15},
            {"team_a": ["Вася Пупкин", "Петя Иванов"], "team_b": ["Саша Козлов", "Дима Орлов"], "score_a": 19, "score_b": 21}
          ]
        }
      ],
      "playoff": [
        {
          "name": "Финал",
          "matches": [
            {"team_a": ["Вася Пупкин", "Петя Иванов"], "team_b": ["Саша Козлов", "Дима Орлов"], "score_a": 15, "score_b": 13}
          ]
        }
      ]
    }
  ]
}`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(protocolJSON))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if f.Name != "Кубок открытия" {
		t.Errorf("Name = %q", f.Name)
	}
	want := time.Date(2023, 6, 3, 0, 0, 0, 0, time.UTC)
	if !f.Date.Equal(want) {
		t.Errorf("Date = %v, want %v", f.Date, want)
	}
	if len(f.Leagues) != 1 {
		t.Fatalf("Leagues = %d, want 1", len(f.Leagues))
	}
	league := f.Leagues[0]
	if len(league.Groups) != 1 || len(league.Groups[0].Matches) != 2 {
		t.Errorf("groups = %v", league.Groups)
	}
	if len(league.Playoff) != 1 || league.Playoff[0].Name != "Финал" {
		t.Errorf("playoff = %v", league.Playoff)
	}
}

func TestParseBadJSON(t *testing.T) {
	_, err := Parse([]byte(`{"name": `))
	if !errors.Is(err, ErrInvalidFile) {
		t.Errorf("err = %v, want ErrInvalidFile", err)
	}
}

func TestValidate(t *testing.T) {
	match := func(a1, a2, b1, b2 string, sa, sb int) Match {
		return Match{TeamA: []string{a1, a2}, TeamB: []string{b1, b2}, ScoreA: sa, ScoreB: sb}
	}
	base := func() File {
		return File{
			Name: "Турнир",
			Date: Date{time.Date(2023, 6, 3, 0, 0, 0, 0, time.UTC)},
			Leagues: []League{{
				Name: "Лига",
				Groups: []Group{{
					Name:    "Группа А",
					Matches: []Match{match("Вася", "Петя", "Коля", "Миша", 21, 15)},
				}},
			}},
		}
	}

	tests := []struct {
		name    string
		change  func(*File)
		wantErr string
	}{
		{
			name:   "valid",
			change: func(f *File) {},
		},
		{
			name:    "no name",
			change:  func(f *File) { f.Name = "" },
			wantErr: "без названия",
		},
		{
			name:    "no date",
			change:  func(f *File) { f.Date = Date{} },
			wantErr: "дата",
		},
		{
			name:    "no leagues",
			change:  func(f *File) { f.Leagues = nil },
			wantErr: "нет лиг",
		},
		{
			name: "short team",
			change: func(f *File) {
				f.Leagues[0].Groups[0].Matches[0].TeamA = []string{"Вася"}
			},
			wantErr: "два игрока",
		},
		{
			name: "duplicate player",
			change: func(f *File) {
				f.Leagues[0].Groups[0].Matches[0].TeamB = []string{"вася", "Миша"}
			},
			wantErr: "указан дважды",
		},
		{
			name: "empty player name",
			change: func(f *File) {
				f.Leagues[0].Groups[0].Matches[0].TeamB = []string{"", "Миша"}
			},
			wantErr: "пустое имя",
		},
		{
			name: "negative score",
			change: func(f *File) {
				f.Leagues[0].Groups[0].Matches[0].ScoreB = -1
			},
			wantErr: "отрицательный счет",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := base()
			tt.change(&f)
			err := f.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() error = nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestIsDraw(t *testing.T) {
	if !(Match{ScoreA: 15, ScoreB: 15}).IsDraw() {
		t.Error("equal scores must be a draw")
	}
	if (Match{ScoreA: 21, ScoreB: 19}).IsDraw() {
		t.Error("21:19 is not a draw")
	}
}
