package web

import (
	"testing"
)

func Test_createMatch_Validate(t *testing.T) {
	tests := []struct {
		name    string
		match   createMatch
		wantErr bool
	}{
		{
			name: "ok",
			match: createMatch{
				PlayerA1: "Вася",
				PlayerA2: "Петя",
				PlayerB1: "Коля",
				PlayerB2: "Миша",
				ScoreA:   21,
				ScoreB:   15,
			},
			wantErr: false,
		},
		{
			name: "missing one",
			match: createMatch{
				PlayerA1: "Вася",
				PlayerA2: "",
				PlayerB1: "Коля",
				PlayerB2: "Миша",
				ScoreA:   21,
				ScoreB:   15,
			},
			wantErr: true,
		},
		{
			name: "missing all",
			match: createMatch{
				ScoreA: 21,
				ScoreB: 15,
			},
			wantErr: true,
		},
		{
			name: "same player on both teams",
			match: createMatch{
				PlayerA1: "Вася",
				PlayerA2: "Петя",
				PlayerB1: "Вася",
				PlayerB2: "Миша",
				ScoreA:   21,
				ScoreB:   15,
			},
			wantErr: true,
		},
		{
			name: "duplicate after normalization",
			match: createMatch{
				PlayerA1: "Вася",
				PlayerA2: "  вася ",
				PlayerB1: "Коля",
				PlayerB2: "Миша",
				ScoreA:   21,
				ScoreB:   15,
			},
			wantErr: true,
		},
		{
			name: "negative score",
			match: createMatch{
				PlayerA1: "Вася",
				PlayerA2: "Петя",
				PlayerB1: "Коля",
				PlayerB2: "Миша",
				ScoreA:   -1,
				ScoreB:   15,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if err := tt.match.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
