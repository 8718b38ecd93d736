package elo

import (
	"math"
	"testing"
)

func TestDelta(t *testing.T) {
	type args struct {
		ra float64
		rb float64
		k  int
		sa Points
	}
	tests := []struct {
		name string
		args args
		want int
	}{
		{
			name: "same rating win",
			args: args{
				ra: 1500,
				rb: 1500,
				k:  40,
				sa: Win,
			},
			want: 20,
		},
		{
			name: "same rating lose",
			args: args{
				ra: 1500,
				rb: 1500,
				k:  40,
				sa: Lose,
			},
			want: -20,
		},
		{
			name: "same rating win after calibration",
			args: args{
				ra: 1500,
				rb: 1500,
				k:  32,
				sa: Win,
			},
			want: 16,
		},
		{
			name: "top rating win",
			args: args{
				ra: 1100,
				rb: 1000,
				k:  40,
				sa: Win,
			},
			want: 14,
		},
		{
			name: "top rating lose",
			args: args{
				ra: 1100,
				rb: 1000,
				k:  40,
				sa: Lose,
			},
			want: -26,
		},
		{
			name: "bottom rating win",
			args: args{
				ra: 1000,
				rb: 1100,
				k:  40,
				sa: Win,
			},
			want: 26,
		},
		{
			name: "bottom rating lose",
			args: args{
				ra: 1000,
				rb: 1100,
				k:  40,
				sa: Lose,
			},
			want: -14,
		},
		{
			name: "fractional opponent average",
			args: args{
				ra: 1500,
				rb: 1450,
				k:  32,
				sa: Win,
			},
			want: 14,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Delta(tt.args.ra, tt.args.rb, tt.args.k, tt.args.sa); got != tt.want {
				t.Errorf("Delta() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKFactor(t *testing.T) {
	tests := []struct {
		name        string
		gamesPlayed int
		want        int
	}{
		{
			name:        "first game",
			gamesPlayed: 0,
			want:        KCalibration,
		},
		{
			name:        "last calibration game",
			gamesPlayed: 14,
			want:        KCalibration,
		},
		{
			name:        "first game after calibration",
			gamesPlayed: 15,
			want:        KDefault,
		},
		{
			name:        "veteran",
			gamesPlayed: 100,
			want:        KDefault,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KFactor(tt.gamesPlayed); got != tt.want {
				t.Errorf("KFactor(%d) = %v, want %v", tt.gamesPlayed, got, tt.want)
			}
		})
	}
}

func TestExpected(t *testing.T) {
	if got := Expected(1500, 1500); got != 0.5 {
		t.Errorf("Expected(1500, 1500) = %v, want 0.5", got)
	}
	sum := Expected(1700, 1400) + Expected(1400, 1700)
	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("Expected() probabilities must sum to 1, got %v", sum)
	}
}
