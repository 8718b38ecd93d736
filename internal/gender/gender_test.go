package gender

import "testing"

func TestGuess(t *testing.T) {
	tests := []struct {
		name string
		arg  string
		want Gender
	}{
		{
			name: "suffix а",
			arg:  "Марина Кравченко",
			want: Female,
		},
		{
			name: "suffix я",
			arg:  "Ксения",
			want: Female,
		},
		{
			name: "suffix ья",
			arg:  "Наталья Орлова",
			want: Female,
		},
		{
			name: "plain male",
			arg:  "Олег Сизов",
			want: Male,
		},
		{
			name: "male exception full name",
			arg:  "Никита Волков",
			want: Male,
		},
		{
			name: "male exception diminutive",
			arg:  "Вася",
			want: Male,
		},
		{
			name: "known female not covered by suffix",
			arg:  "Любовь Фомина",
			want: Female,
		},
		{
			name: "case insensitive",
			arg:  "ИЛЬЯ",
			want: Male,
		},
		{
			name: "empty",
			arg:  "",
			want: Unknown,
		},
		{
			name: "spaces only",
			arg:  "   ",
			want: Unknown,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Guess(tt.arg); got != tt.want {
				t.Errorf("Guess(%q) = %v, want %v", tt.arg, got, tt.want)
			}
		})
	}
}
