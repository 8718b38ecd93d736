package normalize

import "testing"

func TestName(t *testing.T) {
	tests := []struct {
		name string
		arg  string
		want string
	}{
		{
			name: "lower case",
			arg:  "вася пупкин",
			want: "Вася Пупкин",
		},
		{
			name: "upper case",
			arg:  "ВАСЯ ПУПКИН",
			want: "Вася Пупкин",
		},
		{
			name: "extra spaces",
			arg:  "  вася   пупкин ",
			want: "Вася Пупкин",
		},
		{
			name: "single name",
			arg:  "петя",
			want: "Петя",
		},
		{
			name: "already normalized",
			arg:  "Мария Шарапова",
			want: "Мария Шарапова",
		},
		{
			name: "latin",
			arg:  "john doe",
			want: "John Doe",
		},
		{
			name: "empty",
			arg:  "",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Name(tt.arg); got != tt.want {
				t.Errorf("Name(%q) = %q, want %q", tt.arg, got, tt.want)
			}
		})
	}
}
