package utils

import "testing"

func TestCPFDigits(t *testing.T) {
	tests := []struct {
		name string
		cpf  string
		want string
	}{
		{
			name: "formatted CPF",
			cpf:  "111.111.111-11",
			want: "11111111111",
		},
		{
			name: "bare digits",
			cpf:  "11111111111",
			want: "11111111111",
		},
		{
			name: "spaces and dashes",
			cpf:  " 035 613 507-12 ",
			want: "03561350712",
		},
		{
			name: "empty string",
			cpf:  "",
			want: "",
		},
		{
			name: "no digits at all",
			cpf:  "abc.def-gh",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CPFDigits(tt.cpf); got != tt.want {
				t.Errorf("CPFDigits(%q) = %q, want %q", tt.cpf, got, tt.want)
			}
		})
	}
}

func TestValidCPFLength(t *testing.T) {
	tests := []struct {
		name string
		cpf  string
		want bool
	}{
		{
			name: "formatted 11 digits",
			cpf:  "111.111.111-11",
			want: true,
		},
		{
			name: "bare 11 digits",
			cpf:  "11111111111",
			want: true,
		},
		{
			name: "10 digits",
			cpf:  "1111111111",
			want: false,
		},
		{
			name: "12 digits",
			cpf:  "111111111111",
			want: false,
		},
		{
			name: "empty",
			cpf:  "",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidCPFLength(tt.cpf); got != tt.want {
				t.Errorf("ValidCPFLength(%q) = %v, want %v", tt.cpf, got, tt.want)
			}
		})
	}
}
