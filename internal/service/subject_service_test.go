package service

import (
	"edu_hub_backend/internal/model"
	"testing"
)

func TestValidYear(t *testing.T) {
	cases := []struct {
		year string
		want bool
	}{
		{model.YearFY, true},
		{model.YearSY, true},
		{model.YearTY, true},
		{"", false},
		{"fy", false},
		{"4Y", false},
	}
	for _, c := range cases {
		if got := validYear(c.year); got != c.want {
			t.Errorf("validYear(%q) = %v, want %v", c.year, got, c.want)
		}
	}
}
