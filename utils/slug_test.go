package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Kuaför", "kuafor"},
		{"Güzellik Salonu", "guzellik-salonu"},
		{"Saç Kesimi", "sac-kesimi"},
		{"İstanbul Berber", "istanbul-berber"},
		{"  Tırnak  Stüdyosu  ", "tirnak-studyosu"},
		{"SPA & Masaj", "spa-masaj"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), "Slugify(%q)", tt.in)
	}
}
