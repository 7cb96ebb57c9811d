package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "empty string",
			in:   "",
			want: "",
		},
		{
			name: "whitespace only",
			in:   "   ",
			want: "",
		},
		{
			name: "ascii lowercase unchanged",
			in:   "salon",
			want: "salon",
		},
		{
			name: "trims and lowers",
			in:   "  Salon  ",
			want: "salon",
		},
		{
			name: "dotted capital I folds to i",
			in:   "İstanbul",
			want: "istanbul",
		},
		{
			name: "dotless capital I folds to dotless i",
			in:   "ISPARTA",
			want: "ısparta",
		},
		{
			name: "cedilla and umlaut preserved",
			in:   "KUAFÖR SAÇ",
			want: "kuaför saç",
		},
		{
			name: "mixed phrase",
			in:   "Güzellik Salonu İzmir",
			want: "güzellik salonu izmir",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"", "salon", "İstanbul", "ISPARTA", "Kuaför", "saç kesimi",
		"  Güzellik  ", "DİYARBAKIR",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "normalizing %q twice changed the result", in)
	}
}

func TestContainsFold(t *testing.T) {
	assert.True(t, containsFold("Elif Kuaför", "KUAFÖR"))
	assert.True(t, containsFold("İstanbul Kadıköy", "istanbul"))
	assert.False(t, containsFold("Ankara", "izmir"))
	assert.True(t, containsFold("anything", ""))
}
