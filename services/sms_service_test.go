package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	out := Render("Salonbul doğrulama kodunuz: [Code]. Kod 3 dakika geçerlidir.",
		map[string]string{"Code": "123456"})
	assert.Equal(t, "Salonbul doğrulama kodunuz: 123456. Kod 3 dakika geçerlidir.", out)

	out = Render("Merhaba [CustomerName], yarınki [SalonName] randevunuzu hatırlatırız.",
		map[string]string{"CustomerName": "Elif", "SalonName": "Derya Güzellik"})
	assert.Equal(t, "Merhaba Elif, yarınki Derya Güzellik randevunuzu hatırlatırız.", out)

	// unknown placeholders stay as-is
	out = Render("Hi [Nope]", map[string]string{"Code": "1"})
	assert.Equal(t, "Hi [Nope]", out)
}
