package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerationNumber(t *testing.T) {
	tests := []struct {
		label string
		want  int
	}{
		{"60기", 60},
		{"7기", 7},
		{"창립 멤버", 0},
		{"", 0},
		{"12기 (휴학)", 12},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerationNumber(tt.label))
		})
	}
}

func TestCoverAt(t *testing.T) {
	images := []string{"a.jpg", "b.jpg", "c.jpg"}

	assert.Equal(t, "b.jpg", CoverAt(images, 1))
	assert.Equal(t, "a.jpg", CoverAt(images, 0))
	assert.Equal(t, "a.jpg", CoverAt(images, 3), "out-of-range index falls back to the first image")
	assert.Equal(t, "a.jpg", CoverAt(images, -1))
	assert.Equal(t, "", CoverAt(nil, 0))
}

func TestActivityNormalize(t *testing.T) {
	t.Run("cover not among images falls back to first", func(t *testing.T) {
		a := Activity{CoverImage: "gone.jpg", Images: []string{"a.jpg", "b.jpg"}}
		a.Normalize()
		assert.Equal(t, "a.jpg", a.CoverImage)
	})

	t.Run("member cover kept", func(t *testing.T) {
		a := Activity{CoverImage: "b.jpg", Images: []string{"a.jpg", "b.jpg"}}
		a.Normalize()
		assert.Equal(t, "b.jpg", a.CoverImage)
	})

	t.Run("no images leaves cover alone", func(t *testing.T) {
		a := Activity{CoverImage: "x.jpg"}
		a.Normalize()
		assert.Equal(t, "x.jpg", a.CoverImage)
	})
}

func TestLinkNormalize(t *testing.T) {
	l := Link{Name: "인스타그램", URL: "https://instagram.com/x"}
	l.Normalize()
	assert.Equal(t, CategoryPromotion, l.Category)

	l = Link{Category: CategorySponsor}
	l.Normalize()
	assert.Equal(t, CategorySponsor, l.Category)
}
