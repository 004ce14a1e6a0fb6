package imagehost_test

import (
	"testing"

	"dashboard/pkg/imagehost"

	"github.com/stretchr/testify/assert"
)

func TestExtractPublicID(t *testing.T) {
	tests := []struct {
		url    string
		want   string
		wantOK bool
	}{
		{"https://res.cloudinary.com/demo/image/upload/v1712345678/products/abc123.jpg", "products/abc123", true},
		{"https://res.cloudinary.com/demo/image/upload/appearance/hero.webp", "appearance/hero", true},
		{"https://res.cloudinary.com/demo/image/upload/v1/a/b/c.png", "a/b/c", true},
		{"https://example.com/images/abc.jpg", "", false},
		{"https://res.cloudinary.com/demo/image/upload/v1/noext", "", false},
	}

	for _, tt := range tests {
		got, ok := imagehost.ExtractPublicID(tt.url)
		assert.Equal(t, tt.wantOK, ok, tt.url)
		assert.Equal(t, tt.want, got, tt.url)
	}
}

func TestIsCloudinaryURL(t *testing.T) {
	assert.True(t, imagehost.IsCloudinaryURL("https://res.cloudinary.com/demo/image/upload/x.jpg"))
	assert.False(t, imagehost.IsCloudinaryURL("https://cdn.example.com/x.jpg"))
}

func TestNewClient_MissingConfig(t *testing.T) {
	_, err := imagehost.NewClient(imagehost.Config{CloudName: "demo"})
	assert.ErrorIs(t, err, imagehost.ErrMissingConfig)
}
