package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hexstrike-ai/pkg/models"
)

func TestDetectTechnologies(t *testing.T) {
	sm := NewSignatureMatcher()

	tests := []struct {
		name   string
		target string
		want   []models.TechnologyStack
	}{
		{"wordpress path", "https://example.com/wp-login.php", []models.TechnologyStack{models.TechWordPress, models.TechPHP}},
		{"plain php", "https://example.com/index.php", []models.TechnologyStack{models.TechPHP}},
		{"aspx page", "https://example.com/default.aspx", []models.TechnologyStack{models.TechDotNet}},
		{"jsp page", "https://example.com/portal.jsp", []models.TechnologyStack{models.TechJava}},
		{"drupal site", "https://drupal.example.com", []models.TechnologyStack{models.TechDrupal}},
		{"nothing matched", "https://example.com", []models.TechnologyStack{models.TechUnknown}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sm.DetectTechnologies(tt.target))
		})
	}
}

func TestDetectTechnologiesNeverEmpty(t *testing.T) {
	sm := NewSignatureMatcher()

	for _, target := range []string{"", "x", "192.168.1.1", "https://example.com"} {
		assert.NotEmpty(t, sm.DetectTechnologies(target), "target %q", target)
	}
}

func TestDetectCMS(t *testing.T) {
	sm := NewSignatureMatcher()

	assert.Equal(t, "WordPress", sm.DetectCMS("https://WordPress.example.com"))
	assert.Equal(t, "Drupal", sm.DetectCMS("https://example.com/drupal/"))
	assert.Equal(t, "Joomla", sm.DetectCMS("https://shop.joomla-hosting.net"))
	assert.Equal(t, "", sm.DetectCMS("https://example.com"))
}
