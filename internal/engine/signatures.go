package engine

import (
	"strings"

	"github.com/hexstrike-ai/pkg/models"
)

// technologySignature maps substring patterns in a target string to a
// technology guess. Signatures are evaluated in order so detection results
// are deterministic for a given input.
type technologySignature struct {
	technology models.TechnologyStack
	patterns   []string
}

// SignatureMatcher performs substring-based technology and CMS detection on
// the raw target string only; it never fetches anything over the network.
type SignatureMatcher struct {
	signatures []technologySignature
	cmsNames   map[models.TechnologyStack]string
}

// NewSignatureMatcher builds the static signature tables
func NewSignatureMatcher() *SignatureMatcher {
	return &SignatureMatcher{
		signatures: []technologySignature{
			{models.TechWordPress, []string{"wordpress", "wp-"}},
			{models.TechDrupal, []string{"drupal"}},
			{models.TechJoomla, []string{"joomla"}},
			{models.TechPHP, []string{".php", "php"}},
			{models.TechDotNet, []string{".aspx", ".asp"}},
			{models.TechJava, []string{".jsp", "java"}},
			{models.TechNodeJS, []string{"node"}},
		},
		cmsNames: map[models.TechnologyStack]string{
			models.TechWordPress: "WordPress",
			models.TechDrupal:    "Drupal",
			models.TechJoomla:    "Joomla",
		},
	}
}

// DetectTechnologies guesses technologies from the target string. The result
// is never empty; it falls back to a single unknown entry.
func (sm *SignatureMatcher) DetectTechnologies(target string) []models.TechnologyStack {
	lower := strings.ToLower(target)
	detected := make([]models.TechnologyStack, 0)

	for _, sig := range sm.signatures {
		for _, pattern := range sig.patterns {
			if strings.Contains(lower, pattern) {
				detected = append(detected, sig.technology)
				break
			}
		}
	}

	if len(detected) == 0 {
		return []models.TechnologyStack{models.TechUnknown}
	}

	return detected
}

// DetectCMS returns the display name of a detected CMS, or an empty string.
// It shares the signature patterns with technology detection.
func (sm *SignatureMatcher) DetectCMS(target string) string {
	lower := strings.ToLower(target)

	for _, sig := range sm.signatures {
		name, isCMS := sm.cmsNames[sig.technology]
		if !isCMS {
			continue
		}
		for _, pattern := range sig.patterns {
			if strings.Contains(lower, pattern) {
				return name
			}
		}
	}

	return ""
}
