package engine

import (
	"github.com/hexstrike-ai/pkg/models"
)

// AttackSurfaceScorer computes a bounded attack-surface score, the derived
// qualitative risk level and a confidence estimate for a target profile.
type AttackSurfaceScorer struct {
	baseScores map[models.TargetType]float64
}

// NewAttackSurfaceScorer builds the static base-score table
func NewAttackSurfaceScorer() *AttackSurfaceScorer {
	return &AttackSurfaceScorer{
		baseScores: map[models.TargetType]float64{
			models.TargetWebApplication: 7.0,
			models.TargetAPIEndpoint:    6.0,
			models.TargetNetworkHost:    8.0,
			models.TargetCloudService:   5.0,
			models.TargetBinaryFile:     4.0,
		},
	}
}

// Score computes the additive attack-surface score, clamped to [0, 10]
func (s *AttackSurfaceScorer) Score(profile *models.TargetProfile) float64 {
	score, ok := s.baseScores[profile.TargetType]
	if !ok {
		score = 3.0
	}

	score += 0.5 * float64(len(profile.Technologies))
	score += 0.3 * float64(len(profile.OpenPorts))
	score += 0.2 * float64(len(profile.Subdomains))

	if profile.CMSType != "" {
		score += 1.5
	}

	if score > 10.0 {
		score = 10.0
	}

	return score
}

// RiskLevel maps a score to its qualitative band, highest band first
func (s *AttackSurfaceScorer) RiskLevel(score float64) string {
	switch {
	case score >= 8.0:
		return "critical"
	case score >= 6.0:
		return "high"
	case score >= 4.0:
		return "medium"
	case score >= 2.0:
		return "low"
	default:
		return "minimal"
	}
}

// Confidence estimates how much the engine trusts its own classification,
// clamped to [0, 1]
func (s *AttackSurfaceScorer) Confidence(profile *models.TargetProfile) float64 {
	confidence := 0.5

	if len(profile.IPAddresses) > 0 {
		confidence += 0.1
	}
	if len(profile.Technologies) > 0 && profile.Technologies[0] != models.TechUnknown {
		confidence += 0.2
	}
	if profile.CMSType != "" {
		confidence += 0.1
	}
	if profile.TargetType != models.TargetUnknown {
		confidence += 0.1
	}

	if confidence > 1.0 {
		confidence = 1.0
	}

	return confidence
}
