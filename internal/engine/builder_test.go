package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexstrike-ai/pkg/models"
)

func newBuilder() *AttackChainBuilder {
	return NewAttackChainBuilder(NewAttackPatternLibrary(), NewToolEffectivenessTable(), NewParameterOptimizer())
}

func profileOf(target string, targetType models.TargetType, confidence float64) *models.TargetProfile {
	profile := models.NewTargetProfile(target)
	profile.TargetType = targetType
	profile.Technologies = []models.TechnologyStack{models.TechUnknown}
	profile.ConfidenceScore = confidence
	profile.RiskLevel = "high"
	return profile
}

func TestBuildWebQuickTakesTwoAssessmentSteps(t *testing.T) {
	b := newBuilder()
	profile := profileOf("https://example.com", models.TargetWebApplication, 0.8)

	chain := b.Build(profile, "quick")
	require.Len(t, chain.Steps, 2)
	assert.Equal(t, "nuclei", chain.Steps[0].Tool)
	assert.Equal(t, "nikto", chain.Steps[1].Tool)
}

func TestBuildWebComprehensiveConcatenatesPatterns(t *testing.T) {
	b := newBuilder()
	library := NewAttackPatternLibrary()
	profile := profileOf("https://example.com", models.TargetWebApplication, 0.8)

	chain := b.Build(profile, "comprehensive")
	want := len(library.Pattern("web_reconnaissance")) + len(library.Pattern("vulnerability_assessment"))
	assert.Len(t, chain.Steps, want)
}

func TestBuildDispatchByTargetType(t *testing.T) {
	b := newBuilder()

	tests := []struct {
		name       string
		targetType models.TargetType
		objective  string
		firstTool  string
	}{
		{"api endpoint", models.TargetAPIEndpoint, "comprehensive", "httpx"},
		{"network default", models.TargetNetworkHost, "quick", "nmap"},
		{"network comprehensive", models.TargetNetworkHost, "comprehensive", "nmap"},
		{"binary default", models.TargetBinaryFile, "comprehensive", "checksec"},
		{"binary ctf", models.TargetBinaryFile, "ctf", "checksec"},
		{"cloud aws", models.TargetCloudService, "aws", "prowler"},
		{"cloud kubernetes", models.TargetCloudService, "kubernetes", "kube-hunter"},
		{"cloud container", models.TargetCloudService, "container", "trivy"},
		{"cloud iac", models.TargetCloudService, "iac", "trivy"},
		{"cloud default", models.TargetCloudService, "comprehensive", "prowler"},
		{"unknown recon", models.TargetUnknown, "recon", "amass"},
		{"unknown hunting", models.TargetUnknown, "hunting", "nuclei"},
		{"unknown high impact", models.TargetUnknown, "high-impact", "nuclei"},
		{"unknown default", models.TargetUnknown, "comprehensive", "amass"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chain := b.Build(profileOf("target", tt.targetType, 0.7), tt.objective)
			require.NotEmpty(t, chain.Steps)
			assert.Equal(t, tt.firstTool, chain.Steps[0].Tool)
		})
	}
}

func TestBuildStepProbabilityAndTime(t *testing.T) {
	b := newBuilder()
	library := NewAttackPatternLibrary()
	table := NewToolEffectivenessTable()

	profile := profileOf("192.168.1.1", models.TargetNetworkHost, 0.6)
	chain := b.Build(profile, "quick")

	total := 0
	for _, step := range chain.Steps {
		assert.InDelta(t, table.Effectiveness(models.TargetNetworkHost, step.Tool)*0.6, step.SuccessProbability, 1e-9)
		assert.Equal(t, library.TimeEstimate(step.Tool), step.ExecutionTimeEstimate)
		assert.Empty(t, step.Dependencies)
		total += step.ExecutionTimeEstimate
	}
	assert.Equal(t, total, chain.EstimatedTime)
}

func TestBuildCompoundProbability(t *testing.T) {
	b := newBuilder()
	profile := profileOf("https://example.com", models.TargetWebApplication, 0.9)

	chain := b.Build(profile, "quick")

	expected := 1.0
	for _, step := range chain.Steps {
		expected *= step.SuccessProbability
	}
	assert.InDelta(t, expected, chain.SuccessProbability, 1e-9)
}

func TestBuildCopiesRiskLevelFromProfile(t *testing.T) {
	b := newBuilder()
	profile := profileOf("https://example.com", models.TargetWebApplication, 0.8)
	profile.RiskLevel = "critical"

	chain := b.Build(profile, "quick")
	assert.Equal(t, "critical", chain.RiskLevel)
}

func TestBuildNeverPanicsOnAnyObjective(t *testing.T) {
	b := newBuilder()

	types := []models.TargetType{
		models.TargetWebApplication, models.TargetAPIEndpoint, models.TargetNetworkHost,
		models.TargetCloudService, models.TargetBinaryFile, models.TargetMobileApp, models.TargetUnknown,
	}
	objectives := []string{"quick", "comprehensive", "stealth", "ctf", "aws", "nonsense", ""}

	for _, targetType := range types {
		for _, objective := range objectives {
			assert.NotPanics(t, func() {
				b.Build(profileOf("t", targetType, 0.5), objective)
			})
		}
	}
}

func TestPatternLibraryMissingPatternFailsFast(t *testing.T) {
	library := NewAttackPatternLibrary()

	assert.Panics(t, func() { library.Pattern("no_such_pattern") })
}

func TestTimeEstimateDefaults(t *testing.T) {
	library := NewAttackPatternLibrary()

	assert.Equal(t, 120, library.TimeEstimate("nmap"))
	assert.Equal(t, 600, library.TimeEstimate("sqlmap"))
	assert.Equal(t, 900, library.TimeEstimate("hydra"))
	assert.Equal(t, 300, library.TimeEstimate("ghidra"))
	assert.Equal(t, 180, library.TimeEstimate("no-such-tool"))
}
