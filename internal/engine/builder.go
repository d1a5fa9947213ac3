package engine

import (
	"github.com/hexstrike-ai/pkg/models"
)

// AttackChainBuilder assembles an ordered attack plan from the static pattern
// library, the effectiveness tables and the parameter optimizer. It is a pure
// planning function: unknown tools and target types degrade to defaults and
// nothing here executes anything.
type AttackChainBuilder struct {
	library   *AttackPatternLibrary
	table     *ToolEffectivenessTable
	optimizer *ParameterOptimizer
}

// NewAttackChainBuilder creates a builder over the shared static tables
func NewAttackChainBuilder(library *AttackPatternLibrary, table *ToolEffectivenessTable, optimizer *ParameterOptimizer) *AttackChainBuilder {
	return &AttackChainBuilder{
		library:   library,
		table:     table,
		optimizer: optimizer,
	}
}

// Build selects a pattern for the profile's target type and objective,
// instantiates each step with optimized parameters, a time estimate and a
// success probability, then finalizes the compound chain probability.
func (b *AttackChainBuilder) Build(profile *models.TargetProfile, objective string) *models.AttackChain {
	chain := models.NewAttackChain(profile)

	for _, patternStep := range b.selectPattern(profile, objective) {
		// The step's params template stays selection metadata only; the
		// optimizer runs with an empty context here.
		step := models.AttackStep{
			Tool:                  patternStep.Tool,
			Parameters:            b.optimizer.Optimize(patternStep.Tool, profile, nil),
			ExpectedOutcome:       patternStep.Outcome,
			SuccessProbability:    b.table.Effectiveness(profile.TargetType, patternStep.Tool) * profile.ConfidenceScore,
			ExecutionTimeEstimate: b.library.TimeEstimate(patternStep.Tool),
			Dependencies:          []string{},
		}
		chain.AddStep(step)
	}

	chain.CalculateSuccessProbability()
	chain.RiskLevel = profile.RiskLevel

	return chain
}

// selectPattern resolves the pattern for a target type and objective
func (b *AttackChainBuilder) selectPattern(profile *models.TargetProfile, objective string) []PatternStep {
	switch profile.TargetType {
	case models.TargetWebApplication:
		if objective == "quick" {
			steps := b.library.Pattern("vulnerability_assessment")
			if len(steps) > 2 {
				steps = steps[:2]
			}
			return steps
		}
		recon := b.library.Pattern("web_reconnaissance")
		assessment := b.library.Pattern("vulnerability_assessment")
		combined := make([]PatternStep, 0, len(recon)+len(assessment))
		combined = append(combined, recon...)
		combined = append(combined, assessment...)
		return combined

	case models.TargetAPIEndpoint:
		return b.library.Pattern("api_testing")

	case models.TargetNetworkHost:
		if objective == "comprehensive" {
			return b.library.Pattern("comprehensive_network_pentest")
		}
		return b.library.Pattern("network_discovery")

	case models.TargetBinaryFile:
		if objective == "ctf" {
			return b.library.Pattern("ctf_pwn_challenge")
		}
		return b.library.Pattern("binary_exploitation")

	case models.TargetCloudService:
		switch objective {
		case "aws":
			return b.library.Pattern("aws_security_assessment")
		case "kubernetes":
			return b.library.Pattern("kubernetes_security_assessment")
		case "container":
			return b.library.Pattern("container_security_assessment")
		case "iac":
			return b.library.Pattern("iac_security_assessment")
		default:
			return b.library.Pattern("multi_cloud_assessment")
		}

	default:
		switch objective {
		case "recon":
			return b.library.Pattern("bug_bounty_reconnaissance")
		case "hunting":
			return b.library.Pattern("bug_bounty_vulnerability_hunting")
		case "high-impact":
			return b.library.Pattern("bug_bounty_high_impact")
		default:
			return b.library.Pattern("web_reconnaissance")
		}
	}
}
