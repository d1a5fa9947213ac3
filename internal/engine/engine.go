package engine

import (
	"context"
	"time"

	"github.com/hexstrike-ai/internal/config"
	"github.com/hexstrike-ai/internal/logger"
	"github.com/hexstrike-ai/pkg/models"
)

// Engine is the intelligent decision engine. It classifies targets, scores
// their attack surface, ranks tools and assembles attack chains. All lookup
// tables are built once here and are read-only afterwards, so one Engine is
// safe for concurrent use; every call operates on its own freshly built
// profile or chain.
type Engine struct {
	config *config.Config
	log    logger.Logger

	classifier *TargetClassifier
	signatures *SignatureMatcher
	scorer     *AttackSurfaceScorer
	table      *ToolEffectivenessTable
	selector   *ToolSelector
	optimizer  *ParameterOptimizer
	builder    *AttackChainBuilder
}

// New creates a decision engine with all static tables initialized
func New(cfg *config.Config, log logger.Logger) *Engine {
	table := NewToolEffectivenessTable()
	library := NewAttackPatternLibrary()
	optimizer := NewParameterOptimizer()

	return &Engine{
		config:     cfg,
		log:        log,
		classifier: NewTargetClassifier(time.Duration(cfg.Engine.DNSTimeout) * time.Second),
		signatures: NewSignatureMatcher(),
		scorer:     NewAttackSurfaceScorer(),
		table:      table,
		selector:   NewToolSelector(table),
		optimizer:  optimizer,
		builder:    NewAttackChainBuilder(library, table, optimizer),
	}
}

// AnalyzeTarget classifies a raw target string and returns a fully populated
// profile. It never returns an error: classification ambiguity yields the
// unknown type and DNS failure yields an empty IP list. The context bounds
// only the DNS lookup.
func (e *Engine) AnalyzeTarget(ctx context.Context, target string) *models.TargetProfile {
	profile := models.NewTargetProfile(target)

	profile.TargetType = e.classifier.Classify(target)
	if !e.config.Engine.SkipDNSResolution {
		profile.IPAddresses = e.classifier.Resolve(ctx, target)
	}
	profile.Technologies = e.signatures.DetectTechnologies(target)
	profile.CMSType = e.signatures.DetectCMS(target)

	e.Rescore(profile)

	e.log.Debug("Target analyzed",
		"target", target,
		"type", string(profile.TargetType),
		"score", profile.AttackSurfaceScore,
		"risk", profile.RiskLevel,
		"confidence", profile.ConfidenceScore)

	return profile
}

// Rescore recomputes the attack-surface score, risk level and confidence for
// a profile, used after enrichment populates ports, subdomains or endpoints.
func (e *Engine) Rescore(profile *models.TargetProfile) {
	profile.AttackSurfaceScore = e.scorer.Score(profile)
	profile.RiskLevel = e.scorer.RiskLevel(profile.AttackSurfaceScore)
	profile.ConfidenceScore = e.scorer.Confidence(profile)
}

// SelectOptimalTools ranks tools for a profile given an objective
func (e *Engine) SelectOptimalTools(profile *models.TargetProfile, objective string) []string {
	tools := e.selector.Select(profile, objective)

	e.log.Debug("Tools selected",
		"target", profile.Target,
		"objective", objective,
		"count", len(tools))

	return tools
}

// CreateAttackChain builds an ordered attack plan for a profile and objective
func (e *Engine) CreateAttackChain(profile *models.TargetProfile, objective string) *models.AttackChain {
	chain := e.builder.Build(profile, objective)

	e.log.Debug("Attack chain created",
		"target", profile.Target,
		"objective", objective,
		"steps", len(chain.Steps),
		"estimated_time", chain.EstimatedTime,
		"success_probability", chain.SuccessProbability)

	return chain
}

// OptimizeParameters exposes the per-tool parameter strategies for callers
// that run tools outside a chain.
func (e *Engine) OptimizeParameters(tool string, profile *models.TargetProfile, ctx OptimizationContext) map[string]interface{} {
	return e.optimizer.Optimize(tool, profile, ctx)
}
