package recon

import (
	"context"
	"strings"

	"github.com/hexstrike-ai/internal/config"
	"github.com/hexstrike-ai/internal/logger"
	"github.com/hexstrike-ai/pkg/models"
)

// Enricher runs the optional network-touching collaborators that populate
// profile fields the decision engine leaves empty: subdomains, endpoints,
// security headers, TLS details and live technology evidence. Every step is
// best-effort; failures are logged and the profile keeps its defaults.
type Enricher struct {
	config      *config.Config
	log         logger.Logger
	subdomains  *SubdomainEnumerator
	fingerprint *Fingerprinter
	crawler     *EndpointCrawler
}

// NewEnricher creates an enricher with all collaborators wired
func NewEnricher(cfg *config.Config, log logger.Logger) *Enricher {
	return &Enricher{
		config:      cfg,
		log:         log,
		subdomains:  NewSubdomainEnumerator(cfg, log),
		fingerprint: NewFingerprinter(cfg, log),
		crawler:     NewEndpointCrawler(cfg, log),
	}
}

// Enrich populates a profile in place. The caller is expected to rescore the
// profile afterwards since surface and confidence inputs change.
func (e *Enricher) Enrich(ctx context.Context, profile *models.TargetProfile) {
	switch profile.TargetType {
	case models.TargetWebApplication, models.TargetAPIEndpoint:
		e.fingerprint.Probe(ctx, profile)
		e.crawler.Crawl(ctx, profile)
		e.subdomains.Enumerate(ctx, profile)
	case models.TargetNetworkHost, models.TargetCloudService:
		e.subdomains.Enumerate(ctx, profile)
	default:
		e.log.Debug("No enrichment for target type", "type", string(profile.TargetType))
	}
}

// mergeTechnology appends a technology if missing and drops the unknown
// placeholder once real evidence exists.
func mergeTechnology(profile *models.TargetProfile, tech models.TechnologyStack) {
	if tech == models.TechUnknown || profile.HasTechnology(tech) {
		return
	}

	if len(profile.Technologies) == 1 && profile.Technologies[0] == models.TechUnknown {
		profile.Technologies = profile.Technologies[:0]
	}
	profile.Technologies = append(profile.Technologies, tech)
}

// ensureScheme prefixes https:// when the target carries no scheme
func ensureScheme(target string) string {
	if strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://") {
		return target
	}
	return "https://" + target
}
