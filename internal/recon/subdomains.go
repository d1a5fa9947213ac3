package recon

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"net"
	"strings"

	"github.com/projectdiscovery/subfinder/v2/pkg/runner"
	"golang.org/x/net/publicsuffix"

	"github.com/hexstrike-ai/internal/config"
	"github.com/hexstrike-ai/internal/engine"
	"github.com/hexstrike-ai/internal/logger"
	"github.com/hexstrike-ai/pkg/models"
)

// SubdomainEnumerator discovers subdomains of a target's registrable domain
// through passive sources.
type SubdomainEnumerator struct {
	config *config.Config
	log    logger.Logger
}

// NewSubdomainEnumerator creates a subdomain enumeration collaborator
func NewSubdomainEnumerator(cfg *config.Config, log logger.Logger) *SubdomainEnumerator {
	return &SubdomainEnumerator{
		config: cfg,
		log:    log,
	}
}

// Enumerate fills profile.Subdomains for domain-based targets. IP-only
// targets and enumeration failures leave the profile unchanged.
func (se *SubdomainEnumerator) Enumerate(ctx context.Context, profile *models.TargetProfile) {
	domain := se.rootDomain(profile.Target)
	if domain == "" {
		return
	}

	opts := &runner.Options{
		Threads:            se.config.Recon.SubfinderThreads,
		Timeout:            se.config.Recon.Timeout,
		MaxEnumerationTime: 10,
		Silent:             true,
	}

	sf, err := runner.NewRunner(opts)
	if err != nil {
		se.log.Error("Failed to initialize subdomain enumeration", "domain", domain, "error", err)
		return
	}

	var output bytes.Buffer
	if err := sf.EnumerateSingleDomainWithCtx(ctx, domain, []io.Writer{&output}); err != nil {
		se.log.Warn("Subdomain enumeration failed", "domain", domain, "error", err)
		return
	}

	seen := make(map[string]bool, len(profile.Subdomains))
	for _, existing := range profile.Subdomains {
		seen[existing] = true
	}

	scanner := bufio.NewScanner(&output)
	for scanner.Scan() {
		name := strings.TrimSpace(scanner.Text())
		if name == "" || seen[name] {
			continue
		}
		if len(profile.Subdomains) >= se.config.Recon.MaxSubdomains {
			break
		}
		seen[name] = true
		profile.Subdomains = append(profile.Subdomains, name)
	}

	se.log.Info("Subdomain enumeration completed",
		"domain", domain,
		"subdomains", len(profile.Subdomains))
}

// rootDomain derives the registrable domain of a target, or empty when the
// target is an IP or has no usable hostname.
func (se *SubdomainEnumerator) rootDomain(target string) string {
	hostname := engine.ExtractHostname(target)
	if hostname == "" || net.ParseIP(hostname) != nil {
		return ""
	}

	root, err := publicsuffix.EffectiveTLDPlusOne(hostname)
	if err != nil {
		return ""
	}
	return root
}
