package engine

import (
	"context"
	"net"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/hexstrike-ai/pkg/models"
)

// Classification patterns. The IPv4 pattern is deliberately permissive: it
// accepts out-of-range octets such as 999.999.999.999, and tightening it
// would change classification outcomes for malformed input.
var (
	ipv4Pattern   = regexp.MustCompile(`^\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}$`)
	domainPattern = regexp.MustCompile(`^[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

var binaryExtensions = []string{".exe", ".bin", ".elf", ".so", ".dll"}

var cloudIndicators = []string{"amazonaws.com", "azure", "googleapis.com"}

// TargetClassifier maps a raw target string to a TargetType and resolves
// its IP addresses. Classification is a pure function; only Resolve performs
// network I/O, bounded by the configured DNS timeout.
type TargetClassifier struct {
	resolver   *net.Resolver
	dnsTimeout time.Duration
}

// NewTargetClassifier creates a classifier with a bounded DNS timeout
func NewTargetClassifier(dnsTimeout time.Duration) *TargetClassifier {
	return &TargetClassifier{
		resolver:   net.DefaultResolver,
		dnsTimeout: dnsTimeout,
	}
}

// Classify determines the target type. Rules are evaluated in priority order
// and the first match wins; unparseable input falls through to unknown.
func (tc *TargetClassifier) Classify(target string) models.TargetType {
	if strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://") {
		parsed, err := url.Parse(target)
		if err == nil {
			path := parsed.Path
			if strings.Contains(path, "/api/") || strings.HasSuffix(path, "/api") ||
				strings.HasPrefix(parsed.Hostname(), "api.") {
				return models.TargetAPIEndpoint
			}
		}
		return models.TargetWebApplication
	}

	if ipv4Pattern.MatchString(target) {
		return models.TargetNetworkHost
	}

	if domainPattern.MatchString(target) {
		return models.TargetWebApplication
	}

	lower := strings.ToLower(target)
	for _, ext := range binaryExtensions {
		if strings.HasSuffix(lower, ext) {
			return models.TargetBinaryFile
		}
	}

	for _, indicator := range cloudIndicators {
		if strings.Contains(lower, indicator) {
			return models.TargetCloudService
		}
	}

	return models.TargetUnknown
}

// Resolve performs best-effort DNS resolution for the target's hostname.
// Any failure, including a target with no hostname, yields an empty list.
func (tc *TargetClassifier) Resolve(ctx context.Context, target string) []string {
	hostname := ExtractHostname(target)
	if hostname == "" {
		return []string{}
	}

	// A literal IP needs no lookup
	if ip := net.ParseIP(hostname); ip != nil {
		return []string{hostname}
	}

	resolveCtx, cancel := context.WithTimeout(ctx, tc.dnsTimeout)
	defer cancel()

	addrs, err := tc.resolver.LookupHost(resolveCtx, hostname)
	if err != nil {
		return []string{}
	}

	return addrs
}

// ExtractHostname pulls the hostname out of a URL or returns the raw target
func ExtractHostname(target string) string {
	if strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://") {
		parsed, err := url.Parse(target)
		if err != nil {
			return ""
		}
		return parsed.Hostname()
	}

	host := target
	if h, _, err := net.SplitHostPort(target); err == nil {
		host = h
	}
	return host
}
