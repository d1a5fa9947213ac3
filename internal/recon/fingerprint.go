package recon

import (
	"context"
	"crypto/tls"
	"net"
	"strings"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/hexstrike-ai/internal/config"
	"github.com/hexstrike-ai/internal/engine"
	"github.com/hexstrike-ai/internal/logger"
	"github.com/hexstrike-ai/pkg/models"
)

// securityHeaders is the set of response headers recorded on the profile
var securityHeaders = map[string]bool{
	"Content-Security-Policy":   true,
	"Strict-Transport-Security": true,
	"X-Frame-Options":           true,
	"X-Content-Type-Options":    true,
	"X-Xss-Protection":          true,
	"Referrer-Policy":           true,
	"Permissions-Policy":        true,
}

// Fingerprinter probes a live target over HTTP and TLS to gather header,
// body and certificate evidence for the profile.
type Fingerprinter struct {
	config *config.Config
	log    logger.Logger
	client *fasthttp.Client
}

// NewFingerprinter creates a fingerprinting probe
func NewFingerprinter(cfg *config.Config, log logger.Logger) *Fingerprinter {
	timeout := time.Duration(cfg.Recon.Timeout) * time.Second

	return &Fingerprinter{
		config: cfg,
		log:    log,
		client: &fasthttp.Client{
			ReadTimeout:  timeout,
			WriteTimeout: timeout,
			TLSConfig: &tls.Config{
				InsecureSkipVerify: !cfg.Recon.VerifySSL,
			},
		},
	}
}

// Probe fetches the target once and records security headers, technology
// evidence, CMS hints and certificate details. Failures leave the profile
// untouched.
func (f *Fingerprinter) Probe(ctx context.Context, profile *models.TargetProfile) {
	targetURL := ensureScheme(profile.Target)

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(targetURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.SetUserAgent(f.config.Recon.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	timeout := time.Duration(f.config.Recon.Timeout) * time.Second
	if err := f.client.DoTimeout(req, resp, timeout); err != nil {
		// Fall back to plain HTTP before giving up
		if strings.HasPrefix(targetURL, "https://") {
			req.SetRequestURI("http://" + strings.TrimPrefix(targetURL, "https://"))
			if err := f.client.DoTimeout(req, resp, timeout); err != nil {
				f.log.Debug("Fingerprint probe failed", "target", profile.Target, "error", err)
				return
			}
		} else {
			f.log.Debug("Fingerprint probe failed", "target", profile.Target, "error", err)
			return
		}
	}

	f.analyzeHeaders(resp, profile)
	f.analyzeBody(resp.Body(), profile)

	if strings.HasPrefix(targetURL, "https://") {
		f.analyzeTLS(profile)
	}

	f.log.Info("Fingerprint probe completed",
		"target", profile.Target,
		"status", resp.StatusCode(),
		"technologies", len(profile.Technologies))
}

func (f *Fingerprinter) analyzeHeaders(resp *fasthttp.Response, profile *models.TargetProfile) {
	resp.Header.VisitAll(func(key, value []byte) {
		name := string(key)
		if securityHeaders[name] {
			profile.SecurityHeaders[name] = string(value)
		}
	})

	server := strings.ToLower(string(resp.Header.Peek("Server")))
	switch {
	case strings.Contains(server, "apache"):
		mergeTechnology(profile, models.TechApache)
	case strings.Contains(server, "nginx"):
		mergeTechnology(profile, models.TechNginx)
	case strings.Contains(server, "iis"):
		mergeTechnology(profile, models.TechIIS)
	}

	powered := strings.ToLower(string(resp.Header.Peek("X-Powered-By")))
	switch {
	case strings.Contains(powered, "php"):
		mergeTechnology(profile, models.TechPHP)
	case strings.Contains(powered, "asp.net"):
		mergeTechnology(profile, models.TechDotNet)
	case strings.Contains(powered, "express"):
		mergeTechnology(profile, models.TechNodeJS)
	}
}

func (f *Fingerprinter) analyzeBody(body []byte, profile *models.TargetProfile) {
	content := strings.ToLower(string(body))

	if strings.Contains(content, "wp-content") || strings.Contains(content, "wp-includes") {
		mergeTechnology(profile, models.TechWordPress)
		if profile.CMSType == "" {
			profile.CMSType = "WordPress"
		}
	}
	if strings.Contains(content, "drupal") {
		mergeTechnology(profile, models.TechDrupal)
		if profile.CMSType == "" {
			profile.CMSType = "Drupal"
		}
	}
	if strings.Contains(content, "joomla") {
		mergeTechnology(profile, models.TechJoomla)
		if profile.CMSType == "" {
			profile.CMSType = "Joomla"
		}
	}

	if strings.Contains(content, "data-reactroot") || strings.Contains(content, "react-dom") {
		mergeTechnology(profile, models.TechReact)
	}
	if strings.Contains(content, "ng-version") {
		mergeTechnology(profile, models.TechAngular)
	}
	if strings.Contains(content, "data-v-app") || strings.Contains(content, "vue.js") {
		mergeTechnology(profile, models.TechVue)
	}
}

// analyzeTLS performs a dedicated handshake to capture certificate details
func (f *Fingerprinter) analyzeTLS(profile *models.TargetProfile) {
	hostname := engine.ExtractHostname(profile.Target)
	if hostname == "" {
		return
	}

	dialer := &net.Dialer{Timeout: time.Duration(f.config.Recon.Timeout) * time.Second}
	conn, err := tls.DialWithDialer(dialer, "tcp", hostname+":443", &tls.Config{
		ServerName:         hostname,
		InsecureSkipVerify: !f.config.Recon.VerifySSL,
	})
	if err != nil {
		f.log.Debug("TLS probe failed", "target", profile.Target, "error", err)
		return
	}
	defer conn.Close()

	state := conn.ConnectionState()
	if len(state.PeerCertificates) == 0 {
		return
	}

	cert := state.PeerCertificates[0]
	profile.SSLInfo["subject"] = cert.Subject.CommonName
	profile.SSLInfo["issuer"] = cert.Issuer.CommonName
	profile.SSLInfo["not_after"] = cert.NotAfter.Format(time.RFC3339)
	profile.SSLInfo["version"] = tls.VersionName(state.Version)
}
