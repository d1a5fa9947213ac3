package recon

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/gocolly/colly/v2"

	"github.com/hexstrike-ai/internal/config"
	"github.com/hexstrike-ai/internal/engine"
	"github.com/hexstrike-ai/internal/logger"
	"github.com/hexstrike-ai/pkg/models"
)

// EndpointCrawler walks a web target and records discovered same-host
// endpoint URLs on the profile, bounded by depth and endpoint caps.
type EndpointCrawler struct {
	config *config.Config
	log    logger.Logger
}

// NewEndpointCrawler creates an endpoint discovery collaborator
func NewEndpointCrawler(cfg *config.Config, log logger.Logger) *EndpointCrawler {
	return &EndpointCrawler{
		config: cfg,
		log:    log,
	}
}

// Crawl fills profile.Endpoints from anchor hrefs and form actions
func (ec *EndpointCrawler) Crawl(ctx context.Context, profile *models.TargetProfile) {
	targetURL := ensureScheme(profile.Target)
	host := engine.ExtractHostname(targetURL)
	if host == "" {
		return
	}

	allowed := []string{host}
	if strings.HasPrefix(host, "www.") {
		allowed = append(allowed, host[4:])
	}

	c := colly.NewCollector(
		colly.AllowedDomains(allowed...),
		colly.MaxDepth(ec.config.Recon.CrawlDepth),
		colly.UserAgent(ec.config.Recon.UserAgent),
		colly.Async(true),
	)

	c.Limit(&colly.LimitRule{
		DomainGlob:  "*",
		Parallelism: 4,
		Delay:       time.Duration(1000/ec.config.Recon.RateLimit) * time.Millisecond,
	})
	c.SetRequestTimeout(time.Duration(ec.config.Recon.Timeout) * time.Second)

	var mu sync.Mutex
	seen := make(map[string]bool)
	full := false

	record := func(link string) {
		if link == "" {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		if full || seen[link] {
			return
		}
		if len(profile.Endpoints) >= ec.config.Recon.MaxEndpoints {
			full = true
			return
		}
		seen[link] = true
		profile.Endpoints = append(profile.Endpoints, link)
	}

	c.OnHTML("a[href]", func(e *colly.HTMLElement) {
		link := e.Request.AbsoluteURL(e.Attr("href"))
		record(link)
		e.Request.Visit(link)
	})

	c.OnHTML("form[action]", func(e *colly.HTMLElement) {
		record(e.Request.AbsoluteURL(e.Attr("action")))
	})

	if err := c.Visit(targetURL); err != nil {
		ec.log.Debug("Endpoint crawl failed to start", "target", profile.Target, "error", err)
		return
	}
	c.Wait()

	ec.log.Info("Endpoint crawl completed",
		"target", profile.Target,
		"endpoints", len(profile.Endpoints))
}
