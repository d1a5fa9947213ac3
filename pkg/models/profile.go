package models

import "strconv"

// TargetType classifies what kind of asset a target string refers to
type TargetType string

const (
	TargetWebApplication TargetType = "web_application"
	TargetNetworkHost    TargetType = "network_host"
	TargetAPIEndpoint    TargetType = "api_endpoint"
	TargetCloudService   TargetType = "cloud_service"
	TargetMobileApp      TargetType = "mobile_app"
	TargetBinaryFile     TargetType = "binary_file"
	TargetUnknown        TargetType = "unknown"
)

// TechnologyStack identifies a detected server, framework or CMS technology
type TechnologyStack string

const (
	TechApache    TechnologyStack = "apache"
	TechNginx     TechnologyStack = "nginx"
	TechIIS       TechnologyStack = "iis"
	TechNodeJS    TechnologyStack = "nodejs"
	TechPHP       TechnologyStack = "php"
	TechPython    TechnologyStack = "python"
	TechJava      TechnologyStack = "java"
	TechDotNet    TechnologyStack = "dotnet"
	TechWordPress TechnologyStack = "wordpress"
	TechDrupal    TechnologyStack = "drupal"
	TechJoomla    TechnologyStack = "joomla"
	TechReact     TechnologyStack = "react"
	TechAngular   TechnologyStack = "angular"
	TechVue       TechnologyStack = "vue"
	TechUnknown   TechnologyStack = "unknown"
)

// ParseTargetType maps a wire string back to its TargetType, defaulting to unknown
func ParseTargetType(s string) TargetType {
	switch TargetType(s) {
	case TargetWebApplication, TargetNetworkHost, TargetAPIEndpoint,
		TargetCloudService, TargetMobileApp, TargetBinaryFile:
		return TargetType(s)
	default:
		return TargetUnknown
	}
}

// ParseTechnology maps a wire string back to its TechnologyStack, defaulting to unknown
func ParseTechnology(s string) TechnologyStack {
	switch TechnologyStack(s) {
	case TechApache, TechNginx, TechIIS, TechNodeJS, TechPHP, TechPython,
		TechJava, TechDotNet, TechWordPress, TechDrupal, TechJoomla,
		TechReact, TechAngular, TechVue:
		return TechnologyStack(s)
	default:
		return TechUnknown
	}
}

// TargetProfile holds everything the engine knows about a single target.
// It is fully populated by Engine.AnalyzeTarget and read-only afterwards.
type TargetProfile struct {
	Target             string            `json:"target" yaml:"target"`
	TargetType         TargetType        `json:"target_type" yaml:"target_type"`
	IPAddresses        []string          `json:"ip_addresses" yaml:"ip_addresses"`
	OpenPorts          []int             `json:"open_ports" yaml:"open_ports"`
	Services           map[int]string    `json:"services" yaml:"services"`
	Technologies       []TechnologyStack `json:"technologies" yaml:"technologies"`
	CMSType            string            `json:"cms_type,omitempty" yaml:"cms_type,omitempty"`
	SecurityHeaders    map[string]string `json:"security_headers" yaml:"security_headers"`
	SSLInfo            map[string]string `json:"ssl_info" yaml:"ssl_info"`
	Subdomains         []string          `json:"subdomains" yaml:"subdomains"`
	Endpoints          []string          `json:"endpoints" yaml:"endpoints"`
	AttackSurfaceScore float64           `json:"attack_surface_score" yaml:"attack_surface_score"`
	RiskLevel          string            `json:"risk_level" yaml:"risk_level"`
	ConfidenceScore    float64           `json:"confidence_score" yaml:"confidence_score"`
}

// NewTargetProfile creates an empty profile for a raw target string
func NewTargetProfile(target string) *TargetProfile {
	return &TargetProfile{
		Target:          target,
		TargetType:      TargetUnknown,
		IPAddresses:     make([]string, 0),
		OpenPorts:       make([]int, 0),
		Services:        make(map[int]string),
		Technologies:    make([]TechnologyStack, 0),
		SecurityHeaders: make(map[string]string),
		SSLInfo:         make(map[string]string),
		Subdomains:      make([]string, 0),
		Endpoints:       make([]string, 0),
		RiskLevel:       "unknown",
	}
}

// HasTechnology reports whether the profile lists a given technology
func (p *TargetProfile) HasTechnology(tech TechnologyStack) bool {
	for _, t := range p.Technologies {
		if t == tech {
			return true
		}
	}
	return false
}

// ToMap serializes the profile into a JSON-compatible map with enum wire strings
func (p *TargetProfile) ToMap() map[string]interface{} {
	technologies := make([]string, len(p.Technologies))
	for i, t := range p.Technologies {
		technologies[i] = string(t)
	}

	services := make(map[string]string, len(p.Services))
	for port, service := range p.Services {
		services[strconv.Itoa(port)] = service
	}

	return map[string]interface{}{
		"target":               p.Target,
		"target_type":          string(p.TargetType),
		"ip_addresses":         p.IPAddresses,
		"open_ports":           p.OpenPorts,
		"services":             services,
		"technologies":         technologies,
		"cms_type":             p.CMSType,
		"security_headers":     p.SecurityHeaders,
		"ssl_info":             p.SSLInfo,
		"subdomains":           p.Subdomains,
		"endpoints":            p.Endpoints,
		"attack_surface_score": p.AttackSurfaceScore,
		"risk_level":           p.RiskLevel,
		"confidence_score":     p.ConfidenceScore,
	}
}
