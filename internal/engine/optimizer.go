package engine

import (
	"strings"

	"github.com/hexstrike-ai/pkg/models"
)

// OptimizationContext carries caller hints that influence parameter tuning.
// Missing keys and non-boolean values are treated as false.
type OptimizationContext map[string]interface{}

// Bool reports whether a context key is set and truthy
func (c OptimizationContext) Bool(key string) bool {
	if c == nil {
		return false
	}
	v, ok := c[key]
	if !ok {
		return false
	}
	b, ok := v.(bool)
	return ok && b
}

// strategyFunc transforms a profile and context into concrete tool parameters.
// Strategies are pure functions with no side effects.
type strategyFunc func(profile *models.TargetProfile, ctx OptimizationContext) map[string]interface{}

// ParameterOptimizer dispatches per-tool parameter strategies from a registry
// keyed by tool name, so new strategies can be registered without touching a
// branching chain.
type ParameterOptimizer struct {
	strategies map[string]strategyFunc
}

// NewParameterOptimizer builds the registry with the built-in strategies
func NewParameterOptimizer() *ParameterOptimizer {
	po := &ParameterOptimizer{
		strategies: make(map[string]strategyFunc),
	}

	po.Register("nmap", optimizeNmap)
	po.Register("gobuster", optimizeGobuster)
	po.Register("nuclei", optimizeNuclei)
	po.Register("sqlmap", optimizeSqlmap)
	po.Register("ffuf", optimizeFfuf)

	return po
}

// Register installs a strategy for a tool name
func (po *ParameterOptimizer) Register(tool string, strategy strategyFunc) {
	po.strategies[tool] = strategy
}

// Optimize produces parameters for a tool. Tools without a bespoke strategy
// fall back to a bare target parameter.
func (po *ParameterOptimizer) Optimize(tool string, profile *models.TargetProfile, ctx OptimizationContext) map[string]interface{} {
	if strategy, ok := po.strategies[tool]; ok {
		return strategy(profile, ctx)
	}

	return map[string]interface{}{"target": profile.Target}
}

func optimizeNmap(profile *models.TargetProfile, ctx OptimizationContext) map[string]interface{} {
	params := map[string]interface{}{
		"target": profile.Target,
	}

	var additionalArgs []string

	switch profile.TargetType {
	case models.TargetWebApplication:
		params["scan_type"] = "-sV -sC"
		params["ports"] = "80,443,8080,8443,8000,9000"
	case models.TargetNetworkHost:
		params["scan_type"] = "-sS -O"
		additionalArgs = append(additionalArgs, "--top-ports 1000")
	}

	if ctx.Bool("stealth") {
		additionalArgs = append(additionalArgs, "-T2")
	} else {
		additionalArgs = append(additionalArgs, "-T4")
	}

	params["additional_args"] = strings.Join(additionalArgs, " ")
	return params
}

func optimizeGobuster(profile *models.TargetProfile, ctx OptimizationContext) map[string]interface{} {
	params := map[string]interface{}{
		"url":  profile.Target,
		"mode": "dir",
	}

	extensions := "html,php,txt,js"
	switch {
	case profile.HasTechnology(models.TechPHP):
		extensions = "php,html,txt,xml"
	case profile.HasTechnology(models.TechDotNet):
		extensions = "asp,aspx,html,txt"
	case profile.HasTechnology(models.TechJava):
		extensions = "jsp,html,txt,xml"
	}

	threads := "-t 20"
	if ctx.Bool("aggressive") {
		threads = "-t 50"
	}

	params["additional_args"] = "-x " + extensions + " " + threads
	return params
}

func optimizeNuclei(profile *models.TargetProfile, ctx OptimizationContext) map[string]interface{} {
	params := map[string]interface{}{
		"target": profile.Target,
	}

	if ctx.Bool("quick") {
		params["severity"] = "critical,high"
	} else {
		params["severity"] = "critical,high,medium"
	}

	var tags []string
	for _, cms := range []models.TechnologyStack{models.TechWordPress, models.TechDrupal, models.TechJoomla} {
		if profile.HasTechnology(cms) {
			tags = append(tags, string(cms))
		}
	}
	if len(tags) > 0 {
		params["tags"] = strings.Join(tags, ",")
	}

	return params
}

func optimizeSqlmap(profile *models.TargetProfile, ctx OptimizationContext) map[string]interface{} {
	params := map[string]interface{}{
		"url": profile.Target,
	}

	args := "--batch"
	switch {
	case profile.HasTechnology(models.TechPHP):
		args = "--dbms=mysql --batch"
	case profile.HasTechnology(models.TechDotNet):
		args = "--dbms=mssql --batch"
	}

	if ctx.Bool("aggressive") {
		args += " --level=3 --risk=2"
	}

	params["additional_args"] = args
	return params
}

func optimizeFfuf(profile *models.TargetProfile, ctx OptimizationContext) map[string]interface{} {
	params := map[string]interface{}{
		"url": profile.Target,
	}

	if profile.TargetType == models.TargetAPIEndpoint {
		params["match_codes"] = "200,201,204,301,302,401,403"
	} else {
		params["match_codes"] = "200,204,301,302,307,401,403,405"
	}

	if ctx.Bool("stealth") {
		params["additional_args"] = "-t 10 -p 1"
	} else {
		params["additional_args"] = "-t 40"
	}

	return params
}
