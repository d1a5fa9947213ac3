package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hexstrike-ai/pkg/models"
)

func webProfile(target string, techs ...models.TechnologyStack) *models.TargetProfile {
	profile := models.NewTargetProfile(target)
	profile.TargetType = models.TargetWebApplication
	if len(techs) == 0 {
		techs = []models.TechnologyStack{models.TechUnknown}
	}
	profile.Technologies = techs
	return profile
}

func TestOptimizeNmapWebApplication(t *testing.T) {
	po := NewParameterOptimizer()
	profile := webProfile("https://example.com")

	params := po.Optimize("nmap", profile, nil)
	assert.Equal(t, "https://example.com", params["target"])
	assert.Equal(t, "-sV -sC", params["scan_type"])
	assert.Equal(t, "80,443,8080,8443,8000,9000", params["ports"])
	assert.Equal(t, "-T4", params["additional_args"])
}

func TestOptimizeNmapNetworkHost(t *testing.T) {
	po := NewParameterOptimizer()
	profile := models.NewTargetProfile("192.168.1.1")
	profile.TargetType = models.TargetNetworkHost
	profile.Technologies = []models.TechnologyStack{models.TechUnknown}

	params := po.Optimize("nmap", profile, nil)
	assert.Equal(t, "-sS -O", params["scan_type"])
	assert.Equal(t, "--top-ports 1000 -T4", params["additional_args"])
}

func TestOptimizeNmapStealthTiming(t *testing.T) {
	po := NewParameterOptimizer()
	profile := webProfile("https://example.com")

	params := po.Optimize("nmap", profile, OptimizationContext{"stealth": true})
	assert.Equal(t, "-T2", params["additional_args"])
}

func TestOptimizeGobusterExtensions(t *testing.T) {
	po := NewParameterOptimizer()

	tests := []struct {
		name string
		tech models.TechnologyStack
		want string
	}{
		{"php", models.TechPHP, "-x php,html,txt,xml -t 20"},
		{"dotnet", models.TechDotNet, "-x asp,aspx,html,txt -t 20"},
		{"java", models.TechJava, "-x jsp,html,txt,xml -t 20"},
		{"default", models.TechUnknown, "-x html,php,txt,js -t 20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := po.Optimize("gobuster", webProfile("https://example.com", tt.tech), nil)
			assert.Equal(t, "https://example.com", params["url"])
			assert.Equal(t, "dir", params["mode"])
			assert.Equal(t, tt.want, params["additional_args"])
		})
	}
}

func TestOptimizeGobusterAggressiveThreads(t *testing.T) {
	po := NewParameterOptimizer()

	params := po.Optimize("gobuster", webProfile("https://example.com"), OptimizationContext{"aggressive": true})
	assert.Equal(t, "-x html,php,txt,js -t 50", params["additional_args"])
}

func TestOptimizeNuclei(t *testing.T) {
	po := NewParameterOptimizer()

	params := po.Optimize("nuclei", webProfile("https://example.com"), nil)
	assert.Equal(t, "critical,high,medium", params["severity"])
	assert.NotContains(t, params, "tags")

	quick := po.Optimize("nuclei", webProfile("https://example.com"), OptimizationContext{"quick": true})
	assert.Equal(t, "critical,high", quick["severity"])

	cms := po.Optimize("nuclei", webProfile("https://example.com", models.TechWordPress, models.TechDrupal), nil)
	assert.Equal(t, "wordpress,drupal", cms["tags"])
}

func TestOptimizeSqlmap(t *testing.T) {
	po := NewParameterOptimizer()

	assert.Equal(t, "--dbms=mysql --batch",
		po.Optimize("sqlmap", webProfile("u", models.TechPHP), nil)["additional_args"])
	assert.Equal(t, "--dbms=mssql --batch",
		po.Optimize("sqlmap", webProfile("u", models.TechDotNet), nil)["additional_args"])
	assert.Equal(t, "--batch",
		po.Optimize("sqlmap", webProfile("u"), nil)["additional_args"])
	assert.Equal(t, "--dbms=mysql --batch --level=3 --risk=2",
		po.Optimize("sqlmap", webProfile("u", models.TechPHP), OptimizationContext{"aggressive": true})["additional_args"])
}

func TestOptimizeFfuf(t *testing.T) {
	po := NewParameterOptimizer()

	api := models.NewTargetProfile("https://example.com/api/v1")
	api.TargetType = models.TargetAPIEndpoint
	api.Technologies = []models.TechnologyStack{models.TechUnknown}

	params := po.Optimize("ffuf", api, nil)
	assert.Equal(t, "200,201,204,301,302,401,403", params["match_codes"])
	assert.Equal(t, "-t 40", params["additional_args"])

	web := po.Optimize("ffuf", webProfile("https://example.com"), OptimizationContext{"stealth": true})
	assert.Equal(t, "200,204,301,302,307,401,403,405", web["match_codes"])
	assert.Equal(t, "-t 10 -p 1", web["additional_args"])
}

func TestOptimizeUnknownToolFallsBack(t *testing.T) {
	po := NewParameterOptimizer()
	profile := webProfile("https://example.com")

	params := po.Optimize("no-such-tool", profile, nil)
	assert.Equal(t, map[string]interface{}{"target": "https://example.com"}, params)
}

func TestRegisterCustomStrategy(t *testing.T) {
	po := NewParameterOptimizer()
	po.Register("mytool", func(profile *models.TargetProfile, ctx OptimizationContext) map[string]interface{} {
		return map[string]interface{}{"custom": true}
	})

	params := po.Optimize("mytool", webProfile("t"), nil)
	assert.Equal(t, true, params["custom"])
}

func TestOptimizationContextBool(t *testing.T) {
	assert.False(t, OptimizationContext(nil).Bool("stealth"))
	assert.False(t, OptimizationContext{}.Bool("stealth"))
	assert.False(t, OptimizationContext{"stealth": "yes"}.Bool("stealth"))
	assert.True(t, OptimizationContext{"stealth": true}.Bool("stealth"))
}
