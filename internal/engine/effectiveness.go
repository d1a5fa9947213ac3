package engine

import (
	"sort"

	"github.com/hexstrike-ai/pkg/models"
)

// defaultEffectiveness is the weight assumed for any tool missing from the
// per-target-type tables.
const defaultEffectiveness = 0.5

// ToolEffectivenessTable holds static per-target-type effectiveness weights
// in [0, 1]. Tables are built once at engine construction and are read-only
// afterwards, so concurrent lookups need no locking.
type ToolEffectivenessTable struct {
	weights map[models.TargetType]map[string]float64
}

// NewToolEffectivenessTable builds the static effectiveness tables
func NewToolEffectivenessTable() *ToolEffectivenessTable {
	return &ToolEffectivenessTable{
		weights: map[models.TargetType]map[string]float64{
			models.TargetWebApplication: {
				"nuclei":      0.95,
				"gobuster":    0.90,
				"wpscan":      0.90,
				"sqlmap":      0.85,
				"ffuf":        0.85,
				"dalfox":      0.85,
				"katana":      0.80,
				"nikto":       0.80,
				"dirsearch":   0.80,
				"httpx":       0.75,
				"arjun":       0.75,
				"amass":       0.75,
				"subfinder":   0.70,
				"nmap":        0.70,
				"wafw00f":     0.70,
				"paramspider": 0.70,
			},
			models.TargetNetworkHost: {
				"nmap":       0.95,
				"rustscan":   0.90,
				"masscan":    0.90,
				"autorecon":  0.85,
				"enum4linux": 0.80,
				"smbmap":     0.80,
				"hydra":      0.80,
				"arp-scan":   0.80,
				"responder":  0.75,
				"rpcclient":  0.75,
				"nbtscan":    0.70,
			},
			models.TargetAPIEndpoint: {
				"arjun":       0.90,
				"nuclei":      0.85,
				"jaeles":      0.85,
				"paramspider": 0.85,
				"ffuf":        0.80,
				"httpx":       0.80,
				"x8":          0.80,
				"postman":     0.70,
			},
			models.TargetCloudService: {
				"prowler":               0.95,
				"scout-suite":           0.90,
				"trivy":                 0.85,
				"pacu":                  0.85,
				"kube-hunter":           0.80,
				"kube-bench":            0.80,
				"cloudmapper":           0.80,
				"docker-bench-security": 0.75,
			},
			models.TargetBinaryFile: {
				"ghidra":     0.95,
				"pwntools":   0.90,
				"radare2":    0.90,
				"gdb":        0.85,
				"angr":       0.85,
				"ropgadget":  0.85,
				"binwalk":    0.80,
				"one-gadget": 0.80,
				"checksec":   0.75,
				"objdump":    0.75,
				"strings":    0.70,
			},
		},
	}
}

// For looks up the table for a target type; an unlisted type yields an empty map
func (t *ToolEffectivenessTable) For(targetType models.TargetType) map[string]float64 {
	if table, ok := t.weights[targetType]; ok {
		return table
	}
	return map[string]float64{}
}

// Effectiveness returns the weight of a tool against a target type, falling
// back to the default for unlisted tools.
func (t *ToolEffectivenessTable) Effectiveness(targetType models.TargetType, tool string) float64 {
	if weight, ok := t.For(targetType)[tool]; ok {
		return weight
	}
	return defaultEffectiveness
}

// stealthTools is the fixed allowlist of low-noise tools
var stealthTools = map[string]bool{
	"amass":     true,
	"subfinder": true,
	"httpx":     true,
	"nuclei":    true,
}

// ToolSelector filters and ranks tools from the effectiveness table given an
// objective, then augments the selection with technology-specific tools.
type ToolSelector struct {
	table *ToolEffectivenessTable
}

// NewToolSelector creates a selector over an effectiveness table
func NewToolSelector(table *ToolEffectivenessTable) *ToolSelector {
	return &ToolSelector{table: table}
}

// Select returns tool names for a profile and objective. Objectives quick,
// comprehensive and stealth each filter differently; any other objective
// returns every tool in the target type's table.
func (ts *ToolSelector) Select(profile *models.TargetProfile, objective string) []string {
	table := ts.table.For(profile.TargetType)

	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	// Effectiveness descending, name ascending on ties, so results are stable
	sort.Slice(names, func(i, j int) bool {
		if table[names[i]] != table[names[j]] {
			return table[names[i]] > table[names[j]]
		}
		return names[i] < names[j]
	})

	var selected []string
	switch objective {
	case "quick":
		if len(names) > 3 {
			names = names[:3]
		}
		selected = names
	case "comprehensive":
		selected = make([]string, 0, len(names))
		for _, name := range names {
			if table[name] > 0.7 {
				selected = append(selected, name)
			}
		}
	case "stealth":
		selected = make([]string, 0, 4)
		for _, name := range names {
			if stealthTools[name] {
				selected = append(selected, name)
			}
		}
	default:
		selected = names
	}

	// Technology-specific augmentation
	if profile.HasTechnology(models.TechWordPress) && !containsString(selected, "wpscan") {
		selected = append(selected, "wpscan")
	}
	if profile.HasTechnology(models.TechPHP) && !containsString(selected, "nikto") {
		selected = append(selected, "nikto")
	}

	return selected
}

func containsString(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
