package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/hexstrike-ai/internal/config"
	"github.com/hexstrike-ai/internal/logger"
	"github.com/hexstrike-ai/pkg/models"
)

// Renderer writes target profiles and attack plans in the configured format
type Renderer struct {
	config *config.Config
	log    logger.Logger
}

// NewRenderer creates a plan renderer
func NewRenderer(cfg *config.Config, log logger.Logger) *Renderer {
	if !cfg.Reporting.Color {
		color.NoColor = true
	}

	return &Renderer{
		config: cfg,
		log:    log,
	}
}

// RenderProfile writes a target profile in the requested format
func (r *Renderer) RenderProfile(w io.Writer, profile *models.TargetProfile, format string) error {
	switch format {
	case "json":
		return writeJSON(w, profile.ToMap())
	case "yaml":
		return writeYAML(w, profile.ToMap())
	default:
		r.renderProfileTable(w, profile)
		return nil
	}
}

// RenderChain writes an attack chain in the requested format
func (r *Renderer) RenderChain(w io.Writer, chain *models.AttackChain, format string) error {
	switch format {
	case "json":
		return writeJSON(w, chain.ToMap())
	case "yaml":
		return writeYAML(w, chain.ToMap())
	default:
		r.renderChainTable(w, chain)
		return nil
	}
}

// RenderTools writes a selected-tools list with availability markers
func (r *Renderer) RenderTools(w io.Writer, tools []string, missing []string, format string) error {
	if format == "json" {
		return writeJSON(w, map[string]interface{}{
			"selected_tools": tools,
			"missing_tools":  missing,
		})
	}
	if format == "yaml" {
		return writeYAML(w, map[string]interface{}{
			"selected_tools": tools,
			"missing_tools":  missing,
		})
	}

	missingSet := make(map[string]bool, len(missing))
	for _, tool := range missing {
		missingSet[tool] = true
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Tool", "Status"})
	for i, tool := range tools {
		status := color.GreenString("available")
		if missingSet[tool] {
			status = color.RedString("missing")
		}
		table.Append([]string{strconv.Itoa(i + 1), tool, status})
	}
	table.Render()

	return nil
}

func (r *Renderer) renderProfileTable(w io.Writer, profile *models.TargetProfile) {
	title := color.New(color.FgCyan, color.Bold)
	title.Fprintf(w, "Target profile: %s\n\n", profile.Target)

	technologies := make([]string, len(profile.Technologies))
	for i, t := range profile.Technologies {
		technologies[i] = string(t)
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Field", "Value"})
	table.Append([]string{"Type", string(profile.TargetType)})
	table.Append([]string{"IP addresses", strings.Join(profile.IPAddresses, ", ")})
	table.Append([]string{"Technologies", strings.Join(technologies, ", ")})
	table.Append([]string{"CMS", profile.CMSType})
	table.Append([]string{"Subdomains", strconv.Itoa(len(profile.Subdomains))})
	table.Append([]string{"Endpoints", strconv.Itoa(len(profile.Endpoints))})
	table.Append([]string{"Surface score", fmt.Sprintf("%.1f / 10", profile.AttackSurfaceScore)})
	table.Append([]string{"Risk level", colorizeRisk(profile.RiskLevel)})
	table.Append([]string{"Confidence", fmt.Sprintf("%.2f", profile.ConfidenceScore)})
	table.Render()
}

func (r *Renderer) renderChainTable(w io.Writer, chain *models.AttackChain) {
	title := color.New(color.FgCyan, color.Bold)
	if chain.Target != nil {
		title.Fprintf(w, "Attack chain: %s\n\n", chain.Target.Target)
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Tool", "Expected outcome", "Est. time", "Probability"})
	for i, step := range chain.Steps {
		table.Append([]string{
			strconv.Itoa(i + 1),
			step.Tool,
			step.ExpectedOutcome,
			fmt.Sprintf("%ds", step.ExecutionTimeEstimate),
			fmt.Sprintf("%.2f", step.SuccessProbability),
		})
	}
	table.Render()

	fmt.Fprintf(w, "\nRequired tools: %s\n", strings.Join(chain.RequiredTools, ", "))
	fmt.Fprintf(w, "Total estimated time: %ds\n", chain.EstimatedTime)
	fmt.Fprintf(w, "Chain success probability: %.3f\n", chain.SuccessProbability)
	fmt.Fprintf(w, "Risk level: %s\n", colorizeRisk(chain.RiskLevel))
}

func colorizeRisk(risk string) string {
	switch risk {
	case "critical":
		return color.New(color.FgRed, color.Bold).Sprint(risk)
	case "high":
		return color.RedString(risk)
	case "medium":
		return color.YellowString(risk)
	case "low":
		return color.GreenString(risk)
	default:
		return risk
	}
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(v)
}
