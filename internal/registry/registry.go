package registry

import (
	"fmt"
	"os/exec"
	"sort"
	"strings"
	"sync"

	"github.com/hexstrike-ai/internal/logger"
)

// ToolRegistry answers availability questions about external security tools
// and assembles their command lines from optimized parameter maps. It never
// executes anything; execution belongs to whoever consumes the plan.
type ToolRegistry struct {
	log logger.Logger

	mu        sync.RWMutex
	available map[string]bool
}

// New creates a tool registry
func New(log logger.Logger) *ToolRegistry {
	return &ToolRegistry{
		log:       log,
		available: make(map[string]bool),
	}
}

// IsAvailable reports whether a tool binary is on PATH. Lookups are cached.
func (r *ToolRegistry) IsAvailable(tool string) bool {
	r.mu.RLock()
	if found, ok := r.available[tool]; ok {
		r.mu.RUnlock()
		return found
	}
	r.mu.RUnlock()

	_, err := exec.LookPath(tool)
	found := err == nil

	r.mu.Lock()
	r.available[tool] = found
	r.mu.Unlock()

	if !found {
		r.log.Debug("Tool not found on PATH", "tool", tool)
	}

	return found
}

// Command assembles a shell command line for a tool from its optimized
// parameters. Tools without a bespoke layout get "<tool> <target>".
func (r *ToolRegistry) Command(tool string, params map[string]interface{}) string {
	switch tool {
	case "nmap":
		return join("nmap",
			str(params, "scan_type"),
			flag("-p", str(params, "ports")),
			str(params, "additional_args"),
			str(params, "target"))
	case "gobuster":
		return join("gobuster",
			str(params, "mode"),
			flag("-u", str(params, "url")),
			str(params, "additional_args"))
	case "nuclei":
		return join("nuclei",
			flag("-u", str(params, "target")),
			flag("-severity", str(params, "severity")),
			flag("-tags", str(params, "tags")))
	case "sqlmap":
		return join("sqlmap",
			flag("-u", str(params, "url")),
			str(params, "additional_args"))
	case "ffuf":
		url := str(params, "url")
		if url != "" {
			url = strings.TrimSuffix(url, "/") + "/FUZZ"
		}
		return join("ffuf",
			flag("-u", url),
			flag("-mc", str(params, "match_codes")),
			str(params, "additional_args"))
	default:
		target := str(params, "target")
		if target == "" {
			target = str(params, "url")
		}
		return join(tool, target)
	}
}

// MissingTools returns the sorted subset of tools not available on PATH
func (r *ToolRegistry) MissingTools(tools []string) []string {
	missing := make([]string, 0)
	for _, tool := range tools {
		if !r.IsAvailable(tool) {
			missing = append(missing, tool)
		}
	}
	sort.Strings(missing)
	return missing
}

func str(params map[string]interface{}, key string) string {
	if v, ok := params[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
		return fmt.Sprintf("%v", v)
	}
	return ""
}

func flag(name, value string) string {
	if value == "" {
		return ""
	}
	return name + " " + value
}

func join(parts ...string) string {
	fields := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			fields = append(fields, part)
		}
	}
	return strings.Join(fields, " ")
}
