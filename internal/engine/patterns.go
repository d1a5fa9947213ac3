package engine

import "fmt"

// PatternStep is one entry of a static attack pattern. Priority is ordering
// metadata carried through from the pattern definition; the list order itself
// is what the builder executes. Params is a template that informs which tool
// runs at this position, not the concrete parameter values (those come from
// the parameter optimizer).
type PatternStep struct {
	Tool     string
	Priority int
	Outcome  string
	Params   map[string]interface{}
}

// AttackPatternLibrary holds the static ordered tool sequences per scenario.
// Built once at engine construction, read-only afterwards.
type AttackPatternLibrary struct {
	patterns      map[string][]PatternStep
	timeEstimates map[string]int
}

// defaultTimeEstimate is assumed for tools missing from the estimate table
const defaultTimeEstimate = 180

// NewAttackPatternLibrary builds the static pattern and time-estimate tables
func NewAttackPatternLibrary() *AttackPatternLibrary {
	return &AttackPatternLibrary{
		patterns: map[string][]PatternStep{
			"web_reconnaissance": {
				{"amass", 1, "Subdomain inventory", map[string]interface{}{"mode": "enum"}},
				{"subfinder", 2, "Passive subdomain discovery", map[string]interface{}{"silent": true}},
				{"httpx", 3, "Live host probing", map[string]interface{}{"probe": true}},
				{"katana", 4, "Endpoint crawling", map[string]interface{}{"depth": 3}},
				{"gobuster", 5, "Content discovery", map[string]interface{}{"mode": "dir"}},
			},
			"vulnerability_assessment": {
				{"nuclei", 1, "Template-based vulnerability detection", map[string]interface{}{"severity": "critical,high"}},
				{"nikto", 2, "Web server misconfiguration findings", map[string]interface{}{}},
				{"sqlmap", 3, "SQL injection confirmation", map[string]interface{}{"batch": true}},
				{"dalfox", 4, "XSS detection", map[string]interface{}{"mining": true}},
			},
			"api_testing": {
				{"httpx", 1, "API endpoint availability", map[string]interface{}{"probe": true}},
				{"arjun", 2, "Hidden parameter discovery", map[string]interface{}{"stable": true}},
				{"ffuf", 3, "API route fuzzing", map[string]interface{}{"mode": "fuzz"}},
				{"nuclei", 4, "API vulnerability templates", map[string]interface{}{"tags": "api"}},
			},
			"network_discovery": {
				{"nmap", 1, "Port and service inventory", map[string]interface{}{"top_ports": 1000}},
				{"rustscan", 2, "Fast full port sweep", map[string]interface{}{"ulimit": 5000}},
				{"enum4linux", 3, "SMB and NetBIOS enumeration", map[string]interface{}{}},
			},
			"comprehensive_network_pentest": {
				{"nmap", 1, "Full port and service inventory", map[string]interface{}{"all_ports": true}},
				{"autorecon", 2, "Automated service enumeration", map[string]interface{}{}},
				{"enum4linux", 3, "SMB and NetBIOS enumeration", map[string]interface{}{}},
				{"smbmap", 4, "Share access mapping", map[string]interface{}{}},
				{"hydra", 5, "Credential brute force", map[string]interface{}{"service": "ssh"}},
			},
			"binary_exploitation": {
				{"checksec", 1, "Binary protection summary", map[string]interface{}{}},
				{"strings", 2, "Embedded string extraction", map[string]interface{}{}},
				{"binwalk", 3, "Embedded content discovery", map[string]interface{}{}},
				{"ghidra", 4, "Decompiled program understanding", map[string]interface{}{"headless": true}},
				{"gdb", 5, "Dynamic analysis", map[string]interface{}{}},
			},
			"ctf_pwn_challenge": {
				{"checksec", 1, "Binary protection summary", map[string]interface{}{}},
				{"ghidra", 2, "Vulnerability identification", map[string]interface{}{"headless": true}},
				{"ropgadget", 3, "Gadget inventory", map[string]interface{}{}},
				{"one-gadget", 4, "One-shot execve gadgets", map[string]interface{}{}},
				{"pwntools", 5, "Exploit development", map[string]interface{}{"template": true}},
			},
			"aws_security_assessment": {
				{"prowler", 1, "AWS benchmark findings", map[string]interface{}{"provider": "aws"}},
				{"scout-suite", 2, "AWS configuration review", map[string]interface{}{"provider": "aws"}},
				{"pacu", 3, "AWS exploitation paths", map[string]interface{}{}},
				{"cloudmapper", 4, "Network visualization", map[string]interface{}{}},
			},
			"kubernetes_security_assessment": {
				{"kube-hunter", 1, "Cluster attack surface", map[string]interface{}{}},
				{"kube-bench", 2, "CIS benchmark findings", map[string]interface{}{}},
				{"trivy", 3, "Workload image vulnerabilities", map[string]interface{}{"scanner": "k8s"}},
			},
			"container_security_assessment": {
				{"trivy", 1, "Image vulnerability findings", map[string]interface{}{"scanner": "image"}},
				{"docker-bench-security", 2, "Docker host configuration review", map[string]interface{}{}},
			},
			"iac_security_assessment": {
				{"trivy", 1, "IaC misconfiguration findings", map[string]interface{}{"scanner": "config"}},
				{"scout-suite", 2, "Deployed configuration drift", map[string]interface{}{}},
			},
			"multi_cloud_assessment": {
				{"prowler", 1, "Multi-cloud benchmark findings", map[string]interface{}{}},
				{"scout-suite", 2, "Cross-provider configuration review", map[string]interface{}{}},
				{"trivy", 3, "Asset vulnerability findings", map[string]interface{}{}},
			},
			"bug_bounty_reconnaissance": {
				{"amass", 1, "Asset discovery", map[string]interface{}{"mode": "enum"}},
				{"subfinder", 2, "Passive subdomain discovery", map[string]interface{}{"silent": true}},
				{"httpx", 3, "Live host probing", map[string]interface{}{"probe": true}},
				{"katana", 4, "Endpoint crawling", map[string]interface{}{"depth": 3}},
				{"paramspider", 5, "Parameter mining", map[string]interface{}{}},
			},
			"bug_bounty_vulnerability_hunting": {
				{"nuclei", 1, "Known vulnerability templates", map[string]interface{}{"severity": "critical,high,medium"}},
				{"dalfox", 2, "XSS hunting", map[string]interface{}{"mining": true}},
				{"sqlmap", 3, "SQL injection confirmation", map[string]interface{}{"batch": true}},
				{"ffuf", 4, "Content and parameter fuzzing", map[string]interface{}{}},
			},
			"bug_bounty_high_impact": {
				{"nuclei", 1, "Critical template findings", map[string]interface{}{"severity": "critical"}},
				{"sqlmap", 2, "SQL injection confirmation", map[string]interface{}{"batch": true}},
				{"jaeles", 3, "Signature-based deep checks", map[string]interface{}{}},
			},
		},
		timeEstimates: map[string]int{
			"nmap":                  120,
			"rustscan":              60,
			"masscan":               90,
			"autorecon":             1200,
			"amass":                 600,
			"subfinder":             300,
			"httpx":                 120,
			"katana":                300,
			"gobuster":              300,
			"dirsearch":             300,
			"feroxbuster":           300,
			"ffuf":                  240,
			"nuclei":                600,
			"nikto":                 400,
			"sqlmap":                600,
			"dalfox":                300,
			"wpscan":                400,
			"arjun":                 200,
			"paramspider":           180,
			"jaeles":                400,
			"wafw00f":               60,
			"enum4linux":            180,
			"smbmap":                120,
			"hydra":                 900,
			"checksec":              30,
			"strings":               30,
			"binwalk":               60,
			"ghidra":                300,
			"gdb":                   300,
			"radare2":               300,
			"ropgadget":             60,
			"one-gadget":            30,
			"pwntools":              600,
			"prowler":               900,
			"scout-suite":           900,
			"pacu":                  600,
			"cloudmapper":           300,
			"trivy":                 300,
			"kube-hunter":           300,
			"kube-bench":            180,
			"docker-bench-security": 180,
		},
	}
}

// Pattern returns the steps for a named pattern. A missing name is a
// programmer error in the static tables, so it fails fast.
func (l *AttackPatternLibrary) Pattern(name string) []PatternStep {
	steps, ok := l.patterns[name]
	if !ok {
		panic(fmt.Sprintf("attack pattern table missing %q", name))
	}
	return steps
}

// TimeEstimate returns the static execution-time estimate for a tool in
// seconds, falling back to the default for unlisted tools.
func (l *AttackPatternLibrary) TimeEstimate(tool string) int {
	if estimate, ok := l.timeEstimates[tool]; ok {
		return estimate
	}
	return defaultTimeEstimate
}
