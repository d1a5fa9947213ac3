package models

// AttackStep is one planned tool invocation inside an attack chain
type AttackStep struct {
	Tool                  string                 `json:"tool" yaml:"tool"`
	Parameters            map[string]interface{} `json:"parameters" yaml:"parameters"`
	ExpectedOutcome       string                 `json:"expected_outcome" yaml:"expected_outcome"`
	SuccessProbability    float64                `json:"success_probability" yaml:"success_probability"`
	ExecutionTimeEstimate int                    `json:"execution_time_estimate" yaml:"execution_time_estimate"`
	Dependencies          []string               `json:"dependencies" yaml:"dependencies"`
}

// AttackChain is an ordered plan of tool invocations against one target.
// Steps are appended via AddStep, then the chain is finalized with one call
// to CalculateSuccessProbability.
type AttackChain struct {
	Target             *TargetProfile `json:"-" yaml:"-"`
	Steps              []AttackStep   `json:"steps" yaml:"steps"`
	RequiredTools      []string       `json:"required_tools" yaml:"required_tools"`
	EstimatedTime      int            `json:"estimated_time" yaml:"estimated_time"`
	SuccessProbability float64        `json:"success_probability" yaml:"success_probability"`
	RiskLevel          string         `json:"risk_level" yaml:"risk_level"`
}

// NewAttackChain creates an empty chain for a target profile
func NewAttackChain(profile *TargetProfile) *AttackChain {
	return &AttackChain{
		Target:        profile,
		Steps:         make([]AttackStep, 0),
		RequiredTools: make([]string, 0),
	}
}

// AddStep appends a step, tracking required tools and the running time estimate
func (c *AttackChain) AddStep(step AttackStep) {
	c.Steps = append(c.Steps, step)
	c.EstimatedTime += step.ExecutionTimeEstimate

	for _, tool := range c.RequiredTools {
		if tool == step.Tool {
			return
		}
	}
	c.RequiredTools = append(c.RequiredTools, step.Tool)
}

// CalculateSuccessProbability recomputes the compound probability of the
// whole chain. A chain with no steps has probability 0.
func (c *AttackChain) CalculateSuccessProbability() float64 {
	if len(c.Steps) == 0 {
		c.SuccessProbability = 0.0
		return 0.0
	}

	probability := 1.0
	for _, step := range c.Steps {
		probability *= step.SuccessProbability
	}

	c.SuccessProbability = probability
	return probability
}

// ToMap serializes the chain into a JSON-compatible map
func (c *AttackChain) ToMap() map[string]interface{} {
	steps := make([]map[string]interface{}, len(c.Steps))
	for i, step := range c.Steps {
		steps[i] = map[string]interface{}{
			"tool":                    step.Tool,
			"parameters":              step.Parameters,
			"expected_outcome":        step.ExpectedOutcome,
			"success_probability":     step.SuccessProbability,
			"execution_time_estimate": step.ExecutionTimeEstimate,
			"dependencies":            step.Dependencies,
		}
	}

	result := map[string]interface{}{
		"steps":               steps,
		"required_tools":      c.RequiredTools,
		"estimated_time":      c.EstimatedTime,
		"success_probability": c.SuccessProbability,
		"risk_level":          c.RiskLevel,
	}

	if c.Target != nil {
		result["target"] = c.Target.Target
	}

	return result
}
