package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddStepAccumulatesTimeAndTools(t *testing.T) {
	chain := NewAttackChain(NewTargetProfile("https://example.com"))

	chain.AddStep(AttackStep{Tool: "nmap", ExecutionTimeEstimate: 120, SuccessProbability: 0.9})
	chain.AddStep(AttackStep{Tool: "nuclei", ExecutionTimeEstimate: 180, SuccessProbability: 0.7})

	assert.Equal(t, 300, chain.EstimatedTime)
	assert.Equal(t, []string{"nmap", "nuclei"}, chain.RequiredTools)
}

func TestAddStepDeduplicatesRequiredTools(t *testing.T) {
	chain := NewAttackChain(NewTargetProfile("https://example.com"))

	chain.AddStep(AttackStep{Tool: "nmap", ExecutionTimeEstimate: 120})
	chain.AddStep(AttackStep{Tool: "nmap", ExecutionTimeEstimate: 60})

	assert.Len(t, chain.Steps, 2)
	assert.Equal(t, 180, chain.EstimatedTime)
	assert.Equal(t, []string{"nmap"}, chain.RequiredTools)
}

func TestCalculateSuccessProbabilityCompounds(t *testing.T) {
	chain := NewAttackChain(NewTargetProfile("https://example.com"))
	chain.AddStep(AttackStep{Tool: "nmap", SuccessProbability: 0.9})
	chain.AddStep(AttackStep{Tool: "nuclei", SuccessProbability: 0.7})

	probability := chain.CalculateSuccessProbability()
	assert.InDelta(t, 0.63, probability, 1e-9)
	assert.InDelta(t, 0.63, chain.SuccessProbability, 1e-9)
}

func TestCalculateSuccessProbabilityEmptyChainIsZero(t *testing.T) {
	chain := NewAttackChain(NewTargetProfile("https://example.com"))

	assert.Equal(t, 0.0, chain.CalculateSuccessProbability())
	assert.Equal(t, 0.0, chain.SuccessProbability)
}

func TestChainToMap(t *testing.T) {
	chain := NewAttackChain(NewTargetProfile("https://example.com"))
	chain.RiskLevel = "high"
	chain.AddStep(AttackStep{
		Tool:                  "nuclei",
		Parameters:            map[string]interface{}{"target": "https://example.com"},
		ExpectedOutcome:       "Vulnerability identification",
		SuccessProbability:    0.9,
		ExecutionTimeEstimate: 300,
	})
	chain.CalculateSuccessProbability()

	m := chain.ToMap()
	assert.Equal(t, "https://example.com", m["target"])
	assert.Equal(t, "high", m["risk_level"])
	assert.Equal(t, 300, m["estimated_time"])
	assert.InDelta(t, 0.9, m["success_probability"].(float64), 1e-9)

	steps, ok := m["steps"].([]map[string]interface{})
	require.True(t, ok)
	require.Len(t, steps, 1)
	assert.Equal(t, "nuclei", steps[0]["tool"])
	assert.Equal(t, "Vulnerability identification", steps[0]["expected_outcome"])
}

func TestChainToMapWithoutTarget(t *testing.T) {
	chain := &AttackChain{}

	m := chain.ToMap()
	assert.NotContains(t, m, "target")
}
