package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAgentAddr(t *testing.T) {
	oldHost, oldPort := AgentHost, AgentPort
	defer func() { AgentHost, AgentPort = oldHost, oldPort }()

	// host and port arrive as config strings
	AgentHost = "10.0.0.5"
	AgentPort = "8129"
	assert.Equal(t, "10.0.0.5:8129", agentAddr())
}

func TestAgentAddrDefaults(t *testing.T) {
	assert.Equal(t, "127.0.0.1:8125", agentAddr())
}
