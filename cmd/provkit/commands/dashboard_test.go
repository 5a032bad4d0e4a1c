package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboard(t *testing.T) {
	cmd := Dashboard()

	require.NotNil(t, cmd)
	assert.Equal(t, "dashboard", cmd.Use)
	assert.NotNil(t, cmd.RunE)
}

func TestDashboard_Flags(t *testing.T) {
	cmd := Dashboard()

	playbook := cmd.Flags().Lookup("playbook")
	require.NotNil(t, playbook)
	assert.Equal(t, "playbook.yml", playbook.DefValue)

	assert.NotNil(t, cmd.Flags().Lookup("yes"))
}
