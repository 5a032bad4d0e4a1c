package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWizard(t *testing.T) {
	cmd := Wizard()

	require.NotNil(t, cmd)
	assert.Equal(t, "wizard", cmd.Use)
	assert.NotNil(t, cmd.RunE)
}

func TestWizard_Flags(t *testing.T) {
	cmd := Wizard()

	for _, name := range []string{"playbook", "profile", "output", "export-vars", "yes"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "expected flag %q", name)
	}

	output := cmd.Flags().Lookup("output")
	require.NotNil(t, output)
	assert.Equal(t, "o", output.Shorthand)
	assert.Equal(t, "", output.DefValue)

	exportVars := cmd.Flags().Lookup("export-vars")
	require.NotNil(t, exportVars)
	assert.Equal(t, "false", exportVars.DefValue)
}
