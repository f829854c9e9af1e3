package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabelsCommand(t *testing.T) {
	var buf bytes.Buffer
	labelsCmd.SetOut(&buf)

	require.NoError(t, labelsCmd.RunE(labelsCmd, []string{"27"}))

	out := buf.String()
	assert.Contains(t, out, "    0  aa\n")
	assert.Contains(t, out, "   25  az\n")
	assert.Contains(t, out, "   26  ba\n")

	assert.Error(t, labelsCmd.RunE(labelsCmd, []string{"many"}))
}

func TestLabelsCommandCapsCount(t *testing.T) {
	var buf bytes.Buffer
	labelsCmd.SetOut(&buf)

	require.NoError(t, labelsCmd.RunE(labelsCmd, []string{"1000000000"}))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 676)
	assert.Equal(t, "  675  zz", lines[len(lines)-1])
}
