package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListText(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 12) // header + 11 functions
	assert.True(t, strings.HasPrefix(lines[0], "NAME"))
	assert.True(t, strings.HasPrefix(lines[1], "booth "))
	assert.Contains(t, out, "(1 - x)^2 + 100 (y - x^2)^2")
}

func TestListJSON(t *testing.T) {
	out, err := execute(t, "--format", "json", "list")
	require.NoError(t, err)

	var resp struct {
		Status string         `json:"status"`
		Data   []FunctionInfo `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Len(t, resp.Data, 11)
	assert.Equal(t, FunctionInfo{
		Name:        "ratio",
		Description: "(x * y, x / y)",
		Inputs:      2,
		Outputs:     2,
		Default:     []Float{3, 2},
		Path:        "eager",
	}, resp.Data[8])
}
