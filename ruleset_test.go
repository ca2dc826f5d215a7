package goggle

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRuleSet_DeduplicatesToFirstOccurrence verifies duplicate lines collapse
// to their first position
func TestRuleSet_DeduplicatesToFirstOccurrence(t *testing.T) {
	rs := NewRuleSet()
	rs.Add("a")
	rs.Add("b")
	rs.Add("a")
	rs.Add("c")
	rs.Add("b")

	assert.Equal(t, []string{"a", "b", "c"}, rs.Lines())
	assert.Equal(t, 3, rs.Len())
}

// TestRuleSet_Render verifies lines are joined with line feeds
func TestRuleSet_Render(t *testing.T) {
	rs := NewRuleSet()
	rs.Add("first")
	rs.Add("")
	rs.Add("second")

	assert.Equal(t, "first\n\nsecond", rs.Render())
}

// TestRuleSet_WriteFile verifies the rendered document overwrites the target
// file
func TestRuleSet_WriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.goggle")
	require.NoError(t, os.WriteFile(path, []byte("stale content"), 0644))

	rs := NewRuleSet()
	rs.Add("$boost=2,site=a.com")
	require.NoError(t, rs.WriteFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "$boost=2,site=a.com", string(data))
}
