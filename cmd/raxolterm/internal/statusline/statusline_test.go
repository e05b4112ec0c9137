package statusline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raxolterm/vtcore"
)

func testSnapshot(t *testing.T) *vtcore.Snapshot {
	t.Helper()
	e, err := vtcore.New(vtcore.WithSize(24, 80))
	require.NoError(t, err)
	return e.Snapshot(vtcore.SnapshotDetailText)
}

func TestRenderIncludesSizeAndCursor(t *testing.T) {
	snap := testSnapshot(t)
	line := Render(snap, 0, 200, nil)

	assert.Contains(t, line, "80x24")
	assert.Contains(t, line, "cursor 0,0")
}

func TestRenderIncludesScrollbackDepth(t *testing.T) {
	snap := testSnapshot(t)
	line := Render(snap, 42, 200, nil)

	assert.Contains(t, line, "scrollback 42")
}

func TestRenderListsActiveModes(t *testing.T) {
	snap := testSnapshot(t)
	line := Render(snap, 0, 200, []string{"paste", "mouse"})

	assert.Contains(t, line, "[paste]")
	assert.Contains(t, line, "[mouse]")
}

func TestRenderTruncatesToWidth(t *testing.T) {
	snap := testSnapshot(t)
	line := Render(snap, 0, 10, []string{"paste", "mouse", "altscreen"})

	assert.LessOrEqual(t, len([]rune(line)), 10)
}
