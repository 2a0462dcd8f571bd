package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/rescript/pkg/fsutil"
	"github.com/yaklabco/rescript/pkg/mapping"
	"github.com/yaklabco/rescript/pkg/rewrite"
	"github.com/yaklabco/rescript/pkg/runner"
	"github.com/yaklabco/rescript/pkg/script"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func testTable() *mapping.Table {
	return mapping.MustNew(
		mapping.Pair{From: "状态变量", To: "State Variables"},
		mapping.Pair{From: "事件", To: "Events"},
	)
}

func TestRun(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	done := writeFile(t, dir, "done.sol", "// 状态变量\n// 事件\n")
	partial := writeFile(t, dir, "partial.sol", "// 事件\n// 修饰器\n// 修饰器\n")
	missing := filepath.Join(dir, "missing.sol")

	result, err := runner.Run(context.Background(), runner.Options{
		Paths: []string{done, partial, missing},
		Jobs:  2,
		Rewrite: rewrite.Options{
			Mode:  rewrite.ModeApply,
			Table: testTable(),
			Range: script.HanBasic,
		},
	})
	require.NoError(t, err)
	require.Len(t, result.Files, 3)

	assert.Equal(t, done, result.Files[0].Path)
	assert.Equal(t, partial, result.Files[1].Path)
	assert.Equal(t, missing, result.Files[2].Path)

	require.NoError(t, result.Files[0].Error)
	assert.True(t, result.Files[0].Result.Complete())

	require.NoError(t, result.Files[1].Error)
	assert.Equal(t, []string{"修饰器"}, result.Files[1].Result.Report.Remaining)

	require.ErrorIs(t, result.Files[2].Error, fsutil.ErrNotFound)

	stats := result.Stats
	assert.Equal(t, 2, stats.FilesProcessed)
	assert.Equal(t, 1, stats.FilesErrored)
	assert.Equal(t, 1, stats.FilesComplete)
	assert.Equal(t, 1, stats.FilesIncomplete)
	assert.Equal(t, 2, stats.FilesWritten)
	assert.Equal(t, 2, stats.FilesChanged)
	assert.Equal(t, 3, stats.Replacements)
	assert.Equal(t, 2, stats.ResidualRuns)
	assert.Equal(t, 1, stats.DistinctRemaining)

	assert.False(t, result.Complete())
	assert.True(t, result.HasErrors())
	assert.Equal(t, []string{"修饰器"}, result.Remaining())

	got, err := os.ReadFile(done)
	require.NoError(t, err)
	assert.Equal(t, "// State Variables\n// Events\n", string(got))
}

func TestRunNoPaths(t *testing.T) {
	t.Parallel()

	result, err := runner.Run(context.Background(), runner.Options{})
	require.NoError(t, err)
	assert.Empty(t, result.Files)
	assert.True(t, result.Complete())
}

func TestRunRejectsDuplicatePaths(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "a.txt", "x")

	_, err := runner.Run(context.Background(), runner.Options{
		Paths: []string{path, filepath.Join(dir, ".", "a.txt")},
	})
	require.ErrorIs(t, err, runner.ErrDuplicatePath)
}

func TestRunCancelled(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "a.txt", "中")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := runner.Run(ctx, runner.Options{
		Paths:   []string{path},
		Rewrite: rewrite.Options{Mode: rewrite.ModeCheck, Range: script.HanBasic},
	})
	require.ErrorIs(t, err, context.Canceled)
	require.Len(t, result.Files, 1)
	require.Error(t, result.Files[0].Error)
}

func TestNilResult(t *testing.T) {
	t.Parallel()

	var result *runner.Result
	assert.True(t, result.Complete())
	assert.False(t, result.HasErrors())
	assert.Nil(t, result.Remaining())
}
