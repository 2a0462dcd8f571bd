package rewrite_test

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
	"github.com/yaklabco/rescript/pkg/script"
)

const contract = `// SPDX-License-Identifier: MIT
pragma solidity ^0.8.24;

contract ChainVote {
    // 结构体定义
    struct Proposal {
        string name;        // 提案名称
        address proposer;   // 提案人
    }

    // 事件
    event ProposalCreated(uint256 indexed proposalId);
}
`

func contractTable() *mapping.Table {
	return mapping.MustNew(
		mapping.Pair{From: "// 结构体定义", To: "// Struct Definitions"},
		mapping.Pair{From: "// 事件", To: "// Events"},
		mapping.Pair{From: "提案名称", To: "Proposal name"},
		mapping.Pair{From: "提案人", To: "Proposer address"},
	)
}

func writeContract(t *testing.T, content string, mode os.FileMode) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "ChainVote.sol")
	require.NoError(t, os.WriteFile(path, []byte(content), mode))
	return path
}

func readBack(t *testing.T, path string) string {
	t.Helper()

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(got)
}

func TestRunApplyComplete(t *testing.T) {
	t.Parallel()

	path := writeContract(t, contract, 0o600)

	result, err := rewrite.Run(context.Background(), path, rewrite.Options{
		Mode:  rewrite.ModeApply,
		Table: contractTable(),
		Range: script.HanBasic,
	})
	require.NoError(t, err)

	assert.True(t, result.Complete())
	assert.True(t, result.Written)
	assert.True(t, result.Changed())
	assert.False(t, result.BackupCreated)
	assert.Equal(t, 4, result.Replacements())
	assert.Len(t, result.Steps, 4)
	assert.Equal(t, contract, result.Original)

	written := readBack(t, path)
	assert.Equal(t, result.Output, written)
	assert.Contains(t, written, "// Struct Definitions")
	assert.Contains(t, written, "string name;        // Proposal name")
	assert.False(t, fsutil.BackupExists(path))

	stat, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), stat.Mode().Perm())
}

func TestRunApplyIncompleteStillWrites(t *testing.T) {
	t.Parallel()

	path := writeContract(t, "// 事件\n// 修饰器\n", 0o644)

	result, err := rewrite.Run(context.Background(), path, rewrite.Options{
		Mode:  rewrite.ModeApply,
		Table: contractTable(),
		Range: script.HanBasic,
	})
	require.NoError(t, err)

	assert.False(t, result.Complete())
	assert.Equal(t, []string{"修饰器"}, result.Report.Remaining)
	assert.True(t, result.Written)
	assert.Equal(t, "// Events\n// 修饰器\n", readBack(t, path))
}

func TestRunApplyEmptyTableRewritesUnchanged(t *testing.T) {
	t.Parallel()

	path := writeContract(t, contract, 0o644)

	result, err := rewrite.Run(context.Background(), path, rewrite.Options{
		Mode:  rewrite.ModeApply,
		Table: mapping.Empty(),
		Range: script.HanBasic,
	})
	require.NoError(t, err)

	assert.False(t, result.Changed())
	assert.True(t, result.Written)
	assert.Equal(t, contract, readBack(t, path))
	assert.Equal(t, []string{"结构体定义", "提案名称", "提案人", "事件"}, result.Report.Remaining)
}

func TestRunDryRun(t *testing.T) {
	t.Parallel()

	path := writeContract(t, contract, 0o644)

	result, err := rewrite.Run(context.Background(), path, rewrite.Options{
		Mode:   rewrite.ModeApply,
		Table:  contractTable(),
		Range:  script.HanBasic,
		DryRun: true,
	})
	require.NoError(t, err)

	assert.False(t, result.Written)
	assert.True(t, result.Complete())
	assert.Equal(t, contract, readBack(t, path))
}

func TestRunBackup(t *testing.T) {
	t.Parallel()

	path := writeContract(t, contract, 0o644)

	result, err := rewrite.Run(context.Background(), path, rewrite.Options{
		Mode:   rewrite.ModeApply,
		Table:  contractTable(),
		Range:  script.HanBasic,
		Backup: true,
	})
	require.NoError(t, err)
	assert.True(t, result.BackupCreated)
	assert.Equal(t, contract, readBack(t, fsutil.BackupPath(path)))
}

func TestRunCheck(t *testing.T) {
	t.Parallel()

	path := writeContract(t, contract, 0o644)

	result, err := rewrite.Run(context.Background(), path, rewrite.Options{
		Mode:  rewrite.ModeCheck,
		Table: contractTable(),
		Range: script.HanBasic,
	})
	require.NoError(t, err)

	assert.False(t, result.Written)
	assert.False(t, result.Changed())
	assert.Empty(t, result.Steps)
	assert.False(t, result.Complete())
	assert.Len(t, result.Report.Remaining, 4)
	assert.Equal(t, contract, readBack(t, path))
}

func TestRunErrors(t *testing.T) {
	t.Parallel()

	opts := rewrite.Options{Mode: rewrite.ModeApply, Table: contractTable(), Range: script.HanBasic}

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := rewrite.Run(context.Background(), filepath.Join(t.TempDir(), "nope.sol"), opts)
		require.ErrorIs(t, err, fsutil.ErrNotFound)
	})

	t.Run("invalid encoding is not overwritten", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "gbk.txt")
		raw := []byte{0xd6, 0xd0, 0xce, 0xc4}
		require.NoError(t, os.WriteFile(path, raw, 0o644))

		_, err := rewrite.Run(context.Background(), path, opts)
		require.ErrorIs(t, err, fsutil.ErrInvalidEncoding)

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, raw, got)
	})

	t.Run("binary content", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "blob.bin")
		require.NoError(t, os.WriteFile(path, []byte("abc\x00def"), 0o644))

		_, err := rewrite.Run(context.Background(), path, opts)
		require.ErrorIs(t, err, rewrite.ErrBinary)
	})
}

func TestModeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "apply", rewrite.ModeApply.String())
	assert.Equal(t, "check", rewrite.ModeCheck.String())
	assert.Equal(t, "Mode(7)", rewrite.Mode(7).String())
}
