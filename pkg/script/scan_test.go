package script_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/rescript/pkg/mapping"
	"github.com/yaklabco/rescript/pkg/script"
	"github.com/yaklabco/rescript/pkg/subst"
)

func TestScan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		buffer    string
		remaining []string
	}{
		{
			name:      "empty buffer",
			buffer:    "",
			remaining: []string{},
		},
		{
			name:      "no in-range text",
			buffer:    "// State Variables\nuint256 public fee;",
			remaining: []string{},
		},
		{
			name:      "adjacent codepoints group into one run",
			buffer:    "x你好y",
			remaining: []string{"你好"},
		},
		{
			name:      "single codepoint",
			buffer:    "a中b",
			remaining: []string{"中"},
		},
		{
			name:      "repeated run is reported once",
			buffer:    "票数 and 票数",
			remaining: []string{"票数"},
		},
		{
			name:      "distinct runs keep first-seen order",
			buffer:    "地址: 用户, 提案: 地址",
			remaining: []string{"地址", "用户", "提案"},
		},
		{
			name:      "run at start and end of buffer",
			buffer:    "开始 middle 结束",
			remaining: []string{"开始", "结束"},
		},
		{
			name:      "full-width punctuation splits runs",
			buffer:    "获取提案结果（仅在公开后）",
			remaining: []string{"获取提案结果", "仅在公开后"},
		},
		{
			name:      "ideographs outside the basic block are ignored",
			buffer:    "㐀龦龥",
			remaining: []string{"龥"},
		},
		{
			name:      "newline separates runs",
			buffer:    "中\n文",
			remaining: []string{"中", "文"},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			report := script.Scan(testCase.buffer, script.HanBasic)
			assert.Equal(t, testCase.remaining, report.Remaining)
			assert.Equal(t, len(testCase.remaining) == 0, report.Complete)
		})
	}
}

func TestScanPositions(t *testing.T) {
	t.Parallel()

	buffer := "line one\n  // 状态变量 x\n中"
	report := script.Scan(buffer, script.HanBasic)

	require.Len(t, report.Runs, 2)

	assert.Equal(t, script.Run{Text: "状态变量", Offset: 14, Line: 2, Column: 6}, report.Runs[0])
	assert.Equal(t, 3, report.Runs[1].Line)
	assert.Equal(t, 1, report.Runs[1].Column)

	first, ok := report.First("中")
	require.True(t, ok)
	assert.Equal(t, 3, first.Line)

	_, ok = report.First("missing")
	assert.False(t, ok)
}

func TestScanKeepsEveryOccurrence(t *testing.T) {
	t.Parallel()

	report := script.Scan("票数 票数 票数", script.HanBasic)
	assert.Len(t, report.Runs, 3)
	assert.Equal(t, []string{"票数"}, report.Remaining)
}

func TestScanZeroRange(t *testing.T) {
	t.Parallel()

	report := script.Scan("中文", script.Range{})
	assert.True(t, report.Complete)
	assert.Empty(t, report.Remaining)
}

func TestContains(t *testing.T) {
	t.Parallel()

	assert.True(t, script.Contains("abc 中", script.HanBasic))
	assert.False(t, script.Contains("abc", script.HanBasic))
}

func TestCompletenessAfterSupersetMapping(t *testing.T) {
	t.Parallel()

	sample := "// 结构体定义\nstruct Proposal {\n    string name; // 提案名称\n    address proposer; // 提案人\n}\n"

	table := mapping.MustNew(
		mapping.Pair{From: "结构体定义", To: "Struct Definitions"},
		mapping.Pair{From: "提案名称", To: "Proposal name"},
		mapping.Pair{From: "提案人", To: "Proposer address"},
		mapping.Pair{From: "零知识证明", To: "zero-knowledge proof"},
	)

	before := script.Scan(sample, script.HanBasic)
	require.False(t, before.Complete)

	after := script.Scan(subst.Apply(sample, table), script.HanBasic)
	assert.True(t, after.Complete)
	assert.Empty(t, after.Remaining)
}

func TestResidualFreeInputStaysComplete(t *testing.T) {
	t.Parallel()

	buffer := "// Events\nevent Voted(address voter);"
	require.True(t, script.Scan(buffer, script.HanBasic).Complete)

	table := mapping.MustNew(
		mapping.Pair{From: "Voted", To: "Cast"},
		mapping.Pair{From: "voter", To: "account"},
	)
	assert.True(t, script.Scan(subst.Apply(buffer, table), script.HanBasic).Complete)
}

func TestPartialMappingReportsResidue(t *testing.T) {
	t.Parallel()

	buffer := "// 加密的票数: 选项ID => 票数"
	table := mapping.MustNew(mapping.Pair{From: "加密的票数", To: "encrypted votes"})

	report := script.Scan(subst.Apply(buffer, table), script.HanBasic)
	assert.False(t, report.Complete)
	assert.Equal(t, []string{"选项", "票数"}, report.Remaining)
}
