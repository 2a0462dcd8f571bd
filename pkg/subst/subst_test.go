package subst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/rescript/pkg/mapping"
	"github.com/yaklabco/rescript/pkg/subst"
)

func TestApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		buffer string
		pairs  []mapping.Pair
		want   string
	}{
		{
			name:   "no pairs is identity",
			buffer: "// 状态变量\nuint256 x;",
			pairs:  nil,
			want:   "// 状态变量\nuint256 x;",
		},
		{
			name:   "empty buffer",
			buffer: "",
			pairs:  []mapping.Pair{{From: "a", To: "b"}},
			want:   "",
		},
		{
			name:   "longer pattern first claims the span",
			buffer: "AB",
			pairs:  []mapping.Pair{{From: "AB", To: "X"}, {From: "A", To: "Y"}},
			want:   "X",
		},
		{
			name:   "shorter pattern first consumes the prefix",
			buffer: "AB",
			pairs:  []mapping.Pair{{From: "A", To: "Y"}, {From: "AB", To: "X"}},
			want:   "YB",
		},
		{
			name:   "all occurrences replaced",
			buffer: "票数 票数 票数",
			pairs:  []mapping.Pair{{From: "票数", To: "votes"}},
			want:   "votes votes votes",
		},
		{
			name:   "non-overlapping left to right",
			buffer: "aaa",
			pairs:  []mapping.Pair{{From: "aa", To: "b"}},
			want:   "ba",
		},
		{
			name:   "inserted text is not rescanned by the same pair",
			buffer: "a",
			pairs:  []mapping.Pair{{From: "a", To: "aa"}},
			want:   "aa",
		},
		{
			name:   "inserted text is visible to later pairs",
			buffer: "a",
			pairs:  []mapping.Pair{{From: "a", To: "b"}, {From: "b", To: "c"}},
			want:   "c",
		},
		{
			name:   "later identical pattern finds nothing",
			buffer: "提案人",
			pairs:  []mapping.Pair{{From: "提案人", To: "proposer"}, {From: "提案人", To: "owner"}},
			want:   "proposer",
		},
		{
			name:   "missing pattern is a no-op",
			buffer: "hello",
			pairs:  []mapping.Pair{{From: "地址", To: "address"}},
			want:   "hello",
		},
		{
			name:   "deletion",
			buffer: "a-b-c",
			pairs:  []mapping.Pair{{From: "-", To: ""}},
			want:   "abc",
		},
		{
			name:   "multi-line pattern",
			buffer: "/**\n     * @notice 创建新提案\n     */",
			pairs: []mapping.Pair{
				{From: "/**\n     * @notice 创建新提案", To: "/**\n     * @notice Create new proposal"},
			},
			want: "/**\n     * @notice Create new proposal\n     */",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			table := mapping.MustNew(testCase.pairs...)
			assert.Equal(t, testCase.want, subst.Apply(testCase.buffer, table))
			assert.Equal(t, testCase.want, subst.ApplyWithSteps(testCase.buffer, table).Output)
		})
	}
}

func TestApplyNilTable(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "unchanged", subst.Apply("unchanged", nil))
}

func TestApplyWithSteps(t *testing.T) {
	t.Parallel()

	table := mapping.MustNew(
		mapping.Pair{From: "提案ID => 解密请求ID", To: "proposalId => decryption requestId"},
		mapping.Pair{From: "提案ID", To: "proposal ID"},
		mapping.Pair{From: "解密请求ID", To: "decryption request ID"},
		mapping.Pair{From: "零知识证明", To: "zero-knowledge proof"},
	)

	buffer := "// 提案ID => 解密请求ID\n// 提案ID\n// 提案ID"
	result := subst.ApplyWithSteps(buffer, table)

	assert.Equal(t, "// proposalId => decryption requestId\n// proposal ID\n// proposal ID", result.Output)

	require.Len(t, result.Steps, 4)
	assert.Equal(t, 1, result.Steps[0].Count)
	assert.Equal(t, 2, result.Steps[1].Count)
	assert.Equal(t, 0, result.Steps[2].Count)
	assert.Equal(t, 0, result.Steps[3].Count)
	assert.Equal(t, 3, result.Replacements())

	unused := result.Unused()
	require.Len(t, unused, 2)
	assert.Equal(t, "解密请求ID", unused[0].From)
	assert.Equal(t, "零知识证明", unused[1].From)
}
