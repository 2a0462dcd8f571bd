package mapping_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/rescript/pkg/mapping"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("keeps order and duplicates", func(t *testing.T) {
		t.Parallel()

		table, err := mapping.New(
			mapping.Pair{From: "AB", To: "X"},
			mapping.Pair{From: "A", To: "Y"},
			mapping.Pair{From: "AB", To: "Z"},
		)
		require.NoError(t, err)
		assert.Equal(t, 3, table.Len())
		assert.Equal(t, []mapping.Pair{
			{From: "AB", To: "X"},
			{From: "A", To: "Y"},
			{From: "AB", To: "Z"},
		}, table.Pairs())
	})

	t.Run("rejects empty pattern", func(t *testing.T) {
		t.Parallel()

		_, err := mapping.New(mapping.Pair{From: "a", To: "b"}, mapping.Pair{From: "", To: "c"})
		require.ErrorIs(t, err, mapping.ErrEmptyPattern)
	})

	t.Run("empty replacement is allowed", func(t *testing.T) {
		t.Parallel()

		table, err := mapping.New(mapping.Pair{From: "a", To: ""})
		require.NoError(t, err)
		assert.Equal(t, 1, table.Len())
	})

	t.Run("input slice is not aliased", func(t *testing.T) {
		t.Parallel()

		pairs := []mapping.Pair{{From: "a", To: "b"}}
		table := mapping.MustNew(pairs...)
		pairs[0].To = "changed"

		assert.Equal(t, "b", table.Pairs()[0].To)
	})
}

func TestMustNewPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		mapping.MustNew(mapping.Pair{From: ""})
	})
}

func TestNilTable(t *testing.T) {
	t.Parallel()

	var table *mapping.Table
	assert.Equal(t, 0, table.Len())
	assert.Nil(t, table.Pairs())

	called := false
	table.Each(func(int, mapping.Pair) bool {
		called = true
		return true
	})
	assert.False(t, called)
}

func TestEachStops(t *testing.T) {
	t.Parallel()

	table := mapping.MustNew(
		mapping.Pair{From: "a", To: "1"},
		mapping.Pair{From: "b", To: "2"},
		mapping.Pair{From: "c", To: "3"},
	)

	var seen []string
	table.Each(func(_ int, pair mapping.Pair) bool {
		seen = append(seen, pair.From)
		return pair.From != "b"
	})
	assert.Equal(t, []string{"a", "b"}, seen)
}

func TestConcat(t *testing.T) {
	t.Parallel()

	first := mapping.MustNew(mapping.Pair{From: "a", To: "1"})
	second := mapping.MustNew(mapping.Pair{From: "b", To: "2"}, mapping.Pair{From: "a", To: "3"})

	joined := mapping.Concat(first, nil, second)
	assert.Equal(t, []mapping.Pair{
		{From: "a", To: "1"},
		{From: "b", To: "2"},
		{From: "a", To: "3"},
	}, joined.Pairs())
}

func TestBuilder(t *testing.T) {
	t.Parallel()

	t.Run("set keeps first position and last value", func(t *testing.T) {
		t.Parallel()

		table, err := mapping.NewBuilder().
			Set("开始时间", "start time").
			Set("地址", "address").
			Set("开始时间", "start timestamp").
			Build()
		require.NoError(t, err)
		assert.Equal(t, []mapping.Pair{
			{From: "开始时间", To: "start timestamp"},
			{From: "地址", To: "address"},
		}, table.Pairs())
	})

	t.Run("append keeps duplicates", func(t *testing.T) {
		t.Parallel()

		builder := mapping.NewBuilder().Append("a", "1").Append("a", "2")
		assert.Equal(t, 2, builder.Len())

		table, err := builder.Build()
		require.NoError(t, err)
		assert.Equal(t, 2, table.Len())
	})

	t.Run("first error wins", func(t *testing.T) {
		t.Parallel()

		_, err := mapping.NewBuilder().Set("a", "1").Append("", "x").Set("b", "2").Build()
		require.ErrorIs(t, err, mapping.ErrEmptyPattern)
	})
}

func TestFromYAML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    []mapping.Pair
		wantErr error
	}{
		{
			name:  "empty document",
			input: "",
			want:  []mapping.Pair{},
		},
		{
			name:  "null document",
			input: "~\n",
			want:  []mapping.Pair{},
		},
		{
			name: "mapping keeps document order",
			input: `"// 状态变量": "// State Variables"
"// 事件": "// Events"
`,
			want: []mapping.Pair{
				{From: "// 状态变量", To: "// State Variables"},
				{From: "// 事件", To: "// Events"},
			},
		},
		{
			name: "mapping with repeated key uses dictionary semantics",
			input: `投票开始时间: voting start time
地址: address
投票开始时间: voting start timestamp
`,
			want: []mapping.Pair{
				{From: "投票开始时间", To: "voting start timestamp"},
				{From: "地址", To: "address"},
			},
		},
		{
			name: "sequence keeps duplicates",
			input: `- from: AB
  to: X
- from: A
  to: "Y"
- from: AB
  to: Z
`,
			want: []mapping.Pair{
				{From: "AB", To: "X"},
				{From: "A", To: "Y"},
				{From: "AB", To: "Z"},
			},
		},
		{
			name:  "multi-line key",
			input: "\"/**\\n * @notice 更新\": \"/**\\n * @notice Update\"\n",
			want: []mapping.Pair{
				{From: "/**\n * @notice 更新", To: "/**\n * @notice Update"},
			},
		},
		{
			name:    "empty key",
			input:   "\"\": x\n",
			wantErr: mapping.ErrEmptyPattern,
		},
		{
			name:    "sequence item with empty from",
			input:   "- to: x\n",
			wantErr: mapping.ErrEmptyPattern,
		},
		{
			name:    "scalar document",
			input:   "just text\n",
			wantErr: mapping.ErrUnsupportedDocument,
		},
		{
			name:    "sequence of scalars",
			input:   "- a\n- b\n",
			wantErr: mapping.ErrUnsupportedDocument,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			table, err := mapping.FromYAML([]byte(testCase.input))
			if testCase.wantErr != nil {
				require.ErrorIs(t, err, testCase.wantErr)
				return
			}
			require.NoError(t, err)

			got := table.Pairs()
			if got == nil {
				got = []mapping.Pair{}
			}
			assert.Equal(t, testCase.want, got)
		})
	}
}

func TestToYAMLRoundTrip(t *testing.T) {
	t.Parallel()

	table := mapping.MustNew(
		mapping.Pair{From: "AB", To: "X"},
		mapping.Pair{From: "AB", To: "Y"},
	)

	data, err := table.ToYAML()
	require.NoError(t, err)

	back, err := mapping.FromYAML(data)
	require.NoError(t, err)
	assert.Equal(t, table.Pairs(), back.Pairs())
}

func TestLoadFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	first := filepath.Join(dir, "first.yml")
	second := filepath.Join(dir, "second.yml")
	require.NoError(t, os.WriteFile(first, []byte("a: \"1\"\n"), 0o644))
	require.NoError(t, os.WriteFile(second, []byte("- from: b\n  to: \"2\"\n"), 0o644))

	table, err := mapping.LoadFiles(first, second)
	require.NoError(t, err)
	assert.Equal(t, []mapping.Pair{{From: "a", To: "1"}, {From: "b", To: "2"}}, table.Pairs())

	_, err = mapping.LoadFiles(filepath.Join(dir, "missing.yml"))
	require.Error(t, err)
}

func TestShadowed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		pairs []mapping.Pair
		want  []mapping.Shadow
	}{
		{
			name: "longer phrase first is fine",
			pairs: []mapping.Pair{
				{From: "提案ID => 解密请求ID", To: "proposalId => decryption requestId"},
				{From: "提案ID", To: "proposal ID"},
			},
		},
		{
			name: "shorter phrase first shadows the longer one",
			pairs: []mapping.Pair{
				{From: "提案ID", To: "proposal ID"},
				{From: "解密请求ID", To: "decryption request ID"},
				{From: "提案ID => 解密请求ID", To: "proposalId => decryption requestId"},
			},
			want: []mapping.Shadow{{Index: 2, By: 0}},
		},
		{
			name: "exact duplicate",
			pairs: []mapping.Pair{
				{From: "提案名称", To: "proposal name"},
				{From: "提案名称", To: "name"},
			},
			want: []mapping.Shadow{{Index: 1, By: 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			table := mapping.MustNew(tt.pairs...)
			assert.Equal(t, tt.want, table.Shadowed())
		})
	}

	var nilTable *mapping.Table
	assert.Nil(t, nilTable.Shadowed())
}
