package parser_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvwalk/parser"
)

func TestParseLines_Checked(t *testing.T) {
	lines := []string{
		"# header",
		"1 3 2 3",
		"",
		"   2 1  ",
		"3 1",
		"7",
	}
	got, err := parser.ParseLines(lines, 1, parser.Checked)
	require.NoError(t, err)
	require.Equal(t, []parser.Adjacency{
		{Node: 1, Neighbors: []int64{2, 3}},
		{Node: 2, Neighbors: []int64{1}},
		{Node: 3, Neighbors: []int64{1}},
		{Node: 7, Neighbors: []int64{}},
	}, got)
}

func TestParseLines_UncheckedKeepsRawOrder(t *testing.T) {
	got, err := parser.ParseLines([]string{"1 3 2 3 1", "-4 5"}, 1, parser.Unchecked)
	require.NoError(t, err)
	require.Equal(t, []parser.Adjacency{
		{Node: 1, Neighbors: []int64{3, 2, 3, 1}},
		{Node: -4, Neighbors: []int64{5}},
	}, got)
}

func TestParseLines_Errors(t *testing.T) {
	tests := []struct {
		name    string
		lines   []string
		mode    parser.Mode
		line    int
		token   string
		isCause error
	}{
		{"checked word", []string{"1 2", "2 x"}, parser.Checked, 11, "x", strconv.ErrSyntax},
		{"unchecked word", []string{"1 2", "a 1"}, parser.Unchecked, 11, "a", strconv.ErrSyntax},
		{"checked float", []string{"1 2.5"}, parser.Checked, 10, "2.5", strconv.ErrSyntax},
		{"checked negative", []string{"1 -2"}, parser.Checked, 10, "-2", parser.ErrNegativeID},
		{"overflow", []string{"99999999999999999999"}, parser.Unchecked, 10, "99999999999999999999", strconv.ErrRange},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parser.ParseLines(tc.lines, 10, tc.mode)
			require.Nil(t, got, "no partial result on failure")
			require.ErrorIs(t, err, parser.ErrSyntax)
			require.ErrorIs(t, err, tc.isCause)

			var pe *parser.ParseError
			require.True(t, errors.As(err, &pe))
			require.Equal(t, tc.line, pe.Line)
			require.Equal(t, tc.token, pe.Token)
		})
	}
}

func TestParseEdge(t *testing.T) {
	u, v, ok, err := parser.ParseEdge(1, " 4\t9 ")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int64(4), u)
	require.Equal(t, int64(9), v)

	_, _, ok, err = parser.ParseEdge(2, "# 1 2")
	require.NoError(t, err)
	require.False(t, ok)

	_, _, _, err = parser.ParseEdge(3, "1 2 3")
	require.ErrorIs(t, err, parser.ErrFieldCount)
	require.ErrorIs(t, err, parser.ErrSyntax)

	_, _, _, err = parser.ParseEdge(4, "1 b")
	require.ErrorIs(t, err, parser.ErrSyntax)
}

func TestForMode(t *testing.T) {
	p := parser.ForMode(parser.Checked)
	got, err := p.Parse([]string{"5 5 1"}, 1)
	require.NoError(t, err)
	require.Equal(t, []parser.Adjacency{{Node: 5, Neighbors: []int64{1, 5}}}, got,
		"self loops are a graph concern, not a parser one")
}

func TestParseMode(t *testing.T) {
	for _, m := range []parser.Mode{parser.Checked, parser.Unchecked} {
		got, err := parser.ParseMode(m.String())
		require.NoError(t, err)
		require.Equal(t, m, got)
	}
	_, err := parser.ParseMode("fast")
	require.Error(t, err)
}
