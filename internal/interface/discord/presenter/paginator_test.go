package presenter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedRows(n, width int) []string {
	row := strings.Repeat("x", width-1) + "\n"
	rows := make([]string, n)
	for i := range rows {
		rows[i] = row
	}
	return rows
}

func TestPaginate_SingleBlockWhenUnderBudget(t *testing.T) {
	rows := fixedRows(5, 10)

	blocks := Paginate(rows, 100)
	require.Len(t, blocks, 1)
	assert.Equal(t, "```"+strings.Join(rows, "")+"```", blocks[0])
}

func TestPaginate_SplitsAtBudget(t *testing.T) {
	// 10 rows of 10 bytes against a 35-byte budget: 3 rows per block.
	rows := fixedRows(10, 10)

	blocks := Paginate(rows, 35)
	require.Len(t, blocks, 4)
	for i, block := range blocks[:3] {
		assert.Equal(t, 3, strings.Count(block, "\n"), "block %d", i)
	}
	assert.Equal(t, 1, strings.Count(blocks[3], "\n"), "final block carries the remainder")
}

func TestPaginate_NeverSplitsARow(t *testing.T) {
	rows := fixedRows(40, 25)

	for _, block := range Paginate(rows, MaxMessageLen) {
		body := strings.TrimSuffix(strings.TrimPrefix(block, "```"), "```")
		assert.True(t, strings.HasSuffix(body, "\n"), "blocks end on a row boundary")
		assert.Zero(t, len(body)%25, "blocks hold whole rows only")
	}
}

func TestPaginate_BlocksRespectMessageLimit(t *testing.T) {
	rows := fixedRows(500, 30)

	blocks := Paginate(rows, MaxMessageLen)
	require.Greater(t, len(blocks), 1)
	for i, block := range blocks {
		assert.LessOrEqual(t, len(block), MaxMessageLen+6, "block %d", i)
	}
}

func TestPaginate_Empty(t *testing.T) {
	assert.Nil(t, Paginate(nil, MaxMessageLen))
}

func TestCodeBlock(t *testing.T) {
	assert.Equal(t, "```No Scores for this day yet```", CodeBlock("No Scores for this day yet"))
}
