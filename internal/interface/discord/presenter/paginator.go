package presenter

import (
	"strings"
)

// Discord messages are limited to 2000 characters; the code block delimiters
// take 6 of them, leaving this budget for rows.
const (
	MaxMessageLen = 2000 - 6

	codeBlockDelimiter = "```"
)

// ══════════════════════════════════════════════════════════════════════════════
// PAGINATOR
// ══════════════════════════════════════════════════════════════════════════════

// Paginate splits rendered rows into code blocks so that each delimited block
// stays within maxLen bytes plus the delimiter pair, never splitting a row
// across two blocks. The final block is emitted even when smaller.
//
// The per-row cost is approximated from the first row's length rather than
// measured per row. Rendered tables are fixed-width so rows normally share
// one length, but a set whose rows vary (a ragged table from RenderOne
// concatenations, say) can overshoot the budget. Known, inherited trade-off.
func Paginate(rows []string, maxLen int) []string {
	if len(rows) == 0 {
		return nil
	}

	rowCost := len(rows[0])
	rowsPerBlock := len(rows)
	if rowCost > 0 && maxLen/rowCost > 0 {
		rowsPerBlock = maxLen / rowCost
	}
	if rowsPerBlock < 1 {
		rowsPerBlock = 1
	}

	var blocks []string
	remaining := rows
	for len(remaining)*rowCost > maxLen {
		blocks = append(blocks, wrapCodeBlock(remaining[:rowsPerBlock]))
		remaining = remaining[rowsPerBlock:]
	}
	if len(remaining) > 0 {
		blocks = append(blocks, wrapCodeBlock(remaining))
	}
	return blocks
}

// CodeBlock wraps arbitrary text in a single code block. Used for one-row
// replies and friendly "no data" messages.
func CodeBlock(text string) string {
	return codeBlockDelimiter + text + codeBlockDelimiter
}

func wrapCodeBlock(rows []string) string {
	var sb strings.Builder
	sb.WriteString(codeBlockDelimiter)
	for _, row := range rows {
		sb.WriteString(row)
	}
	sb.WriteString(codeBlockDelimiter)
	return sb.String()
}
