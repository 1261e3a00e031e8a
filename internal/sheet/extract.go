package sheet

import (
	"regexp"
	"strings"

	"anand/fintrack/internal/logging"
)

// Header signals. The header row is the first row containing both a
// date-like label and a transaction-descriptor label.
var (
	headerDatePattern = regexp.MustCompile(`(?i)date`)
	headerDescPattern = regexp.MustCompile(`(?i)(narration|description|withdrawal|deposit|withdrawal amt|deposit amt|particulars)`)
)

// Footer markers. The first row containing any of these stops row
// ingestion permanently; banks append summaries and boilerplate after
// the transaction table.
var footerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)statement summary`),
	regexp.MustCompile(`(?i)end of statement`),
	regexp.MustCompile(`(?i)opening balance`),
	regexp.MustCompile(`(?i)registered office`),
	regexp.MustCompile(`(?i)generated on`),
	regexp.MustCompile(`(?i)page no\.`),
}

// DataRow is a single statement row keyed by header label, with its
// original position in the sheet for diagnostics.
type DataRow struct {
	Index  int
	Values map[string]string
}

// Get returns the cell under the given header label, or "".
func (r DataRow) Get(label string) string {
	return r.Values[label]
}

// Table is the extraction result: the chosen header labels in order
// and the data rows beneath them. Empty holds the sheet indices of
// all-blank rows between header and footer, so the pipeline can report
// them instead of losing them silently.
type Table struct {
	Headers   []string
	HeaderIdx int
	Rows      []DataRow
	Empty     []int
}

// Extract scans the grid for the header row, labels every subsequent
// row by header position, and stops at the first footer marker. An
// empty or unrecognizable grid yields an empty table, never an error.
func Extract(grid [][]string, logger logging.Logger) Table {
	headerIdx := findHeaderRow(grid)
	table := Table{HeaderIdx: headerIdx}

	if len(grid) == 0 {
		return table
	}

	if headerIdx < 0 {
		// No dual-signal row anywhere: fall back to row 0 and hope the
		// sheet starts with its header. This can mislabel unusual
		// layouts; the mapping downstream degrades positionally.
		logger.Warn("No header row detected, falling back to first row")
		headerIdx = 0
		table.HeaderIdx = 0
	}

	for _, cell := range grid[headerIdx] {
		label := strings.TrimSpace(cell)
		if label == "" {
			continue
		}
		table.Headers = append(table.Headers, label)
	}

	logger.Debug("Selected header row",
		logging.Field{Key: logging.FieldHeaderRow, Value: headerIdx},
		logging.Field{Key: logging.FieldCount, Value: len(table.Headers)})

	if len(table.Headers) == 0 {
		return table
	}

	for i := headerIdx + 1; i < len(grid); i++ {
		row := grid[i]
		if rowHasFooterMarker(row) {
			logger.Debug("Footer marker found, stopping row ingestion",
				logging.Field{Key: logging.FieldRow, Value: i})
			break
		}

		values := make(map[string]string, len(table.Headers))
		populated := 0
		for pos, label := range table.Headers {
			var cell string
			if pos < len(row) {
				cell = row[pos]
			}
			values[label] = cell
			if strings.TrimSpace(cell) != "" {
				populated++
			}
		}
		if populated == 0 {
			table.Empty = append(table.Empty, i)
			continue
		}

		table.Rows = append(table.Rows, DataRow{Index: i, Values: values})
	}

	return table
}

// findHeaderRow returns the index of the first row carrying both a
// date signal and a descriptor signal, or -1.
func findHeaderRow(grid [][]string) int {
	for i, row := range grid {
		hasDate, hasDesc := false, false
		for _, cell := range row {
			if headerDatePattern.MatchString(cell) {
				hasDate = true
			}
			if headerDescPattern.MatchString(cell) {
				hasDesc = true
			}
		}
		if hasDate && hasDesc {
			return i
		}
	}
	return -1
}

func rowHasFooterMarker(row []string) bool {
	for _, cell := range row {
		for _, p := range footerPatterns {
			if p.MatchString(cell) {
				return true
			}
		}
	}
	return false
}
