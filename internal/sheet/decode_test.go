package sheet

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatForFile(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		expected Format
		wantErr  bool
	}{
		{name: "xlsx", filename: "statement.xlsx", expected: FormatXLSX},
		{name: "xls", filename: "Statement.XLS", expected: FormatXLS},
		{name: "csv", filename: "export.csv", expected: FormatCSV},
		{name: "pdf unsupported", filename: "statement.pdf", wantErr: true},
		{name: "no extension", filename: "statement", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format, err := FormatForFile(tt.filename)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, format)
		})
	}
}

func TestDecodeCSV(t *testing.T) {
	input := "Date,Narration,Amount\n01/04/24,\"UPI, SWIGGY\",450.00\n02/04/24,SALARY\n"

	grid, err := Decode(strings.NewReader(input), FormatCSV)
	require.NoError(t, err)

	require.Len(t, grid, 3)
	assert.Equal(t, []string{"Date", "Narration", "Amount"}, grid[0])
	assert.Equal(t, "UPI, SWIGGY", grid[1][1])
	// Ragged rows survive.
	assert.Len(t, grid[2], 2)
}

func TestDecodeUnknownFormat(t *testing.T) {
	_, err := Decode(strings.NewReader(""), Format("ods"))
	assert.Error(t, err)
}

func TestNumericCell(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
		ok       bool
	}{
		{name: "integer serial", input: "45000", expected: 45000, ok: true},
		{name: "fractional serial", input: "45000.5", expected: 45000.5, ok: true},
		{name: "padded", input: " 42 ", expected: 42, ok: true},
		{name: "empty", input: "", ok: false},
		{name: "date text", input: "01/04/24", ok: false},
		{name: "words", input: "Bank Transaction", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, ok := NumericCell(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, value)
			}
		})
	}
}
