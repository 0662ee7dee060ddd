package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectDelimiter(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     rune
		wantErr  bool
	}{
		{name: "csv", filename: "export.csv", want: ','},
		{name: "uppercase extension", filename: "EXPORT.CSV", want: ','},
		{name: "tsv", filename: "export.tsv", want: '\t'},
		{name: "txt", filename: "export.txt", want: ','},
		{name: "xlsx rejected", filename: "export.xlsx", wantErr: true},
		{name: "xls rejected", filename: "legacy.xls", wantErr: true},
		{name: "unknown extension rejected", filename: "export.pdf", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectDelimiter(tt.filename)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDelimited_QuotedDelimiter(t *testing.T) {
	data := []byte("Summary,Description\n\"Fix login, registration\",\"Says \"\"hi\"\" twice\"\n")

	rows, err := ParseDelimited(data, ',')
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, []string{"Summary", "Description"}, rows[0])
	assert.Equal(t, "Fix login, registration", rows[1][0])
	assert.Equal(t, `Says "hi" twice`, rows[1][1])
}

func TestParseDelimited_BOMAndLineEndings(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("Summary\r\nfirst\rsecond\n")...)

	rows, err := ParseDelimited(data, ',')
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Summary", rows[0][0])
	assert.Equal(t, "first", rows[1][0])
	assert.Equal(t, "second", rows[2][0])
}

func TestParseDelimited_UTF16LE(t *testing.T) {
	// "A,B\n1,2" in UTF-16LE with BOM.
	text := "A,B\n1,2"
	data := []byte{0xFF, 0xFE}
	for _, r := range text {
		data = append(data, byte(r), 0x00)
	}

	rows, err := ParseDelimited(data, ',')
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"A", "B"}, rows[0])
	assert.Equal(t, []string{"1", "2"}, rows[1])
}

func TestFilterRows(t *testing.T) {
	rows := [][]string{
		{"Summary", "Status"},
		{"", ""},
		{"(enter one task per line)", ""},
		{"Real task", "Done"},
		{"  ", ""},
	}

	filtered := FilterRows(rows)
	require.Len(t, filtered, 2)
	assert.Equal(t, "Summary", filtered[0][0])
	assert.Equal(t, "Real task", filtered[1][0])
}
