package importer

import (
	"bytes"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/unicode"

	"workbase/internal/shared/errors"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// DetectDelimiter maps a filename to the delimiter of its format. Spreadsheet
// binaries are rejected outright: they are container formats, not delimited
// text, and parsing them as text corrupts every row.
func DetectDelimiter(filename string) (rune, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv", ".txt":
		return ',', nil
	case ".tsv":
		return '\t', nil
	case ".xlsx", ".xls":
		return 0, errors.NewValidationError(
			"spreadsheet files are not supported",
			"export the sheet as CSV and upload that instead")
	default:
		return 0, errors.NewValidationError("unsupported file type", "expected .csv, .tsv or .txt")
	}
}

// decodeToUTF8 strips a BOM and converts UTF-16 input to UTF-8. Input without
// a BOM is passed through unchanged.
func decodeToUTF8(data []byte) ([]byte, error) {
	switch {
	case bytes.HasPrefix(data, bomUTF8):
		return data[len(bomUTF8):], nil
	case bytes.HasPrefix(data, bomUTF16LE):
		dec := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
		return dec.Bytes(data[len(bomUTF16LE):])
	case bytes.HasPrefix(data, bomUTF16BE):
		dec := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()
		return dec.Bytes(data[len(bomUTF16BE):])
	default:
		return data, nil
	}
}

// ParseDelimited parses raw delimited-text bytes into rows of fields, header
// row first. Fields are scanned character by character with a quote-toggle:
// a delimiter inside an open quote is literal. Naively splitting on the
// delimiter would corrupt any field containing a quoted delimiter, which is
// routine in free-text descriptions.
func ParseDelimited(data []byte, delimiter rune) ([][]string, error) {
	decoded, err := decodeToUTF8(data)
	if err != nil {
		return nil, errors.NewValidationError("file is not valid text", err.Error())
	}

	var rows [][]string
	for _, line := range splitLines(string(decoded)) {
		if line == "" {
			continue
		}
		rows = append(rows, parseLine(line, delimiter))
	}
	return rows, nil
}

func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.Split(s, "\n")
}

// parseLine splits one line on the delimiter, honoring quotes. Outer quotes
// are stripped from each field and doubled quotes inside a quoted field
// collapse to a single literal quote.
func parseLine(line string, delimiter rune) []string {
	var fields []string
	var cur strings.Builder
	inQuotes := false

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		switch {
		case ch == '"':
			if inQuotes && i+1 < len(runes) && runes[i+1] == '"' {
				cur.WriteRune('"')
				i++
				continue
			}
			inQuotes = !inQuotes
		case ch == delimiter && !inQuotes:
			fields = append(fields, cleanField(cur.String()))
			cur.Reset()
		default:
			cur.WriteRune(ch)
		}
	}
	fields = append(fields, cleanField(cur.String()))
	return fields
}

func cleanField(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		s = s[1 : len(s)-1]
	}
	return strings.TrimSpace(s)
}

// FilterRows drops rows that carry no data: rows whose cells are all empty,
// and template guidance rows, which start with a parenthesized instruction
// in the first cell.
func FilterRows(rows [][]string) [][]string {
	filtered := make([][]string, 0, len(rows))
	for _, row := range rows {
		if isBlankRow(row) {
			continue
		}
		if strings.HasPrefix(strings.TrimSpace(row[0]), "(") {
			continue
		}
		filtered = append(filtered, row)
	}
	return filtered
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
