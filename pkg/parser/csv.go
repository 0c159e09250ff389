package parser

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Warning represents a non-fatal issue encountered during CSV parsing.
type Warning struct {
	Row     int
	Message string
}

// Table is a parsed CSV file: trimmed headers plus one header-keyed record
// per data row, alongside any warnings.
type Table struct {
	Headers  []string
	Records  []map[string]string
	Warnings []Warning
}

// Options controls parsing of a single file.
type Options struct {
	// SkipLines drops this many raw lines before the header row. Report-style
	// exports carry metadata lines above the real header.
	SkipLines int
}

// Has reports whether the table carries the named column.
func (t *Table) Has(col string) bool {
	for _, h := range t.Headers {
		if h == col {
			return true
		}
	}
	return false
}

// Parse parses CSV bytes into a Table. It detects and decodes the input
// encoding, skips leading metadata lines, and tolerates mismatched column
// counts (pad/truncate) and unparseable rows, recording each as a warning.
// A file with a header but no data rows yields an empty Table.
func Parse(data []byte, opts Options) (*Table, error) {
	decoded, _, err := DetectAndDecode(data)
	if err != nil {
		return nil, fmt.Errorf("encoding detection failed: %w", err)
	}
	decoded = skipLines(decoded, opts.SkipLines)

	reader := csv.NewReader(bytes.NewReader(decoded))
	// Allow variable field counts per record — padding/truncation is handled here.
	reader.FieldsPerRecord = -1
	// Lazy quotes keep real-world exports with stray quotes parseable.
	reader.LazyQuotes = true

	headers, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty file: no header row found")
		}
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}
	for i, h := range headers {
		headers[i] = strings.TrimSpace(h)
	}

	headerCount := len(headers)
	table := &Table{Headers: headers}
	rowNum := opts.SkipLines + 1 // 1-indexed over the raw file, header included

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		rowNum++

		if err != nil {
			table.Warnings = append(table.Warnings, Warning{
				Row:     rowNum,
				Message: fmt.Sprintf("parse error: %v", err),
			})
			continue
		}

		if len(row) != headerCount {
			if len(row) < headerCount {
				table.Warnings = append(table.Warnings, Warning{
					Row:     rowNum,
					Message: fmt.Sprintf("row has %d columns, expected %d; padding with empty values", len(row), headerCount),
				})
				padded := make([]string, headerCount)
				copy(padded, row)
				row = padded
			} else {
				table.Warnings = append(table.Warnings, Warning{
					Row:     rowNum,
					Message: fmt.Sprintf("row has %d columns, expected %d; truncating extra columns", len(row), headerCount),
				})
				row = row[:headerCount]
			}
		}

		record := make(map[string]string, headerCount)
		for i, h := range headers {
			record[h] = row[i]
		}
		table.Records = append(table.Records, record)
	}

	return table, nil
}

// skipLines drops n leading raw lines. Metadata lines above the header are
// not guaranteed to be well-formed CSV, so they are removed before the csv
// reader ever sees them.
func skipLines(data []byte, n int) []byte {
	for ; n > 0; n-- {
		idx := bytes.IndexByte(data, '\n')
		if idx < 0 {
			return nil
		}
		data = data[idx+1:]
	}
	return data
}
