// Package importer loads translation segments in bulk from tab-separated files.
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dingla0/TranslationTracker/internal/service/segment"
)

// Recognised header columns. source_text and target_text are required.
const (
	colSource         = "source_text"
	colTarget         = "target_text"
	colSourceLanguage = "source_language"
	colTargetLanguage = "target_language"
	colContext        = "context"
	colEvent          = "event"
	colTopic          = "topic"
)

var knownColumns = map[string]bool{
	colSource: true, colTarget: true,
	colSourceLanguage: true, colTargetLanguage: true,
	colContext: true, colEvent: true, colTopic: true,
}

// ErrMissingColumn is returned when the header lacks a required column.
var ErrMissingColumn = errors.New("missing required column")

// Row is one parsed data line. Line is 1-based and counts the header.
type Row struct {
	Line  int
	Input segment.CreateSegmentInput
}

// ParseTSV reads a header line followed by data lines. Column order is taken
// from the header; unknown columns are ignored. Lines starting with '#' and
// blank lines are skipped.
func ParseTSV(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.Comma = '\t'
	reader.Comment = '#'
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if knownColumns[name] {
			cols[name] = i
		}
	}
	for _, required := range []string{colSource, colTarget} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, required)
		}
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		line, _ := reader.FieldPos(0)

		if isBlank(record) {
			continue
		}

		field := func(name string) string {
			i, ok := cols[name]
			if !ok || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		rows = append(rows, Row{
			Line: line,
			Input: segment.CreateSegmentInput{
				SourceText:     field(colSource),
				TargetText:     field(colTarget),
				SourceLanguage: field(colSourceLanguage),
				TargetLanguage: field(colTargetLanguage),
				Context:        optional(field(colContext)),
				Event:          optional(field(colEvent)),
				Topic:          optional(field(colTopic)),
			},
		})
	}

	return rows, nil
}

func isBlank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
