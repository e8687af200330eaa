// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package intake turns an uploaded file into text for imb.Prepare.
package intake

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ReadError is returned for any file that could not be read. Callers show
// Message and carry on with no supplementary input.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// Message is the user facing text for a failed read.
func (e *ReadError) Message() string {
	return "Failed to read file."
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadFile returns the text content of path. Workbooks (.xlsx) yield one line
// per non-empty cell; every other file is read as UTF-8 text.
func ReadFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", &ReadError{Path: path, Err: err}
	}
	defer f.Close()

	return Read(filepath.Base(path), f)
}

// Read is ReadFile for an already open stream; name selects the format.
func Read(name string, r io.Reader) (string, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return "", &ReadError{Path: name, Err: err}
	}

	if strings.EqualFold(filepath.Ext(name), ".xlsx") {
		text, err := workbookText(content)
		if err != nil {
			return "", &ReadError{Path: name, Err: err}
		}
		return text, nil
	}

	return string(bytes.TrimPrefix(content, utf8BOM)), nil
}

func workbookText(content []byte) (string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return "", err
	}
	defer f.Close()

	var b strings.Builder
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			slog.Warn("skipping unreadable sheet", "sheet", sheet, "error", err)
			continue
		}
		for _, row := range rows {
			for _, cell := range row {
				cell = strings.TrimSpace(cell)
				if cell == "" {
					continue
				}
				b.WriteString(cell)
				b.WriteByte('\n')
			}
		}
	}
	return b.String(), nil
}
