package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/cwbudde/algo-pdm/stats/pdm/timeaxis"
)

// Time column formats.
const (
	timeSeconds = "seconds"
	timeRFC3339 = "rfc3339"
)

var errNoData = errors.New("file must have a header row and at least one data row")

// readTable returns the rows of a CSV or XLSX file, header first.
func readTable(path, sheet string) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		return readCSV(path)
	case ".xlsx":
		return readXLSX(path, sheet)
	default:
		return nil, fmt.Errorf("unsupported file type %q (want .csv or .xlsx)", filepath.Ext(path))
	}
}

func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1
	reader.Comment = '#'

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}

	return rows, nil
}

func readXLSX(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.New("excel file has no sheets")
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	return rows, nil
}

// observations extracts the time axis and signal from table rows.
func observations(rows [][]string, timeColumn, signalColumn, timeFormat string) (timeaxis.Axis, []float64, error) {
	if len(rows) < 2 {
		return timeaxis.Axis{}, nil, errNoData
	}

	ti, err := columnIndex(rows[0], timeColumn)
	if err != nil {
		return timeaxis.Axis{}, nil, err
	}

	si, err := columnIndex(rows[0], signalColumn)
	if err != nil {
		return timeaxis.Axis{}, nil, err
	}

	var (
		seconds []float64
		stamps  []time.Time
		signal  []float64
	)

	for r, row := range rows[1:] {
		if blank(row) {
			continue
		}

		line := r + 2
		if ti >= len(row) || si >= len(row) {
			return timeaxis.Axis{}, nil, fmt.Errorf("row %d: missing column", line)
		}

		y, err := strconv.ParseFloat(strings.TrimSpace(row[si]), 64)
		if err != nil {
			return timeaxis.Axis{}, nil, fmt.Errorf("row %d: signal: %w", line, err)
		}
		signal = append(signal, y)

		cell := strings.TrimSpace(row[ti])
		switch timeFormat {
		case timeSeconds:
			t, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return timeaxis.Axis{}, nil, fmt.Errorf("row %d: time: %w", line, err)
			}
			seconds = append(seconds, t)
		case timeRFC3339:
			t, err := time.Parse(time.RFC3339Nano, cell)
			if err != nil {
				return timeaxis.Axis{}, nil, fmt.Errorf("row %d: time: %w", line, err)
			}
			stamps = append(stamps, t)
		default:
			return timeaxis.Axis{}, nil, fmt.Errorf("%w: time format %q", timeaxis.ErrUnsupportedTimeRepresentation, timeFormat)
		}
	}

	if len(signal) == 0 {
		return timeaxis.Axis{}, nil, errNoData
	}

	if timeFormat == timeRFC3339 {
		return timeaxis.FromTimes(stamps), signal, nil
	}

	return timeaxis.FromSeconds(seconds), signal, nil
}

func columnIndex(header []string, name string) (int, error) {
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i, nil
		}
	}

	return 0, fmt.Errorf("column %q not found in header %v", name, header)
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}

	return true
}
