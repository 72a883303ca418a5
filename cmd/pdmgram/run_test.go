package main

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/cwbudde/algo-pdm/stats/pdm"
	"github.com/cwbudde/algo-pdm/stats/pdm/timeaxis"
)

const squareCSV = `time,signal
0.0,1.0
0.25,-1.0
0.5,1.0
0.75,-1.0
`

var squareArgs = []string{"--min-freq", "0.5", "--max-freq", "2", "--n-freqs", "4", "--n-bins", "2"}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func parseCSVOutput(t *testing.T, out string) ([]float64, []float64) {
	t.Helper()

	rows, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Equal(t, []string{"frequency", "theta"}, rows[0])

	var freqs, theta []float64
	for _, row := range rows[1:] {
		f, err := strconv.ParseFloat(row[0], 64)
		require.NoError(t, err)
		th, err := strconv.ParseFloat(row[1], 64)
		require.NoError(t, err)

		freqs = append(freqs, f)
		theta = append(theta, th)
	}

	return freqs, theta
}

func TestRunCSV(t *testing.T) {
	path := writeFile(t, "square.csv", squareCSV)

	out, _, err := execute(t, append([]string{"run", "--format", "csv", path}, squareArgs...)...)
	require.NoError(t, err)

	freqs, theta := parseCSVOutput(t, out)
	assert.Equal(t, []float64{0.5, 1, 1.5, 2}, freqs)
	assert.InDeltaSlice(t, []float64{1, 1.5, 1, 0}, theta, 1e-12)
}

func TestRunJSON(t *testing.T) {
	path := writeFile(t, "square.csv", squareCSV)

	out, _, err := execute(t, append([]string{"run", "--format", "json", path}, squareArgs...)...)
	require.NoError(t, err)

	var got gridOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got.Frequencies, 4)
	require.Len(t, got.Theta, 4)
	assert.InDelta(t, 0, got.Theta[3], 1e-12)
}

func TestRunText(t *testing.T) {
	path := writeFile(t, "square.csv", squareCSV)

	out, _, err := execute(t, append([]string{"run", path}, squareArgs...)...)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "FREQUENCY")
	assert.Contains(t, lines[0], "THETA")
	assert.Contains(t, lines[4], "0.000000")
}

func TestRunVerboseLogsDiagnostics(t *testing.T) {
	path := writeFile(t, "square.csv", squareCSV)

	_, errOut, err := execute(t, append([]string{"run", "-v", path}, squareArgs...)...)
	require.NoError(t, err)
	assert.Contains(t, errOut, "periodogram computed")
	assert.Contains(t, errOut, "observations loaded")
}

func TestRunConfigFile(t *testing.T) {
	data := writeFile(t, "obs.csv", "t,y\n0.0,1.0\n0.25,-1.0\n0.5,1.0\n0.75,-1.0\n")
	config := writeFile(t, "pdm.yaml", `
min_freq: 0.5
max_freq: 2.0
n_freqs: 4
n_bins: 2
time_column: t
signal_column: y
`)

	out, _, err := execute(t, "run", "--format", "csv", "--config", config, data)
	require.NoError(t, err)

	freqs, theta := parseCSVOutput(t, out)
	assert.Equal(t, []float64{0.5, 1, 1.5, 2}, freqs)
	assert.InDelta(t, 0, theta[3], 1e-12)

	// Explicit flags win over the file.
	out, _, err = execute(t, "run", "--format", "csv", "--config", config, "--n-freqs", "7", data)
	require.NoError(t, err)

	freqs, _ = parseCSVOutput(t, out)
	assert.Len(t, freqs, 7)
}

func TestRunXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "square.xlsx")

	f := excelize.NewFile()
	defer f.Close()

	rows := [][]any{{"time", "signal"}, {0.0, 1.0}, {0.25, -1.0}, {0.5, 1.0}, {0.75, -1.0}}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	require.NoError(t, f.SaveAs(path))

	out, _, err := execute(t, append([]string{"run", "--format", "csv", path}, squareArgs...)...)
	require.NoError(t, err)

	_, theta := parseCSVOutput(t, out)
	assert.InDeltaSlice(t, []float64{1, 1.5, 1, 0}, theta, 1e-12)
}

func TestRunRFC3339(t *testing.T) {
	path := writeFile(t, "stamps.csv", `timestamp,signal
1970-01-01T00:16:40.125Z,1
1970-01-01T00:16:40.375Z,-1
1970-01-01T00:16:40.625Z,1
1970-01-01T00:16:40.875Z,-1
`)

	out, _, err := execute(t, append([]string{"run", "--format", "csv", "--time-format", "rfc3339",
		"--time-column", "timestamp", path}, squareArgs...)...)
	require.NoError(t, err)

	freqs, theta := parseCSVOutput(t, out)
	assert.Equal(t, 0.5, freqs[0])
	assert.Equal(t, 2.0, freqs[3])
	assert.InDeltaSlice(t, []float64{1, 1.5, 1.5, 0}, theta, 1e-9)
}

func TestRunErrors(t *testing.T) {
	data := writeFile(t, "square.csv", squareCSV)
	short := writeFile(t, "short.csv", "time,signal\n0.0,1.0\n0.5\n")

	tests := []struct {
		name string
		args []string
		want error
	}{
		{"missing column", []string{"run", "--signal-column", "flux", data}, nil},
		{"unsupported extension", []string{"run", writeFile(t, "obs.parquet", "")}, nil},
		{"unknown time format", []string{"run", "--time-format", "julian", data}, timeaxis.ErrUnsupportedTimeRepresentation},
		{"reversed range", []string{"run", "--min-freq", "2", "--max-freq", "1", data}, pdm.ErrInvalidFrequencyRange},
		{"zero bins", []string{"run", "--min-freq", "1", "--max-freq", "2", "--n-bins", "0", data}, pdm.ErrInvalidBinCount},
		{"short row", []string{"run", "--min-freq", "1", "--max-freq", "2", short}, nil},
		{"missing file", []string{"run", filepath.Join(t.TempDir(), "none.csv")}, os.ErrNotExist},
		{"missing argument", []string{"run"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, exitUsage, exitCode(err))

			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestObservationsSkipsBlankRows(t *testing.T) {
	rows := [][]string{{"Time", "Signal"}, {"0", "1"}, {"", ""}, {"1", "2"}}

	axis, signal, err := observations(rows, "time", "signal", timeSeconds)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1}, axis.Values())
	assert.Equal(t, []float64{1, 2}, signal)
	assert.Equal(t, timeaxis.KindSeconds, axis.Kind())
}

func TestObservationsHeaderOnly(t *testing.T) {
	_, _, err := observations([][]string{{"time", "signal"}, {" ", ""}}, "time", "signal", timeSeconds)
	require.ErrorIs(t, err, errNoData)
}
