package yamlfmt_test

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ntcforge/tfsmdev/stringtest"
	"github.com/ntcforge/tfsmdev/yamlfmt"
)

var update = flag.Bool("update", false, "update golden files")

func TestEncodeFreshDocument(t *testing.T) {
	t.Parallel()

	records := []yaml.MapSlice{
		{
			{Key: "interface", Value: "GigabitEthernet0/1"},
			{Key: "status", Value: "up"},
			{Key: "vlans", Value: []any{"1", "20"}},
		},
		{
			{Key: "interface", Value: "GigabitEthernet0/2"},
			{Key: "status", Value: "down"},
			{Key: "vlans", Value: []any{"300"}},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, yamlfmt.Encode(yamlfmt.NewDocument(records), &buf))

	want := stringtest.Doc(
		"---",
		"parsed_sample:",
		`  - interface: "GigabitEthernet0/1"`,
		`    status: "up"`,
		"    vlans:",
		`      - "1"`,
		`      - "20"`,
		`  - interface: "GigabitEthernet0/2"`,
		`    status: "down"`,
		"    vlans:",
		`      - "300"`,
	)
	assert.Equal(t, want, buf.String())
}

func TestEncodeQuotesAmbiguousCaptures(t *testing.T) {
	t.Parallel()

	// Captures that would reload as numbers or booleans without quoting.
	records := []yaml.MapSlice{
		{
			{Key: "uptime", Value: "300"},
			{Key: "enabled", Value: "true"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, yamlfmt.Encode(yamlfmt.NewDocument(records), &buf))

	assert.Contains(t, buf.String(), `uptime: "300"`)
	assert.Contains(t, buf.String(), `enabled: "true"`)
}

func TestEncodeErrors(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		doc      *yamlfmt.Document
		expected error
	}{
		"missing records key": {
			doc:      &yamlfmt.Document{Body: yaml.MapSlice{{Key: "other", Value: []any{}}}},
			expected: yamlfmt.ErrMissingRecords,
		},
		"top-level scalar": {
			doc:      &yamlfmt.Document{Body: "just a scalar"},
			expected: yamlfmt.ErrMissingRecords,
		},
		"records key holds a scalar": {
			doc:      &yamlfmt.Document{Body: yaml.MapSlice{{Key: yamlfmt.RecordsKey, Value: "nope"}}},
			expected: yamlfmt.ErrUnexpectedShape,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			err := yamlfmt.Encode(tc.doc, &buf)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.expected)
		})
	}
}

func TestWriteFileRoundTripStable(t *testing.T) {
	t.Parallel()

	src := stringtest.Doc(
		"---",
		"parsed_sample:",
		"  # collected from lab switch",
		"  - interface: Gi0/1 #link is stable",
		"    status: up",
		"  - interface: Gi0/2",
		"    #oper state pending",
		"    #awaiting config",
		"    status: down",
	)

	doc, err := yamlfmt.Load(strings.NewReader(src))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "parsed_sample.yml")
	require.NoError(t, yamlfmt.WriteFile(doc, path))

	first, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Contains(t, string(first), `interface: "Gi0/1"`)
	assert.Contains(t, string(first), "# link is stable")
	assert.Contains(t, string(first), "# oper state pending")
	assert.Contains(t, string(first), "# awaiting config")
	assert.True(t, strings.HasPrefix(string(first), "---\n"))

	// Canonical output is a fixed point: a second load/write pass must not
	// change a single byte.
	doc, err = yamlfmt.LoadFile(path)
	require.NoError(t, err)
	require.NoError(t, yamlfmt.WriteFile(doc, path))

	second, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestWriteFileGolden(t *testing.T) {
	doc, err := yamlfmt.LoadFile(filepath.Join("testdata", "load", "parsed_sample.yml"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, yamlfmt.Encode(doc, &buf))

	goldenPath := filepath.Join("testdata", "expected", "parsed_sample.yml")

	if *update {
		require.NoError(t, os.WriteFile(goldenPath, buf.Bytes(), 0o644))

		return
	}

	want, err := os.ReadFile(goldenPath)
	require.NoError(t, err, "golden file %s not found; run with -update to create", goldenPath)

	assert.Equal(t, string(want), buf.String())
}

func TestLoadFileMissing(t *testing.T) {
	t.Parallel()

	_, err := yamlfmt.LoadFile(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, yamlfmt.ErrReadInput)
}

func TestWriteFileOverwrites(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "parsed_sample.yml")
	require.NoError(t, os.WriteFile(path, []byte("stale content\n"), 0o644))

	records := []yaml.MapSlice{{{Key: "a", Value: "x"}}}
	require.NoError(t, yamlfmt.WriteFile(yamlfmt.NewDocument(records), path))

	got, err := os.ReadFile(path)
	require.NoError(t, err)

	want := stringtest.Doc(
		"---",
		"parsed_sample:",
		`  - a: "x"`,
	)
	assert.Equal(t, want, string(got))
}
