package dataset

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/haskel/statkit/internal/stats/association"
	"github.com/haskel/statkit/internal/stats/survival"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestFormatOf(t *testing.T) {
	require.Equal(t, FormatYAML, FormatOf("a/b.yaml"))
	require.Equal(t, FormatYAML, FormatOf("B.YML"))
	require.Equal(t, FormatJSON, FormatOf("c.json"))
	require.Equal(t, FormatJSON, FormatOf("noext"))
}

func TestReadObservations_JSON(t *testing.T) {
	path := writeFile(t, "obs.json", `[{"time":1,"event":1},{"time":3,"event":0}]`)

	obs, err := ReadObservations(path)
	require.NoError(t, err)
	require.Equal(t, []survival.Observation{{Time: 1, Event: 1}, {Time: 3, Event: 0}}, obs)
}

func TestReadObservations_YAML(t *testing.T) {
	path := writeFile(t, "obs.yaml", "- time: 2.5\n  event: 1\n- time: 4\n  event: 0\n")

	obs, err := ReadObservations(path)
	require.NoError(t, err)
	require.Equal(t, []survival.Observation{{Time: 2.5, Event: 1}, {Time: 4, Event: 0}}, obs)
}

func TestReadPairsAndGroups(t *testing.T) {
	pairs, err := ReadPairs(writeFile(t, "p.yml", "- {x: 1, y: 2}\n- {x: 3, y: 4}\n"))
	require.NoError(t, err)
	require.Equal(t, []association.Pair{{X: 1, Y: 2}, {X: 3, Y: 4}}, pairs)

	groups, err := ReadGroups(writeFile(t, "g.json", `[{"group":0,"score":1.5},{"group":1,"score":2}]`))
	require.NoError(t, err)
	require.Equal(t, []association.GroupScore{{Group: 0, Score: 1.5}, {Group: 1, Score: 2}}, groups)
}

func TestReadTable(t *testing.T) {
	table, err := ReadTable(writeFile(t, "t.json", `[[10,5],[3,12]]`))
	require.NoError(t, err)
	require.Equal(t, association.Table{{10, 5}, {3, 12}}, table)

	table, err = ReadTable(writeFile(t, "t.yaml", "- [1, 2]\n- [3, 4]\n"))
	require.NoError(t, err)
	require.Equal(t, association.Table{{1, 2}, {3, 4}}, table)
}

func TestReadSampleAndCorpus(t *testing.T) {
	sample, err := ReadSample(writeFile(t, "s.json", `[1, 2.5, -3]`))
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2.5, -3}, sample)

	corpus, err := ReadCorpus(writeFile(t, "c.yaml", "a: win prize\nb: meeting notes\n"))
	require.NoError(t, err)
	require.Equal(t, Corpus{A: "win prize", B: "meeting notes"}, corpus)
}

func TestRead_Errors(t *testing.T) {
	_, err := ReadSample(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to open dataset")

	_, err = ReadSample(writeFile(t, "bad.json", `{not json`))
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse json")
}

func TestWriteDecodeRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, []float64{1, 2}))
	require.True(t, strings.HasSuffix(buf.String(), "\n"))

	var got []float64
	require.NoError(t, Decode(&buf, FormatJSON, &got))
	require.Equal(t, []float64{1, 2}, got)
}
