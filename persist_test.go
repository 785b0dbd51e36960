package tab

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tab/att"
)

func TestWriteCSV(t *testing.T) {
	d := mustNew(
		[]att.Column{
			{Name: "player", Kind: att.StringKind},
			{Name: "average", Kind: att.FloatKind},
			{Name: games, Kind: att.IntKind},
		},
		row(str("alonspe01"), flt(0.314), num(1100)),
		row(str("burkeja01"), att.Null(), num(1200)),
	)
	var buf bytes.Buffer
	require.NoError(t, d.WriteCSV(&buf))
	assert.Equal(t, "player,average,G\nalonspe01,0.314,1100\nburkeja01,,1200\n", buf.String())
}

// written and re-read, a dataset comes back row for row, column for
// column, bit for bit
func TestRoundTrip(t *testing.T) {
	d := mustNew(
		[]att.Column{
			{Name: "player", Kind: att.StringKind},
			{Name: "average", Kind: att.FloatKind},
			{Name: games, Kind: att.IntKind},
		},
		row(str("alonspe01"), flt(0.3142857142857143), num(1100)),
		row(str("burkeja01"), flt(0.35), num(1200)),
		row(str("carewro01"), att.Null(), att.Null()),
	)
	var buf bytes.Buffer
	require.NoError(t, d.WriteCSV(&buf))

	d2, err := ReadCSV(strings.NewReader(buf.String()))
	require.NoError(t, err)
	assert.Equal(t, d.Columns(), d2.Columns())
	require.Equal(t, d.Card(), d2.Card())
	for i := 0; i < d.Card(); i++ {
		assert.Equal(t, d.Row(i), d2.Row(i))
	}
}

// when every float in a column happens to be integral, reloading infers
// int; the declared-kinds override restores the schema exactly
func TestRoundTripWithKindOverride(t *testing.T) {
	d := mustNew(
		[]att.Column{{Name: "rate", Kind: att.FloatKind}},
		row(flt(2)),
		row(flt(3)),
	)
	var buf bytes.Buffer
	require.NoError(t, d.WriteCSV(&buf))

	d2, err := ReadCSV(strings.NewReader(buf.String()), WithKinds(map[att.Attribute]att.Kind{
		"rate": att.FloatKind,
	}))
	require.NoError(t, err)
	assert.Equal(t, d.Columns(), d2.Columns())
	assert.Equal(t, d.Row(0), d2.Row(0))
}

func TestWriteCSVFailedPipelineWritesNothing(t *testing.T) {
	d := battingSeasons().Project("Salary")

	var buf bytes.Buffer
	var missing *att.MissingKeyError
	require.ErrorAs(t, d.WriteCSV(&buf), &missing)
	assert.Zero(t, buf.Len())

	path := filepath.Join(t.TempDir(), "out.csv")
	require.ErrorAs(t, d.WriteCSVFile(path), &missing)
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestWriteCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, battingSeasons().WriteCSVFile(path))

	d, err := ReadCSVFile(path)
	require.NoError(t, err)
	assert.Equal(t, battingSeasons().Columns(), d.Columns())
	assert.Equal(t, battingSeasons().Card(), d.Card())
}
