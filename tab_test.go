package tab

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tab/att"
)

func TestNew(t *testing.T) {
	d := battingSeasons()
	assert.Equal(t, 5, d.Deg())
	assert.Equal(t, 4, d.Card())
	assert.Equal(t, []att.Attribute{playerID, yearID, hits, atBats, games}, d.Heading())
	assert.NoError(t, d.Err())
}

func TestNewDuplicateColumn(t *testing.T) {
	_, err := New([]att.Column{
		{Name: hits, Kind: att.IntKind},
		{Name: hits, Kind: att.IntKind},
	})
	var dup *att.DuplicateColumnError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, hits, dup.Col)
}

func TestNewDegreeMismatch(t *testing.T) {
	_, err := New([]att.Column{
		{Name: playerID, Kind: att.StringKind},
		{Name: hits, Kind: att.IntKind},
	}, row(str("alonspe01")))
	var deg *att.DegreeError
	require.ErrorAs(t, err, &deg)
	assert.Equal(t, 2, deg.Expected)
	assert.Equal(t, 1, deg.Found)
}

func TestNewKindMismatch(t *testing.T) {
	_, err := New([]att.Column{
		{Name: hits, Kind: att.IntKind},
	}, row(str("many")))
	var inf *att.SchemaInferenceError
	require.ErrorAs(t, err, &inf)
	assert.Equal(t, hits, inf.Col)

	// ints are acceptable in a float column
	_, err = New([]att.Column{
		{Name: hits, Kind: att.FloatKind},
	}, row(num(3)))
	assert.NoError(t, err)

	// nulls are acceptable in any column
	_, err = New([]att.Column{
		{Name: hits, Kind: att.IntKind},
	}, row(att.Null()))
	assert.NoError(t, err)
}

func TestCol(t *testing.T) {
	d := battingSeasons()
	vals, err := d.Col(games)
	require.NoError(t, err)
	assert.Equal(t, []att.Value{num(500), num(600), num(1200), num(800)}, vals)

	_, err = d.Col("Salary")
	var missing *att.MissingKeyError
	require.ErrorAs(t, err, &missing)
}

func TestErrPinsPipeline(t *testing.T) {
	// the first failure travels down the chain untouched
	d := battingSeasons().
		Project("Salary").
		Restrict(games.GT(1000)).
		Rename(hits, "h").
		OrderBy(Asc(games))
	var missing *att.MissingKeyError
	require.ErrorAs(t, d.Err(), &missing)
	assert.Equal(t, att.Attribute("Salary"), missing.Col)
	assert.True(t, errors.Is(d.Err(), d.OrderBy(Asc(games)).Err()))
}
