package tab

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"tab/att"
)

func TestReadCSV(t *testing.T) {
	src := "playerID,H,AB\nalonspe01,150,500\nburkeja01,210,600\n"
	d, err := ReadCSV(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []att.Column{
		{Name: playerID, Kind: att.StringKind},
		{Name: hits, Kind: att.IntKind},
		{Name: atBats, Kind: att.IntKind},
	}, d.Columns())
	assert.Equal(t, 2, d.Card())
	assert.Equal(t, row(str("alonspe01"), num(150), num(500)), d.Row(0))
}

func TestReadCSVInfersFromWholeColumn(t *testing.T) {
	// the divergent value is on the last row; a leading-sample inference
	// would have called this column int
	src := "x\n1\n2\n3\n2.5\n"
	d, err := ReadCSV(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, att.FloatKind, d.Columns()[0].Kind)
	assert.Equal(t, flt(1), d.Row(0)[0])
	assert.Equal(t, flt(2.5), d.Row(3)[0])
}

func TestReadCSVInferenceConflict(t *testing.T) {
	src := "G,name\n10,a\ntwenty,b\n30,c\n"
	_, err := ReadCSV(strings.NewReader(src))
	var inf *att.SchemaInferenceError
	require.ErrorAs(t, err, &inf)
	assert.Equal(t, att.Attribute("G"), inf.Col)
	assert.Equal(t, 1, inf.Row)
	assert.Equal(t, "twenty", inf.Value)
}

func TestReadCSVKindOverride(t *testing.T) {
	// the same conflicted column loads fine once declared a string
	src := "G,name\n10,a\ntwenty,b\n30,c\n"
	d, err := ReadCSV(strings.NewReader(src), WithKinds(map[att.Attribute]att.Kind{
		"G": att.StringKind,
	}))
	require.NoError(t, err)
	assert.Equal(t, att.StringKind, d.Columns()[0].Kind)
	assert.Equal(t, str("twenty"), d.Row(1)[0])

	// an int override rejects the value it cannot hold
	_, err = ReadCSV(strings.NewReader(src), WithKinds(map[att.Attribute]att.Kind{
		"G": att.IntKind,
	}))
	var inf *att.SchemaInferenceError
	require.ErrorAs(t, err, &inf)
	assert.Equal(t, att.Attribute("G"), inf.Col)
}

func TestReadCSVOverrideUnknownColumn(t *testing.T) {
	src := "G\n10\n"
	_, err := ReadCSV(strings.NewReader(src), WithKinds(map[att.Attribute]att.Kind{
		"Salary": att.IntKind,
	}))
	var missing *att.MissingKeyError
	require.ErrorAs(t, err, &missing)
}

func TestReadCSVDuplicateHeader(t *testing.T) {
	src := "G,G\n1,2\n"
	_, err := ReadCSV(strings.NewReader(src))
	var dup *att.DuplicateColumnError
	require.ErrorAs(t, err, &dup)
}

func TestReadCSVEmptyCellsAreNullAndWarn(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	src := "playerID,G\nalonspe01,10\nburkeja01,\n"
	d, err := ReadCSV(strings.NewReader(src), WithLogger(zap.New(core)))
	require.NoError(t, err)
	assert.Equal(t, att.IntKind, d.Columns()[1].Kind)
	assert.True(t, d.Row(1)[1].IsNull())

	warned := logs.FilterMessage("column has empty cells, loaded as null").All()
	require.Len(t, warned, 1)
	assert.Equal(t, "G", warned[0].ContextMap()["column"])
}

func TestReadCSVNumbersAreDecimal(t *testing.T) {
	// zero-padded ints keep their decimal value; they are never read as
	// octal
	src := "G\n010\n08\n"
	d, err := ReadCSV(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, att.IntKind, d.Columns()[0].Kind)
	assert.Equal(t, num(10), d.Row(0)[0])
	assert.Equal(t, num(8), d.Row(1)[0])

	// hex notation is not numeric, so a column of it is a string column
	d2, err := ReadCSV(strings.NewReader("id\n0x1A\n0xFF\n"))
	require.NoError(t, err)
	assert.Equal(t, att.StringKind, d2.Columns()[0].Kind)
	assert.Equal(t, str("0x1A"), d2.Row(0)[0])
}

func TestReadCSVComma(t *testing.T) {
	src := "playerID;G\nalonspe01;10\n"
	d, err := ReadCSV(strings.NewReader(src), WithComma(';'))
	require.NoError(t, err)
	assert.Equal(t, row(str("alonspe01"), num(10)), d.Row(0))
}

func TestReadCSVRaggedRow(t *testing.T) {
	src := "playerID,G\nalonspe01,10,extra\n"
	_, err := ReadCSV(strings.NewReader(src))
	require.Error(t, err)
}
