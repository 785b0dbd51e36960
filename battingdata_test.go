package tab

import (
	"tab/att"
)

// This file contains example data shared by the tests: a few careers of
// yearly batting lines plus an identity table, in the shape of the Lahman
// batting archive.  Magnitudes are synthetic.

const (
	playerID  = att.Attribute("playerID")
	yearID    = att.Attribute("yearID")
	hits      = att.Attribute("H")
	atBats    = att.Attribute("AB")
	games     = att.Attribute("G")
	nameFirst = att.Attribute("nameFirst")
	nameLast  = att.Attribute("nameLast")
)

func mustNew(cols []att.Column, rows ...[]att.Value) *Dataset {
	d, err := New(cols, rows...)
	if err != nil {
		panic(err)
	}
	return d
}

func row(vs ...att.Value) []att.Value {
	return vs
}

func str(s string) att.Value  { return att.StringValue(s) }
func num(i int64) att.Value   { return att.IntValue(i) }
func flt(f float64) att.Value { return att.FloatValue(f) }

// battingSeasons holds one row per player season.  alonspe01 crosses the
// thousand-game line only across seasons, burkeja01 in a single one, and
// carewro01 never does.
func battingSeasons() *Dataset {
	return mustNew(
		[]att.Column{
			{Name: playerID, Kind: att.StringKind},
			{Name: yearID, Kind: att.IntKind},
			{Name: hits, Kind: att.IntKind},
			{Name: atBats, Kind: att.IntKind},
			{Name: games, Kind: att.IntKind},
		},
		row(str("alonspe01"), num(1990), num(150), num(500), num(500)),
		row(str("alonspe01"), num(1991), num(180), num(550), num(600)),
		row(str("burkeja01"), num(1990), num(210), num(600), num(1200)),
		row(str("carewro01"), num(1991), num(100), num(400), num(800)),
	)
}

// people is the identity table; it has no row for burkeja01, so left joins
// against it leave that player's identity null.
func people() *Dataset {
	return mustNew(
		[]att.Column{
			{Name: playerID, Kind: att.StringKind},
			{Name: nameFirst, Kind: att.StringKind},
			{Name: nameLast, Kind: att.StringKind},
		},
		row(str("alonspe01"), str("Pete"), str("Alonso")),
		row(str("carewro01"), str("Rod"), str("Carew")),
	)
}
