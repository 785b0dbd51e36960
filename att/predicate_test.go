package att

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tests for Predicates

func TestStringer(t *testing.T) {
	G := Attribute("G")
	AB := Attribute("AB")
	var predTests = []struct {
		in  fmt.Stringer
		out string
	}{
		{G.EQ(AB), "G == AB"},
		{G.EQ(1000), "G == 1000"},
		{G.NE(AB), "G != AB"},
		{G.LT(AB), "G < AB"},
		{G.LE(AB), "G <= AB"},
		{G.GT(1000), "G > 1000"},
		{G.GE(AB), "G >= AB"},
		{G.GT(1000).And(AB.LT(500)), "(G > 1000) && (AB < 500)"},
		{G.GT(1000).Or(AB.LT(500)), "(G > 1000) || (AB < 500)"},
		{G.GT(1000).Xor(AB.LT(500)), "(G > 1000) != (AB < 500)"},
		{Not(G.GT(1000)), "!(G > 1000)"},
	}
	for _, tt := range predTests {
		assert.Equal(t, tt.out, tt.in.String())
	}
}

func TestComparisonEval(t *testing.T) {
	heading := []Attribute{"player", "G"}
	var evalTests = []struct {
		p    Predicate
		row  []Value
		want bool
	}{
		{Attribute("G").GT(1000), []Value{StringValue("a"), IntValue(1200)}, true},
		{Attribute("G").GT(1000), []Value{StringValue("a"), IntValue(800)}, false},
		{Attribute("G").GT(1000), []Value{StringValue("a"), Null()}, false},
		{Attribute("G").LE(1200), []Value{StringValue("a"), IntValue(1200)}, true},
		{Attribute("player").EQ("a"), []Value{StringValue("a"), IntValue(1)}, true},
		{Attribute("player").NE("a"), []Value{StringValue("a"), IntValue(1)}, false},
		// mixed kinds are incomparable
		{Attribute("player").LT(5), []Value{StringValue("a"), IntValue(1)}, false},
		// ints and floats compare numerically
		{Attribute("G").EQ(2.0), []Value{StringValue("a"), IntValue(2)}, true},
	}
	for _, tt := range evalTests {
		f, err := tt.p.EvalFunc(heading)
		require.NoError(t, err, tt.p)
		assert.Equal(t, tt.want, f(tt.row), "%v on %v", tt.p, tt.row)
	}
}

func TestEvalMissingAttribute(t *testing.T) {
	_, err := Attribute("Salary").GT(0).EvalFunc([]Attribute{"G"})
	var missing *MissingKeyError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, Attribute("Salary"), missing.Col)
}

func TestCombinedEval(t *testing.T) {
	heading := []Attribute{"G", "AB"}
	p := Attribute("G").GT(100).And(Attribute("AB").LT(50))
	f, err := p.EvalFunc(heading)
	require.NoError(t, err)
	assert.True(t, f([]Value{IntValue(200), IntValue(10)}))
	assert.False(t, f([]Value{IntValue(200), IntValue(60)}))

	g, err := Not(p).EvalFunc(heading)
	require.NoError(t, err)
	assert.True(t, g([]Value{IntValue(200), IntValue(60)}))
}

func TestDomain(t *testing.T) {
	p := Attribute("G").GT(100).And(Attribute("AB").LT(Attribute("G")))
	assert.ElementsMatch(t, []Attribute{"G", "AB"}, p.Domain())
}

func TestLiteralError(t *testing.T) {
	_, err := Attribute("G").GT(struct{}{}).EvalFunc([]Attribute{"G"})
	var lit *LiteralError
	require.ErrorAs(t, err, &lit)
}
