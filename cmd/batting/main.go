// Command batting computes career batting statistics from a yearly batting
// file and joins in player identities from a people file.
//
// usage: batting <batting.csv> <people.csv> <out.csv>
//
// The batting file needs a playerID column and numeric H, AB and G
// columns; the people file needs playerID, nameFirst and nameLast.  The
// output holds one row per player with more than 1000 career games: the
// player id, display name, career batting average (H/AB rounded to three
// digits), and the career totals, ordered by batting average descending.
package main

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"tab"
	"tab/att"
)

const (
	playerID  = att.Attribute("playerID")
	hits      = att.Attribute("H")
	atBats    = att.Attribute("AB")
	games     = att.Attribute("G")
	nameFirst = att.Attribute("nameFirst")
	nameLast  = att.Attribute("nameLast")
	name      = att.Attribute("name")
	average   = att.Attribute("average")
)

func main() {
	if len(os.Args) != 4 {
		fmt.Fprintf(os.Stderr, "usage: %s <batting.csv> <people.csv> <out.csv>\n", os.Args[0])
		os.Exit(2)
	}
	log, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(os.Args[1], os.Args[2], os.Args[3], log); err != nil {
		log.Error("pipeline failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(battingPath, peoplePath, outPath string, log *zap.Logger) error {
	start := time.Now()

	batting, err := tab.ReadCSVFile(battingPath,
		tab.WithLogger(log),
		tab.WithKinds(map[att.Attribute]att.Kind{
			hits:   att.IntKind,
			atBats: att.IntKind,
			games:  att.IntKind,
		}))
	if err != nil {
		return err
	}
	log.Info("loaded batting seasons",
		zap.String("file", battingPath),
		zap.Int("rows", batting.Card()),
		zap.Int("columns", batting.Deg()))

	people, err := tab.ReadCSVFile(peoplePath, tab.WithLogger(log))
	if err != nil {
		return err
	}
	log.Info("loaded people",
		zap.String("file", peoplePath),
		zap.Int("rows", people.Card()))

	career := batting.
		Project(playerID, hits, atBats, games).
		GroupBy(playerID).
		Reduce(tab.Sum(hits, hits), tab.Sum(atBats, atBats), tab.Sum(games, games)).
		Restrict(games.GT(1000)).
		Derive(average, tab.Round(tab.Div(tab.Field(hits), tab.Field(atBats)), 3)).
		OrderBy(tab.Desc(average)).
		LeftJoin(people.Project(playerID, nameFirst, nameLast), tab.On(playerID, playerID)).
		Derive(name, tab.Concat(" ", tab.Field(nameFirst), tab.Field(nameLast))).
		Without(nameFirst, nameLast).
		Rename(playerID, "player").
		Reorder("player", name, average)
	if err := career.Err(); err != nil {
		return err
	}
	log.Info("computed career summaries",
		zap.Int("players", career.Card()),
		zap.Duration("elapsed", time.Since(start)))

	if err := career.WriteCSVFile(outPath); err != nil {
		return err
	}
	log.Info("wrote summary", zap.String("file", outPath))
	return nil
}
