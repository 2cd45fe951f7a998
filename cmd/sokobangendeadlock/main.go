// Command sokobangendeadlock runs the deadlock-basis generator (spec.md
// §4.6) and writes the resulting basis and expanded table to disk.
package main

import (
	"flag"
	"log"

	"github.com/vcte/sokoban/basisgen"
	"github.com/vcte/sokoban/config"
	"github.com/vcte/sokoban/deadlock"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a YAML config file (optional)")
		mode       = flag.String("mode", "", "deadlock mode to generate a basis for: dynamic or static (overrides the config file)")
		basisOut   = flag.String("basis-out", "deadlock.basis", "where to write the generated basis file")
		tableOut   = flag.String("table-out", "deadlock.table", "where to write the expanded binary table")
	)
	flag.Parse()

	root := config.Default()
	if *configPath != "" {
		var err error
		root, err = config.FromYaml(*configPath)
		if err != nil {
			log.Fatalf("sokobangendeadlock: %v", err)
		}
	}
	g := root.Generator
	if *mode != "" {
		g.Mode = *mode
	}

	cfg := basisgen.Config{
		MaxRows:            g.MaxRows,
		MaxCols:            g.MaxCols,
		MaxBoxes:           g.MaxBoxes,
		GreedyBudget:       g.GreedyBudget,
		AStarBudget:        g.AStarBudget,
		StaticGreedyBudget: g.StaticGreedyBudget,
		StaticAStarBudget:  g.StaticAStarBudget,
	}
	if cfg.MaxRows == 0 {
		cfg = basisgen.DefaultConfig()
	}
	modeName := g.Mode
	if modeName == "" {
		modeName = "dynamic"
	}
	genMode, err := config.ParseDeadlockMode(modeName)
	if err != nil {
		log.Fatalf("sokobangendeadlock: %v", err)
	}
	cfg.Mode = genMode

	log.Printf("sokobangendeadlock: generating %s basis up to %dx%d, max %d boxes", modeName, cfg.MaxRows, cfg.MaxCols, cfg.MaxBoxes)
	basis, table := basisgen.Generate(cfg)
	log.Printf("sokobangendeadlock: basis has %d patterns, table has %d entries across %d areas",
		len(basis), table.Size(), len(table.Areas()))

	if path := pick(*basisOut, g.BasisPath); path != "" {
		if err := deadlock.SaveBasisFile(path, basis); err != nil {
			log.Fatalf("sokobangendeadlock: writing basis: %v", err)
		}
	}
	if path := pick(*tableOut, g.TablePath); path != "" {
		if err := deadlock.SaveTableFile(path, table); err != nil {
			log.Fatalf("sokobangendeadlock: writing table: %v", err)
		}
	}
}

func pick(flagVal, cfgVal string) string {
	if flagVal != "" {
		return flagVal
	}
	return cfgVal
}
