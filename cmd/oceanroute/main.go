// Command oceanroute drives the ocean-routing pipeline end to end:
// linking raw coastline ways, generating a navigable graph, optionally
// preprocessing it into a Contraction Hierarchy, and answering route
// queries. Subcommand dispatch is a plain switch on os.Args[1] (spec.md
// §6 Non-goal: a general-purpose CLI argument-parsing framework is out
// of scope).
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/seacharts/oceanroute/internal/applog"
	"github.com/seacharts/oceanroute/internal/config"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cfg, err := config.Load("oceanroute.yaml")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	applog.Init(cfg.LogLevel)

	var cmdErr error
	switch os.Args[1] {
	case "import":
		cmdErr = cmdImport(cfg, os.Args[2:])
	case "generate":
		cmdErr = cmdGenerate(cfg, os.Args[2:])
	case "ch_precalc":
		cmdErr = cmdCHPrecalc(cfg, os.Args[2:], false)
	case "continue_ch_precalc":
		cmdErr = cmdCHPrecalc(cfg, os.Args[2:], true)
	case "route":
		cmdErr = cmdRoute(cfg, os.Args[2:])
	case "test_fixed":
		cmdErr = cmdTestFixed(cfg, os.Args[2:])
	case "test_random":
		cmdErr = cmdTestRandom(cfg, os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}

	if cmdErr != nil {
		log.Error().Err(cmdErr).Str("command", os.Args[1]).Msg("oceanroute: command failed")
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: oceanroute <command> [args]

commands:
  import <path.osm.pbf> [prefix]
  generate <out_name> [prefix]
  ch_precalc <graph_name> [node_floor]
  continue_ch_precalc <graph_name> [node_floor]
  route <engine di|bd|astar|ch> <src_lon,src_lat> <tgt_lon,tgt_lat> <graph_name>
  test_fixed <graph_name>
  test_random <graph_name> [count]`)
}
