package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"strings"

	"github.com/nullgrove/quell/internal/dimacsio"
	"github.com/nullgrove/quell/internal/sat"
)

// Exit codes follow the conventional SAT competition contract: 10 for SAT,
// 20 for UNSAT, anything else for a driver error.
const (
	exitSAT   = 10
	exitUNSAT = 20
	exitError = 1
)

var (
	flagCPUProfile = flag.Bool("cpuprof", false, "save pprof CPU profile in cpuprof")
	flagMemProfile = flag.Bool("memprof", false, "save pprof memory profile in memprof")
	flagGzip       = flag.Bool("z", false, "treat the instance file as gzip-compressed")
	flagQuiet      = flag.Bool("q", false, "suppress the statistics banner on stderr")
)

type config struct {
	instanceFile string
	gzipped      bool
	quiet        bool
	cpuProfile   bool
	memProfile   bool
}

func parseConfig() (*config, error) {
	flag.Parse()
	if flag.NArg() == 0 || flag.Arg(0) == "" {
		return nil, fmt.Errorf("missing instance file")
	}
	return &config{
		instanceFile: flag.Arg(0),
		gzipped:      *flagGzip,
		quiet:        *flagQuiet,
		cpuProfile:   *flagCPUProfile,
		memProfile:   *flagMemProfile,
	}, nil
}

func run(cfg *config) (sat.Status, error) {
	s, err := dimacsio.Load(cfg.instanceFile, cfg.gzipped, sat.DefaultOptions)
	if err != nil {
		return 0, fmt.Errorf("could not load instance: %w", err)
	}

	if !cfg.quiet {
		fmt.Fprintf(os.Stderr, "c variables:  %d\n", s.NumVariables())
		fmt.Fprintf(os.Stderr, "c constraints: %d\n", s.NumConstraints())
	}

	status := s.Solve()

	if !cfg.quiet {
		fmt.Fprintf(os.Stderr, "c time (sec): %.3f\n", s.Stats.Elapsed().Seconds())
		fmt.Fprintf(os.Stderr, "c conflicts:  %d\n", s.Stats.Conflicts)
		fmt.Fprintf(os.Stderr, "c decisions:  %d\n", s.Stats.Decisions)
		fmt.Fprintf(os.Stderr, "c restarts:   %d\n", s.Stats.Restarts)
	}

	if status == sat.Satisfiable {
		printModel(s.Models[len(s.Models)-1])
	} else {
		fmt.Println("UNSAT")
	}

	return status, nil
}

func printModel(model []bool) {
	lits := make([]string, len(model))
	for v, b := range model {
		n := v + 1
		if !b {
			n = -n
		}
		lits[v] = fmt.Sprintf("%d", n)
	}
	fmt.Printf("SAT %s\n", strings.Join(lits, " "))
}

func main() {
	cfg, err := parseConfig()
	if err != nil {
		log.Println(err)
		os.Exit(exitError)
	}

	if cfg.cpuProfile {
		f, err := os.Create("cpuprof")
		if err != nil {
			log.Println(err)
			os.Exit(exitError)
		}
		pprof.StartCPUProfile(f)
	}

	status, err := run(cfg)
	pprof.StopCPUProfile() // os.Exit below skips deferred calls
	if err != nil {
		log.Println(err)
		os.Exit(exitError)
	}

	if cfg.memProfile {
		f, err := os.Create("memprof")
		if err != nil {
			log.Println(err)
			os.Exit(exitError)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
	}

	if status == sat.Satisfiable {
		os.Exit(exitSAT)
	}
	os.Exit(exitUNSAT)
}
