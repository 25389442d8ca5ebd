package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/dodgebc/goban/internal/config"
	"github.com/dodgebc/goban/weiqi"
)

type arguments struct {
	outFile    string
	inputs     []string
	workers    int
	force      bool
	dedupe     bool
	verbose    bool
	saveConfig bool
	replay     replayOptions
}

func (a *arguments) parse(fs *flag.FlagSet, args []string, cfg *config.Config) error {

	// Assign variables, defaults come from the config file
	fs.StringVar(&a.outFile, "out", cfg.Replay.Out, "output filepath for .jsonl.gz results")
	fs.IntVar(&a.workers, "workers", cfg.Replay.Workers, "number of concurrent workers to use")
	fs.IntVar(&a.replay.size, "size", cfg.Replay.BoardSize, "board size for scripts without a size line")
	fs.BoolVar(&a.replay.strict, "strict", cfg.Replay.Strict, "stop each script at its first rejected move")
	fs.BoolVar(&a.replay.freeOrder, "freeorder", false, "ignore turn order, moves are placed as setup stones")
	fs.BoolVar(&a.replay.board, "board", false, "include a diagram of the final position")
	fs.BoolVar(&a.dedupe, "dedupe", false, "remove scripts with duplicate final positions")
	fs.BoolVar(&a.force, "force", false, "overwrite the output file if it exists")
	fs.BoolVar(&a.verbose, "verbose", false, "explain all skipped scripts")
	fs.BoolVar(&a.saveConfig, "saveconfig", false, "save out, workers, size and strict as the new defaults")

	// Usage and parse
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: goreplay [options] [script1 script2.gz archive.tar.gz ...]\n\n")
		fmt.Fprintf(fs.Output(), "Options:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	a.inputs = fs.Args()
	return nil
}

func (a *arguments) check() error {
	if a.workers < 1 {
		return errors.New("workers must be at least 1")
	}
	if (a.replay.size < 1) || (a.replay.size > weiqi.MaxSize) {
		return fmt.Errorf("size must be between 1 and %d", weiqi.MaxSize)
	}
	if len(a.inputs) == 0 {
		return errors.New("no scripts provided")
	}
	if a.outFile == "" {
		return errors.New("no output file provided")
	}
	if _, err := os.Stat(a.outFile); (err == nil) && !a.force {
		return fmt.Errorf("output file %s already exists, use -force to overwrite", a.outFile)
	}
	return nil
}

// update copies the arguments that have a config counterpart
func (a *arguments) update(cfg *config.Config) {
	cfg.Replay.Out = a.outFile
	cfg.Replay.Workers = a.workers
	cfg.Replay.BoardSize = a.replay.size
	cfg.Replay.Strict = a.replay.strict
}
