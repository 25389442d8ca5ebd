// goreplay replays Go move scripts and writes one JSON line per script
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/build/pargzip"

	"github.com/dodgebc/goban/internal/config"
)

func main() {

	// Configuration and command line arguments
	cfg, err := config.InitConfig()
	if err != nil {
		log.Fatal(err)
	}
	var a arguments
	if err := a.parse(flag.CommandLine, os.Args[1:], cfg); err != nil {
		log.Fatal(err)
	}
	if a.saveConfig {
		a.update(cfg)
		if err := cfg.Validate(); err != nil {
			log.Fatal(err)
		}
		path, err := cfg.Save()
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("saved defaults to %s", path)
		if len(a.inputs) == 0 {
			return
		}
	}
	if err := a.check(); err != nil {
		log.Fatal(err)
	}

	// Open .jsonl.gz output file stream
	fout, err := os.Create(a.outFile)
	if err != nil {
		log.Fatal(err)
	}
	defer fout.Close()

	progress := NewProgressUpdate(os.Stderr, "scripts", 500*time.Millisecond)
	checker, err := run(&a, fout, progress)
	progress.Close()
	if err != nil {
		log.Fatal(err)
	}

	replayed, failed, rejected, duplicate := checker.Counts()
	fmt.Printf("replayed: %d\tfailed: %d\twith rejected moves: %d", replayed, failed, rejected)
	if checker.Deduplicate {
		fmt.Printf("\tduplicate: %d", duplicate)
	}
	fmt.Println()
}

// run replays every input and writes the compressed results to w
func run(a *arguments, w io.Writer, progress *ProgressUpdate) (*CheckManager, error) {

	// Compress output stream
	gzipWriter := pargzip.NewWriter(w)
	gzipWriter.Parallel = a.workers

	checker := NewCheckManager(a.dedupe, a.verbose)

	// Create channels
	cancel := make(chan struct{})
	cerrLoader := make(chan error)
	cerrProcessor := make(chan error)
	cerrSaver := make(chan error, 1)
	in := make(chan input)
	out := make(chan []byte)

	// Single loader and saver
	go func() {
		loader(cancel, cerrLoader, a.inputs, in, progress, checker)
		close(in)
	}()
	go func() {
		cerrSaver <- saver(out, gzipWriter)
	}()

	// Many processors
	var wg sync.WaitGroup
	wg.Add(a.workers)
	for j := 0; j < a.workers; j++ {
		go func() {
			processor(cancel, cerrProcessor, in, out, a.replay, checker)
			wg.Done()
		}()
	}
	go func() {
		wg.Wait()
		close(out)
	}()

	// Wait for completion or an error
	select {
	case err := <-cerrLoader:
		close(cancel)
		return nil, err
	case err := <-cerrProcessor:
		close(cancel)
		return nil, err
	case err := <-cerrSaver:
		if err != nil {
			close(cancel)
			return nil, err
		}
	}

	if err := gzipWriter.Close(); err != nil {
		return nil, errors.Wrap(err, "failed to finish compressed output")
	}
	return checker, nil
}
