package main

import (
	"archive/tar"
	"compress/gzip"
	"encoding/json"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// input is the raw text of one move script
type input struct {
	name string
	data []byte
}

// loader reads every script from plain, .gz and .tar.gz files
func loader(cancel <-chan struct{}, cerr chan<- error, files []string, out chan<- input, progress *ProgressUpdate, checker *CheckManager) {
	emit := func(in input) bool {
		select {
		case out <- in: // Send for processing
		case <-cancel:
			return false
		}

		// Update progress
		progress.Update(1)
		_, failed, rejected, duplicate := checker.Counts()
		progress.SetOther("failed", failed)
		progress.SetOther("rejected", rejected)
		if checker.Deduplicate {
			progress.SetOther("duplicate", duplicate)
		}
		return true
	}

	for _, f := range files {
		if err := loadFile(f, emit); err != nil {
			select {
			case cerr <- err:
			case <-cancel:
			}
			return
		}
	}
}

// loadFile emits the scripts in a file until emit returns false
func loadFile(path string, emit func(input) bool) error {
	fin, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "failed to open %s", path)
	}
	defer fin.Close()
	name := filepath.Base(path)

	// Plain script
	if !strings.HasSuffix(name, ".gz") && !strings.HasSuffix(name, ".tgz") {
		data, err := io.ReadAll(fin)
		if err != nil {
			return errors.Wrapf(err, "failed to read %s", path)
		}
		emit(input{name: name, data: data})
		return nil
	}

	// Decompress input file stream
	gzipReader, err := gzip.NewReader(fin)
	if err != nil {
		return errors.Wrapf(err, "failed to decompress %s", path)
	}
	defer gzipReader.Close()

	// Single compressed script
	if !strings.HasSuffix(name, ".tar.gz") && !strings.HasSuffix(name, ".tgz") {
		data, err := io.ReadAll(gzipReader)
		if err != nil {
			return errors.Wrapf(err, "failed to read %s", path)
		}
		emit(input{name: strings.TrimSuffix(name, ".gz"), data: data})
		return nil
	}

	// Archive of scripts
	tarReader := tar.NewReader(gzipReader)
	for {
		header, err := tarReader.Next()
		if err == io.EOF {
			break // End of archive
		}
		if err != nil {
			return errors.Wrapf(err, "tar archive read error in %s", path)
		}
		if header.Typeflag != tar.TypeReg {
			continue
		}
		data, err := io.ReadAll(tarReader)
		if err != nil {
			return errors.Wrapf(err, "tar archive file read error in %s", path)
		}
		if !emit(input{name: name + ":" + header.Name, data: data}) {
			return nil
		}
	}
	return nil
}

// processor replays incoming scripts and converts the results to json lines
func processor(cancel <-chan struct{}, cerr chan<- error, in <-chan input, out chan<- []byte, opts replayOptions, checker *CheckManager) {
	for raw := range in {

		// Parse script
		s, err := parseScript(raw.name, raw.data, opts.size)
		if err != nil {
			checker.AddFailed(1)
			if checker.Verbose {
				log.Print(err)
			}
			continue
		}

		// Replay, check and convert to JSON
		rec, b, err := replay(s, opts)
		if err == nil {
			err = checker.Check(rec, b)
		}
		if err != nil {
			if checker.Verbose {
				log.Printf("%s: %s", s.name, err)
			}
			continue
		}
		j, err := json.Marshal(rec)
		if err != nil {
			select {
			case cerr <- errors.WithMessage(err, "failed to marshal json"):
			case <-cancel:
			}
			return
		}
		select {
		case out <- append(j, '\n'):
		case <-cancel:
			return
		}
	}
}

// saver writes json lines data to a Writer
func saver(in <-chan []byte, out io.Writer) error {
	for b := range in {
		if _, err := out.Write(b); err != nil {
			return errors.Wrap(err, "output file write error")
		}
	}
	return nil
}
