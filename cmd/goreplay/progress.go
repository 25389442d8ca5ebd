package main

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// ProgressUpdate provides a real-time record of progress
type ProgressUpdate struct {
	w             io.Writer
	interval      time.Duration
	startTime     time.Time
	lastUpdate    time.Time
	iteration     int
	lastIteration int
	otherKeys     []string
	otherValues   []int
	description   string
	mux           sync.Mutex
}

// NewProgressUpdate starts a progress update written to w at most once per interval
func NewProgressUpdate(w io.Writer, description string, interval time.Duration) *ProgressUpdate {
	pu := &ProgressUpdate{
		w:           w,
		interval:    interval,
		startTime:   time.Now(),
		lastUpdate:  time.Now(),
		description: description,
	}
	return pu
}

// Update increments the progress update and prints it if enough time has gone by
func (pu *ProgressUpdate) Update(n int) {
	pu.mux.Lock()
	defer pu.mux.Unlock()
	pu.iteration += n
	if time.Since(pu.lastUpdate) >= pu.interval {
		pu.print(pu.iteration-pu.lastIteration, time.Since(pu.lastUpdate))
		fmt.Fprint(pu.w, "\t\r")
		pu.lastUpdate = time.Now()
		pu.lastIteration = pu.iteration
	}
}

// SetOther sets the value of an additional statistic (or creates it)
func (pu *ProgressUpdate) SetOther(key string, value int) {
	pu.mux.Lock()
	defer pu.mux.Unlock()
	for i := range pu.otherKeys {
		if pu.otherKeys[i] == key {
			pu.otherValues[i] = value
			return
		}
	}
	pu.otherKeys = append(pu.otherKeys, key)
	pu.otherValues = append(pu.otherValues, value)
}

// Close ends the progress line with overall throughput
func (pu *ProgressUpdate) Close() {
	pu.mux.Lock()
	defer pu.mux.Unlock()
	pu.print(pu.iteration, time.Since(pu.startTime))
	fmt.Fprint(pu.w, "\t\r\n")
}

func (pu *ProgressUpdate) print(n int, elapsed time.Duration) {
	rate := 0.0
	if elapsed > 0 {
		rate = float64(n) / elapsed.Seconds()
	}
	fmt.Fprintf(pu.w, "%s: %d it\t%.0f it/s", pu.description, pu.iteration, rate)
	for i := range pu.otherKeys {
		fmt.Fprintf(pu.w, "\t%s: %d", pu.otherKeys[i], pu.otherValues[i])
	}
}
