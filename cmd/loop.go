package cmd

import (
	"log"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"tv-frame/pkg/performance"
	"tv-frame/screens/root"
)

const (
	targetFPS = 60
	// Frames between performance reports in verbose mode
	reportEvery = 10 * targetFPS
)

// runLoop executes the main SDL2 loop until the window closes or the user
// backs out of the settings
func runLoop(screen *root.RootScreen) {
	frameTime := time.Second / targetFPS
	monitor := performance.NewFrameMonitor(2*targetFPS, frameTime)

	for {
		frameStart := time.Now()

		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			if _, ok := event.(*sdl.QuitEvent); ok {
				return
			}
		}

		if err := screen.Update(); err != nil {
			log.Printf("Screen update error: %v", err)
			return
		}
		if screen.Done() {
			return
		}
		updated := time.Now()

		if err := screen.Draw(); err != nil {
			log.Printf("Screen draw error: %v", err)
			return
		}

		elapsed := time.Since(frameStart)
		monitor.RecordFrame(updated.Sub(frameStart), elapsed-updated.Sub(frameStart))
		if verbose && monitor.Report().TotalFrames%reportEvery == 0 {
			monitor.LogReport()
		}

		if elapsed < frameTime {
			time.Sleep(frameTime - elapsed)
		}
	}
}
