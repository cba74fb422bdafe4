package main

import (
	"os"
	"runtime"

	"tv-frame/cmd"
)

func main() {
	// SDL must stay on the main OS thread for the whole run
	runtime.LockOSThread()

	if err := cmd.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
