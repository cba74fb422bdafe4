package cmd

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"
)

const (
	fallbackWidth  = 1920
	fallbackHeight = 1080
)

// videoDriverCandidates returns the SDL video drivers to try in order. A
// configured driver is tried first, then the platform fallbacks.
func videoDriverCandidates(configured, goos string) []string {
	var drivers []string
	if configured != "" {
		drivers = append(drivers, configured)
	}

	if goos == "darwin" {
		drivers = append(drivers, "cocoa", "software", "dummy")
	} else {
		// kmsdrm first: TV boxes usually run without a display server
		drivers = append(drivers, "kmsdrm", "drm", "fbcon", "wayland", "x11", "software", "dummy")
	}

	seen := make(map[string]bool, len(drivers))
	out := drivers[:0]
	for _, d := range drivers {
		if !seen[d] {
			seen[d] = true
			out = append(out, d)
		}
	}
	return out
}

// renderDriverFor picks the SDL render driver hint for a video driver
func renderDriverFor(videoDriver string) string {
	switch videoDriver {
	case "kmsdrm", "drm":
		return "opengles2"
	case "cocoa":
		return "opengl"
	default:
		return "software"
	}
}

// initializeSDL2 initializes SDL2 with fallback video drivers
func initializeSDL2(configured string) error {
	for _, driver := range videoDriverCandidates(configured, runtime.GOOS) {
		log.Printf("Attempting SDL2 initialization with %s driver", driver)

		if err := trySDLInitialization(driver); err != nil {
			log.Printf("SDL2 initialization failed with %s driver: %v", driver, err)
			continue
		}

		log.Printf("SDL2 successfully initialized with %s driver", driver)
		return nil
	}

	return fmt.Errorf("all SDL2 video drivers failed")
}

// trySDLInitialization initializes the SDL video subsystem with one driver
func trySDLInitialization(driver string) error {
	sdl.Quit()

	os.Setenv("SDL_VIDEODRIVER", driver)
	sdl.SetHint(sdl.HINT_VIDEODRIVER, driver)

	switch driver {
	case "kmsdrm":
		sdl.SetHint("SDL_KMSDRM_REQUIRE_DRM_MASTER", "1")
		sdl.SetHint("SDL_RENDER_VSYNC", "1")
		sdl.SetHint("SDL_VIDEO_ALLOW_SCREENSAVER", "0")
	case "fbcon":
		sdl.SetHint("SDL_FBDEV", "/dev/fb0")
	case "wayland":
		sdl.SetHint("SDL_VIDEO_WAYLAND_WMCLASS", "tv-frame")
	}

	sdl.SetHint(sdl.HINT_RENDER_BATCHING, "1")
	sdl.SetHint(sdl.HINT_RENDER_DRIVER, renderDriverFor(driver))
	sdl.SetHint(sdl.HINT_VIDEO_MINIMIZE_ON_FOCUS_LOSS, "0")

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("SDL_INIT_VIDEO failed: %w", err)
	}

	driverName, err := sdl.GetCurrentVideoDriver()
	if err != nil {
		return fmt.Errorf("failed to get video driver: %w", err)
	}
	log.Printf("Video driver initialized: %s", driverName)

	return nil
}

// getDisplayDimensions returns the screen dimensions or fallback values
func getDisplayDimensions() (int32, int32) {
	displayMode, err := sdl.GetCurrentDisplayMode(0)
	if err != nil {
		log.Printf("Warning: Failed to get display mode, using fallback: %v", err)
		return fallbackWidth, fallbackHeight
	}

	return displayMode.W, displayMode.H
}

// createWindow creates a fullscreen SDL2 window
func createWindow(title string, width, height int32) (*sdl.Window, error) {
	return sdl.CreateWindow(title, 0, 0, width, height, sdl.WINDOW_SHOWN|sdl.WINDOW_FULLSCREEN)
}

// createRenderer creates an SDL2 renderer, preferring hardware acceleration
// on GPU drivers and falling back to software
func createRenderer(window *sdl.Window) (*sdl.Renderer, error) {
	currentDriver, err := sdl.GetCurrentVideoDriver()
	if err != nil {
		currentDriver = "unknown"
	}

	var renderer *sdl.Renderer

	if renderDriverFor(currentDriver) != "software" {
		var flags uint32 = sdl.RENDERER_ACCELERATED
		// VSync on kmsdrm triggers async flip errors on VC4
		if currentDriver != "kmsdrm" {
			flags |= sdl.RENDERER_PRESENTVSYNC
		}

		renderer, err = sdl.CreateRenderer(window, -1, flags)
		if err != nil {
			log.Printf("Hardware acceleration failed, trying software: %v", err)
		}
	}

	if renderer == nil {
		log.Printf("Using software renderer for %s driver", currentDriver)
		renderer, err = sdl.CreateRenderer(window, -1, sdl.RENDERER_SOFTWARE)
		if err != nil {
			return nil, err
		}
	}

	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)
	return renderer, nil
}
