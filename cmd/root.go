package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/veandco/go-sdl2/sdl"

	"tv-frame/pkg/config"
	"tv-frame/pkg/logging"
	prefs "tv-frame/pkg/settings"
	"tv-frame/screens/root"
)

var (
	envFile     string
	title       string
	loadTimeout int64
	logDir      string
	verbose     bool
)

var RootCmd = &cobra.Command{
	Use:          "tv-frame",
	Short:        "tv-frame - TV player settings",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         Execute,
}

func init() {
	RootCmd.PersistentFlags().StringVar(&envFile, "env-file", config.DefaultEnvFile, "dotenv file to load before reading the environment")
	RootCmd.PersistentFlags().StringVar(&title, "title", "", "window title (overrides "+config.EnvTitle+")")
	RootCmd.PersistentFlags().Int64Var(&loadTimeout, "load-timeout", 0, "initial player load timeout in ms (overrides "+config.EnvLoadTimeout+")")
	RootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "", "directory for the rotating log file (overrides "+config.EnvLogDir+")")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "V", false, "enable verbose output")
}

// resolveConfig loads the environment and applies flags the user set
func resolveConfig(cmd *cobra.Command) config.Config {
	cfg := config.Load(envFile)

	flags := cmd.PersistentFlags()
	if flags.Changed("title") && title != "" {
		cfg.Title = title
	}
	if flags.Changed("load-timeout") && loadTimeout > 0 {
		cfg.LoadTimeout = loadTimeout
	}
	if flags.Changed("log-dir") {
		cfg.LogDir = logDir
	}

	return cfg
}

func Execute(cmd *cobra.Command, args []string) error {
	cfg := resolveConfig(cmd)

	if err := logging.Setup(logging.Options{Dir: cfg.LogDir, Verbose: verbose}); err != nil {
		return fmt.Errorf("error setting up logging: %w", err)
	}
	defer logging.Close()

	if err := initializeSDL2(cfg.VideoDriver); err != nil {
		return fmt.Errorf("failed to initialize SDL2: %w", err)
	}
	defer func() {
		log.Println("Shutting down SDL2...")
		sdl.Quit()
	}()

	screenWidth, screenHeight := getDisplayDimensions()
	log.Printf("Starting %s | Resolution: %dx%d", cfg.Title, screenWidth, screenHeight)

	window, err := createWindow(cfg.Title, screenWidth, screenHeight)
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	defer window.Destroy()

	renderer, err := createRenderer(window)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	defer renderer.Destroy()

	store := prefs.NewStore(cfg.LoadTimeout)
	screen := root.NewRootScreen(window, renderer, store)
	defer screen.Close()

	runLoop(screen)

	log.Printf("%s shutting down, load timeout %dms", cfg.Title, store.LoadTimeout())
	return nil
}
