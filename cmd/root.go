package cmd

import (
	"fmt"
	"github.com/faiface/pixel/pixelgl"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/they4kman/queensweep/director/random"
	"github.com/they4kman/queensweep/display"
	"github.com/they4kman/queensweep/game"
	"math/rand"
	"os"
	"time"
)

var (
	gameConfig  = game.DefaultConfig()
	configPath  string
	useDirector bool
	logLevel    string
)

var rootCmd = &cobra.Command{
	Use:   "queensweep",
	Short: "Play Minesweeper with chess queens for mines",
	Long: `queensweep is a Minesweeper game where every mine is a black queen.
The first square you reveal, and every square around it, is always safe.

Run with no arguments to play the default 24x14 board with 80 queens
	queensweep

Load board settings from a yaml file, overriding some with flags
	queensweep --config board.yaml -m 40

Use the director flag to make the computer play for you
	queensweep --director
`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return errors.Wrap(err, "log level")
		}
		game.Log.SetLevel(level)

		config, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		if err := config.Validate(); err != nil {
			return err
		}

		// Each new game gets a fresh seed, drawn from the configured one
		seeds := rand.New(rand.NewSource(config.Seed))
		newField := func() (*game.Field, error) {
			game.Log.WithField("seed", config.Seed).Info("starting new game")
			field, err := game.NewField(config)
			config.Seed = seeds.Int63()
			return field, err
		}

		opts := display.Options{Title: "queensweep"}
		if useDirector {
			opts.Director = random.New(config.Seed)
			opts.DirectorInterval = 500 * time.Millisecond
		}

		var runErr error
		pixelgl.Run(func() {
			runErr = display.Run(newField, opts)
		})
		return runErr
	},
}

// resolveConfig layers explicitly set flags over the config file, if any
func resolveConfig(cmd *cobra.Command) (game.Config, error) {
	config := game.DefaultConfig()
	if configPath != "" {
		loaded, err := game.LoadConfig(configPath)
		if err != nil {
			return config, err
		}
		config = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		config.Width = gameConfig.Width
	}
	if flags.Changed("height") {
		config.Height = gameConfig.Height
	}
	if flags.Changed("mines") {
		config.NumMines = gameConfig.NumMines
	}
	if flags.Changed("seed") {
		config.Seed = gameConfig.Seed
	}

	if config.Seed == 0 {
		config.Seed = time.Now().UnixNano()
	}
	return config, nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Define our root -help without a shorthand, as we'll use -h for --height
	// Ref: https://github.com/spf13/cobra/issues/291
	rootCmd.Flags().Bool("help", false, "Help for this command")

	rootCmd.Flags().IntVarP(&gameConfig.Width, "width", "w", gameConfig.Width, "Width of game board, in squares")
	rootCmd.Flags().IntVarP(&gameConfig.Height, "height", "h", gameConfig.Height, "Height of game board, in squares")
	rootCmd.Flags().IntVarP(&gameConfig.NumMines, "mines", "m", gameConfig.NumMines, "Number of queens hidden in the game board")
	rootCmd.Flags().Int64Var(&gameConfig.Seed, "seed", 0, "Seed for queen placement (0 picks one from the clock)")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a yaml file with board settings")
	rootCmd.Flags().BoolVarP(&useDirector, "director", "d", false, "Make the computer play")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn or error")
}
