package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tetris/config"
	"tetris/controller"
	"tetris/engine"
	"tetris/ui"
)

var (
	flagWidth   int
	flagHeight  int
	flagSeed    int64
	flagSteps   int
	flagConfig  string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:          "tetris",
	Short:        "Run a drop-only tetris simulation on the board engine",
	RunE:         runGame,
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().IntVar(&flagWidth, "width", 10, "board width in cells")
	rootCmd.Flags().IntVar(&flagHeight, "height", 20, "board height in cells")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "random seed, 0 picks one from the clock")
	rootCmd.Flags().IntVar(&flagSteps, "steps", 200, "maximum number of pieces to drop")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "YAML scenario file")
	rootCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func runGame(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(flagVerbose)
	if err != nil {
		return err
	}
	defer logger.Sync()

	cfg := config.Default()
	if flagConfig != "" {
		cfg, err = config.Load(flagConfig)
		if err != nil {
			return err
		}
	}
	// flags beat the file when given explicitly
	if cmd.Flags().Changed("width") {
		cfg.Width = flagWidth
	}
	if cmd.Flags().Changed("height") {
		cfg.Height = flagHeight
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = flagSeed
	}
	if cmd.Flags().Changed("steps") {
		cfg.Steps = flagSteps
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	board, err := engine.NewBoard(cfg.Width, cfg.Height)
	if err != nil {
		return err
	}

	var ctrl *controller.Controller
	if len(cfg.Moves) > 0 {
		pieces, err := cfg.PieceSet()
		if err != nil {
			return err
		}
		moves := make([]controller.Move, 0, len(cfg.Moves))
		for _, mv := range cfg.Moves {
			moves = append(moves, controller.Move{Piece: pieces[mv.Piece], Column: mv.Column})
		}
		ctrl = controller.New(board, nil, logger)
		ctrl.Play(moves)
	} else {
		source, err := controller.NewRandomSource(cfg.Seed)
		if err != nil {
			return err
		}
		logger.Info("starting game",
			zap.Int("width", cfg.Width),
			zap.Int("height", cfg.Height),
			zap.Int64("seed", cfg.Seed))
		ctrl = controller.New(board, source, logger)
		ctrl.Run(cfg.Steps)
	}

	fmt.Println(ui.Render(board))
	fmt.Printf("steps=%d cleared=%d over=%v\n", ctrl.Steps(), ctrl.Score(), ctrl.Over())
	return nil
}
