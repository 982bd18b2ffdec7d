package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/apex/log/handlers/discard"
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/RdeBiotec/Game-of-Life/sim"
	"github.com/RdeBiotec/Game-of-Life/utils"
	"github.com/RdeBiotec/Game-of-Life/view/gui"
	"github.com/RdeBiotec/Game-of-Life/view/term"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

func run(args []string, stdin io.Reader, stdout io.Writer) int {
	log.SetHandler(cli.New(os.Stderr))

	config, err := loadConfig(args)
	if err != nil {
		log.WithError(err).Error("bad configuration")
		return 1
	}
	if config.Verbose {
		log.SetLevel(log.DebugLevel)
	}
	if err = config.ValidateUI(); err != nil {
		log.WithError(err).Error("bad configuration")
		return 1
	}

	if config.Interactive {
		rc, err := utils.NewPrompter(stdin, stdout).PromptRunConfig()
		if err != nil {
			log.WithError(err).Error("no parameters")
			return 1
		}
		config.RunConfig = rc
	}

	ctrl := newController(config)
	if err = ctrl.Configure(config.RunConfig); err != nil {
		log.WithError(err).Error("bad configuration")
		return 1
	}
	placeInitialCells(ctrl, config, config.UI == utils.UIPlain)

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch config.UI {
	case utils.UITerm:
		err = runTerm(ctx, ctrl, config)
	case utils.UIGUI:
		err = gui.Run(ctx, ctrl, config.CellSize, frameTPS(config.FrameRate), log.Log)
	default:
		err = runPlain(ctx, ctrl, config, stdout)
	}
	printEnd(ctrl, stdout)
	if err != nil && errors.Cause(err) != context.Canceled {
		log.WithError(err).Error("game stopped")
		return 1
	}
	return 0
}

// runTerm hands the terminal to tcell until the user quits
func runTerm(ctx context.Context, ctrl *sim.Controller, config utils.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "[runTerm] failed to create screen")
	}
	if err = screen.Init(); err != nil {
		return errors.Wrap(err, "[runTerm] failed to initialise screen")
	}
	screen.EnableMouse()

	// Log lines would tear through the screen
	log.SetHandler(discard.New())
	err = term.New(screen, ctrl, config.FrameRate, log.Log).Run(ctx)
	screen.Fini()
	log.SetHandler(cli.New(os.Stderr))
	return err
}
