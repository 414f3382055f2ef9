package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	console "github.com/Aeomanate/TableOfAdditionGame/internal/console"
	game "github.com/Aeomanate/TableOfAdditionGame/internal/game"
	menu "github.com/Aeomanate/TableOfAdditionGame/internal/menu"
	problem "github.com/Aeomanate/TableOfAdditionGame/internal/problem"
	scores "github.com/Aeomanate/TableOfAdditionGame/internal/scores"
	session "github.com/Aeomanate/TableOfAdditionGame/internal/session"
	timing "github.com/Aeomanate/TableOfAdditionGame/internal/timing"
	util "github.com/Aeomanate/TableOfAdditionGame/internal/util"
)

func main() {
	cfg, err := util.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logCloser, err := util.SetupLogging(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		os.Exit(1)
	}
	defer logCloser.Close()

	util.LogInfo("Starting Table of Addition, scores in %s", cfg.ScoresDir)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigint
		util.LogInfo("Received %v, exiting", sig)
		cancel()
		logCloser.Close()
		os.Exit(130)
	}()

	c := console.New(os.Stdin, os.Stdout)
	deps := game.Deps{
		Console:     c,
		Clock:       timing.System(),
		Digits:      problem.Random(),
		RoundPause:  cfg.RoundPause,
		ResultPause: cfg.ResultPause,
		RevealEvery: cfg.RevealEvery,
	}
	player := &session.Player{}

	timed, err := game.NewTimed(deps, player, scores.NewTimedStore(cfg.ScoresDir), cfg.TimedLimit)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		util.LogFatal("Failed to start: %v", err)
	}
	errorLimited, err := game.NewErrorLimited(deps, player, scores.NewErrorLimitedStore(cfg.ScoresDir), cfg.ErrorLimit)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		util.LogFatal("Failed to start: %v", err)
	}

	c.Clear()
	if err := menu.New(c, game.NewEndless(deps), timed, errorLimited).Run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		util.LogFatal("Menu stopped: %v", err)
	}
	util.LogInfo("Goodbye")
}
