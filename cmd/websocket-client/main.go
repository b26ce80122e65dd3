package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pterm/pterm"

	"pokerclient/internal/game"
	"pokerclient/internal/session"
	"pokerclient/internal/transport"
	"pokerclient/internal/view"
)

func main() {
	godotenv.Load()

	defaultAddr := os.Getenv("POKER_WS_SERVER")
	if defaultAddr == "" {
		defaultAddr = "ws://localhost:65432"
	}
	serverAddr := flag.String("server", defaultAddr, "Dealer WebSocket address (e.g. ws://localhost:65432)")
	verbose := flag.Bool("verbose", false, "Enable debug logging")
	flag.Parse()

	if *verbose {
		pterm.DefaultLogger.Level = pterm.LogLevelDebug
	}
	logger := slog.New(pterm.NewSlogHandler(&pterm.DefaultLogger))

	conn, err := transport.DialWS(context.Background(), *serverAddr)
	if err != nil {
		logger.Error("failed to connect to dealer", "address", *serverAddr, "error", err)
		os.Exit(1)
	}
	defer conn.Close()

	logger.Info("connected to dealer", "address", *serverAddr)

	intents := make(chan session.Intent)
	go readIntents(intents, logger)

	sess := session.New(transport.NewMux(conn), game.NewState(), intents, logger, view.Render)
	fmt.Println("Commands: fold, call, check, bet <amount>, quit")
	if err := sess.Run(context.Background()); err != nil {
		logger.Error("session ended", "error", err)
		os.Exit(1)
	}

	logger.Info("disconnected from dealer")
}

// readIntents turns stdin lines into intents until EOF or quit.
func readIntents(intents chan<- session.Intent, logger *slog.Logger) {
	defer close(intents)

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		in, err := session.ParseIntent(line)
		if err != nil {
			logger.Warn("unrecognized command", "error", err)
			continue
		}
		intents <- in
		if in.Quit {
			return
		}
	}
	if err := scanner.Err(); err != nil {
		logger.Warn("error reading input", "error", err)
	}
}
