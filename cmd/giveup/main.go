package main

import (
	"os"
	"os/signal"

	"github.com/habedi/giveup/cli"
	"github.com/rs/zerolog"

	"github.com/rs/zerolog/log"
)

// main is the entry point of the demo application.
// It sets up logging based on the DEBUG_GIVEUP environment variable,
// starts a goroutine to listen for interrupt signals, and executes the main command.
func main() {

	// If the DEBUG_GIVEUP environment variable is set, enable debug logging, otherwise disable logging
	if os.Getenv("DEBUG_GIVEUP") != "" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.Disabled)
	}

	// This block sets up a go routine to listen for an interrupt signal which will immediately exit the program
	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, os.Interrupt)
	go listenForInterrupt(stopChan)

	// Program entry point
	cli.Execute()
}

// listenForInterrupt listens for an interrupt signal and exits the program when it is received.
func listenForInterrupt(stopChan chan os.Signal) {
	<-stopChan
	log.Fatal().Msg("Interrupt signal received. Exiting...")
}
