package main

import (
	"context"
	"os"

	log "github.com/sirupsen/logrus"
)

func main() {
	initLogging(false)

	if err := newApp().Run(context.Background(), os.Args); err != nil {
		log.Fatalf("e3w: %v", err)
	}
}

func initLogging(debug bool) {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{
		DisableTimestamp: true,
	})

	level := log.WarnLevel
	if debug {
		level = log.DebugLevel
	}
	log.SetLevel(level)
}
