package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
)

// setupLogger configures the standard logrus logger from the level and
// format flags. Format is either text or json.
func setupLogger(level, format string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return err
	}
	log.SetLevel(lvl)
	log.SetOutput(os.Stdout)

	switch format {
	case "", "text":
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	case "json":
		log.SetFormatter(&log.JSONFormatter{})
	default:
		return fmt.Errorf("unknown log format '%s'", format)
	}
	return nil
}
