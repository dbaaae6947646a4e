package main

import (
	"flag"
	"os"

	"fyne.io/fyne/v2/app"
	"github.com/sirupsen/logrus"

	"slider-panel/internal/config"
	"slider-panel/ui"
)

func main() {
	configPath := flag.String("config", "panel.hcl", "Path to the panel HCL config")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	logger := initLogger(*debug)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.WithError(err).Fatal("cannot load panel config")
	}

	// The demo document is seeded from the config's slider blocks; an
	// embedding host would pass its own document instead.
	doc := cfg.Document()

	logger.WithFields(logrus.Fields{
		"config":  *configPath,
		"tracked": len(cfg.Panel.Parameters),
		"sliders": len(cfg.Sliders),
	}).Info("starting slider panel")

	a := app.NewWithID("com.slider-panel.gui")
	win := ui.BuildMainWindow(a, doc, cfg, logger)
	win.ShowAndRun()

	logger.Info("shut down")
	os.Exit(0)
}

// initLogger initializes the logger with appropriate level.
func initLogger(debug bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	if debug {
		logger.SetLevel(logrus.DebugLevel)
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetLevel(logrus.InfoLevel)
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	return logger
}
