// cmd/kite/main.go
package main

import (
	"fmt"
	stlog "log" // standard log for fatal errors before the logger is ready
	"os"

	"kite/internal/app"
	"kite/internal/config"
	"kite/internal/logger"
)

func main() {
	flags := &config.Flags{}
	args := flags.ParseFlags()

	if flags.Version != nil && *flags.Version {
		fmt.Printf("%s %s\n", config.AppName, config.Version)
		return
	}

	configPath := ""
	if flags.ConfigFilePath != nil {
		configPath = *flags.ConfigFilePath
	}
	cfg, err := config.LoadConfig(configPath, flags)
	if err != nil {
		stlog.Fatalf("Failed to load configuration: %v", err)
	}

	// The terminal belongs to the editor; logs go to a file.
	logFilePath := cfg.Logger.File
	if logFilePath == "" {
		logFilePath = config.DefaultLogFileName
	}
	logFile, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		stlog.Fatalf("Failed to open log file '%s': %v", logFilePath, err)
	}
	defer logFile.Close()

	logger.Init(logger.ParseLevel(cfg.Logger.Level), logFile)

	filePath := ""
	if len(args) > 0 {
		filePath = args[0]
	}
	logger.Infof("Starting %s editor...", config.AppName)
	if filePath != "" {
		logger.Debugf("File path specified: %s", filePath)
	} else {
		logger.Debugf("No file specified, starting empty.")
	}

	kiteApp, err := app.NewApp(cfg, filePath)
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.AppName, err)
		os.Exit(1)
	}

	if err := kiteApp.Run(); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.AppName, err)
		os.Exit(1)
	}

	logger.Infof("%s editor finished.", config.AppName)
}
