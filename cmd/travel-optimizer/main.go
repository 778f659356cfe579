package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/iwvelando/travel-optimizer/internal/config"
	"github.com/iwvelando/travel-optimizer/internal/optimizer"
	"github.com/iwvelando/travel-optimizer/internal/server"
	"github.com/iwvelando/travel-optimizer/pkg/constants"
	"github.com/iwvelando/travel-optimizer/pkg/output"
	"github.com/iwvelando/travel-optimizer/pkg/validation"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var version = "dev"

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info" // Default to info level
	}

	// Parse log level
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	// Determine output format
	format := loggingConfig.Format
	if format == "" {
		format = "json" // Default to JSON for production
	}

	// Configure encoder
	var zapConfig zap.Config
	switch format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	// Configure output file if specified
	if loggingConfig.OutputFile != "" {
		// Ensure the directory exists
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		// Test if we can create/write to the file
		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		zapConfig.OutputPaths = []string{loggingConfig.OutputFile}
		zapConfig.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return zapConfig.Build()
}

func main() {
	// Load .env file (ignored in production where env vars are set directly)
	_ = godotenv.Load()

	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	requestLocation := flag.String("request", "", "path to a trip request file to optimize")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv, json")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	serve := flag.Bool("serve", false, "run the HTTP API instead of optimizing a request file")
	address := flag.String("address", "", "HTTP listen address override (with -serve)")
	flag.Parse()

	// Load the config file to get logging configuration
	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return
	}

	// Initialize logging based on config and CLI override
	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	opt, err := optimizer.NewOptimizer(logger, conf)
	if err != nil {
		logger.Fatal("failed to initialize optimizer",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	if *serve {
		listenAddress := conf.Server.Address
		if *address != "" {
			listenAddress = *address
		}
		if port := os.Getenv("PORT"); port != "" && *address == "" {
			listenAddress = ":" + port
		}

		router := server.NewRouter(logger, conf, opt, version)
		logger.Info("starting HTTP API",
			zap.String("op", "main"),
			zap.String("address", listenAddress),
		)
		if err := router.Run(listenAddress); err != nil {
			logger.Fatal("HTTP server failed",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		return
	}

	if *requestLocation == "" {
		logger.Fatal("no trip request provided; pass -request or run with -serve",
			zap.String("op", "main"),
		)
	}

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty // Default to pretty format
	}

	err = validation.ValidateOutputFormat(outputFormat)
	if err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	request, err := config.LoadRequest(*requestLocation)
	if err != nil {
		logger.Fatal("failed to load trip request",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	if err := validation.ValidateRequest(request); err != nil {
		logger.Fatal("invalid trip request",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	alternatives, err := opt.GenerateAlternatives(*request)
	if err != nil {
		logger.Fatal("failed to generate alternatives",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	// Handle output.
	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(alternatives)
	case constants.OutputFormatCSV:
		output.CsvFormat(alternatives)
	case constants.OutputFormatJSON:
		if err := output.JSONFormat(alternatives); err != nil {
			logger.Fatal("failed to encode alternatives",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}
}
