package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// ParseFlags parses the client command-line flags from args.
//
// Flags:
//
//	-driver durable storage driver (sqlite3, pgx, file)
//	-d durable storage DSN or file path
//	-carousel-interval carousel auto-rotation period (e.g. "2s")
//	-log-file client log file path
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	var driver, dsn, logFile, jsonConfigPath string
	var carouselInterval time.Duration

	fs := flag.NewFlagSet("booking", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&driver, "driver", "", "Durable storage driver: sqlite3, pgx or file")
	fs.StringVar(&dsn, "d", "", "Durable storage DSN")
	fs.DurationVar(&carouselInterval, "carousel-interval", 0, "Carousel rotation period (e.g., 2s)")
	fs.StringVar(&logFile, "log-file", "", "Client log file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{LogFile: logFile},
		Storage: Storage{
			DB: DB{Driver: driver, DSN: dsn},
		},
		UI:           UI{CarouselInterval: carouselInterval},
		JSONFilePath: jsonConfigPath,
	}, nil
}
