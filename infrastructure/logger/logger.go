package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	log "github.com/sirupsen/logrus"
)

var logger = log.New()

func init() {
	layout := "2006-01-02"
	env := os.Getenv("ENV")
	formatTime := time.Now().Format(layout)
	// Prefer stdout (plays well with systemd/docker). LOG_TO_FILE=true forces
	// file logging under ./logs.
	logToFile := os.Getenv("LOG_TO_FILE") == "true"
	logger.Out = os.Stdout
	if logToFile {
		cwd, err := os.Getwd()
		if err == nil {
			logsDir := filepath.Join(cwd, "logs")
			if mkErr := os.MkdirAll(logsDir, 0o755); mkErr != nil {
				log.Warnf("Failed to create logs directory %s: %v, falling back to stdout", logsDir, mkErr)
			} else {
				filePath := filepath.Join(logsDir, fmt.Sprintf("%s%s.log", formatTime, env))
				f, openErr := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
				if openErr != nil {
					log.Warnf("Failed to open log file %s: %v, falling back to stdout", filePath, openErr)
				} else {
					logger.Out = f
				}
			}
		}
	}

	logger.Formatter = &log.JSONFormatter{
		TimestampFormat: time.RFC3339Nano,
	}
	logger.SetLevel(log.DebugLevel)
}

// GetLogger returns an entry annotated with the calling function and position.
func GetLogger() *log.Entry {
	function, file, line, _ := runtime.Caller(1)

	functionObject := runtime.FuncForPC(function)
	entry := logger.WithFields(log.Fields{
		"function": functionObject.Name(),
		"file":     file,
		"line":     line,
	})

	return entry
}
