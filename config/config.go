package config

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

//go:embed version
var version string

//go:embed name
var name string

type LogLevel string

const (
	Debug  LogLevel = "debug"
	Info   LogLevel = "info"
	Notice LogLevel = "notice"
	Warn   LogLevel = "warn"
	Error  LogLevel = "error"
)

// LoadEnvFile loads an optional .env file from the working directory.
// A missing file is not an error; real env vars take precedence.
func LoadEnvFile() {
	_ = godotenv.Load()
}

func GetVersion() string {
	return strings.TrimSpace(version)
}

func GetName() string {
	return strings.TrimSpace(name)
}

func GetLogLevel() LogLevel {
	if IsDebug() {
		return Debug
	}
	logLevel := os.Getenv("LF_LOG_LEVEL")
	if logLevel == "" {
		return Info
	}
	return LogLevel(logLevel)
}

func IsDebug() bool {
	return os.Getenv("LF_DEBUG") == "true"
}

func GetListen() string {
	return os.Getenv("LF_LISTEN")
}

func GetPort() int {
	port, err := strconv.Atoi(os.Getenv("LF_PORT"))
	if err != nil || port <= 0 || port > 65535 {
		return 8080
	}
	return port
}

func GetDBFolderPath() string {
	dbFolderPath := os.Getenv("LF_DB_FOLDER")
	if dbFolderPath == "" {
		dbFolderPath = "data"
	}
	return dbFolderPath
}

func GetDBPath() string {
	return fmt.Sprintf("%s/%s.db", GetDBFolderPath(), GetName())
}

func GetUploadFolder() string {
	uploadFolderPath := os.Getenv("LF_UPLOAD_FOLDER")
	if uploadFolderPath == "" {
		uploadFolderPath = "uploads"
	}
	return uploadFolderPath
}

func GetLogFolder() string {
	logFolderPath := os.Getenv("LF_LOG_FOLDER")
	if logFolderPath == "" {
		logFolderPath = "log"
	}
	return logFolderPath
}

// GetSessionSecret returns the configured cookie-session secret, or ""
// when the server should generate a random one at startup.
func GetSessionSecret() string {
	return os.Getenv("LF_SESSION_SECRET")
}
