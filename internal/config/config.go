package config

import (
	"os"
	"path/filepath"
	"strconv"
)

const (
	AppName    = "Feedboard"
	AppVersion = "1.0.0"
)

type Config struct {
	Addr      string
	DBPath    string
	DataDir   string
	StaticDir string
	LogLevel  string
	NodeID    int64
}

func Load() Config {
	addr := os.Getenv("FEEDBOARD_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	dataDir := os.Getenv("FEEDBOARD_DATA_DIR")
	if dataDir == "" {
		dataDir = "./data"
	}
	path := os.Getenv("FEEDBOARD_DB_PATH")
	if path == "" {
		path = filepath.Join(dataDir, "feedboard.db")
	}
	staticDir := os.Getenv("FEEDBOARD_STATIC_DIR")
	if staticDir == "" {
		staticDir = detectStaticDir()
	}
	logLevel := os.Getenv("FEEDBOARD_LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	// Node ID must be unique per instance (0-1023) when running more than one.
	var nodeID int64
	if raw := os.Getenv("FEEDBOARD_NODE_ID"); raw != "" {
		if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil {
			nodeID = parsed
		}
	}

	return Config{
		Addr:      addr,
		DBPath:    filepath.Clean(path),
		DataDir:   filepath.Clean(dataDir),
		StaticDir: filepath.Clean(staticDir),
		LogLevel:  logLevel,
		NodeID:    nodeID,
	}
}

func detectStaticDir() string {
	candidates := []string{
		"./frontend/dist",
		"../frontend/dist",
	}
	for _, candidate := range candidates {
		indexPath := filepath.Join(candidate, "index.html")
		if info, err := os.Stat(indexPath); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return "./frontend/dist"
}
