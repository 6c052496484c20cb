package http

import (
	nethttp "net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"

	"feedboard/internal/logger"
)

// apiPrefixes stay on the API even when a frontend build is present.
var apiPrefixes = []string{"/feedback", "/healthz", "/swagger"}

// registerStatic serves a built frontend with SPA fallback when dir contains
// an index.html. Without one the service runs API-only.
func registerStatic(e *echo.Echo, dir string) {
	if dir == "" {
		return
	}
	indexPath := filepath.Join(dir, "index.html")
	info, err := os.Stat(indexPath)
	if err != nil || info.IsDir() {
		logger.Debug("static assets disabled", "module", "http", "path", indexPath)
		return
	}

	logger.Info("static assets enabled", "module", "http", "dir", dir)

	fileServer := nethttp.FileServer(nethttp.Dir(dir))

	e.GET("/*", func(c echo.Context) error {
		requestPath := c.Request().URL.Path
		for _, prefix := range apiPrefixes {
			if requestPath == prefix || strings.HasPrefix(requestPath, prefix+"/") {
				return echo.ErrNotFound
			}
		}

		cleanPath := strings.TrimPrefix(path.Clean(requestPath), "/")
		if cleanPath == "." || cleanPath == "" {
			return c.File(indexPath)
		}

		candidate := filepath.Join(dir, cleanPath)
		if fileInfo, err := os.Stat(candidate); err == nil && !fileInfo.IsDir() {
			fileServer.ServeHTTP(c.Response(), c.Request())
			return nil
		}

		return c.File(indexPath)
	})
}
