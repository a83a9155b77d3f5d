package cli

import (
	"log/slog"
	"runtime/debug"
)

// logBuildInfo reports the binary's Go version and linked modules at debug level.
func logBuildInfo(logger *slog.Logger) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		logger.Debug("build info unavailable")
		return
	}

	logger.Debug("build info", "go", info.GoVersion, "main", info.Main.Path, "version", info.Main.Version, "modules", len(info.Deps))
	for _, dep := range info.Deps {
		logger.Debug("linked module", "path", dep.Path, "version", dep.Version)
	}
}
