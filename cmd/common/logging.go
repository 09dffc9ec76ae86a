package common

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// SetupLogging points slog at the diagnostic log file (~/.tunetexture/tunetexture.log) and
// makes it the default logger. Interactive commands must not log to the terminal, so when
// alsoStderr is false the file is the only destination. The returned function closes the file.
func SetupLogging(verbose, alsoStderr bool) func() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	var writers []io.Writer
	if alsoStderr {
		writers = append(writers, os.Stderr)
	}

	closeFn := func() {}
	if logFile := openLogFile(); logFile != nil {
		writers = append(writers, logFile)
		closeFn = func() { _ = logFile.Close() }
	}

	var out io.Writer = io.Discard
	if len(writers) > 0 {
		out = io.MultiWriter(writers...)
	}

	handler := slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
	return closeFn
}

func openLogFile() *os.File {
	logPath := LogPath()
	if logPath == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil
	}
	logFile, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil
	}
	return logFile
}
