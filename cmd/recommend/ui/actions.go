package ui

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/GiGurra/cmder"
	"github.com/atotto/clipboard"
)

// Replaced in tests.
var (
	openURL           = openBrowser
	clipboardWriteAll = clipboard.WriteAll
)

func openBrowser(ctx context.Context, url string) error {
	app, args, err := browserCommand(runtime.GOOS)
	if err != nil {
		return err
	}
	result := cmder.New(app, append(args, url)...).
		WithAttemptTimeout(5 * time.Second).
		Run(ctx)
	if result.Err != nil {
		return fmt.Errorf("opening %s: %w", url, result.Err)
	}
	return nil
}

func browserCommand(goos string) (string, []string, error) {
	switch goos {
	case "linux":
		return "xdg-open", nil, nil
	case "darwin":
		return "open", nil, nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler"}, nil
	default:
		return "", nil, fmt.Errorf("unsupported platform: %s", goos)
	}
}
