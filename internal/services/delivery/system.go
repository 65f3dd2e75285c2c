package delivery

import (
	"context"
	"os/exec"
	"runtime"

	"github.com/atotto/clipboard"

	"becoming/internal/domain"
)

// clipboardWriteAll is swapped out in tests.
var clipboardWriteAll = clipboard.WriteAll

// SystemClipboard writes to the OS clipboard.
type SystemClipboard struct{}

// WriteAll copies text to the clipboard.
func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return errClipboardUnsupported
	}
	return clipboardWriteAll(text)
}

// SystemOpener opens URLs with the platform's default handler.
type SystemOpener struct{}

// Open starts the handler for url without waiting for it to exit.
func (SystemOpener) Open(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	return cmd.Start()
}

var (
	_ domain.Clipboard = SystemClipboard{}
	_ domain.Opener    = SystemOpener{}
)
