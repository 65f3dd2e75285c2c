package interfaces

import "context"

// Clipboard copies text to the system clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

// Opener hands a URL (such as a mailto: link) to the desktop environment.
type Opener interface {
	Open(ctx context.Context, url string) error
}
