// Package report renders a check-in as the fixed plain-text export that is
// copied to the clipboard and handed to the mail composer, and as the
// Markdown summary shown in the terminal.
package report
