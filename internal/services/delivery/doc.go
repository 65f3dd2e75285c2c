// Package delivery hands a formatted report to the user's mail client and
// clipboard.
//
// There is no outbound mail. Send builds a mailto: link, asks the desktop to
// open it and copies the body to the clipboard as a fallback for clients that
// truncate long mailto bodies. Both steps are best effort.
package delivery
