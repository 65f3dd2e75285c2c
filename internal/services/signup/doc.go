// Package signup keeps the weekly check-in reminder address and schedule.
package signup
