package types

import "time"

// ReminderInterval is the gap between weekly check-in reminders.
const ReminderInterval = 7 * 24 * time.Hour

// Signup records the address a user left for weekly check-in reminders.
type Signup struct {
	Email        string    `json:"email"`
	SignedUpAt   time.Time `json:"signupDate"`
	NextReminder time.Time `json:"nextReminder"`
}

// Due reports whether the next reminder is at or before now.
func (s Signup) Due(now time.Time) bool {
	return !s.NextReminder.IsZero() && !now.Before(s.NextReminder)
}
