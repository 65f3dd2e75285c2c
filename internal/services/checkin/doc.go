// Package checkin ties the stored record to the wizard and the report.
//
// It loads the previous check-in to start a wizard, serves the record to the
// summary view and formats exports. A missing or unreadable record is never
// fatal: the wizard starts without a prior and the summary reports
// ErrNoCheckin, which callers answer by sending the user back to the wizard.
package checkin
