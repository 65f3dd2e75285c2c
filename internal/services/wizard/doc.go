// Package wizard is the five-step alignment questionnaire as an explicit
// finite-state machine.
//
// Steps
//
//  1. Future self     three free-text identity statements
//  2. What matters    pick up to three domains, one goal each
//  3. This year       one outcome per selected domain, at most 120 characters
//  4. Reality check   a rating per domain plus a shared off-track note
//  5. Insight         classification and insight; Complete saves the record
//
// Navigation is forward-only: Continue is the single transition and there is
// no way back. Mutators are scoped to their step and fail with ErrWrongStep
// anywhere else. The same Wizard serves both the first run (ModeFresh) and a
// repeat check-in (ModeCheckin), which pre-fills steps 1–3 from the previous
// record and reports per-domain deltas on step 4.
package wizard
