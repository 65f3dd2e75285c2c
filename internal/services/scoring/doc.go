// Package scoring derives everything the summary shows from a check-in: the
// aggregate classification, the insight sentence, per-domain deltas against a
// previous check-in, and the takeaways and next steps of the summary view.
//
// All functions are pure and total over well-formed answers.
package scoring
