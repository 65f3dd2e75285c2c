// Package types holds the plain data types shared across becoming: the
// domain and rating enums, the check-in record and the signup record.
package types
