// Package store provides persistence for becoming's two record slots: the
// previous check-in and the reminder signup.
//
// It contains concrete implementations of the domain storage interfaces:
//   - CheckinFileStore and SignupFileStore write JSON files under the home
//     directory with atomic temp-file renames. With a passphrase the check-in
//     is sealed using scrypt and ChaCha20-Poly1305.
//   - SQLiteStore keeps both slots as rows in one SQLite database.
//   - MemoryStore keeps both slots in memory.
//
// Every save overwrites the slot; there is no history. All methods are
// concurrency-safe.
package store
