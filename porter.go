// Package porter provides a platform-agnostic model for digital wallet passes
// (event tickets, loyalty cards, generic passes) and the plumbing to issue them
// through a wallet provider's REST API.
//
// Features:
// - A unified [Pass] model built incrementally with [Builder].
// - Conversion to and from Google Wallet objects in the google subpackage.
// - A [PassClient] interface implemented per platform (Google Wallet today, Apple Wallet stubbed).
package porter
