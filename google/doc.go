// Package google implements porter passes on top of the Google Wallet REST API:
// https://developers.google.com/wallet/reference/rest
//
// Features:
// - Wire types for generic, event ticket and loyalty objects and classes.
// - Lossy conversion between [porter.Pass] and [GenericObject].
// - OAuth2 JWT-bearer authentication for service accounts with lazy token refresh.
// - "Save to wallet" URL generation.
package google
