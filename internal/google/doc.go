// Package google manages the OAuth2 token lifecycle for the Gmail API.
//
// Tokens are cached per account as files under the user cache directory
// (~/.cache/labrecords/google-<account>.token). The authorization flow is the
// out-of-band console flow: the auth command prints the authorization URL,
// the user pastes the code back, and the exchanged token is persisted for
// subsequent runs.
//
// Only the gmail.readonly scope is requested; this tool never mutates the
// mailbox.
package google
