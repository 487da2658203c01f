// Package gmail provides a read-only client for retrieving messages for
// record analysis.
//
// The client wraps the Gmail Users service and offers:
//   - Listing recent messages within a look-back window, capped per batch
//   - Single-message lookup by ID
//   - Header and body extraction into a plain Message value
//
// Body extraction prefers text/plain parts and falls back to text/html.
// Authentication uses the unified Google OAuth token from the google package;
// tokens are cached per account under the user cache directory.
//
// Example usage:
//
//	ctx := context.Background()
//	client, err := gmail.NewClient(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	msgs, err := client.ListRecentMessages(7, 10)
//	if err != nil {
//	    log.Fatal(err)
//	}
package gmail
