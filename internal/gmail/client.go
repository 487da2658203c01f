package gmail

import (
	"context"
	"fmt"
	"time"

	gmail "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	"github.com/teemow/labrecords/internal/google"
)

// Client wraps the Gmail Users service for read-only message retrieval.
type Client struct {
	svc     *gmail.UsersService
	account string // The account this client is associated with

	// now is swapped in tests to pin the look-back query date.
	now func() time.Time
}

// Account returns the account name this client is associated with.
func (c *Client) Account() string {
	return c.account
}

// HasTokenForAccount checks if a valid OAuth token exists for the specified account.
func HasTokenForAccount(account string) bool {
	return google.HasTokenForAccount(account)
}

// NewClientForAccount creates a new Gmail client with OAuth2 authentication
// for a specific account. The token must already be cached; run the auth
// command first if it is not.
func NewClientForAccount(ctx context.Context, account string) (*Client, error) {
	client, err := google.GetHTTPClientForAccount(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("no valid Google OAuth token found for account %s: %w. Run 'labrecords auth' first", account, err)
	}

	svc, err := gmail.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gmail service: %w", err)
	}

	return &Client{
		svc:     svc.Users,
		account: account,
		now:     time.Now,
	}, nil
}

// NewClient creates a new Gmail client for the default account.
func NewClient(ctx context.Context) (*Client, error) {
	return NewClientForAccount(ctx, "default")
}

// recentQuery builds the Gmail search query for a look-back window.
func recentQuery(now time.Time, daysBack int) string {
	since := now.AddDate(0, 0, -daysBack)
	return fmt.Sprintf("after:%s", since.Format("2006/01/02"))
}

// ListRecentMessages retrieves up to maxResults messages received within the
// last daysBack days, fully populated. Pagination is handled internally; the
// Gmail API caps a single page at 100 results.
func (c *Client) ListRecentMessages(daysBack int, maxResults int64) ([]*Message, error) {
	q := recentQuery(c.now(), daysBack)

	var ids []string
	pageToken := ""

	for {
		remaining := maxResults - int64(len(ids))
		if remaining <= 0 {
			break
		}

		pageSize := remaining
		if pageSize > 100 {
			pageSize = 100
		}

		req := c.svc.Messages.List("me").Q(q).MaxResults(pageSize)
		if pageToken != "" {
			req = req.PageToken(pageToken)
		}

		res, err := req.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list messages: %w", err)
		}

		for _, m := range res.Messages {
			ids = append(ids, m.Id)
		}

		if res.NextPageToken == "" || int64(len(ids)) >= maxResults {
			break
		}
		pageToken = res.NextPageToken
	}

	if int64(len(ids)) > maxResults {
		ids = ids[:maxResults]
	}

	messages := make([]*Message, 0, len(ids))
	for _, id := range ids {
		msg, err := c.GetEmail(id)
		if err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}

	return messages, nil
}

// GetEmail retrieves a single message by ID with headers and body extracted.
func (c *Client) GetEmail(messageID string) (*Message, error) {
	if messageID == "" {
		return nil, fmt.Errorf("messageID is required")
	}

	msg, err := c.svc.Messages.Get("me", messageID).Format("full").Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get message %s: %w", messageID, err)
	}

	return ExtractMessage(msg), nil
}
