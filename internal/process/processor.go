package process

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/teemow/labrecords/internal/classify"
	"github.com/teemow/labrecords/internal/gmail"
	"github.com/teemow/labrecords/internal/logging"
)

// Mailbox supplies messages for analysis.
type Mailbox interface {
	ListRecentMessages(daysBack int, maxResults int64) ([]*gmail.Message, error)
	GetEmail(messageID string) (*gmail.Message, error)
}

// Analyzer classifies a single message. Implementations never fail; endpoint
// errors surface as error-flagged results.
type Analyzer interface {
	AnalyzeEmail(ctx context.Context, msg *gmail.Message) *classify.Result
}

// Processor runs classification batches over a mailbox.
type Processor struct {
	mailbox   Mailbox
	analyzer  Analyzer
	logger    *slog.Logger
	maxEmails int64
}

// NewProcessor creates a batch processor. maxEmails caps how many messages a
// run retrieves. A nil logger discards log output.
func NewProcessor(mailbox Mailbox, analyzer Analyzer, maxEmails int64, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Processor{
		mailbox:   mailbox,
		analyzer:  analyzer,
		logger:    logger,
		maxEmails: maxEmails,
	}
}

// ProcessRecent retrieves messages from the look-back window and classifies
// them in retrieval order. A window with no messages returns an empty, nil
// slice and no error.
func (p *Processor) ProcessRecent(ctx context.Context, daysBack int) ([]*classify.Result, error) {
	logger := logging.WithOperation(p.logger, "process_recent")

	messages, err := p.mailbox.ListRecentMessages(daysBack, p.maxEmails)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve recent emails: %w", err)
	}

	if len(messages) == 0 {
		logger.Info("no emails found", slog.Int("days_back", daysBack))
		return nil, nil
	}

	logger.Info("analyzing emails",
		slog.Int("count", len(messages)),
		slog.Int("days_back", daysBack),
	)

	results := make([]*classify.Result, 0, len(messages))
	for i, msg := range messages {
		logger.Debug("analyzing email",
			slog.Int("index", i+1),
			slog.Int("total", len(messages)),
			slog.String("email_id", msg.ID),
		)
		results = append(results, p.analyzer.AnalyzeEmail(ctx, msg))
	}

	return results, nil
}

// AnalyzeByIDs classifies specific messages by their IDs, preserving the
// given order. IDs that cannot be retrieved are logged and skipped.
func (p *Processor) AnalyzeByIDs(ctx context.Context, ids []string) []*classify.Result {
	logger := logging.WithOperation(p.logger, "analyze_by_ids")

	results := make([]*classify.Result, 0, len(ids))
	for _, id := range ids {
		msg, err := p.mailbox.GetEmail(id)
		if err != nil {
			logger.Warn("could not retrieve email",
				slog.String("email_id", id),
				logging.Err(err),
			)
			continue
		}
		results = append(results, p.analyzer.AnalyzeEmail(ctx, msg))
	}

	return results
}
