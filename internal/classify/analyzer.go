package classify

import (
	"context"
	"log/slog"
	"time"

	"github.com/teemow/labrecords/internal/gmail"
	"github.com/teemow/labrecords/internal/instrumentation"
	"github.com/teemow/labrecords/internal/logging"
)

// Generator is the model endpoint: prompt in, response text out.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Analyzer drives the per-message classification flow: build prompt, call the
// model, parse or fall back, attach message metadata.
type Analyzer struct {
	llm     Generator
	builder *Builder
	parser  *Parser
	logger  *slog.Logger
	metrics *instrumentation.Metrics
}

// NewAnalyzer wires the classification pipeline. logger and metrics may be
// nil, in which case logging is discarded and metrics are no-ops.
func NewAnalyzer(llm Generator, builder *Builder, parser *Parser, logger *slog.Logger, metrics *instrumentation.Metrics) *Analyzer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if metrics == nil {
		metrics = &instrumentation.Metrics{}
	}
	return &Analyzer{
		llm:     llm,
		builder: builder,
		parser:  parser,
		logger:  logger,
		metrics: metrics,
	}
}

// AnalyzeEmail classifies a single message. It never returns an error:
// endpoint failures are downgraded to an error-flagged Result so one failing
// message cannot abort a batch.
func (a *Analyzer) AnalyzeEmail(ctx context.Context, msg *gmail.Message) *Result {
	logger := logging.WithOperation(a.logger, "analyze_email")

	prompt := a.builder.Build(msg)

	start := time.Now()
	response, err := a.llm.Generate(ctx, prompt)
	a.metrics.RecordGenerateDuration(ctx, time.Since(start), err == nil)

	var result *Result
	if err != nil {
		logger.Warn("model endpoint call failed",
			slog.String("email_id", msg.ID),
			logging.UserHash(msg.From),
			logging.Err(err),
		)
		result = errorResult(err)
	} else {
		var source Source
		result, source = a.parser.Parse(response)
		if source == SourceFallback {
			a.metrics.RecordFallback(ctx)
			logger.Debug("model output not parseable, used keyword fallback",
				slog.String("email_id", msg.ID),
			)
		}
	}

	result.EmailID = msg.ID
	result.Subject = msg.Subject
	result.From = msg.From
	result.Date = msg.Date

	a.metrics.RecordEmailAnalyzed(ctx, outcome(result))

	logger.Debug("email classified",
		slog.String("email_id", msg.ID),
		slog.Bool("is_lab_record", result.IsLabRecord),
		slog.String("record_type", result.RecordType),
		slog.Float64("confidence", result.ConfidenceScore),
	)

	return result
}

// errorResult builds the downgraded result for a failed endpoint call: all
// criteria false, zero confidence, error flag set.
func errorResult(err error) *Result {
	return &Result{
		IsLabRecord:           false,
		MeetsBusinessCriteria: false,
		MeetsActionCriteria:   false,
		IsExcluded:            false,
		ExclusionReason:       "",
		ConfidenceScore:       0.0,
		BusinessIndicators:    nil,
		ActionIndicators:      nil,
		RecordType:            RecordNone,
		Summary:               "Analysis failed: " + err.Error(),
		KeyEvidence:           nil,
		Error:                 true,
	}
}

func outcome(r *Result) string {
	switch {
	case r.Error:
		return "error"
	case r.IsLabRecord:
		return "record"
	case r.IsExcluded:
		return "excluded"
	default:
		return "not_record"
	}
}
