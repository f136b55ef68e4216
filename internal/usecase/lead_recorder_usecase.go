package usecase

import (
	"context"
	"cotacao_ia/internal/domain/entities"
	"cotacao_ia/internal/domain/leadparse"
	"cotacao_ia/internal/observability/metrics"
	"cotacao_ia/internal/usecase/interfaces"
	"time"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// leadAppendTimeout bounds the spreadsheet append. The append is detached
// from request cancellation.
const leadAppendTimeout = 15 * time.Second

var leadTracer = otel.Tracer("cotacao.internal.usecase.lead")

// ILeadRecorderUseCase turns a ready transcript into a spreadsheet row.
//
// Record never fails from the caller's point of view: every problem is logged
// and reported through the returned outcome.
type ILeadRecorderUseCase interface {
	Record(ctx context.Context, conversationID string, turns []entities.ConversationTurn) entities.LeadOutcome
}

type LeadRecorderUseCase struct {
	sheet    interfaces.ILeadSheet
	markers  interfaces.ILeadMarkerRepository
	location *time.Location
	metrics  *metrics.QuoteMetrics
	now      func() time.Time
}

var _ ILeadRecorderUseCase = (*LeadRecorderUseCase)(nil)

// NewLeadRecorderUseCase wires the recorder. A nil sheet means the spreadsheet
// is not configured and every lead is skipped; a nil marker repository
// disables de-duplication.
func NewLeadRecorderUseCase(sheet interfaces.ILeadSheet, markers interfaces.ILeadMarkerRepository, location *time.Location, m *metrics.QuoteMetrics) *LeadRecorderUseCase {
	if location == nil {
		location = time.UTC
	}
	return &LeadRecorderUseCase{
		sheet:    sheet,
		markers:  markers,
		location: location,
		metrics:  m,
		now:      time.Now,
	}
}

// BuildLeadRecord extracts the lead fields from the user-authored turns and
// stamps it as a new lead captured at the given instant.
func BuildLeadRecord(turns []entities.ConversationTurn, capturedAt time.Time) entities.LeadRecord {
	text := entities.UserText(turns)
	rec := leadparse.Extract(text)
	rec.CapturedAt = capturedAt
	rec.Status = entities.LeadStatusNew
	rec.TranscriptExcerpt = entities.Excerpt(text, entities.LeadExcerptLimit)
	return rec
}

func (u *LeadRecorderUseCase) Record(ctx context.Context, conversationID string, turns []entities.ConversationTurn) entities.LeadOutcome {
	ctx, span := leadTracer.Start(ctx, "lead.record")
	defer span.End()
	span.SetAttributes(attribute.String("lead.conversation_id", conversationID))

	outcome := u.record(ctx, conversationID, turns)
	span.SetAttributes(attribute.String("lead.outcome", string(outcome)))
	if outcome == entities.LeadOutcomeFailed {
		span.SetStatus(codes.Error, "lead append failed")
	}
	u.metrics.ObserveLead(string(outcome))
	return outcome
}

func (u *LeadRecorderUseCase) record(ctx context.Context, conversationID string, turns []entities.ConversationTurn) entities.LeadOutcome {
	if u.sheet == nil {
		log.Debug().Str("conversation_id", conversationID).Msg("[lead][usecase] spreadsheet not configured; skipping")
		return entities.LeadOutcomeSkippedUnconfigured
	}

	if u.markers != nil && conversationID != "" {
		claimed, err := u.markers.MarkRecorded(ctx, conversationID)
		switch {
		case err != nil:
			log.Warn().Err(err).Str("conversation_id", conversationID).Msg("[lead][usecase] marker check failed; appending anyway")
		case !claimed:
			log.Info().Str("conversation_id", conversationID).Msg("[lead][usecase] lead already recorded")
			return entities.LeadOutcomeDuplicate
		}
	}

	rec := BuildLeadRecord(turns, u.now().In(u.location))

	appendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), leadAppendTimeout)
	defer cancel()
	if err := u.sheet.AppendRow(appendCtx, rec.Row()); err != nil {
		log.Error().Err(err).Str("conversation_id", conversationID).Msg("[lead][usecase] append failed")
		return entities.LeadOutcomeFailed
	}

	log.Info().
		Str("conversation_id", conversationID).
		Str("plan_type", string(rec.PlanType)).
		Msg("[lead][usecase] lead appended")
	return entities.LeadOutcomeAppended
}
