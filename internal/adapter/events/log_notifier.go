package events

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/reuse-backend/internal/domain"
)

// LogNotifier records created matches in the log. Used when no broker is
// configured.
type LogNotifier struct {
	log *slog.Logger
}

func NewLogNotifier(log *slog.Logger) *LogNotifier {
	return &LogNotifier{log: log.With("component", "events")}
}

func (n *LogNotifier) MatchCreated(ctx context.Context, m *domain.Match) error {
	n.log.InfoContext(ctx, "match.created",
		slog.String("match_id", m.ID),
		slog.String("user_a_id", m.UserAID),
		slog.String("user_b_id", m.UserBID),
	)
	return nil
}
