package services

import (
	"context"
	"fmt"
	"log/slog"

	"imagetagger/internal/domain"
)

// ReviewNotifier emails a proposer the verdict on their tag suggestion.
// Notification is best-effort: a failure is logged and never surfaced to the
// review request.
type ReviewNotifier struct {
	mailer domain.Mailer
	users  domain.UserService
	logger *slog.Logger
}

// NewReviewNotifier returns a ReviewNotifier using the given mailer and user
// directory.
func NewReviewNotifier(mailer domain.Mailer, users domain.UserService, logger *slog.Logger) *ReviewNotifier {
	return &ReviewNotifier{mailer: mailer, users: users, logger: logger}
}

// NotifyReviewed sends the review verdict for the suggestion to its proposer.
func (n *ReviewNotifier) NotifyReviewed(ctx context.Context, suggestion domain.TagSuggestion) {
	user, err := n.users.Get(ctx, suggestion.SuggestedBy)
	if err != nil {
		n.logger.Debug("review notification skipped, proposer unknown",
			"suggested_by", suggestion.SuggestedBy)
		return
	}

	var subject, verdict string
	switch suggestion.Status {
	case domain.StatusApproved:
		subject = fmt.Sprintf("Your tag %q was approved", suggestion.Tag)
		verdict = "approved"
	case domain.StatusRejected:
		subject = fmt.Sprintf("Your tag %q was rejected", suggestion.Tag)
		verdict = "rejected"
	default:
		return
	}
	text := fmt.Sprintf("Hi %s,\n\nYour tag suggestion %q was %s by %s.\n",
		user.Username, suggestion.Tag, verdict, suggestion.ReviewedBy)

	if err := n.mailer.Send(user.Email, subject, "", text); err != nil {
		n.logger.Error("failed to send review notification",
			"to", user.Email, "suggestion_id", suggestion.ID, "err", err)
	}
}
