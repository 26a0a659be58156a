package alerts

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type service struct {
	repo   Repository
	logger *zap.SugaredLogger

	// now is the wall clock used for the creation timestamp and for the
	// deduplication day. Overridable in tests.
	now func() time.Time
}

var _ Service = &service{}

func NewService(repo Repository, logger *zap.SugaredLogger) (Service, error) {
	return &service{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}, nil
}

func (s *service) Create(ctx context.Context, label string, userId int, message string, recipientIds []int) error {
	alertType, err := s.repo.ResolveType(ctx, label)
	if err != nil {
		return err
	}
	if alertType == nil {
		// The catalog is seeded externally; a missing label must not abort
		// the whole run.
		s.logger.Warnw("skipping alert with unknown label", "label", label, "userId", userId)
		return nil
	}

	now := s.now()
	exists, err := s.repo.Exists(ctx, userId, alertType.Id, message, now)
	if err != nil {
		return err
	}
	if exists {
		s.logger.Debugw("alert already created today, skipping",
			"label", label, "userId", userId,
		)
		return nil
	}

	alert, err := s.repo.CreateAlert(ctx, Alert{
		UserId:      userId,
		AlertTypeId: alertType.Id,
		Message:     message,
		CreatedAt:   now,
	})
	if err != nil {
		return err
	}

	recipients := distinctNonZero(recipientIds)
	for _, recipientId := range recipients {
		err := s.repo.CreateRecipient(ctx, Recipient{
			AlertId:         alert.Id,
			RecipientUserId: recipientId,
			IsRead:          false,
		})
		if err != nil {
			// The alert stays in place with fewer recipients than intended.
			return err
		}
	}

	s.logger.Infow("alert created",
		"label", label, "userId", userId, "recipients", len(recipients),
	)
	return nil
}

// distinctNonZero drops duplicate ids and the zero sentinel used for an
// unassigned doctor, preserving first-seen order.
func distinctNonZero(ids []int) []int {
	seen := make(map[int]struct{}, len(ids))
	result := make([]int, 0, len(ids))
	for _, id := range ids {
		if id == 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}
