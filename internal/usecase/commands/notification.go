package commands

//go:generate mockgen -source=notification.go -destination=../../../tests/mock/commands/notification.go -package=commandsmock

import (
	"context"
	"encoding/json"
	"log/slog"

	"villanest/internal/pkg/clock"
	"villanest/internal/pkg/errs"
	"villanest/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrUnknownNotification = errs.New("unknown notification topic")

type Mailer interface {
	SendBookingConfirmation(ctx context.Context, msg shared.BookingConfirmation) error
}

type DispatchResult struct {
	Claimed int
	Sent    int
	Failed  int

	// Released counts claimed jobs put back to pending because the run was
	// cancelled before they were delivered.
	Released int
}

type NotificationCommands interface {
	// DispatchDue claims due jobs, delivers them and records the outcome.
	// A job the provider rejects is marked failed and not retried. Jobs left
	// undelivered by a cancelled ctx go back to pending.
	DispatchDue(ctx context.Context) (*DispatchResult, error)
}

type notificationCommandsImpl struct {
	uow       shared.UnitOfWork
	mailer    Mailer
	clock     clock.Clock
	batchSize int32
}

func NewNotificationCommands(uow shared.UnitOfWork, mailer Mailer, clk clock.Clock, batchSize int32) NotificationCommands {
	if batchSize <= 0 {
		batchSize = 20
	}
	return &notificationCommandsImpl{uow: uow, mailer: mailer, clock: clk, batchSize: batchSize}
}

func (n *notificationCommandsImpl) DispatchDue(ctx context.Context) (*DispatchResult, error) {
	var jobs []shared.NotificationJob
	err := n.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		claimed, err := tx.Notifications().ClaimDue(ctx, tx.DB(), n.clock.Now(), n.batchSize)
		if err != nil {
			return err
		}
		jobs = claimed
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Outcomes are written with a context that survives cancellation of ctx.
	recordCtx := context.WithoutCancel(ctx)

	result := &DispatchResult{Claimed: len(jobs)}
	var recordErrs []error
	var unsent []uuid.UUID
	for _, job := range jobs {
		if ctx.Err() != nil {
			unsent = append(unsent, job.ID)
			continue
		}
		sendErr := n.deliver(ctx, job)
		if sendErr != nil && ctx.Err() != nil {
			// interrupted by shutdown, not rejected by the provider
			unsent = append(unsent, job.ID)
			continue
		}
		if sendErr != nil {
			slog.Warn("notification delivery failed",
				"job_id", job.ID.String(),
				"topic", job.Topic,
				"attempts", job.Attempts,
				"error", sendErr.Error())
			result.Failed++
		} else {
			result.Sent++
		}
		if err := n.record(recordCtx, job.ID, sendErr); err != nil {
			slog.Error("failed to record notification outcome", "job_id", job.ID.String(), "error", err.Error())
			recordErrs = append(recordErrs, err)
		}
	}

	if len(unsent) > 0 {
		result.Released = len(unsent)
		err := n.uow.Within(recordCtx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Notifications().Release(ctx, tx.DB(), unsent)
		})
		if err != nil {
			slog.Error("failed to release unsent notifications", "count", len(unsent), "error", err.Error())
			recordErrs = append(recordErrs, err)
		}
	}
	return result, errs.Join(recordErrs...)
}

func (n *notificationCommandsImpl) deliver(ctx context.Context, job shared.NotificationJob) error {
	if job.Kind != shared.NotificationKindEmail || job.Topic != shared.TopicBookingConfirmed {
		return errs.Wrapf(ErrUnknownNotification, "%s/%s", job.Kind, job.Topic)
	}

	var msg shared.BookingConfirmation
	if err := json.Unmarshal(job.Payload, &msg); err != nil {
		return errs.Wrap(err, "failed to decode booking confirmation payload")
	}
	return n.mailer.SendBookingConfirmation(ctx, msg)
}

func (n *notificationCommandsImpl) record(ctx context.Context, jobID uuid.UUID, sendErr error) error {
	return n.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if sendErr != nil {
			return tx.Notifications().MarkFailed(ctx, tx.DB(), jobID, sendErr.Error())
		}
		return tx.Notifications().MarkSent(ctx, tx.DB(), jobID)
	})
}
