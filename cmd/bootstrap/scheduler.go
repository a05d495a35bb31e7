package bootstrap

import (
	"context"
	"log/slog"

	"villanest/internal/infra/scheduler"
	"villanest/internal/pkg/clock"
	"villanest/internal/pkg/config"
	"villanest/internal/usecase/commands"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		NewScheduler,
	),
	fx.Invoke(RegisterJobs),
)

func NewScheduler(lc fx.Lifecycle, clk clock.Clock) *scheduler.Scheduler {
	s := scheduler.New(clk.Location())
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return s.Stop(ctx)
		},
	})
	return s
}

func RegisterJobs(s *scheduler.Scheduler, cfg config.Config, notifications commands.NotificationCommands) error {
	if !cfg.Notify.Enabled {
		slog.Info("Notification dispatcher disabled")
		return nil
	}
	return s.Add("dispatch-notifications", cfg.Notify.Schedule, func(ctx context.Context) error {
		result, err := notifications.DispatchDue(ctx)
		if err != nil {
			return err
		}
		if result.Claimed > 0 {
			slog.Info("Notifications dispatched",
				"claimed", result.Claimed, "sent", result.Sent, "failed", result.Failed)
		}
		return nil
	})
}
