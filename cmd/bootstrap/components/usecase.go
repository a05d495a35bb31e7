package components

import (
	"villanest/internal/pkg/clock"
	"villanest/internal/pkg/config"
	"villanest/internal/pkg/password"
	"villanest/internal/usecase"
	"villanest/internal/usecase/commands"
	"villanest/internal/usecase/queries"
	"villanest/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	password.NewHasher,
	shared.NewBookingPolicy,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingCommands,
		commands.NewReviewUseCase,
		commands.NewVillaCommands,
		commands.NewFavoriteCommands,
		NewNotificationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewVillaQueries,
		queries.NewBookingQueries,
		queries.NewAvailabilityQueries,
		queries.NewReviewQueries,
		queries.NewFavoriteQueries,
		queries.NewAnalyticsQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewNotificationCommands(uow shared.UnitOfWork, mailer commands.Mailer, clk clock.Clock, cfg config.Config) commands.NotificationCommands {
	return commands.NewNotificationCommands(uow, mailer, clk, cfg.Notify.BatchSize)
}
