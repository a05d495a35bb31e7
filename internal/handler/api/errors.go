package api

import (
	"errors"
	"log/slog"
	"net/http"

	"villanest/internal/domain/booking"
	domreview "villanest/internal/domain/review"
	"villanest/internal/domain/user"
	"villanest/internal/domain/villa"
	"villanest/internal/handler/httperr"
	"villanest/internal/handler/middleware"
	"villanest/internal/pkg/errs"
	"villanest/internal/usecase/commands"
	"villanest/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/go-playground/validator/v10"
)

var (
	errUnauthenticated = errs.New("unauthenticated")
	errInvalidID       = errs.New("invalid id")
)

type statusRule struct {
	status int
	refs   []error
}

// statusRules is evaluated top to bottom; the first match wins.
var statusRules = []statusRule{
	{http.StatusBadRequest, []error{
		booking.ErrIncompleteBooking, booking.ErrStayTooLong, booking.ErrPastDate, booking.ErrInvalidDate,
		booking.ErrInvalidHour, booking.ErrInvalidBookingType, booking.ErrInvalidStayType,
		booking.ErrInvalidPaymentMethod, booking.ErrInvalidGuestCount, booking.ErrInvalidGuest,
		booking.ErrInvalidRate,
		villa.ErrEmptyName, villa.ErrEmptyLocation, villa.ErrInvalidPrice, villa.ErrInvalidHourly,
		villa.ErrInvalidMedia, villa.ErrInvalidLocation,
		domreview.ErrInvalidRating, domreview.ErrEmptyComment, domreview.ErrCommentTooLong,
		user.ErrInvalidEmail, user.ErrPasswordTooWeak, user.ErrInvalidDisplayName, user.ErrInvalidRole,
		queries.ErrInvalidCursor,
	}},
	{http.StatusUnauthorized, []error{
		commands.ErrInvalidCredentials, commands.ErrAuthenticationFailed, commands.ErrTokenValidation,
		errUnauthenticated,
	}},
	{http.StatusForbidden, []error{
		commands.ErrBookingAccess, queries.ErrBookingAccess, domreview.ErrStayNotCompleted,
		commands.ErrUserInactive, queries.ErrUserInactive,
	}},
	{http.StatusNotFound, []error{
		commands.ErrVillaNotFound, queries.ErrVillaNotFound, villa.ErrVillaInactive,
		commands.ErrBookingNotFound, queries.ErrBookingNotFound,
		commands.ErrReviewNotFoundWrite, queries.ErrReviewNotFound,
		commands.ErrUserNotFound, queries.ErrUserNotFound,
	}},
	{http.StatusConflict, []error{
		booking.ErrUnavailable, booking.ErrInvalidTransition,
		commands.ErrDuplicateReview, domreview.ErrReviewAlreadyExists,
		commands.ErrEmailTaken,
	}},
}

func statusOf(err error) int {
	for _, rule := range statusRules {
		if errs.IsAny(err, rule.refs...) {
			return rule.status
		}
	}
	return http.StatusInternalServerError
}

// abortWithUseCaseError maps a use case error to its status. Client errors
// carry the sentinel message; everything else is logged and hidden.
func abortWithUseCaseError(c *gin.Context, err error, op string) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		slog.Error(op+" failed",
			"error", err.Error(),
			"request_id", middleware.GetRequestID(c),
			"stack", errs.ExtractStackLines(err, 12))
		httperr.AbortWithError(c, status, err, "Internal server error", nil)
		return
	}
	httperr.AbortWithError(c, status, err, publicMessage(err), nil)
}

// publicMessage returns the outermost sentinel text without wrap prefixes.
func publicMessage(err error) string {
	for _, rule := range statusRules {
		for _, ref := range rule.refs {
			if errs.Is(err, ref) {
				return ref.Error()
			}
		}
	}
	return err.Error()
}

type fieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// abortWithBindError reports request binding failures as 400 with per-field details.
func abortWithBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]fieldError, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, fieldError{Field: fe.Field(), Rule: fe.Tag()})
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", details)
		return
	}
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
}

func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errInvalidID), "Invalid "+name, nil)
		return uuid.Nil, false
	}
	return id, true
}

func requireUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return uuid.Nil, false
	}
	return userID, true
}
