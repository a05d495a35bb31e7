package review

import (
	"strings"
	"time"

	"villanest/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidRating       = errs.New("rating must be between 1 and 5")
	ErrEmptyComment        = errs.New("comment cannot be empty")
	ErrCommentTooLong      = errs.New("comment exceeds maximum length")
	ErrStayNotCompleted    = errs.New("a completed stay at this villa is required to review it")
	ErrReviewAlreadyExists = errs.New("review already exists for this villa")
)

type Review struct {
	id        uuid.UUID
	villaID   uuid.UUID
	userID    uuid.UUID
	userName  string
	rating    Rating
	comment   Comment
	visible   bool
	createdAt time.Time
	updatedAt time.Time
}

// NewReview creates a visible review. Moderation may hide it later.
func NewReview(villaID, userID uuid.UUID, userName string, ratingValue int, commentText string, now time.Time) (*Review, error) {
	rating, err := NewRating(ratingValue)
	if err != nil {
		return nil, err
	}

	comment, err := NewComment(commentText)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(userName)
	if name == "" {
		name = "Guest"
	}

	return &Review{
		id:        uuid.New(),
		villaID:   villaID,
		userID:    userID,
		userName:  name,
		rating:    rating,
		comment:   comment,
		visible:   true,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructReview(id, villaID, userID uuid.UUID, userName string, rating Rating, comment Comment, visible bool, createdAt, updatedAt time.Time) *Review {
	return &Review{
		id:        id,
		villaID:   villaID,
		userID:    userID,
		userName:  userName,
		rating:    rating,
		comment:   comment,
		visible:   visible,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// SetVisibility reports whether the flag actually changed.
func (r *Review) SetVisibility(visible bool, now time.Time) bool {
	if r.visible == visible {
		return false
	}
	r.visible = visible
	r.updatedAt = now
	return true
}

func (r *Review) ID() uuid.UUID        { return r.id }
func (r *Review) VillaID() uuid.UUID   { return r.villaID }
func (r *Review) UserID() uuid.UUID    { return r.userID }
func (r *Review) UserName() string     { return r.userName }
func (r *Review) Rating() Rating       { return r.rating }
func (r *Review) Comment() Comment     { return r.comment }
func (r *Review) IsVisible() bool      { return r.visible }
func (r *Review) CreatedAt() time.Time { return r.createdAt }
func (r *Review) UpdatedAt() time.Time { return r.updatedAt }
