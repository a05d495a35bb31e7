package response

import (
	"time"

	"villanest/internal/domain/booking"
	"villanest/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// copyOption renders IDs and dates as strings and timestamps as Unix seconds,
// matching the hand-written mappers.
var copyOption = copier.Option{
	DeepCopy: true,
	Converters: []copier.TypeConverter{
		{
			SrcType: uuid.UUID{},
			DstType: "",
			Fn: func(src any) (any, error) {
				return src.(uuid.UUID).String(), nil
			},
		},
		{
			SrcType: booking.Date{},
			DstType: "",
			Fn: func(src any) (any, error) {
				return src.(booking.Date).String(), nil
			},
		},
		{
			SrcType: time.Time{},
			DstType: int64(0),
			Fn: func(src any) (any, error) {
				return src.(time.Time).Unix(), nil
			},
		},
	},
}

func copyInto(dst, src any) error {
	if err := copier.CopyWithOption(dst, src, copyOption); err != nil {
		return errs.Wrap(err, "map response")
	}
	return nil
}
