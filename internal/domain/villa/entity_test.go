//go:build unit

package villa_test

import (
	"testing"
	"time"

	"villanest/internal/domain/villa"
	"villanest/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.VillaBuilder)
	errIs  error
}

func TestVilla(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewVillaBuilder().
			With(func(b *builder.VillaBuilder) {
				b.Name = "  Casa Azul  "
				b.Type = ""
			}).
			BuildDomain()
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "Casa Azul", actual.Name())
		assert.Equal(t, "villa", actual.Type())
		assert.True(t, actual.IsActive())
		assert.NotNil(t, actual.Media())
		assert.Nil(t, actual.PriceHourly())
	})

	t.Run("field validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "missing name",
				mutate: func(b *builder.VillaBuilder) { b.WithName("   ") },
				errIs:  villa.ErrEmptyName,
			},
			{
				name:   "missing location",
				mutate: func(b *builder.VillaBuilder) { b.WithLocation("") },
				errIs:  villa.ErrEmptyLocation,
			},
			{
				name:   "zero nightly price",
				mutate: func(b *builder.VillaBuilder) { b.WithPricePerNight(0) },
				errIs:  villa.ErrInvalidPrice,
			},
			{
				name:   "negative hourly price",
				mutate: func(b *builder.VillaBuilder) { b.WithPriceHourly(-1) },
				errIs:  villa.ErrInvalidHourly,
			},
			{
				name:   "hourly price set",
				mutate: func(b *builder.VillaBuilder) { b.WithPriceHourly(2500) },
			},
		})
	})

	t.Run("update and deactivate", func(t *testing.T) {
		v, err := builder.NewVillaBuilder().BuildDomain()
		require.NoError(t, err)
		later := v.CreatedAt().Add(time.Hour)

		p := builder.NewVillaBuilder().WithName("Casa Verde").WithPricePerNight(12000).BuildParams()
		require.NoError(t, v.Update(p, later))
		assert.Equal(t, "Casa Verde", v.Name())
		assert.Equal(t, int64(12000), v.PricePerNight())
		assert.Equal(t, later, v.UpdatedAt())

		bad := p
		bad.PricePerNight = 0
		assert.ErrorIs(t, v.Update(bad, later), villa.ErrInvalidPrice)
		assert.Equal(t, int64(12000), v.PricePerNight())

		v.Deactivate(later)
		assert.False(t, v.IsActive())
	})
}

func TestNormalizeAmenities(t *testing.T) {
	got := villa.NormalizeAmenities([]string{" Pool ", "wifi", "", "pool", "WiFi", "Parking"})
	assert.Equal(t, []string{"pool", "wifi", "parking"}, got)

	assert.Equal(t, []string{"pool", "wifi"}, villa.SplitAmenities("pool, wifi,,"))
	assert.Equal(t, []string{"pool"}, villa.SplitAmenities("POOL"))
	assert.Equal(t, []string{}, villa.SplitAmenities(""))
}

func TestNewMedia(t *testing.T) {
	m, err := villa.NewMedia("image", " https://img.example.com/a.jpg ")
	require.NoError(t, err)
	assert.Equal(t, villa.Media{Type: villa.MediaImage, URL: "https://img.example.com/a.jpg"}, m)

	_, err = villa.NewMedia("audio", "https://img.example.com/a.mp3")
	assert.ErrorIs(t, err, villa.ErrInvalidMedia)

	_, err = villa.NewMedia("video", "")
	assert.ErrorIs(t, err, villa.ErrInvalidMedia)
}

func TestNewCoordinates(t *testing.T) {
	c, err := villa.NewCoordinates(15.29, 73.91)
	require.NoError(t, err)
	assert.Equal(t, villa.Coordinates{Lat: 15.29, Lng: 73.91}, c)

	_, err = villa.NewCoordinates(91, 0)
	assert.ErrorIs(t, err, villa.ErrInvalidLocation)

	_, err = villa.NewCoordinates(0, -181)
	assert.ErrorIs(t, err, villa.ErrInvalidLocation)
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewVillaBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
