package driver_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

func newDriver(t *testing.T) *driver.Driver {
	t.Helper()
	d, err := driver.NewDriver(kernel.NewUUID(), "Lucía", "+54 11 5555-0101", driver.Motorcycle, "caba")
	require.NoError(t, err)
	return d
}

func TestNewDriver(t *testing.T) {
	t.Run("should create offline driver with default rating", func(t *testing.T) {
		d := newDriver(t)

		require.NoError(t, d.Validate())
		assert.Equal(t, driver.Offline, d.Availability())
		assert.True(t, d.Rating().Equal(driver.DefaultRating))
		assert.Nil(t, d.Location())
		assert.Nil(t, d.CurrentOrderID())
		assert.Equal(t, "caba", d.ClientScope())
		assert.Zero(t, d.CompletedDeliveries())
	})

	t.Run("should join validation errors", func(t *testing.T) {
		d, err := driver.NewDriver(kernel.UUID{}, "", "", "skateboard", "")

		require.Error(t, err)
		assert.Nil(t, d)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		assert.ErrorIs(t, err, driver.ErrNameIsRequired)
		assert.ErrorIs(t, err, driver.ErrPhoneIsRequired)
		assert.Contains(t, err.Error(), `"skateboard" is not a known vehicle type`)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var d driver.Driver
		require.ErrorIs(t, d.Validate(), driver.ErrDriverIsNotConstructed)
		require.ErrorIs(t, d.GoOnline(), driver.ErrDriverIsNotConstructed)
	})
}

func TestDriver_Availability(t *testing.T) {
	t.Run("online offline toggling", func(t *testing.T) {
		d := newDriver(t)

		require.NoError(t, d.GoOnline())
		assert.True(t, d.IsAvailable())
		require.NoError(t, d.GoOnline())
		require.NoError(t, d.GoOffline())
		assert.Equal(t, driver.Offline, d.Availability())
	})

	t.Run("busy driver cannot go offline", func(t *testing.T) {
		d := newDriver(t)
		require.NoError(t, d.GoOnline())
		require.NoError(t, d.MarkBusy(kernel.NewUUID()))

		require.ErrorIs(t, d.GoOffline(), driver.ErrDriverIsBusy)
		require.ErrorIs(t, d.GoOnline(), driver.ErrDriverIsBusy)
		assert.Equal(t, driver.Busy, d.Availability())
	})
}

func TestDriver_MarkBusy(t *testing.T) {
	t.Run("available driver becomes busy", func(t *testing.T) {
		d := newDriver(t)
		require.NoError(t, d.GoOnline())
		orderID := kernel.NewUUID()

		require.NoError(t, d.MarkBusy(orderID))

		assert.Equal(t, driver.Busy, d.Availability())
		require.NotNil(t, d.CurrentOrderID())
		assert.True(t, d.CurrentOrderID().IsEqual(orderID))
	})

	for _, state := range []string{"offline", "busy"} {
		t.Run(state+" driver is not available", func(t *testing.T) {
			d := newDriver(t)
			if state == "busy" {
				require.NoError(t, d.GoOnline())
				require.NoError(t, d.MarkBusy(kernel.NewUUID()))
			}
			version := d.Version()

			err := d.MarkBusy(kernel.NewUUID())

			var dna *driver.DriverNotAvailableError
			require.ErrorAs(t, err, &dna)
			assert.ErrorIs(t, err, driver.ErrDriverNotAvailable)
			assert.True(t, dna.DriverID.IsEqual(d.ID()))
			assert.Equal(t, state, dna.Availability.String())
			assert.Equal(t, version, d.Version())
		})
	}
}

func TestDriver_Release(t *testing.T) {
	tests := []struct {
		name          string
		delivered     bool
		wantCompleted int
	}{
		{"delivered increments completed count", true, 1},
		{"cancelled keeps completed count", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDriver(t)
			require.NoError(t, d.GoOnline())
			require.NoError(t, d.MarkBusy(kernel.NewUUID()))

			require.NoError(t, d.Release(tt.delivered))

			assert.Equal(t, driver.Available, d.Availability())
			assert.Nil(t, d.CurrentOrderID())
			assert.Equal(t, tt.wantCompleted, d.CompletedDeliveries())
		})
	}

	t.Run("releasing an idle driver fails", func(t *testing.T) {
		d := newDriver(t)
		require.ErrorIs(t, d.Release(true), driver.ErrDriverIsNotBusy)
	})
}

func TestDriver_UpdateLocation(t *testing.T) {
	d := newDriver(t)
	loc, err := kernel.NewLocation(-34.6, -58.4)
	require.NoError(t, err)
	version := d.Version()

	require.NoError(t, d.UpdateLocation(loc))

	require.NotNil(t, d.Location())
	eq, err := d.Location().IsEqual(loc)
	require.NoError(t, err)
	assert.True(t, eq)
	assert.Equal(t, version+1, d.Version())

	require.ErrorIs(t, d.UpdateLocation(kernel.Location{}), kernel.ErrLocationIsNotConstructed)
}

func TestRestoreDriver(t *testing.T) {
	loc, _ := kernel.NewLocation(1, 2)
	valid := driver.State{
		ID:                  kernel.NewUUID(),
		Name:                "Tomás",
		Phone:               "+54 351 555 0102",
		Vehicle:             driver.Bicycle,
		Availability:        driver.Available,
		Location:            &loc,
		Rating:              decimal.RequireFromString("4.75"),
		CompletedDeliveries: 12,
		ClientScope:         "cordoba",
		Version:             7,
	}

	t.Run("should restore all fields", func(t *testing.T) {
		d, err := driver.RestoreDriver(valid)

		require.NoError(t, err)
		assert.Equal(t, "4.75", d.Rating().String())
		assert.Equal(t, 12, d.CompletedDeliveries())
		assert.Equal(t, 7, d.Version())
		assert.Equal(t, 7, d.PersistedVersion())
		assert.Equal(t, driver.Bicycle, d.Vehicle())
	})

	t.Run("should reject rating out of range", func(t *testing.T) {
		s := valid
		s.Rating = decimal.RequireFromString("5.5")

		_, err := driver.RestoreDriver(s)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject busy driver without order", func(t *testing.T) {
		s := valid
		s.Availability = driver.Busy

		_, err := driver.RestoreDriver(s)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject unknown availability", func(t *testing.T) {
		s := valid
		s.Availability = driver.AvailabilityUnknown

		_, err := driver.RestoreDriver(s)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestParseAvailability(t *testing.T) {
	for _, a := range []driver.Availability{driver.Available, driver.Busy, driver.Offline} {
		parsed, err := driver.ParseAvailability(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, parsed)
	}
	_, err := driver.ParseAvailability("unknown")
	require.Error(t, err)
}
