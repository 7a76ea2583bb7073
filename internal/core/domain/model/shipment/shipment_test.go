package shipment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/shipment"
	"shiptrack/internal/pkg/errs"
)

func mustLocation(t *testing.T, value string) kernel.Location {
	t.Helper()
	loc, err := kernel.NewLocation(value)
	require.NoError(t, err)
	return loc
}

func newShipment(t *testing.T) *shipment.Shipment {
	t.Helper()
	s, err := shipment.NewShipment(1, mustLocation(t, "Origin depot"))
	require.NoError(t, err)
	return s
}

func TestNewShipment(t *testing.T) {
	t.Run("valid shipment", func(t *testing.T) {
		location := mustLocation(t, "Origin depot")
		s, err := shipment.NewShipment(7, location)
		require.NoError(t, err)

		assert.NoError(t, s.Validate())
		assert.Equal(t, kernel.ShipmentID(7), s.ID())
		assert.Equal(t, shipment.Added, s.Status())
		assert.True(t, s.Location().IsEqual(location))

		events := s.DomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, shipment.ShipmentCreated{ID: 7, Location: location}, events[0])
	})

	t.Run("invalid id", func(t *testing.T) {
		_, err := shipment.NewShipment(0, mustLocation(t, "Origin depot"))
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value location", func(t *testing.T) {
		_, err := shipment.NewShipment(1, kernel.Location{})
		assert.Error(t, err)
	})

	t.Run("zero value shipment fails validation", func(t *testing.T) {
		var s shipment.Shipment
		assert.Equal(t, shipment.ErrShipmentIsNotConstructed, s.Validate())
	})
}

func TestRestoreShipment(t *testing.T) {
	t.Run("valid restore raises no events", func(t *testing.T) {
		location := mustLocation(t, "Hub 3")
		s, err := shipment.RestoreShipment(5, shipment.InTransit, location)
		require.NoError(t, err)

		assert.Equal(t, kernel.ShipmentID(5), s.ID())
		assert.Equal(t, shipment.InTransit, s.Status())
		assert.Empty(t, s.DomainEvents())
	})

	t.Run("invalid status", func(t *testing.T) {
		_, err := shipment.RestoreShipment(5, shipment.Unknown, mustLocation(t, "Hub 3"))
		assert.Error(t, err)
	})
}

func TestShipment_ChangeStatus(t *testing.T) {
	t.Run("forward transition with new location", func(t *testing.T) {
		s := newShipment(t)
		s.ClearDomainEvents()
		port := mustLocation(t, "Port of Hamburg")

		require.NoError(t, s.ChangeStatus(shipment.Shipped, &port))

		assert.Equal(t, shipment.Shipped, s.Status())
		assert.True(t, s.Location().IsEqual(port))

		events := s.DomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, shipment.ShipmentStatusChanged{
			ID:       s.ID(),
			Status:   shipment.Shipped,
			Location: port,
		}, events[0])
	})

	t.Run("nil location retains the previous one", func(t *testing.T) {
		s := newShipment(t)
		before := s.Location()
		s.ClearDomainEvents()

		require.NoError(t, s.ChangeStatus(shipment.Dispatched, nil))

		assert.True(t, s.Location().IsEqual(before))

		events := s.DomainEvents()
		require.Len(t, events, 1)
		changed, ok := events[0].(shipment.ShipmentStatusChanged)
		require.True(t, ok)
		assert.True(t, changed.Location.IsEqual(before))
	})

	t.Run("backward and skipping transitions are allowed", func(t *testing.T) {
		s := newShipment(t)

		require.NoError(t, s.ChangeStatus(shipment.Arrived, nil))
		require.NoError(t, s.ChangeStatus(shipment.Shipped, nil))
		require.NoError(t, s.ChangeStatus(shipment.OutForDelivery, nil))

		assert.Equal(t, shipment.OutForDelivery, s.Status())
	})

	t.Run("cancelled is rejected on the general path", func(t *testing.T) {
		s := newShipment(t)
		before := s.Status()

		err := s.ChangeStatus(shipment.Cancelled, nil)
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
		assert.Equal(t, before, s.Status())
	})

	t.Run("invalid status", func(t *testing.T) {
		s := newShipment(t)
		err := s.ChangeStatus(shipment.Unknown, nil)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("delivered record is immutable", func(t *testing.T) {
		s := newShipment(t)
		require.NoError(t, s.ChangeStatus(shipment.Delivered, nil))

		err := s.ChangeStatus(shipment.InTransit, nil)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, shipment.Delivered, s.Status())
	})

	t.Run("invalid location leaves state untouched", func(t *testing.T) {
		s := newShipment(t)
		before := s.Status()
		s.ClearDomainEvents()

		var bad kernel.Location
		err := s.ChangeStatus(shipment.Shipped, &bad)
		assert.Error(t, err)
		assert.Equal(t, before, s.Status())
		assert.Empty(t, s.DomainEvents())
	})
}

func TestShipment_Cancel(t *testing.T) {
	t.Run("active shipment cancels", func(t *testing.T) {
		s := newShipment(t)
		before := s.Location()
		s.ClearDomainEvents()

		require.NoError(t, s.Cancel())

		assert.Equal(t, shipment.Cancelled, s.Status())
		assert.True(t, s.Location().IsEqual(before))

		events := s.DomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, shipment.ShipmentCancelled{ID: s.ID()}, events[0])
	})

	t.Run("delivered shipment cannot cancel", func(t *testing.T) {
		s := newShipment(t)
		require.NoError(t, s.ChangeStatus(shipment.Delivered, nil))

		err := s.Cancel()
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("cancelling twice fails", func(t *testing.T) {
		s := newShipment(t)
		require.NoError(t, s.Cancel())

		err := s.Cancel()
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestShipment_IsEqual(t *testing.T) {
	a := newShipment(t)
	sameID, err := shipment.RestoreShipment(a.ID(), shipment.Delivered, mustLocation(t, "Elsewhere"))
	require.NoError(t, err)
	other, err := shipment.NewShipment(2, mustLocation(t, "Origin depot"))
	require.NoError(t, err)

	assert.True(t, a.IsEqual(sameID))
	assert.False(t, a.IsEqual(other))
	assert.False(t, a.IsEqual(nil))
}
