package application_test

import (
	"context"
	"sort"
	"sync"

	"github.com/shareit-hub/service-shareit/internal/domain"
	bookingDomain "github.com/shareit-hub/service-shareit/internal/domain/booking"
)

// memoryBookings is an in-memory booking store that applies the same
// filter, ordering and paging rules as the database repository.
type memoryBookings struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]*bookingDomain.Booking
}

func newMemoryBookings() *memoryBookings {
	return &memoryBookings{nextID: 1, rows: make(map[int64]*bookingDomain.Booking)}
}

func (m *memoryBookings) Save(_ context.Context, bk *bookingDomain.Booking) (*bookingDomain.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	saved := bookingDomain.ReconstructBooking(m.nextID, bk.Start(), bk.End(), bk.Item(), bk.Booker(), bk.Status())
	m.rows[saved.ID()] = saved
	m.nextID++
	return saved, nil
}

func (m *memoryBookings) Update(_ context.Context, bk *bookingDomain.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.rows[bk.ID()]; !ok {
		return bookingDomain.NewNotFoundError(bk.ID())
	}
	m.rows[bk.ID()] = bk
	return nil
}

func (m *memoryBookings) FindByID(_ context.Context, id int64) (*bookingDomain.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	bk, ok := m.rows[id]
	if !ok {
		return nil, bookingDomain.NewNotFoundError(id)
	}
	return bk, nil
}

func (m *memoryBookings) ListByBooker(_ context.Context, bookerID int64, f bookingDomain.Filter, p domain.Page) ([]*bookingDomain.Booking, error) {
	return m.list(func(bk *bookingDomain.Booking) bool { return bk.Booker().ID() == bookerID }, f, p), nil
}

func (m *memoryBookings) ListByOwner(_ context.Context, ownerID int64, f bookingDomain.Filter, p domain.Page) ([]*bookingDomain.Booking, error) {
	return m.list(func(bk *bookingDomain.Booking) bool { return bk.IsManagedBy(ownerID) }, f, p), nil
}

func (m *memoryBookings) list(keep func(*bookingDomain.Booking) bool, f bookingDomain.Filter, p domain.Page) []*bookingDomain.Booking {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []*bookingDomain.Booking
	for _, bk := range m.rows {
		if keep(bk) && f.Matches(bk) {
			out = append(out, bk)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].End().Equal(out[j].End()) {
			return out[i].End().After(out[j].End())
		}
		return out[i].ID() < out[j].ID()
	})

	if p.Offset() >= len(out) {
		return []*bookingDomain.Booking{}
	}
	end := min(p.Offset()+p.Limit(), len(out))
	return out[p.Offset():end]
}
