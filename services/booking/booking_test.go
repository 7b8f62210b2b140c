package booking

import (
	"sync"
	"testing"
	"time"

	bookingRepo "fixmarkt/database/repository/booking"
	offerRepo "fixmarkt/database/repository/offer"
	requestRepo "fixmarkt/database/repository/request"
	"fixmarkt/models"
	"fixmarkt/services/request"
	"fixmarkt/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]*models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
}

func (r *fakeBookingRepo) Create(b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.bookings {
		if existing.OfferID == b.OfferID {
			return bookingRepo.ErrDuplicate
		}
	}
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBookingRepo) ListByCustomer(customerID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.CustomerID == customerID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) ListByWorkshop(workshopID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.WorkshopID == workshopID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) Update(b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.bookings[b.ID]; !ok {
		return bookingRepo.ErrNotFound
	}
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *fakeBookingRepo) AggregatePayouts(from, to time.Time) ([]bookingRepo.PayoutRow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	buckets := make(map[string]*bookingRepo.PayoutRow)
	for _, b := range r.bookings {
		if b.Status != models.BookingStatusDone {
			continue
		}
		if b.CreatedAt.Before(from) || b.CreatedAt.After(to) {
			continue
		}
		row, ok := buckets[b.WorkshopID]
		if !ok {
			row = &bookingRepo.PayoutRow{WorkshopID: b.WorkshopID}
			buckets[b.WorkshopID] = row
		}
		row.TotalJobs++
		row.TotalAmount += b.TotalAmount
		row.Commission += b.Commission
	}
	var rows []bookingRepo.PayoutRow
	for _, row := range buckets {
		rows = append(rows, *row)
	}
	return rows, nil
}

type fakeOfferRepo struct {
	mu     sync.Mutex
	offers map[string]*models.Offer
}

func newFakeOfferRepo() *fakeOfferRepo {
	return &fakeOfferRepo{offers: make(map[string]*models.Offer)}
}

func (r *fakeOfferRepo) Create(o *models.Offer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *o
	r.offers[o.ID] = &cp
	return nil
}

func (r *fakeOfferRepo) GetByID(id string) (*models.Offer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.offers[id]
	if !ok {
		return nil, offerRepo.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOfferRepo) ListByRequest(requestID string) ([]models.Offer, error)  { return nil, nil }
func (r *fakeOfferRepo) ListByWorkshop(workshopID string) ([]models.Offer, error) { return nil, nil }

func (r *fakeOfferRepo) RequestIDsWithOfferFrom(workshopID string) (map[string]bool, error) {
	return map[string]bool{}, nil
}

func (r *fakeOfferRepo) Update(o *models.Offer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *o
	r.offers[o.ID] = &cp
	return nil
}

func (r *fakeOfferRepo) AcceptIfSent(id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.offers[id]
	if !ok || o.Status != models.OfferStatusSent {
		return false, nil
	}
	o.Status = models.OfferStatusAccepted
	return true, nil
}

type fakeRequestRepo struct {
	mu       sync.Mutex
	requests map[string]*models.Request
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: make(map[string]*models.Request)}
}

func (r *fakeRequestRepo) Create(req *models.Request) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *req
	r.requests[req.ID] = &cp
	return nil
}

func (r *fakeRequestRepo) GetByID(id string) (*models.Request, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	req, ok := r.requests[id]
	if !ok {
		return nil, requestRepo.ErrNotFound
	}
	cp := *req
	return &cp, nil
}

func (r *fakeRequestRepo) ListByCustomer(customerID string) ([]models.Request, error) {
	return nil, nil
}

func (r *fakeRequestRepo) ListOpen() ([]models.Request, error) { return nil, nil }

func (r *fakeRequestRepo) UpdateStatusWhere(id, to string, from ...string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	req, ok := r.requests[id]
	if !ok {
		return false, nil
	}
	for _, f := range from {
		if req.Status == f {
			req.Status = to
			return true, nil
		}
	}
	return false, nil
}

// spyNotifier records which milestone emails were triggered.
type spyNotifier struct {
	mu     sync.Mutex
	events []string
}

func (n *spyNotifier) record(event string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
}

func (n *spyNotifier) WelcomeUser(u *models.User)         { n.record("welcome_user") }
func (n *spyNotifier) WelcomeWorkshop(w *models.Workshop) { n.record("welcome_workshop") }
func (n *spyNotifier) RequestBooked(b *models.Booking)    { n.record("request_booked") }
func (n *spyNotifier) BookingCancelled(b *models.Booking) { n.record("booking_cancelled") }
func (n *spyNotifier) RequestCompleted(b *models.Booking) { n.record("request_completed") }

func (n *spyNotifier) has(event string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, e := range n.events {
		if e == event {
			return true
		}
	}
	return false
}

func newTestService() (*DefaultBookingService, *fakeBookingRepo, *fakeOfferRepo, *fakeRequestRepo, *spyNotifier) {
	bookings := newFakeBookingRepo()
	offers := newFakeOfferRepo()
	requests := newFakeRequestRepo()
	notifier := &spyNotifier{}
	svc := &DefaultBookingService{
		Repo:           bookings,
		Offers:         offers,
		Requests:       requests,
		RequestSvc:     &request.DefaultRequestService{Repo: requests},
		Notifier:       notifier,
		CommissionRate: 0.10,
	}
	return svc, bookings, offers, requests, notifier
}

func seedAcceptableOffer(offers *fakeOfferRepo, requests *fakeRequestRepo) {
	requests.Create(&models.Request{
		ID:         "req-1",
		CustomerID: "cust-1",
		Status:     models.RequestStatusInBidding,
	})
	offers.Create(&models.Offer{
		ID:         "off-1",
		RequestID:  "req-1",
		WorkshopID: "ws-1",
		Price:      1000,
		Status:     models.OfferStatusSent,
	})
}

func TestCreateFromOffer(t *testing.T) {
	svc, _, offers, requests, notifier := newTestService()
	seedAcceptableOffer(offers, requests)

	scheduledAt := time.Now().Add(48 * time.Hour)
	b, err := svc.CreateFromOffer("cust-1", CreateBookingInput{
		OfferID:     "off-1",
		ScheduledAt: scheduledAt,
		Notes:       "please call ahead",
	})
	require.NoError(t, err)

	assert.Equal(t, models.BookingStatusConfirmed, b.Status)
	assert.Equal(t, "req-1", b.RequestID)
	assert.Equal(t, "ws-1", b.WorkshopID)
	assert.Equal(t, 1000.0, b.TotalAmount)
	assert.Equal(t, 100.0, b.Commission)
	assert.Equal(t, 900.0, b.WorkshopAmount)

	// Acceptance cascades into the offer and the request.
	o, _ := offers.GetByID("off-1")
	assert.Equal(t, models.OfferStatusAccepted, o.Status)
	req, _ := requests.GetByID("req-1")
	assert.Equal(t, models.RequestStatusBooked, req.Status)
	assert.True(t, notifier.has("request_booked"))
}

func TestCreateFromOfferErrors(t *testing.T) {
	t.Run("missing schedule", func(t *testing.T) {
		svc, _, offers, requests, _ := newTestService()
		seedAcceptableOffer(offers, requests)

		_, err := svc.CreateFromOffer("cust-1", CreateBookingInput{OfferID: "off-1"})
		assert.True(t, utils.IsKind(err, utils.KindValidation))
	})

	t.Run("unknown offer", func(t *testing.T) {
		svc, _, _, _, _ := newTestService()
		_, err := svc.CreateFromOffer("cust-1", CreateBookingInput{
			OfferID:     "off-missing",
			ScheduledAt: time.Now().Add(time.Hour),
		})
		assert.True(t, utils.IsKind(err, utils.KindNotFound))
	})

	t.Run("offer not open", func(t *testing.T) {
		svc, _, offers, requests, _ := newTestService()
		seedAcceptableOffer(offers, requests)
		declined, _ := offers.GetByID("off-1")
		declined.Status = models.OfferStatusDeclined
		offers.Update(declined)

		_, err := svc.CreateFromOffer("cust-1", CreateBookingInput{
			OfferID:     "off-1",
			ScheduledAt: time.Now().Add(time.Hour),
		})
		assert.True(t, utils.IsKind(err, utils.KindInvalidState))
	})

	t.Run("foreign customer", func(t *testing.T) {
		svc, _, offers, requests, _ := newTestService()
		seedAcceptableOffer(offers, requests)

		_, err := svc.CreateFromOffer("cust-2", CreateBookingInput{
			OfferID:     "off-1",
			ScheduledAt: time.Now().Add(time.Hour),
		})
		assert.True(t, utils.IsKind(err, utils.KindForbidden))

		// The offer stays open for the rightful customer.
		o, _ := offers.GetByID("off-1")
		assert.Equal(t, models.OfferStatusSent, o.Status)
	})
}

func TestCreateFromOfferConcurrentAcceptance(t *testing.T) {
	svc, bookings, offers, requests, _ := newTestService()
	seedAcceptableOffer(offers, requests)

	scheduledAt := time.Now().Add(48 * time.Hour)
	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.CreateFromOffer("cust-1", CreateBookingInput{
				OfferID:     "off-1",
				ScheduledAt: scheduledAt,
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var won, lost int
	for err := range errs {
		if err == nil {
			won++
		} else {
			assert.True(t, utils.IsKind(err, utils.KindInvalidState))
			lost++
		}
	}
	assert.Equal(t, 1, won)
	assert.Equal(t, 1, lost)

	list, _ := bookings.ListByCustomer("cust-1")
	assert.Len(t, list, 1)
}

func seedBooking(bookings *fakeBookingRepo, requests *fakeRequestRepo, status string) {
	requests.Create(&models.Request{
		ID:         "req-1",
		CustomerID: "cust-1",
		Status:     models.RequestStatusBooked,
	})
	bookings.Create(&models.Booking{
		ID:          "bk-1",
		RequestID:   "req-1",
		OfferID:     "off-1",
		CustomerID:  "cust-1",
		WorkshopID:  "ws-1",
		ScheduledAt: time.Now().Add(24 * time.Hour),
		Status:      status,
	})
}

func TestUpdateStatusCancelClosesBidding(t *testing.T) {
	svc, bookings, _, requests, notifier := newTestService()
	seedBooking(bookings, requests, models.BookingStatusConfirmed)

	cancelled := models.BookingStatusCancelled
	b, err := svc.UpdateStatus("bk-1", "cust-1", models.RoleCustomer, UpdateBookingInput{Status: &cancelled})
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, b.Status)

	// The request leaves BOOKED but does not reopen for offers.
	req, _ := requests.GetByID("req-1")
	assert.Equal(t, models.RequestStatusBiddingClosed, req.Status)
	assert.True(t, notifier.has("booking_cancelled"))
}

func TestUpdateStatusDoneCompletesRequest(t *testing.T) {
	svc, bookings, _, requests, notifier := newTestService()
	seedBooking(bookings, requests, models.BookingStatusConfirmed)

	done := models.BookingStatusDone
	b, err := svc.UpdateStatus("bk-1", "cust-1", models.RoleCustomer, UpdateBookingInput{Status: &done})
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusDone, b.Status)

	req, _ := requests.GetByID("req-1")
	assert.Equal(t, models.RequestStatusCompleted, req.Status)
	assert.True(t, notifier.has("request_completed"))
}

func TestUpdateStatusNoShowLeavesRequest(t *testing.T) {
	svc, bookings, _, requests, _ := newTestService()
	seedBooking(bookings, requests, models.BookingStatusConfirmed)

	noShow := models.BookingStatusNoShow
	b, err := svc.UpdateStatus("bk-1", "cust-1", models.RoleCustomer, UpdateBookingInput{Status: &noShow})
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusNoShow, b.Status)

	req, _ := requests.GetByID("req-1")
	assert.Equal(t, models.RequestStatusBooked, req.Status)
}

func TestUpdateStatusScheduleOnlyReschedules(t *testing.T) {
	svc, bookings, _, requests, _ := newTestService()
	seedBooking(bookings, requests, models.BookingStatusConfirmed)

	newTime := time.Now().Add(72 * time.Hour)
	b, err := svc.UpdateStatus("bk-1", "cust-1", models.RoleCustomer, UpdateBookingInput{ScheduledAt: &newTime})
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusRescheduled, b.Status)
	assert.WithinDuration(t, newTime, b.ScheduledAt, time.Second)
}

func TestUpdateStatusGuards(t *testing.T) {
	done := models.BookingStatusDone

	t.Run("foreign customer", func(t *testing.T) {
		svc, bookings, _, requests, _ := newTestService()
		seedBooking(bookings, requests, models.BookingStatusConfirmed)

		_, err := svc.UpdateStatus("bk-1", "cust-2", models.RoleCustomer, UpdateBookingInput{Status: &done})
		assert.True(t, utils.IsKind(err, utils.KindForbidden))
	})

	t.Run("terminal booking", func(t *testing.T) {
		svc, bookings, _, requests, _ := newTestService()
		seedBooking(bookings, requests, models.BookingStatusCancelled)

		_, err := svc.UpdateStatus("bk-1", "cust-1", models.RoleCustomer, UpdateBookingInput{Status: &done})
		assert.True(t, utils.IsKind(err, utils.KindInvalidState))
	})

	t.Run("unknown status", func(t *testing.T) {
		svc, bookings, _, requests, _ := newTestService()
		seedBooking(bookings, requests, models.BookingStatusConfirmed)

		bogus := "SHIPPED"
		_, err := svc.UpdateStatus("bk-1", "cust-1", models.RoleCustomer, UpdateBookingInput{Status: &bogus})
		assert.True(t, utils.IsKind(err, utils.KindValidation))
	})

	t.Run("empty update", func(t *testing.T) {
		svc, bookings, _, requests, _ := newTestService()
		seedBooking(bookings, requests, models.BookingStatusConfirmed)

		_, err := svc.UpdateStatus("bk-1", "cust-1", models.RoleCustomer, UpdateBookingInput{})
		assert.True(t, utils.IsKind(err, utils.KindValidation))
	})

	t.Run("unknown booking", func(t *testing.T) {
		svc, _, _, _, _ := newTestService()
		_, err := svc.UpdateStatus("bk-missing", "cust-1", models.RoleCustomer, UpdateBookingInput{Status: &done})
		assert.True(t, utils.IsKind(err, utils.KindNotFound))
	})
}

func TestGetByIDVisibility(t *testing.T) {
	svc, bookings, _, requests, _ := newTestService()
	seedBooking(bookings, requests, models.BookingStatusConfirmed)

	_, err := svc.GetByID("bk-1", "cust-1", models.RoleCustomer)
	assert.NoError(t, err)

	_, err = svc.GetByID("bk-1", "ws-1", models.RoleWorkshop)
	assert.NoError(t, err)

	_, err = svc.GetByID("bk-1", "admin-1", models.RoleAdmin)
	assert.NoError(t, err)

	_, err = svc.GetByID("bk-1", "ws-2", models.RoleWorkshop)
	assert.True(t, utils.IsKind(err, utils.KindForbidden))
}
