package offer

import (
	"sync"
	"testing"
	"time"

	offerRepo "fixmarkt/database/repository/offer"
	requestRepo "fixmarkt/database/repository/request"
	workshopRepo "fixmarkt/database/repository/workshop"
	"fixmarkt/models"
	"fixmarkt/services/request"
	"fixmarkt/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

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
	for _, existing := range r.offers {
		if existing.RequestID == o.RequestID && existing.WorkshopID == o.WorkshopID {
			return offerRepo.ErrDuplicate
		}
	}
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

func (r *fakeOfferRepo) ListByRequest(requestID string) ([]models.Offer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Offer
	for _, o := range r.offers {
		if o.RequestID == requestID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *fakeOfferRepo) ListByWorkshop(workshopID string) ([]models.Offer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Offer
	for _, o := range r.offers {
		if o.WorkshopID == workshopID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *fakeOfferRepo) RequestIDsWithOfferFrom(workshopID string) (map[string]bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make(map[string]bool)
	for _, o := range r.offers {
		if o.WorkshopID == workshopID {
			ids[o.RequestID] = true
		}
	}
	return ids, nil
}

func (r *fakeOfferRepo) Update(o *models.Offer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.offers[o.ID]; !ok {
		return offerRepo.ErrNotFound
	}
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
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Request
	for _, req := range r.requests {
		if req.CustomerID == customerID {
			out = append(out, *req)
		}
	}
	return out, nil
}

func (r *fakeRequestRepo) ListOpen() ([]models.Request, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	var out []models.Request
	for _, req := range r.requests {
		if (req.Status == models.RequestStatusNew || req.Status == models.RequestStatusInBidding) &&
			req.ExpiresAt.After(now) {
			out = append(out, *req)
		}
	}
	return out, nil
}

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

type fakeWorkshopRepo struct {
	workshops map[string]*models.Workshop
}

func newFakeWorkshopRepo() *fakeWorkshopRepo {
	return &fakeWorkshopRepo{workshops: make(map[string]*models.Workshop)}
}

func (r *fakeWorkshopRepo) Create(w *models.Workshop) error {
	r.workshops[w.ID] = w
	return nil
}

func (r *fakeWorkshopRepo) GetByID(id string) (*models.Workshop, error) {
	w, ok := r.workshops[id]
	if !ok {
		return nil, workshopRepo.ErrNotFound
	}
	return w, nil
}

func (r *fakeWorkshopRepo) GetByEmail(email string) (*models.Workshop, error) {
	for _, w := range r.workshops {
		if w.Email == email {
			return w, nil
		}
	}
	return nil, workshopRepo.ErrNotFound
}

func (r *fakeWorkshopRepo) GetByTokenHash(tokenHash string) (*models.Workshop, error) {
	for _, w := range r.workshops {
		if w.TokenHash == tokenHash {
			return w, nil
		}
	}
	return nil, workshopRepo.ErrNotFound
}

func (r *fakeWorkshopRepo) UpdateTokenHash(id, tokenHash string) error {
	w, ok := r.workshops[id]
	if !ok {
		return workshopRepo.ErrNotFound
	}
	w.TokenHash = tokenHash
	return nil
}

func (r *fakeWorkshopRepo) Update(w *models.Workshop) error {
	if _, ok := r.workshops[w.ID]; !ok {
		return workshopRepo.ErrNotFound
	}
	r.workshops[w.ID] = w
	return nil
}

func newTestService() (*DefaultOfferService, *fakeOfferRepo, *fakeRequestRepo, *fakeWorkshopRepo) {
	offers := newFakeOfferRepo()
	requests := newFakeRequestRepo()
	workshops := newFakeWorkshopRepo()
	svc := &DefaultOfferService{
		Repo:       offers,
		Requests:   requests,
		Workshops:  workshops,
		RequestSvc: &request.DefaultRequestService{Repo: requests},
	}
	return svc, offers, requests, workshops
}

func seedWorkshop(workshops *fakeWorkshopRepo, id string) {
	workshops.Create(&models.Workshop{ID: id, Name: "Werkstatt " + id, Email: id + "@example.com"})
}

func seedRequest(requests *fakeRequestRepo, id, status string, lat, lon float64) {
	requests.Create(&models.Request{
		ID:         id,
		CustomerID: "cust-1",
		Status:     status,
		Location:   models.Location{Latitude: lat, Longitude: lon},
		ExpiresAt:  time.Now().Add(24 * time.Hour),
	})
}

func TestCreateOffer(t *testing.T) {
	svc, _, requests, workshops := newTestService()
	seedWorkshop(workshops, "ws-1")
	seedRequest(requests, "req-1", models.RequestStatusNew, 52.52, 13.405)

	o, err := svc.Create("ws-1", CreateOfferInput{RequestID: "req-1", Price: 450})
	require.NoError(t, err)
	assert.Equal(t, models.OfferStatusSent, o.Status)
	assert.Equal(t, "ws-1", o.WorkshopID)

	// The first offer opens the bidding.
	req, _ := requests.GetByID("req-1")
	assert.Equal(t, models.RequestStatusInBidding, req.Status)
}

func TestCreateOfferSecondWorkshopKeepsBiddingOpen(t *testing.T) {
	svc, _, requests, workshops := newTestService()
	seedWorkshop(workshops, "ws-1")
	seedWorkshop(workshops, "ws-2")
	seedRequest(requests, "req-1", models.RequestStatusNew, 52.52, 13.405)

	_, err := svc.Create("ws-1", CreateOfferInput{RequestID: "req-1", Price: 450})
	require.NoError(t, err)
	_, err = svc.Create("ws-2", CreateOfferInput{RequestID: "req-1", Price: 500})
	require.NoError(t, err)

	req, _ := requests.GetByID("req-1")
	assert.Equal(t, models.RequestStatusInBidding, req.Status)
}

func TestCreateOfferErrors(t *testing.T) {
	svc, _, requests, workshops := newTestService()
	seedWorkshop(workshops, "ws-1")
	seedRequest(requests, "req-1", models.RequestStatusNew, 52.52, 13.405)
	seedRequest(requests, "req-booked", models.RequestStatusBooked, 52.52, 13.405)

	t.Run("non-positive price", func(t *testing.T) {
		_, err := svc.Create("ws-1", CreateOfferInput{RequestID: "req-1", Price: 0})
		assert.True(t, utils.IsKind(err, utils.KindValidation))
	})

	t.Run("unknown workshop", func(t *testing.T) {
		_, err := svc.Create("ws-missing", CreateOfferInput{RequestID: "req-1", Price: 450})
		assert.True(t, utils.IsKind(err, utils.KindNotFound))
	})

	t.Run("unknown request", func(t *testing.T) {
		_, err := svc.Create("ws-1", CreateOfferInput{RequestID: "req-missing", Price: 450})
		assert.True(t, utils.IsKind(err, utils.KindNotFound))
	})

	t.Run("request no longer open", func(t *testing.T) {
		_, err := svc.Create("ws-1", CreateOfferInput{RequestID: "req-booked", Price: 450})
		assert.True(t, utils.IsKind(err, utils.KindInvalidState))
	})

	t.Run("duplicate offer on same request", func(t *testing.T) {
		_, err := svc.Create("ws-1", CreateOfferInput{RequestID: "req-1", Price: 450})
		require.NoError(t, err)
		_, err = svc.Create("ws-1", CreateOfferInput{RequestID: "req-1", Price: 400})
		assert.True(t, utils.IsKind(err, utils.KindConflict))
	})
}

func TestUpdateOffer(t *testing.T) {
	newPrice := 400.0
	declined := models.OfferStatusDeclined
	accepted := models.OfferStatusAccepted

	t.Run("owner updates price", func(t *testing.T) {
		svc, offers, _, _ := newTestService()
		offers.Create(&models.Offer{ID: "off-1", RequestID: "req-1", WorkshopID: "ws-1", Price: 450, Status: models.OfferStatusSent})

		o, err := svc.Update("off-1", "ws-1", models.OfferPatch{Price: &newPrice})
		require.NoError(t, err)
		assert.Equal(t, 400.0, o.Price)
	})

	t.Run("foreign workshop is rejected", func(t *testing.T) {
		svc, offers, _, _ := newTestService()
		offers.Create(&models.Offer{ID: "off-1", WorkshopID: "ws-1", Price: 450, Status: models.OfferStatusSent})

		_, err := svc.Update("off-1", "ws-2", models.OfferPatch{Price: &newPrice})
		assert.True(t, utils.IsKind(err, utils.KindForbidden))
	})

	t.Run("accepted offers are immutable", func(t *testing.T) {
		svc, offers, _, _ := newTestService()
		offers.Create(&models.Offer{ID: "off-1", WorkshopID: "ws-1", Price: 450, Status: models.OfferStatusAccepted})

		_, err := svc.Update("off-1", "ws-1", models.OfferPatch{Price: &newPrice})
		assert.True(t, utils.IsKind(err, utils.KindInvalidState))
	})

	t.Run("workshop can decline its own offer", func(t *testing.T) {
		svc, offers, _, _ := newTestService()
		offers.Create(&models.Offer{ID: "off-1", WorkshopID: "ws-1", Price: 450, Status: models.OfferStatusSent})

		o, err := svc.Update("off-1", "ws-1", models.OfferPatch{Status: &declined})
		require.NoError(t, err)
		assert.Equal(t, models.OfferStatusDeclined, o.Status)
	})

	t.Run("acceptance only via booking", func(t *testing.T) {
		svc, offers, _, _ := newTestService()
		offers.Create(&models.Offer{ID: "off-1", WorkshopID: "ws-1", Price: 450, Status: models.OfferStatusSent})

		_, err := svc.Update("off-1", "ws-1", models.OfferPatch{Status: &accepted})
		assert.True(t, utils.IsKind(err, utils.KindValidation))
	})
}

func TestListByRequestOwnership(t *testing.T) {
	svc, offers, requests, _ := newTestService()
	seedRequest(requests, "req-1", models.RequestStatusInBidding, 52.52, 13.405)
	offers.Create(&models.Offer{ID: "off-1", RequestID: "req-1", WorkshopID: "ws-1", Status: models.OfferStatusSent})

	list, err := svc.ListByRequest("req-1", "cust-1", models.RoleCustomer)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = svc.ListByRequest("req-1", "cust-2", models.RoleCustomer)
	assert.True(t, utils.IsKind(err, utils.KindForbidden))

	_, err = svc.ListByRequest("req-1", "admin-1", models.RoleAdmin)
	assert.NoError(t, err)
}
