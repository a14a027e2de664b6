package checkout

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/tunedeck/checkout-service/internal/domain"
	"github.com/tunedeck/checkout-service/internal/infrastructure/metrics"
	"go.uber.org/zap/zaptest"
)

// Metrics register on the default prometheus registry; a single shared
// instance avoids duplicate registration across tests.
var testMetrics = metrics.NewCheckoutMetrics()

type fakeOrderRepo struct {
	orders      map[uint64]*domain.Order
	nextID      uint64
	createErr   error
	updateErr   error
	tokenErr    error
	updateCalls int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[uint64]*domain.Order{}, nextID: 1}
}

func (r *fakeOrderRepo) CreateOrder(_ context.Context, order *domain.Order) (uint64, error) {
	if r.createErr != nil {
		return 0, r.createErr
	}
	id := r.nextID
	r.nextID++
	stored := *order
	stored.ID = id
	r.orders[id] = &stored
	return id, nil
}

func (r *fakeOrderRepo) GetOrderByID(_ context.Context, orderID uint64) (*domain.Order, error) {
	order, ok := r.orders[orderID]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	copied := *order
	return &copied, nil
}

func (r *fakeOrderRepo) UpdateOrderStatus(_ context.Context, orderID uint64, newStatus domain.OrderStatus) error {
	r.updateCalls++
	if r.updateErr != nil {
		return r.updateErr
	}
	if order, ok := r.orders[orderID]; ok {
		order.Status = newStatus
	}
	return nil
}

func (r *fakeOrderRepo) SetGatewayToken(_ context.Context, orderID uint64, token string) error {
	if r.tokenErr != nil {
		return r.tokenErr
	}
	if order, ok := r.orders[orderID]; ok {
		order.GatewayToken = token
	}
	return nil
}

func (r *fakeOrderRepo) HasSuccessfulOrder(_ context.Context, userID string, trackID uint64) (bool, error) {
	for _, order := range r.orders {
		if order.UserID == userID && order.TrackID == trackID && order.Status == domain.StatusSuccess {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeOrderRepo) PurchasedTrackIDs(_ context.Context, userID string) ([]uint64, error) {
	var ids []uint64
	for _, order := range r.orders {
		if order.UserID == userID && order.Status == domain.StatusSuccess {
			ids = append(ids, order.TrackID)
		}
	}
	return ids, nil
}

type fakeTrackRepo struct {
	tracks map[uint64]*domain.Track
}

func newFakeTrackRepo(tracks ...*domain.Track) *fakeTrackRepo {
	repo := &fakeTrackRepo{tracks: map[uint64]*domain.Track{}}
	for _, track := range tracks {
		repo.tracks[track.ID] = track
	}
	return repo
}

func (r *fakeTrackRepo) GetPurchasable(_ context.Context, ids []uint64) ([]*domain.Track, error) {
	var result []*domain.Track
	for _, id := range ids {
		if track, ok := r.tracks[id]; ok && track.Status == domain.TrackPublished {
			result = append(result, track)
		}
	}
	return result, nil
}

func (r *fakeTrackRepo) GetTrackByID(_ context.Context, trackID uint64) (*domain.Track, error) {
	track, ok := r.tracks[trackID]
	if !ok {
		return nil, errors.New("record not found")
	}
	return track, nil
}

func (r *fakeTrackRepo) ListPublished(_ context.Context) ([]*domain.Track, error) {
	var result []*domain.Track
	for _, track := range r.tracks {
		if track.Status == domain.TrackPublished {
			result = append(result, track)
		}
	}
	return result, nil
}

type fakeUserRepo struct {
	users map[string]*domain.User
}

func (r *fakeUserRepo) GetUserByID(_ context.Context, userID string) (*domain.User, error) {
	if user, ok := r.users[userID]; ok {
		return user, nil
	}
	return nil, errors.New("record not found")
}

type fakeGateway struct {
	lastCreate  *domain.CreateSessionInput
	session     *domain.CheckoutSession
	createErr   error
	result      *domain.CheckoutResult
	retrieveErr error
}

func (g *fakeGateway) CreateCheckoutSession(_ context.Context, input *domain.CreateSessionInput) (*domain.CheckoutSession, error) {
	g.lastCreate = input
	if g.createErr != nil {
		return nil, g.createErr
	}
	return g.session, nil
}

func (g *fakeGateway) RetrieveCheckoutSession(_ context.Context, _ string) (*domain.CheckoutResult, error) {
	if g.retrieveErr != nil {
		return nil, g.retrieveErr
	}
	return g.result, nil
}

type fakeSigner struct {
	url string
	err error
}

func (s *fakeSigner) SignedDownloadURL(_ string, _ uint64, _ string) (string, error) {
	return s.url, s.err
}

type fakeMailer struct {
	sent chan domain.Email
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{sent: make(chan domain.Email, 8)}
}

func (m *fakeMailer) Send(_ context.Context, email domain.Email) error {
	m.sent <- email
	return nil
}

func (m *fakeMailer) Configured() bool { return true }

type fakePublisher struct {
	published chan domain.Message
}

func (p *fakePublisher) Publish(_ string, msgs ...domain.Message) error {
	for _, msg := range msgs {
		p.published <- msg
	}
	return nil
}

func price(value string) decimal.Decimal {
	d, _ := decimal.NewFromString(value)
	return d
}

func publishedTrack(id uint64, title, amount string) *domain.Track {
	return &domain.Track{
		ID:        id,
		Title:     title,
		Artist:    "Test Artist",
		Price:     price(amount),
		Currency:  "TRY",
		Status:    domain.TrackPublished,
		AudioFile: "track.mp3",
	}
}

func newTestUsecase(t *testing.T, orderRepo *fakeOrderRepo, trackRepo *fakeTrackRepo, gw *fakeGateway, mailer *fakeMailer) *DefaultCheckoutUsecase {
	t.Helper()
	var m domain.Mailer
	if mailer != nil {
		m = mailer
	}
	return NewDefaultCheckoutUsecase(Deps{
		OrderRepo: orderRepo,
		TrackRepo: trackRepo,
		UserRepo: &fakeUserRepo{users: map[string]*domain.User{
			"user-1": {ID: "user-1", Email: "buyer@example.com", Name: "Buyer"},
		}},
		Gateway:       gw,
		Signer:        &fakeSigner{url: "https://media.example.com/media/track.mp3?token=x"},
		Mailer:        m,
		Metrics:       testMetrics,
		Logger:        zaptest.NewLogger(t),
		Currency:      "TRY",
		CallbackURL:   "https://shop.example.com/api/checkout/callback",
		OperatorEmail: "ops@example.com",
		EventTopic:    "purchase-events",
	})
}
