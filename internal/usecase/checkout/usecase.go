package checkout

import (
	"context"

	"github.com/tunedeck/checkout-service/internal/domain"
	"github.com/tunedeck/checkout-service/internal/infrastructure/metrics"
	checkoutdto "github.com/tunedeck/checkout-service/internal/usecase/dto/checkout"
	"go.uber.org/zap"
)

type CheckoutUsecase interface {
	InitiateSession(ctx context.Context, input *checkoutdto.InitiateSessionInput) (*checkoutdto.InitiateSessionOutput, error)
	Reconcile(ctx context.Context, input *checkoutdto.ReconcileInput) (*checkoutdto.ReconcileOutput, error)

	IsEntitled(ctx context.Context, userID string, trackID uint64) (bool, error)
	PurchasedTrackIDs(ctx context.Context, userID string) ([]uint64, error)
	AuthorizeDownload(ctx context.Context, userID string, trackID uint64) (string, error)
}

type DefaultCheckoutUsecase struct {
	OrderRepo     domain.OrderRepository
	TrackRepo     domain.TrackRepository
	UserRepo      domain.UserRepository
	Gateway       domain.PaymentGateway
	Signer        domain.URLSigner
	Mailer        domain.Mailer
	Publisher     domain.PublisherPort
	Metrics       *metrics.CheckoutMetrics
	Logger        *zap.Logger

	Currency      string
	CallbackURL   string
	OperatorEmail string
	EventTopic    string
}

type Deps struct {
	OrderRepo domain.OrderRepository
	TrackRepo domain.TrackRepository
	UserRepo  domain.UserRepository
	Gateway   domain.PaymentGateway
	Signer    domain.URLSigner
	Mailer    domain.Mailer
	Publisher domain.PublisherPort
	Metrics   *metrics.CheckoutMetrics
	Logger    *zap.Logger

	Currency      string
	CallbackURL   string
	OperatorEmail string
	EventTopic    string
}

func NewDefaultCheckoutUsecase(deps Deps) *DefaultCheckoutUsecase {
	return &DefaultCheckoutUsecase{
		OrderRepo:     deps.OrderRepo,
		TrackRepo:     deps.TrackRepo,
		UserRepo:      deps.UserRepo,
		Gateway:       deps.Gateway,
		Signer:        deps.Signer,
		Mailer:        deps.Mailer,
		Publisher:     deps.Publisher,
		Metrics:       deps.Metrics,
		Logger:        deps.Logger,
		Currency:      deps.Currency,
		CallbackURL:   deps.CallbackURL,
		OperatorEmail: deps.OperatorEmail,
		EventTopic:    deps.EventTopic,
	}
}
