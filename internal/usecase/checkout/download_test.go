package checkout

import (
	"context"
	"errors"
	"testing"

	"github.com/tunedeck/checkout-service/internal/domain"
)

func TestAuthorizeDownload_Entitled(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	trackRepo := newFakeTrackRepo(publishedTrack(42, "First", "150.00"))
	orderRepo.orders[1] = &domain.Order{
		ID: 1, UserID: "user-1", TrackID: 42,
		Amount: price("150.00"), Currency: "TRY", Status: domain.StatusSuccess,
	}
	uc := newTestUsecase(t, orderRepo, trackRepo, &fakeGateway{}, nil)

	url, err := uc.AuthorizeDownload(context.Background(), "user-1", 42)
	if err != nil {
		t.Fatalf("AuthorizeDownload: %v", err)
	}
	if url == "" {
		t.Error("empty signed url")
	}
}

func TestAuthorizeDownload_NotEntitled(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	trackRepo := newFakeTrackRepo(publishedTrack(42, "First", "150.00"))
	uc := newTestUsecase(t, orderRepo, trackRepo, &fakeGateway{}, nil)

	_, err := uc.AuthorizeDownload(context.Background(), "user-2", 42)
	if !errors.Is(err, domain.ErrNotEntitled) {
		t.Fatalf("err = %v, want ErrNotEntitled", err)
	}
}

func TestAuthorizeDownload_NoProtectedAsset(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	track := publishedTrack(42, "First", "150.00")
	track.AudioFile = ""
	trackRepo := newFakeTrackRepo(track)
	orderRepo.orders[1] = &domain.Order{
		ID: 1, UserID: "user-1", TrackID: 42,
		Amount: price("150.00"), Currency: "TRY", Status: domain.StatusSuccess,
	}
	uc := newTestUsecase(t, orderRepo, trackRepo, &fakeGateway{}, nil)

	_, err := uc.AuthorizeDownload(context.Background(), "user-1", 42)
	if !errors.Is(err, domain.ErrNoProtectedAsset) {
		t.Fatalf("err = %v, want ErrNoProtectedAsset", err)
	}
}

func TestAuthorizeDownload_SigningFailure(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	trackRepo := newFakeTrackRepo(publishedTrack(42, "First", "150.00"))
	orderRepo.orders[1] = &domain.Order{
		ID: 1, UserID: "user-1", TrackID: 42,
		Amount: price("150.00"), Currency: "TRY", Status: domain.StatusSuccess,
	}
	uc := newTestUsecase(t, orderRepo, trackRepo, &fakeGateway{}, nil)
	uc.Signer = &fakeSigner{err: errors.New("signing backend down")}

	if _, err := uc.AuthorizeDownload(context.Background(), "user-1", 42); err == nil {
		t.Fatal("expected error")
	}
}

func TestPurchasedTrackIDs(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	orderRepo.orders[1] = &domain.Order{ID: 1, UserID: "user-1", TrackID: 42, Status: domain.StatusSuccess}
	orderRepo.orders[2] = &domain.Order{ID: 2, UserID: "user-1", TrackID: 77, Status: domain.StatusFailed}
	orderRepo.orders[3] = &domain.Order{ID: 3, UserID: "user-2", TrackID: 88, Status: domain.StatusSuccess}
	uc := newTestUsecase(t, orderRepo, newFakeTrackRepo(), &fakeGateway{}, nil)

	ids, err := uc.PurchasedTrackIDs(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("PurchasedTrackIDs: %v", err)
	}
	if len(ids) != 1 || ids[0] != 42 {
		t.Errorf("ids = %v, want [42]", ids)
	}
}
