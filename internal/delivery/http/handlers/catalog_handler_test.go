package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/tunedeck/checkout-service/internal/delivery/http/middleware"
	"github.com/tunedeck/checkout-service/internal/domain"
	"go.uber.org/zap/zaptest"
)

type stubCatalogUsecase struct {
	tracks map[uint64]*domain.Track
}

func (s *stubCatalogUsecase) ListPublished(context.Context) ([]*domain.Track, error) {
	var out []*domain.Track
	for _, track := range s.tracks {
		if track.Status == domain.TrackPublished {
			out = append(out, track)
		}
	}
	return out, nil
}

func (s *stubCatalogUsecase) GetTrack(_ context.Context, trackID uint64) (*domain.Track, error) {
	if track, ok := s.tracks[trackID]; ok {
		return track, nil
	}
	return nil, domain.ErrTrackNotFound
}

func catalogTrack(id uint64, status domain.TrackStatus) *domain.Track {
	price, _ := decimal.NewFromString("99.90")
	return &domain.Track{
		ID:       id,
		Title:    "Track",
		Artist:   "Artist",
		Price:    price,
		Currency: "TRY",
		Status:   status,
	}
}

func newCatalogRouter(t *testing.T, catalogUc *stubCatalogUsecase, checkoutUc *stubCheckoutUsecase) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	h := NewCatalogHandler(catalogUc, checkoutUc, zaptest.NewLogger(t))
	r := gin.New()
	r.GET("/api/tracks", middleware.OptionalAuth(testJWTSecret), h.GetTracks)
	r.GET("/api/tracks/:id", middleware.OptionalAuth(testJWTSecret), h.GetTrack)
	return r
}

func TestGetTracks_MarksPurchased(t *testing.T) {
	catalogUc := &stubCatalogUsecase{tracks: map[uint64]*domain.Track{
		1: catalogTrack(1, domain.TrackPublished),
		2: catalogTrack(2, domain.TrackPublished),
	}}
	r := newCatalogRouter(t, catalogUc, &stubCheckoutUsecase{purchased: []uint64{2}})

	req := httptest.NewRequest(http.MethodGet, "/api/tracks", nil)
	req.Header.Set("Authorization", "Bearer "+sessionToken(t, "user-1"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var body struct {
		Tracks []trackResponse `json:"tracks"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body.Tracks) != 2 {
		t.Fatalf("tracks = %+v", body.Tracks)
	}
	for _, track := range body.Tracks {
		if track.ID == 2 && !track.Purchased {
			t.Error("track 2 should be marked purchased")
		}
		if track.ID == 1 && track.Purchased {
			t.Error("track 1 should not be marked purchased")
		}
		if track.Price != "99.90" {
			t.Errorf("price = %s", track.Price)
		}
	}
}

func TestGetTracks_Anonymous(t *testing.T) {
	catalogUc := &stubCatalogUsecase{tracks: map[uint64]*domain.Track{
		1: catalogTrack(1, domain.TrackPublished),
	}}
	r := newCatalogRouter(t, catalogUc, &stubCheckoutUsecase{purchased: []uint64{1}})

	req := httptest.NewRequest(http.MethodGet, "/api/tracks", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var body struct {
		Tracks []trackResponse `json:"tracks"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Tracks[0].Purchased {
		t.Error("anonymous viewer must not see purchased flags")
	}
}

func TestGetTrack_NotFound(t *testing.T) {
	r := newCatalogRouter(t, &stubCatalogUsecase{tracks: map[uint64]*domain.Track{}}, &stubCheckoutUsecase{})

	for _, path := range []string{"/api/tracks/99", "/api/tracks/abc"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusNotFound {
			t.Errorf("%s: status = %d", path, w.Code)
		}
	}
}

func TestGetTrack_DraftHidden(t *testing.T) {
	catalogUc := &stubCatalogUsecase{tracks: map[uint64]*domain.Track{
		1: catalogTrack(1, domain.TrackDraft),
	}}
	r := newCatalogRouter(t, catalogUc, &stubCheckoutUsecase{})

	req := httptest.NewRequest(http.MethodGet, "/api/tracks/1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}
}
