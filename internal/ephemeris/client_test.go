package ephemeris

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"astroloh/internal/domain"
)

func TestCompute(t *testing.T) {
	birth := time.Date(1990, time.March, 21, 12, 0, 0, 0, time.UTC)

	t.Run("decodes a successful response", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost || r.URL.Path != "/compute" {
				t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			}
			var req computeRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Errorf("failed to decode request: %v", err)
			}
			if !req.BirthDate.Equal(birth) {
				t.Errorf("expected birth date %v, got %v", birth, req.BirthDate)
			}

			json.NewEncoder(w).Encode(computeResponse{
				Planets: []domain.PlanetPosition{
					{Planet: domain.PlanetSun, Sign: domain.SignAries, Degree: 0.5, House: 1},
				},
				Aspects: []domain.AspectData{
					{Planet1: domain.PlanetSun, Planet2: domain.PlanetMoon, Type: domain.AspectTrine, Orb: 1.2},
				},
			})
		}))
		defer srv.Close()

		planets, aspects, err := New(srv.URL, 0).Compute(context.Background(), birth)
		if err != nil {
			t.Fatalf("compute failed: %v", err)
		}
		if len(planets) != 1 || planets[0].Planet != domain.PlanetSun {
			t.Errorf("unexpected planets %+v", planets)
		}
		if len(aspects) != 1 || aspects[0].Type != domain.AspectTrine {
			t.Errorf("unexpected aspects %+v", aspects)
		}
	})

	t.Run("non-2xx status is ErrBadResponse", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusBadGateway)
		}))
		defer srv.Close()

		_, _, err := New(srv.URL, 0).Compute(context.Background(), birth)
		if !errors.Is(err, ErrBadResponse) {
			t.Errorf("expected ErrBadResponse, got %v", err)
		}
	})

	t.Run("garbage body is ErrBadResponse", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		}))
		defer srv.Close()

		_, _, err := New(srv.URL, 0).Compute(context.Background(), birth)
		if !errors.Is(err, ErrBadResponse) {
			t.Errorf("expected ErrBadResponse, got %v", err)
		}
	})

	t.Run("unreachable upstream is ErrUnavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		_, _, err := New(srv.URL, 0).Compute(context.Background(), birth)
		if !errors.Is(err, ErrUnavailable) {
			t.Errorf("expected ErrUnavailable, got %v", err)
		}
	})

	t.Run("cancelled context aborts the call", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))
		defer srv.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if _, _, err := New(srv.URL, 0).Compute(ctx, birth); err == nil {
			t.Error("expected an error for a cancelled context")
		}
	})
}
