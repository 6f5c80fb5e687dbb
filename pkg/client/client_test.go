package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestListEquipment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/equipos", r.URL.Path)
		assert.Equal(t, "10", r.URL.Query().Get("skip"))
		assert.Equal(t, "25", r.URL.Query().Get("limit"))
		json.NewEncoder(w).Encode([]Equipment{{ID: 1, Name: "Bomba P-101", Criticality: "A"}})
	}))
	defer srv.Close()

	c := New(srv.URL)
	equipos, err := c.ListEquipment(context.Background(), 10, 25)

	assert.NoError(t, err)
	assert.Len(t, equipos, 1)
	assert.Equal(t, "Bomba P-101", equipos[0].Name)
}

func TestCreateEquipment_SendsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req CreateEquipment
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Motor M-7", req.Name)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(Equipment{ID: 9, Name: req.Name, Status: "ACTIVO"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	equipo, err := c.CreateEquipment(context.Background(), CreateEquipment{Name: "Motor M-7"})

	assert.NoError(t, err)
	assert.Equal(t, int64(9), equipo.ID)
	assert.Equal(t, "ACTIVO", equipo.Status)
}

func TestAPIError_DetailExtracted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Equipo no encontrado"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.GetEquipment(context.Background(), 99)

	var apiErr *APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Equipo no encontrado", apiErr.Detail)
}

func TestAPIError_MessageFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "algo salió mal"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.GetEquipment(context.Background(), 1)

	var apiErr *APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "algo salió mal", apiErr.Detail)
}

func TestAPIError_GenericFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.GetEquipment(context.Background(), 1)

	var apiErr *APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "HTTP 503: Service Unavailable", apiErr.Detail)
}

func TestTimeout_Distinguished(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := New(srv.URL, WithTimeout(20*time.Millisecond))
	_, err := c.ListEquipment(context.Background(), 0, 50)

	assert.ErrorIs(t, err, ErrTimeout)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}

func TestNetworkError_NotTimeout(t *testing.T) {
	// Closed server: connection refused.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := New(srv.URL)
	_, err := c.ListEquipment(context.Background(), 0, 50)

	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrTimeout))
}

func TestDeactivateEquipment_Idempotent(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		calls++
		json.NewEncoder(w).Encode(map[string]string{"message": "Equipo desactivado"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	assert.NoError(t, c.DeactivateEquipment(context.Background(), 3))
	assert.NoError(t, c.DeactivateEquipment(context.Background(), 3))
	assert.Equal(t, 2, calls)
}

func TestListUpcomingPlans_ServerValueAuthoritative(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "14", r.URL.Query().Get("dias"))
		// Server says 3 even though the date is further out; server wins.
		w.Write([]byte(`[{"id":1,"equipo_id":10,"equipo_nombre":"Bomba","criticidad":"A",
			"proxima_fecha":"2099-01-01T00:00:00Z","dias_restantes":3,"estado":"PROXIMO"}]`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	plans, err := c.ListUpcomingPlans(context.Background(), 14)

	assert.NoError(t, err)
	assert.Len(t, plans, 1)
	assert.Equal(t, 3, *plans[0].DaysRemaining)
}

func TestListUpcomingPlans_LocalFallback(t *testing.T) {
	nextDue := time.Now().UTC().AddDate(0, 0, 5).Format(time.RFC3339)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// No dias_restantes field: client must derive it.
		w.Write([]byte(`[{"id":1,"equipo_id":10,"equipo_nombre":"Bomba","criticidad":"B",
			"proxima_fecha":"` + nextDue + `"}]`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	plans, err := c.ListUpcomingPlans(context.Background(), 7)

	assert.NoError(t, err)
	assert.NotNil(t, plans[0].DaysRemaining)
	assert.Equal(t, 5, *plans[0].DaysRemaining)
	assert.Equal(t, "PROXIMO", plans[0].Status)
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/health", r.URL.Path)
		json.NewEncoder(w).Encode(Health{Status: "healthy", Database: "connected"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	h, err := c.Health(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "healthy", h.Status)
}

func TestMonitor_ReportsTransitions(t *testing.T) {
	var healthy atomic.Bool
	healthy.Store(true)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := Health{Status: "healthy", Database: "connected"}
		if !healthy.Load() {
			h = Health{Status: "unhealthy", Database: "disconnected"}
		}
		json.NewEncoder(w).Encode(h)
	}))
	defer srv.Close()

	c := New(srv.URL)
	changes := make(chan bool, 10)
	m := NewMonitor(c, 30*time.Millisecond, func(connected bool) {
		changes <- connected
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go m.Run(ctx)

	assert.True(t, <-changes) // initial probe

	healthy.Store(false)
	select {
	case got := <-changes:
		assert.False(t, got)
	case <-time.After(2 * time.Second):
		t.Fatal("no disconnect reported")
	}
}

func TestMonitor_FailureDoesNotStopLoop(t *testing.T) {
	var fail atomic.Bool
	fail.Store(true)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(Health{Status: "healthy", Database: "connected"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	changes := make(chan bool, 10)
	m := NewMonitor(c, 30*time.Millisecond, func(connected bool) {
		changes <- connected
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go m.Run(ctx)

	assert.False(t, <-changes)

	fail.Store(false)
	select {
	case got := <-changes:
		assert.True(t, got)
	case <-time.After(2 * time.Second):
		t.Fatal("monitor never recovered")
	}
}
