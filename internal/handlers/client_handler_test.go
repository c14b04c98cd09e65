package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/toruktube/revive-app-sub001/internal/services"
)

func TestClientAndRoutineEndpoints(t *testing.T) {
	store := handlerStore()
	clients := NewClientHandler(services.NewRosterService(store))
	routines := NewRoutineHandler(services.NewRoutineService(store, handlerOptions()...))

	app := fiber.New()
	app.Get("/api/v1/clients", clients.ListClients)
	app.Put("/api/v1/clients/filter", clients.SetFilter)
	app.Get("/api/v1/routines", routines.GetRoutines)
	app.Post("/api/v1/routines", routines.AddRoutine)

	resp := doJSON(t, app, http.MethodPut, "/api/v1/clients/filter", `{"query":"pena"}`)
	defer resp.Body.Close()
	var roster struct {
		Clients services.RosterView `json:"clients"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&roster); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if roster.Clients.Total != 1 || roster.Clients.Clients[0].ID != "c2" {
		t.Fatalf("unexpected roster %+v", roster.Clients)
	}

	resp = doJSON(t, app, http.MethodPost, "/api/v1/routines", `{"client_id":"c1","name":"Legs","exercises":[{"name":"Squat","sets":5,"reps":5,"rest_seconds":180}]}`)
	resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	resp = doJSON(t, app, http.MethodPost, "/api/v1/routines", `{"client_id":"c1","name":"Legs","exercises":[]}`)
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	resp = doJSON(t, app, http.MethodGet, "/api/v1/routines", "")
	defer resp.Body.Close()
	var listed struct {
		Routines services.RoutineView `json:"routines"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&listed); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(listed.Routines.Routines) != 1 || listed.Routines.Routines[0].ClientName != "Lucía Fernández" {
		t.Fatalf("unexpected routines %+v", listed.Routines)
	}
}
