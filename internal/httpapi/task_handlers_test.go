package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
)

func TestCreateTask_Validation(t *testing.T) {
	e, tasks := newTestServer(t)
	token := bearerFor(t, "alice")

	for _, body := range []map[string]string{
		{},
		{"titulo": "A"},
		{"descripcion": "B"},
		{"titulo": "", "descripcion": "B"},
	} {
		rec := doJSON(t, e, http.MethodPost, "/tareas", token, body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %v: expected 400, got %d", body, rec.Code)
		}
		if m := decodeMap(t, rec); m["error"] != "Título y descripción son requeridos" {
			t.Fatalf("unexpected body: %v", m)
		}
	}

	// Rejected creates must not touch the store.
	stored, err := tasks.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(stored) != 0 {
		t.Fatalf("store altered by rejected creates: %+v", stored)
	}
}

func TestCreateAndGetRoundTrip(t *testing.T) {
	e, _ := newTestServer(t)
	token := bearerFor(t, "alice")

	rec := doJSON(t, e, http.MethodPost, "/tareas", token, map[string]string{"titulo": "A", "descripcion": "B"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	created := decodeMap(t, rec)
	if created["titulo"] != "A" || created["descripcion"] != "B" {
		t.Fatalf("unexpected created task: %v", created)
	}
	if created["id"].(float64) != 1 {
		t.Fatalf("expected id 1 on empty store, got %v", created["id"])
	}

	rec = doJSON(t, e, http.MethodGet, "/tareas/1", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", rec.Code)
	}
	got := decodeMap(t, rec)
	if got["titulo"] != "A" || got["descripcion"] != "B" || got["id"].(float64) != 1 {
		t.Fatalf("round trip mismatch: %v", got)
	}
}

func TestGetTask_NotFound(t *testing.T) {
	e, _ := newTestServer(t)
	token := bearerFor(t, "alice")

	for _, path := range []string{"/tareas/99", "/tareas/abc"} {
		rec := doJSON(t, e, http.MethodGet, path, token, nil)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("%s: expected 404, got %d", path, rec.Code)
		}
		if m := decodeMap(t, rec); m["error"] != "Tarea no encontrada" {
			t.Fatalf("unexpected body: %v", m)
		}
	}
}

func TestUpdateTask(t *testing.T) {
	e, tasks := newTestServer(t)
	token := bearerFor(t, "alice")

	doJSON(t, e, http.MethodPost, "/tareas", token, map[string]string{"titulo": "A", "descripcion": "B"})

	rec := doJSON(t, e, http.MethodPut, "/tareas/1", token, map[string]string{"titulo": "A2", "descripcion": "B2"})
	if rec.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d", rec.Code)
	}
	m := decodeMap(t, rec)
	if m["id"].(float64) != 1 || m["titulo"] != "A2" || m["descripcion"] != "B2" {
		t.Fatalf("unexpected updated task: %v", m)
	}

	// Update of a missing id is a 404 and leaves the store unchanged.
	rec = doJSON(t, e, http.MethodPut, "/tareas/42", token, map[string]string{"titulo": "X", "descripcion": "Y"})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("update missing: expected 404, got %d", rec.Code)
	}
	stored, err := tasks.List(context.Background())
	if err != nil || len(stored) != 1 || stored[0].Titulo != "A2" {
		t.Fatalf("store changed by failed update: %v %+v", err, stored)
	}
}

// Update applies no field validation: empty fields are stored verbatim.
func TestUpdateTask_NoValidation(t *testing.T) {
	e, _ := newTestServer(t)
	token := bearerFor(t, "alice")

	doJSON(t, e, http.MethodPost, "/tareas", token, map[string]string{"titulo": "A", "descripcion": "B"})

	rec := doJSON(t, e, http.MethodPut, "/tareas/1", token, map[string]string{"titulo": "", "descripcion": ""})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	m := decodeMap(t, rec)
	if m["titulo"] != "" || m["descripcion"] != "" || m["id"].(float64) != 1 {
		t.Fatalf("unexpected task after empty update: %v", m)
	}
}

func TestDeleteTask(t *testing.T) {
	e, _ := newTestServer(t)
	token := bearerFor(t, "alice")

	doJSON(t, e, http.MethodPost, "/tareas", token, map[string]string{"titulo": "A", "descripcion": "B"})

	rec := doJSON(t, e, http.MethodDelete, "/tareas/1", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", rec.Code)
	}
	if m := decodeMap(t, rec); m["mensaje"] != "Tarea eliminada correctamente" {
		t.Fatalf("unexpected body: %v", m)
	}

	rec = doJSON(t, e, http.MethodGet, "/tareas/1", token, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("get after delete: expected 404, got %d", rec.Code)
	}

	rec = doJSON(t, e, http.MethodDelete, "/tareas/1", token, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("second delete: expected 404, got %d", rec.Code)
	}
}

func TestListTasks_SequentialIDs(t *testing.T) {
	e, _ := newTestServer(t)
	token := bearerFor(t, "alice")

	for i := 0; i < 3; i++ {
		rec := doJSON(t, e, http.MethodPost, "/tareas", token, map[string]string{"titulo": "t", "descripcion": "d"})
		if rec.Code != http.StatusCreated {
			t.Fatalf("create %d: expected 201, got %d", i, rec.Code)
		}
	}

	rec := doJSON(t, e, http.MethodGet, "/tareas", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", rec.Code)
	}
	var list []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(list))
	}
	for i, item := range list {
		if item["id"].(float64) != float64(i+1) {
			t.Fatalf("ids not sequential: %v", list)
		}
	}
}
