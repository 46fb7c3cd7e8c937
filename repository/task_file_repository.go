package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"apiTareas/models"
)

// TaskFileRepository persists tasks as a single JSON array file.
// Every operation is a full read-modify-write of the file; the mutex
// serializes writers within this process only.
type TaskFileRepository struct {
	path string
	mu   sync.Mutex
}

// NewTaskFileRepository returns a repository backed by tareas.json under dir.
func NewTaskFileRepository(dir string) *TaskFileRepository {
	return &TaskFileRepository{path: filepath.Join(dir, "tareas.json")}
}

func (r *TaskFileRepository) load() ([]models.Task, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.Task{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", r.path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return []models.Task{}, nil
	}
	var tareas []models.Task
	if err := json.Unmarshal(data, &tareas); err != nil {
		return nil, fmt.Errorf("decode %s: %w", r.path, err)
	}
	return tareas, nil
}

// save rewrites the whole file. Not atomic: a crash mid-write can truncate it.
func (r *TaskFileRepository) save(tareas []models.Task) error {
	data, err := json.MarshalIndent(tareas, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", r.path, err)
	}
	return nil
}

func (r *TaskFileRepository) List(ctx context.Context) ([]models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

func (r *TaskFileRepository) GetByID(ctx context.Context, id int64) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tareas, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range tareas {
		if tareas[i].ID == id {
			return &tareas[i], nil
		}
	}
	return nil, ErrTaskNotFound
}

// Create appends a task with id = last stored id + 1 (1 on an empty store).
func (r *TaskFileRepository) Create(ctx context.Context, titulo, descripcion string) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tareas, err := r.load()
	if err != nil {
		return nil, err
	}
	var id int64 = 1
	if len(tareas) > 0 {
		id = tareas[len(tareas)-1].ID + 1
	}
	t := models.Task{ID: id, Titulo: titulo, Descripcion: descripcion}
	tareas = append(tareas, t)
	if err := r.save(tareas); err != nil {
		return nil, err
	}
	return &t, nil
}

// Update replaces the record wholesale, preserving the id and its position.
func (r *TaskFileRepository) Update(ctx context.Context, id int64, titulo, descripcion string) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tareas, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range tareas {
		if tareas[i].ID == id {
			tareas[i] = models.Task{ID: id, Titulo: titulo, Descripcion: descripcion}
			if err := r.save(tareas); err != nil {
				return nil, err
			}
			return &tareas[i], nil
		}
	}
	return nil, ErrTaskNotFound
}

func (r *TaskFileRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tareas, err := r.load()
	if err != nil {
		return err
	}
	kept := tareas[:0]
	for _, t := range tareas {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(tareas) {
		return ErrTaskNotFound
	}
	return r.save(kept)
}
