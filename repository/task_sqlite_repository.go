package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"apiTareas/models"
)

// TaskSQLiteRepository implements TaskRepositoryI on a SQLite database.
type TaskSQLiteRepository struct {
	db *sql.DB
}

func NewTaskSQLiteRepository(db *sql.DB) *TaskSQLiteRepository {
	return &TaskSQLiteRepository{db: db}
}

func (r *TaskSQLiteRepository) List(ctx context.Context) ([]models.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `SELECT id, titulo, descripcion FROM tareas ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []models.Task{}
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.ID, &t.Titulo, &t.Descripcion); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *TaskSQLiteRepository) GetByID(ctx context.Context, id int64) (*models.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var t models.Task
	err := r.db.QueryRowContext(ctx, `SELECT id, titulo, descripcion FROM tareas WHERE id = ?`, id).
		Scan(&t.ID, &t.Titulo, &t.Descripcion)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *TaskSQLiteRepository) Create(ctx context.Context, titulo, descripcion string) (*models.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `INSERT INTO tareas (titulo, descripcion) VALUES (?, ?)`, titulo, descripcion)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &models.Task{ID: id, Titulo: titulo, Descripcion: descripcion}, nil
}

func (r *TaskSQLiteRepository) Update(ctx context.Context, id int64, titulo, descripcion string) (*models.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `UPDATE tareas SET titulo = ?, descripcion = ? WHERE id = ?`, titulo, descripcion, id)
	if err != nil {
		return nil, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, ErrTaskNotFound
	}
	return &models.Task{ID: id, Titulo: titulo, Descripcion: descripcion}, nil
}

func (r *TaskSQLiteRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM tareas WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrTaskNotFound
	}
	return nil
}
