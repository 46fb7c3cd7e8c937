package models

// Task is a persisted task record.
// JSON keys match both the API payloads and the on-disk format.
type Task struct {
	ID          int64  `json:"id"`
	Titulo      string `json:"titulo"`
	Descripcion string `json:"descripcion"`
}
