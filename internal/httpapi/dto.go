package httpapi

// credentialsRequest carries a register or login body.
type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// taskRequest carries a create or update task body.
type taskRequest struct {
	Titulo      string `json:"titulo"`
	Descripcion string `json:"descripcion"`
}
