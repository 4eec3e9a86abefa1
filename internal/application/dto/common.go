package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// ChangedResponse resultado de update/delete: false si no había nada que cambiar.
type ChangedResponse struct {
	Changed bool `json:"changed"`
}

// IDResponse resultado de una creación.
type IDResponse struct {
	ID string `json:"id"`
}
