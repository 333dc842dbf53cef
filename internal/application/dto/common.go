package dto

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 || p.Limit > 100 {
		p.Limit = 20
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// APIResponse sobre de todas las respuestas: {success, data} o {success: false, error}.
type APIResponse struct {
	Success bool           `json:"success"`
	Data    interface{}    `json:"data,omitempty"`
	Error   *ErrorResponse `json:"error,omitempty"`
}

// OK arma una respuesta exitosa.
func OK(data interface{}) APIResponse {
	return APIResponse{Success: true, Data: data}
}

// Fail arma una respuesta de error.
func Fail(code, message string) APIResponse {
	return APIResponse{Success: false, Error: &ErrorResponse{Code: code, Message: message}}
}
