package dto

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero o inválidos.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total,omitempty"`
}

// ErrorResponse cuerpo de error HTTP (middleware y rutas de lectura).
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ActionResult resultado estructurado de una acción del libro de inventario.
// En error Success es false y Title/Description describen la falla para el usuario.
type ActionResult struct {
	Success     bool   `json:"success"`
	Code        string `json:"code,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Data        any    `json:"data,omitempty"`
}
