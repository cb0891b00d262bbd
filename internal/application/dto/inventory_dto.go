package dto

// RegisterMovementRequest body para POST /api/inventory/{inputs,outputs,adjustments}.
// Quantity llega como texto desde el formulario y se parsea una sola vez en el caso de uso.
type RegisterMovementRequest struct {
	ProductID   int64  `json:"product_id"`
	Quantity    string `json:"quantity"`
	Unit        string `json:"unit"`
	Category    string `json:"category"`
	Observation string `json:"observation"`
	// Sign solo aplica a ajustes: "POSITIVE" o "NEGATIVE".
	Sign string `json:"sign,omitempty"`
}

// Signos de ajuste.
const (
	AdjustmentPositive = "POSITIVE"
	AdjustmentNegative = "NEGATIVE"
)

// TotalsResponse totales normalizados de un conjunto de productos.
type TotalsResponse struct {
	Weight    string   `json:"weight"` // KG
	Volume    string   `json:"volume"` // L
	Units     string   `json:"units"`  // UN sin ancla
	Formatted string   `json:"formatted"`
	Products  int      `json:"products"`
	Warnings  []string `json:"warnings"`
}

// LedgerCheckResponse comparación entre el saldo materializado y el reconstruido del historial.
type LedgerCheckResponse struct {
	ProductID     int64  `json:"product_id"`
	Stored        string `json:"stored"`
	Reconstructed string `json:"reconstructed"`
	Movements     int    `json:"movements"`
	Consistent    bool   `json:"consistent"`
}
