package response_models

// ProdutoResponse mirrors the external catalog's product document. ReviewScore
// is absent for products nobody reviewed yet.
type ProdutoResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Brand       string   `json:"brand"`
	Image       string   `json:"image"`
	Price       float64  `json:"price"`
	ReviewScore *float64 `json:"reviewScore,omitempty"`
}
