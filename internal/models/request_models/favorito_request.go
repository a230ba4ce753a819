package request_models

type FavoritoAdicionar struct {
	ProdutoID string `json:"produto_id" binding:"required"`
}
