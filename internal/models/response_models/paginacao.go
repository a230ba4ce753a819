package response_models

type RespostaPaginada struct {
	Itens   []ProdutoResponse `json:"itens"`
	Total   int64             `json:"total"`
	Pagina  int               `json:"pagina"`
	Tamanho int               `json:"tamanho"`
}
