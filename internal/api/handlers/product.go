package handlers

import (
	"log"
	"net/http"

	"github.com/remib/phonestore/internal/service"
)

type ProductHandler struct {
	catalogService *service.CatalogService
}

func NewProductHandler(catalogService *service.CatalogService) *ProductHandler {
	return &ProductHandler{catalogService: catalogService}
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalogService.ListProducts(r.Context())
	if err != nil {
		log.Printf("ERROR [product.List] %v", err)
		writeMessage(w, http.StatusInternalServerError, "Server error while loading products.")
		return
	}

	writeJSON(w, http.StatusOK, products)
}
