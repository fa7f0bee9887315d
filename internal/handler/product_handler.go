package handler

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"

	"product-catalog/internal/model"
	"product-catalog/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// ProductHandler handles product-related HTTP requests.
type ProductHandler struct {
	service service.ProductService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.ProductService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// Create handles POST /products requests.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := h.readJSONBody(r)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	var product model.Product
	if err := product.Deserialize(body); err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	created, err := h.service.Create(r.Context(), &product)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/products/%d", created.ID))
	writeJSON(w, http.StatusCreated, created)
}

// Get handles GET /products/{id} requests.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := h.productID(r)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	product, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// Update handles PUT /products/{id} requests.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := h.productID(r)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	body, err := h.readJSONBody(r)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	var product model.Product
	if err := product.Deserialize(body); err != nil {
		writeError(w, r, err, h.logger)
		return
	}
	product.ID = id

	updated, err := h.service.Update(r.Context(), &product)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /products/{id} requests. Deleting an absent id
// still returns 204.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := h.productID(r)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// List handles GET /products requests, optionally filtered by exactly one of
// the name, category, or available query parameters.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := parseListFilter(r)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	products, err := h.service.List(r.Context(), filter)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// parseListFilter extracts at most one filter criterion from the query
// string; name takes precedence over category, category over available.
func parseListFilter(r *http.Request) (service.ListFilter, error) {
	var filter service.ListFilter
	query := r.URL.Query()

	if name := query.Get("name"); name != "" {
		filter.Name = &name
		return filter, nil
	}

	if categoryName := query.Get("category"); categoryName != "" {
		category, err := model.ParseCategory(categoryName)
		if err != nil {
			return filter, err
		}
		filter.Category = &category
		return filter, nil
	}

	if availableStr := query.Get("available"); availableStr != "" {
		available, err := strconv.ParseBool(availableStr)
		if err != nil {
			return filter, model.NewValidationError("available filter '%s' is not a boolean", availableStr)
		}
		filter.Available = &available
	}

	return filter, nil
}

// productID extracts the numeric id from the URL. A non-numeric segment is a
// nonexistent resource, not a client syntax error; the segment is echoed
// verbatim in the error message.
func (h *ProductHandler) productID(r *http.Request) (int64, error) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return 0, &model.NotFoundError{
			Message: fmt.Sprintf("Product with id [%s] was not found.", idStr),
		}
	}
	return id, nil
}

// readJSONBody enforces the JSON content type and reads the request body.
func (h *ProductHandler) readJSONBody(r *http.Request) ([]byte, error) {
	contentType := r.Header.Get("Content-Type")
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || mediaType != "application/json" {
		return nil, &model.UnsupportedMediaTypeError{ContentType: contentType}
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, model.NewValidationError("failed to read request body")
	}

	return body, nil
}
