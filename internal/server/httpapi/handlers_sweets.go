package httpapi

import (
	"net/http"
	"strconv"
	"strings"

	"sweetshop/internal/server/models"
	"sweetshop/internal/server/services"
)

type sweetCreateRequest struct {
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Price    *float64 `json:"price"`
	Quantity *int     `json:"quantity"`
}

type sweetUpdateRequest struct {
	Name     *string  `json:"name"`
	Category *string  `json:"category"`
	Price    *float64 `json:"price"`
	Quantity *int     `json:"quantity"`
}

type quantityRequest struct {
	Quantity int `json:"quantity"`
}

type sweetResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

func toSweetResponse(s *models.Sweet) sweetResponse {
	return sweetResponse{ID: s.ID, Name: s.Name, Category: s.Category, Price: s.Price, Quantity: s.Quantity}
}

func toSweetResponses(sweets []*models.Sweet) []sweetResponse {
	out := make([]sweetResponse, 0, len(sweets))
	for _, s := range sweets {
		out = append(out, toSweetResponse(s))
	}
	return out
}

func (a *API) CreateSweet(w http.ResponseWriter, r *http.Request) {
	var req sweetCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	fields := map[string]string{}
	if strings.TrimSpace(req.Name) == "" {
		fields["name"] = "Name is required"
	}
	if strings.TrimSpace(req.Category) == "" {
		fields["category"] = "Category is required"
	}
	if req.Price == nil {
		fields["price"] = "Price is required"
	} else if *req.Price < 0 {
		fields["price"] = "Price must be non-negative"
	}
	if req.Quantity == nil {
		fields["quantity"] = "Quantity is required"
	} else if *req.Quantity < 0 {
		fields["quantity"] = "Quantity must be non-negative"
	}
	if len(fields) > 0 {
		writeValidationError(w, fields)
		return
	}

	sweet, err := a.sweets.Create(r.Context(), req.Name, req.Category, *req.Price, *req.Quantity)
	if err != nil {
		a.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toSweetResponse(sweet))
}

func (a *API) ListSweets(w http.ResponseWriter, r *http.Request) {
	sweets, err := a.sweets.List(r.Context())
	if err != nil {
		a.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSweetResponses(sweets))
}

func (a *API) SearchSweets(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := services.SweetFilter{
		Name:     q.Get("name"),
		Category: q.Get("category"),
	}

	if raw := q.Get("minPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid minPrice")
			return
		}
		filter.MinPrice = &v
	}
	if raw := q.Get("maxPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid maxPrice")
			return
		}
		filter.MaxPrice = &v
	}

	sweets, err := a.sweets.Search(r.Context(), filter)
	if err != nil {
		a.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSweetResponses(sweets))
}

func (a *API) UpdateSweet(w http.ResponseWriter, r *http.Request) {
	var req sweetUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	upd := services.SweetUpdate{
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
		Quantity: req.Quantity,
	}

	sweet, err := a.sweets.Update(r.Context(), r.PathValue("id"), upd)
	if err != nil {
		a.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSweetResponse(sweet))
}

func (a *API) DeleteSweet(w http.ResponseWriter, r *http.Request) {
	if err := a.sweets.Delete(r.Context(), r.PathValue("id")); err != nil {
		a.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Sweet deleted successfully"})
}

func (a *API) PurchaseSweet(w http.ResponseWriter, r *http.Request) {
	var req quantityRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	sweet, err := a.sweets.Purchase(r.Context(), r.PathValue("id"), req.Quantity)
	if err != nil {
		a.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSweetResponse(sweet))
}

func (a *API) RestockSweet(w http.ResponseWriter, r *http.Request) {
	var req quantityRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	sweet, err := a.sweets.Restock(r.Context(), r.PathValue("id"), req.Quantity)
	if err != nil {
		a.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSweetResponse(sweet))
}
