package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"goldshop/internal/observability"
	"goldshop/internal/shop"
)

const invalidQueryMessage = "Invalid query parameters"

type listResponse struct {
	Items []shop.Product `json:"items"`
}

type errorResponse struct {
	Message string       `json:"message"`
	Issues  []shop.Issue `json:"issues,omitempty"`
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func handleListProducts(svc *shop.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		observability.ProductListRequests.Inc()

		filters, issues := parseFilters(r.URL.Query())
		if len(issues) > 0 {
			writeJSON(w, http.StatusBadRequest, errorResponse{Message: invalidQueryMessage, Issues: issues})
			return
		}

		items, err := svc.ListProducts(r.Context(), filters)
		if err != nil {
			var verr *shop.ValidationError
			if errors.As(err, &verr) {
				writeJSON(w, http.StatusBadRequest, errorResponse{Message: invalidQueryMessage, Issues: verr.Issues})
				return
			}
			zap.L().Error("list products failed", zap.Error(err))
			writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "Internal server error"})
			return
		}
		writeJSON(w, http.StatusOK, listResponse{Items: items})
	}
}

// parseFilters coerces the known query params to numbers. Unknown params are
// ignored; coercion failures are reported per field, not dropped.
func parseFilters(q url.Values) (shop.Filters, []shop.Issue) {
	var f shop.Filters
	var issues []shop.Issue
	for _, p := range []struct {
		name string
		dst  **float64
	}{
		{"minPrice", &f.MinPrice},
		{"maxPrice", &f.MaxPrice},
		{"minPopularity", &f.MinPopularity},
	} {
		raw := q.Get(p.name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			issues = append(issues, shop.Issue{Field: p.name, Message: "must be a number"})
			continue
		}
		*p.dst = &v
	}
	return f, issues
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(body)
}
