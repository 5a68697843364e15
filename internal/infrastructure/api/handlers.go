package api

import (
	"errors"
	"net/http"
	"net/url"

	"course-order-export/internal/application"
	"course-order-export/internal/domain"

	"github.com/rs/zerolog"
)

type ordersResponse struct {
	Orders []domain.ExportRecord `json:"orders"`
	Count  int                   `json:"count"`
}

type productsResponse struct {
	Products []domain.CourseProduct `json:"products"`
}

func exportInput(p ordersParams) application.ExportOrdersInput {
	return application.ExportOrdersInput{
		Shop: p.Shop,
		Query: domain.OrderQuery{
			StartDate: p.StartDate,
			EndDate:   p.EndDate,
		},
		ProductID: p.ProductID,
	}
}

// ordersHandler returns the flattened export records as JSON
func ordersHandler(export *application.ExportService, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, err := parseOrdersParams(r)
		if err != nil {
			writeError(w, err, logger)
			return
		}

		records, err := export.ExportOrders(r.Context(), exportInput(params))
		if err != nil {
			writeError(w, err, logger)
			return
		}

		writeJSON(w, http.StatusOK, ordersResponse{Orders: records, Count: len(records)})
	}
}

// ordersCSVHandler returns the same records as a CSV attachment
func ordersCSVHandler(export *application.ExportService, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, err := parseOrdersParams(r)
		if err != nil {
			writeError(w, err, logger)
			return
		}

		// Nothing is written until the whole fetch has succeeded
		records, err := export.ExportOrders(r.Context(), exportInput(params))
		if err != nil {
			writeError(w, err, logger)
			return
		}

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="`+exportFilename(params.StartDate, params.EndDate)+`"`)
		w.WriteHeader(http.StatusOK)
		if err := writeExportCSV(w, records); err != nil {
			logger.Error().Err(err).Str("shop", params.Shop).Msg("Failed to write CSV")
		}
	}
}

// productsHandler lists the shop's course products
func productsHandler(export *application.ExportService, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, err := parseShopParams(r)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Missing shop parameter"})
			return
		}

		products, err := export.CourseProducts(r.Context(), params.Shop)
		if err != nil {
			writeError(w, err, logger)
			return
		}

		writeJSON(w, http.StatusOK, productsResponse{Products: products})
	}
}

// authCheckHandler tells the UI whether the shop is connected
func authCheckHandler(auth *application.AuthService, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, err := parseShopParams(r)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Missing shop parameter"})
			return
		}

		status, err := auth.Check(r.Context(), params.Shop)
		if err != nil {
			writeError(w, err, logger)
			return
		}

		writeJSON(w, http.StatusOK, status)
	}
}

// authCallbackHandler completes the OAuth install and sends the browser back to the app
func authCallbackHandler(auth *application.AuthService, appURL string, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, err := parseCallbackParams(r)
		if err != nil {
			http.Error(w, "Missing code or shop parameter", http.StatusBadRequest)
			return
		}

		err = auth.HandleCallback(r.Context(), application.CallbackInput{
			Shop: params.Shop,
			Code: params.Code,
			URL:  r.URL,
		})
		if err != nil {
			var authErr *domain.UpstreamAuthError
			switch {
			case errors.Is(err, domain.ErrInvalidSignature):
				http.Error(w, "Invalid signature", http.StatusBadRequest)
			case errors.As(err, &authErr):
				http.Error(w, "Failed to get access token", http.StatusInternalServerError)
			default:
				logger.Error().Err(err).Str("shop", params.Shop).Msg("OAuth callback failed")
				http.Error(w, "OAuth error: "+err.Error(), http.StatusInternalServerError)
			}
			return
		}

		query := url.Values{}
		query.Set("shop", params.Shop)
		if params.Host != "" {
			query.Set("host", params.Host)
		}
		http.Redirect(w, r, appURL+"/?"+query.Encode(), http.StatusFound)
	}
}
