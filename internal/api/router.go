package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fastprodman/wagerhouse/internal/services/casino"
)

// NewRouter constructs the router with all API endpoints registered.
func NewRouter(svc *casino.Service) http.Handler {
	h := NewHandler(svc)
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Post("/account", h.CreateAccountHandler)
	r.Post("/account/deposit", h.DepositHandler)
	r.Post("/account/bet", h.PlaceBetHandler)
	r.Post("/account/withdraw", h.WithdrawHandler)
	r.Get("/account/deposited", h.DepositedHandler)
	r.Get("/account/winnings", h.WinningsHandler)
	r.Get("/account/deposit-address", h.DepositAddressHandler)

	return r
}
