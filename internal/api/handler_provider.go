package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/fastprodman/wagerhouse/internal/chain"
	"github.com/fastprodman/wagerhouse/internal/repos/accounts"
	"github.com/fastprodman/wagerhouse/internal/rng"
	"github.com/fastprodman/wagerhouse/internal/sequencer"
	"github.com/fastprodman/wagerhouse/internal/services/casino"
)

// HandlerProvider wraps the casino service and exposes HTTP handlers.
type HandlerProvider struct {
	svc *casino.Service
}

// NewHandler returns a new handler provider.
func NewHandler(svc *casino.Service) *HandlerProvider {
	return &HandlerProvider{svc: svc}
}

// --- Helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		slog.Error("failed to encode JSON response", "error", err)

		http.Error(w, `{"error":"internal json encode failure"}`, http.StatusInternalServerError)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// identity reads the platform-authenticated caller identity. The platform
// fronting this service has already authenticated the caller; the value is
// trusted as-is.
func identity(r *http.Request) (string, error) {
	id := strings.TrimSpace(r.Header.Get("X-Identity"))
	if id == "" {
		return "", fmt.Errorf("missing X-Identity header")
	}

	if len(id) > 128 {
		return "", fmt.Errorf("identity too long")
	}

	return id, nil
}

// respondError maps service errors onto HTTP statuses.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, accounts.ErrAccountExists):
		writeError(w, http.StatusConflict, "account already exists")
	case errors.Is(err, accounts.ErrAccountNotFound):
		writeError(w, http.StatusNotFound, "account not found")
	case errors.Is(err, casino.ErrInsufficientFunds):
		writeError(w, http.StatusConflict, "insufficient funds")
	case errors.Is(err, casino.ErrNoFundsDetected):
		writeError(w, http.StatusNotFound, "no incoming funds detected")
	case errors.Is(err, sequencer.ErrOperationInProgress):
		// Retryable: the competing operation holds the account guard and no
		// side effects have occurred for this request.
		writeError(w, http.StatusTooManyRequests, "operation in progress, retry later")
	case errors.Is(err, chain.ErrTransferFailed):
		writeError(w, http.StatusBadGateway, "transfer service failure")
	case errors.Is(err, chain.ErrOracleUnavailable):
		writeError(w, http.StatusBadGateway, "randomness oracle unavailable")
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB cap
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	err := dec.Decode(dst)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("empty body")
		}

		return fmt.Errorf("invalid JSON")
	}

	return nil
}

type accountResponse struct {
	ID        string    `json:"id"`
	Owner     string    `json:"owner"`
	Deposited int64     `json:"deposited"`
	WinAmount int64     `json:"winAmount"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toAccountResponse(acct *accounts.Account) accountResponse {
	return accountResponse{
		ID:        acct.ID.String(),
		Owner:     acct.Owner,
		Deposited: acct.Deposited,
		WinAmount: acct.WinAmount,
		Status:    string(acct.Status),
		CreatedAt: acct.CreatedAt,
		UpdatedAt: acct.UpdatedAt,
	}
}

// --- Handlers ---

// CreateAccountHandler handles POST /account
func (h *HandlerProvider) CreateAccountHandler(w http.ResponseWriter, r *http.Request) {
	owner, err := identity(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	acct, err := h.svc.CreateAccount(r.Context(), owner)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAccountResponse(acct))
}

// DepositHandler handles POST /account/deposit
func (h *HandlerProvider) DepositHandler(w http.ResponseWriter, r *http.Request) {
	owner, err := identity(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	credited, err := h.svc.Deposit(r.Context(), owner)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"credited": credited})
}

type betRequest struct {
	Guess int `json:"guess"`
}

// PlaceBetHandler handles POST /account/bet
func (h *HandlerProvider) PlaceBetHandler(w http.ResponseWriter, r *http.Request) {
	owner, err := identity(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req betRequest

	err = decodeBody(w, r, &req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.Guess < 0 || req.Guess >= rng.Sides {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("guess must be in [0,%d)", rng.Sides))
		return
	}

	result, err := h.svc.PlaceBet(r.Context(), owner, req.Guess)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"won":       result.Won,
		"draw":      result.Draw,
		"guess":     result.Guess,
		"deposited": result.Deposited,
		"winAmount": result.WinAmount,
	})
}

type withdrawRequest struct {
	Amount int64 `json:"amount"`
}

// WithdrawHandler handles POST /account/withdraw
func (h *HandlerProvider) WithdrawHandler(w http.ResponseWriter, r *http.Request) {
	owner, err := identity(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req withdrawRequest

	err = decodeBody(w, r, &req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.Amount <= 0 {
		writeError(w, http.StatusBadRequest, "amount must be > 0")
		return
	}

	receipt, err := h.svc.Withdraw(r.Context(), owner, req.Amount)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"amount": receipt.Amount,
		"txId":   receipt.TxID,
		"at":     receipt.At,
	})
}

// DepositedHandler handles GET /account/deposited
func (h *HandlerProvider) DepositedHandler(w http.ResponseWriter, r *http.Request) {
	owner, err := identity(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	deposited, err := h.svc.DepositedAmount(r.Context(), owner)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"deposited": deposited})
}

// WinningsHandler handles GET /account/winnings
func (h *HandlerProvider) WinningsHandler(w http.ResponseWriter, r *http.Request) {
	owner, err := identity(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	winnings, err := h.svc.WinAmount(r.Context(), owner)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"winAmount": winnings})
}

// DepositAddressHandler handles GET /account/deposit-address
func (h *HandlerProvider) DepositAddressHandler(w http.ResponseWriter, r *http.Request) {
	owner, err := identity(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	addr, err := h.svc.DepositAddress(r.Context(), owner)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"address": addr})
}
