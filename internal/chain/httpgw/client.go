// Package httpgw implements the chain interfaces over the gateway's JSON API.
package httpgw

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/fastprodman/wagerhouse/internal/chain"
	"github.com/fastprodman/wagerhouse/internal/config"
)

type Client struct {
	baseURL string
	httpc   *http.Client
}

var (
	_ chain.Oracle = (*Client)(nil)
	_ chain.Wallet = (*Client)(nil)
)

func New(cfg config.GatewayConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpc:   &http.Client{Timeout: cfg.Timeout},
	}
}

// RandomBytes asks the oracle for n bytes of entropy.
func (c *Client) RandomBytes(ctx context.Context, n int) ([]byte, error) {
	u := fmt.Sprintf("%s/v1/random?bytes=%d", c.baseURL, n)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", chain.ErrOracleUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", chain.ErrOracleUnavailable, resp.StatusCode)
	}

	var payload struct {
		Data string `json:"data"` // hex-encoded
	}

	err = json.NewDecoder(resp.Body).Decode(&payload)
	if err != nil {
		return nil, fmt.Errorf("%w: decode body: %v", chain.ErrOracleUnavailable, err)
	}

	raw, err := hex.DecodeString(payload.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: decode entropy: %v", chain.ErrOracleUnavailable, err)
	}

	if len(raw) < n {
		return nil, fmt.Errorf("%w: short entropy: got %d bytes, want %d", chain.ErrOracleUnavailable, len(raw), n)
	}

	return raw[:n], nil
}

// BalanceAt reports the balance at address. An unknown address is zero.
func (c *Client) BalanceAt(ctx context.Context, address string) (int64, error) {
	u := c.baseURL + "/v1/balance?address=" + url.QueryEscape(address)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: balance query: %v", chain.ErrTransferFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return 0, nil
	}

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("%w: balance query: status %d", chain.ErrTransferFailed, resp.StatusCode)
	}

	var payload struct {
		Balance int64 `json:"balance"`
	}

	err = json.NewDecoder(resp.Body).Decode(&payload)
	if err != nil {
		return 0, fmt.Errorf("%w: balance query: decode body: %v", chain.ErrTransferFailed, err)
	}

	return payload.Balance, nil
}

// Transfer submits the transfer and returns the gateway's transaction id.
func (c *Client) Transfer(ctx context.Context, treq chain.TransferRequest) (string, error) {
	body := map[string]any{
		"fromIndex": strconv.FormatUint(treq.FromIndex, 10),
		"to":        treq.To,
		"amount":    treq.Amount,
		"fee":       treq.Fee,
		"memo":      treq.Memo,
	}

	buf := new(bytes.Buffer)

	err := json.NewEncoder(buf).Encode(body)
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/transfer", buf)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", chain.ErrTransferFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", chain.ErrTransferFailed, resp.StatusCode)
	}

	var payload struct {
		TxID string `json:"txId"`
	}

	err = json.NewDecoder(resp.Body).Decode(&payload)
	if err != nil {
		return "", fmt.Errorf("%w: decode body: %v", chain.ErrTransferFailed, err)
	}

	if payload.TxID == "" {
		return "", fmt.Errorf("%w: empty transaction id", chain.ErrTransferFailed)
	}

	return payload.TxID, nil
}
