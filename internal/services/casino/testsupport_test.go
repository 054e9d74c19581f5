package casino

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fastprodman/wagerhouse/internal/chain"
	"github.com/fastprodman/wagerhouse/internal/config"
	"github.com/fastprodman/wagerhouse/internal/repos/accounts"
)

const (
	testPool = "pool-addr"
	testFee  = int64(5)
)

func newTestService(store accounts.Accounts, wallet chain.Wallet, oracle chain.Oracle) *Service {
	return New(store, wallet, oracle, config.CasinoConfig{PoolAddress: testPool, WithdrawFee: testFee})
}

// memStore is an in-memory stand-in for the durable keyed store. It hands out
// copies, like the real store: a held *Account never aliases stored state.
type memStore struct {
	mu   sync.Mutex
	recs map[string]accounts.Account
}

var _ accounts.Accounts = (*memStore)(nil)

func newMemStore() *memStore {
	return &memStore{recs: make(map[string]accounts.Account)}
}

func (m *memStore) Create(_ context.Context, acct *accounts.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.recs[acct.Owner]; ok {
		return accounts.ErrAccountExists
	}

	m.recs[acct.Owner] = *acct

	return nil
}

func (m *memStore) Get(_ context.Context, owner string) (*accounts.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.recs[owner]
	if !ok {
		return nil, accounts.ErrAccountNotFound
	}

	rec.Status = accounts.StatusIdle

	return &rec, nil
}

func (m *memStore) Put(_ context.Context, acct *accounts.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.recs[acct.Owner] = *acct

	return nil
}

// mustGet reads the stored record directly, bypassing the service.
func (m *memStore) mustGet(t *testing.T, owner string) accounts.Account {
	t.Helper()

	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.recs[owner]
	require.True(t, ok, "account %q not in store", owner)

	return rec
}

type mockWallet struct {
	mock.Mock
}

var _ chain.Wallet = (*mockWallet)(nil)

func (m *mockWallet) BalanceAt(ctx context.Context, address string) (int64, error) {
	args := m.Called(ctx, address)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockWallet) Transfer(ctx context.Context, req chain.TransferRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

type mockOracle struct {
	mock.Mock
}

var _ chain.Oracle = (*mockOracle)(nil)

func (m *mockOracle) RandomBytes(ctx context.Context, n int) ([]byte, error) {
	args := m.Called(ctx, n)

	raw, _ := args.Get(0).([]byte)

	return raw, args.Error(1)
}

// stallOracle parks the caller inside the draw until released, modelling the
// scheduler running other work during the suspension point.
type stallOracle struct {
	entered chan struct{}
	release chan struct{}
	draw    byte
}

var _ chain.Oracle = (*stallOracle)(nil)

func newStallOracle(draw byte) *stallOracle {
	return &stallOracle{
		entered: make(chan struct{}),
		release: make(chan struct{}),
		draw:    draw,
	}
}

func (o *stallOracle) RandomBytes(ctx context.Context, _ int) ([]byte, error) {
	close(o.entered)

	select {
	case <-o.release:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	return []byte{o.draw}, nil
}

func seedAccount(t *testing.T, svc *Service, store *memStore, owner string, deposited, winnings int64) {
	t.Helper()

	_, err := svc.CreateAccount(context.Background(), owner)
	require.NoError(t, err)

	rec := store.mustGet(t, owner)
	rec.Deposited = deposited
	rec.WinAmount = winnings

	store.mu.Lock()
	store.recs[owner] = rec
	store.mu.Unlock()
}
