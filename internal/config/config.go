package config

import "time"

type PostgresConfig struct {
	DSN             string        `env:"PG_DSN,required"`
	MaxOpenConns    int           `env:"PG_MAX_OPEN_CONNS" envDefault:"10"`
	MaxIdleConns    int           `env:"PG_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxIdleTime time.Duration `env:"PG_CONN_MAX_IDLE_TIME" envDefault:"5m"`
	ConnMaxLifetime time.Duration `env:"PG_CONN_MAX_LIFETIME" envDefault:"30m"`
}

// GatewayConfig points at the chain gateway that fronts the balance query,
// asset transfer and randomness services.
type GatewayConfig struct {
	BaseURL string        `env:"GATEWAY_URL,required"`
	Timeout time.Duration `env:"GATEWAY_TIMEOUT" envDefault:"10s"`
}

type CasinoConfig struct {
	// PoolAddress is the shared custodial address user deposits are swept into
	// and withdrawals are paid out of.
	PoolAddress string `env:"CASINO_POOL_ADDRESS,required"`
	// WithdrawFee is the flat network fee. It is taken out of the transferred
	// amount, never debited on top of it.
	WithdrawFee int64 `env:"CASINO_WITHDRAW_FEE" envDefault:"5"`
}
