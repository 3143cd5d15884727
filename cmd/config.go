package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Storage kinds.
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	Storage    string

	KafkaHost              string
	KafkaOrderStatusTopic  string
	TaxRate                string
	ServiceFeeRate         string
	CurrencySymbol         string
	DispatchRetrySchedule  string
	DispatchRetryBatchSize int

	// Shipping tiers per method; a method with a blank base is not offered.
	StandardShipping ShippingTierConfig
	ExpressShipping  ShippingTierConfig
}

// ShippingTierConfig holds one shipping method's decimal parameters as text.
type ShippingTierConfig struct {
	Base            string
	PerKg           string
	FreeAllowanceKg string
}

// LoadConfig reads the environment, after loading path as a .env file when
// it exists.
func LoadConfig(path string) (Config, error) {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", path, err)
	}

	batch, err := strconv.Atoi(envOr("DISPATCH_RETRY_BATCH_SIZE", "50"))
	if err != nil {
		return Config{}, fmt.Errorf("DISPATCH_RETRY_BATCH_SIZE: %w", err)
	}

	config := Config{
		HTTPPort:               envOr("HTTP_PORT", "8080"),
		DBHost:                 envOr("DB_HOST", "localhost"),
		DBPort:                 envOr("DB_PORT", "5432"),
		DBUser:                 os.Getenv("DB_USER"),
		DBPassword:             os.Getenv("DB_PASSWORD"),
		DBName:                 os.Getenv("DB_NAME"),
		DBSslMode:              envOr("DB_SSLMODE", "disable"),
		Storage:                envOr("STORAGE", StoragePostgres),
		KafkaHost:              os.Getenv("KAFKA_HOST"),
		KafkaOrderStatusTopic:  envOr("KAFKA_ORDER_STATUS_TOPIC", "order.status"),
		TaxRate:                os.Getenv("TAX_RATE"),
		ServiceFeeRate:         os.Getenv("SERVICE_FEE_RATE"),
		CurrencySymbol:         envOr("CURRENCY_SYMBOL", "$"),
		DispatchRetrySchedule:  os.Getenv("DISPATCH_RETRY_SCHEDULE"),
		DispatchRetryBatchSize: batch,
		StandardShipping: ShippingTierConfig{
			Base:            os.Getenv("SHIPPING_STANDARD_BASE"),
			PerKg:           os.Getenv("SHIPPING_STANDARD_PER_KG"),
			FreeAllowanceKg: os.Getenv("SHIPPING_STANDARD_FREE_KG"),
		},
		ExpressShipping: ShippingTierConfig{
			Base:            os.Getenv("SHIPPING_EXPRESS_BASE"),
			PerKg:           os.Getenv("SHIPPING_EXPRESS_PER_KG"),
			FreeAllowanceKg: os.Getenv("SHIPPING_EXPRESS_FREE_KG"),
		},
	}

	if config.Storage != StoragePostgres && config.Storage != StorageMemory {
		return Config{}, fmt.Errorf("STORAGE must be %q or %q, got %q", StoragePostgres, StorageMemory, config.Storage)
	}
	return config, nil
}

// DSN is the PostgreSQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// ShippingPolicy builds the tier policy. Without any configured tier the
// deployment charges no shipping and the result is nil.
func (c Config) ShippingPolicy() (services.ShippingPolicy, error) {
	tiers := make(map[services.Method]services.ShippingTier)
	for method, tc := range map[services.Method]ShippingTierConfig{
		services.MethodStandard: c.StandardShipping,
		services.MethodExpress:  c.ExpressShipping,
	} {
		if tc.Base == "" {
			continue
		}
		tier, err := tc.parse()
		if err != nil {
			return nil, fmt.Errorf("%s shipping: %w", method, err)
		}
		tiers[method] = tier
	}
	if len(tiers) == 0 {
		return nil, nil
	}
	return services.NewWeightTierPolicy(tiers)
}

func (tc ShippingTierConfig) parse() (services.ShippingTier, error) {
	base, err := kernel.ParseMoney(tc.Base)
	if err != nil {
		return services.ShippingTier{}, err
	}
	perKg := kernel.ParseMoneyOrZero(tc.PerKg)

	allowance := decimal.Zero
	if tc.FreeAllowanceKg != "" {
		if allowance, err = decimal.NewFromString(tc.FreeAllowanceKg); err != nil {
			return services.ShippingTier{}, fmt.Errorf("free allowance: %w", err)
		}
	}

	return services.ShippingTier{Base: base, PerKg: perKg, FreeAllowanceKg: allowance}, nil
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
