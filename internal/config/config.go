package config

import (
	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"github.com/GregMSThompson/donations-backend/internal/dto"
)

type StoreDriver string

const (
	StoreFirestore StoreDriver = "firestore"
	StoreSQLite    StoreDriver = "sqlite"
)

type Config struct {
	ProjectID           string      `env:"PROJECTID"`
	Region              string      `env:"REGION"`
	LogLevel            string      `env:"LOGLEVEL" envDefault:"info"`
	HTTPPort            string      `env:"HTTPPORT" envDefault:"8080"`
	CORSOrigin          string      `env:"CORSORIGIN" envDefault:"*"`
	StoreDriver         StoreDriver `env:"STOREDRIVER" envDefault:"firestore"`
	SQLitePath          string      `env:"SQLITEPATH" envDefault:"donations.db"`
	DonationsCollection string      `env:"DONATIONSCOLLECTION" envDefault:"donations"`

	Braintree Braintree `envPrefix:"BRAINTREE_"`
}

type Braintree struct {
	Environment dto.GatewayEnvironment `env:"ENVIRONMENT" envDefault:"sandbox"`
	MerchantID  string                 `env:"MERCHANT_ID"`
	PublicKey   string                 `env:"PUBLIC_KEY"`
	PrivateKey  string                 `env:"PRIVATE_KEY"`
	// Secret Manager version name, read when PrivateKey is empty.
	PrivateKeySecret string `env:"PRIVATE_KEY_SECRET"`
}

// New loads a .env file when one exists and parses the environment.
func New() (*Config, error) {
	_ = godotenv.Load()

	cfg := new(Config)
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	cfg.Braintree.Environment = getGatewayEnvironment(string(cfg.Braintree.Environment))
	return cfg, nil
}

func getGatewayEnvironment(e string) dto.GatewayEnvironment {
	switch e {
	case "production":
		return dto.GatewayProduction
	default: // "sandbox"
		return dto.GatewaySandbox
	}
}
