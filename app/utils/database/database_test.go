package database

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"portal-service/app/config"
)

func testConfig() *config.Config {
	return &config.Config{
		DatabaseHost:     "portal-postgres",
		DatabasePort:     "5433",
		DatabaseName:     "portal_db",
		DatabaseUser:     "portal_user",
		DatabasePassword: "secret",
		DatabaseSSLMode:  "require",
	}
}

func TestDSN(t *testing.T) {
	dsn := DSN(testConfig())

	assert.Equal(t,
		"host=portal-postgres port=5433 user=portal_user password=secret dbname=portal_db sslmode=require connect_timeout=10",
		dsn)
}

func TestPort(t *testing.T) {
	tests := []struct {
		name string
		port string
		want int
	}{
		{"numeric port", "5433", 5433},
		{"default postgres port", "5432", 5432},
		{"garbage falls back", "not-a-port", 5432},
		{"empty falls back", "", 5432},
		{"negative falls back", "-1", 5432},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.DatabasePort = tt.port
			assert.Equal(t, tt.want, Port(cfg))
		})
	}
}
