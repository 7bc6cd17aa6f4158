package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestNewConfig_PortPrecedence(t *testing.T) {
	tests := []struct {
		name        string
		port        string
		backendPort string
		want        int
	}{
		{name: "defaults to 8000", want: 8000},
		{name: "BACKEND_PORT used when PORT absent", backendPort: "9100", want: 9100},
		{name: "PORT wins over BACKEND_PORT", port: "9000", backendPort: "9100", want: 9000},
		{name: "garbage PORT falls back", port: "abc", want: 8000},
		{name: "non-positive PORT falls back", port: "-1", want: 8000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			if tt.port != "" {
				t.Setenv("PORT", tt.port)
			}
			if tt.backendPort != "" {
				t.Setenv("BACKEND_PORT", tt.backendPort)
			}

			cfg := NewConfig()

			assert.Equal(t, tt.want, cfg.Server.Port)
		})
	}
}

func TestNewConfig_Defaults(t *testing.T) {
	viper.Reset()

	cfg := NewConfig()

	assert.Equal(t, EnvLocal, cfg.Env)
	assert.Equal(t, defaultDatabaseURI, cfg.DB.DatabaseURI)
	assert.Equal(t, defaultAdminToken, cfg.Admin.Token)
	assert.Equal(t, defaultPINPepper, cfg.Auth.PINPepper)
	assert.Equal(t, "0.0.0.0:8000", cfg.RunAddress())
}
