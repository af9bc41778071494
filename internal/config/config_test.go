package config

import (
	"os"
	"testing"
)

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.Catalog.HTTP.Port != 8000 {
		t.Errorf("expected catalog port 8000, got %d", cfg.Catalog.HTTP.Port)
	}
	if cfg.Gateway.HTTP.Port != 8001 {
		t.Errorf("expected gateway port 8001, got %d", cfg.Gateway.HTTP.Port)
	}
	if cfg.Query.HTTP.Port != 8002 {
		t.Errorf("expected query port 8002, got %d", cfg.Query.HTTP.Port)
	}
	if cfg.Rating.HTTP.Port != 8003 {
		t.Errorf("expected rating port 8003, got %d", cfg.Rating.HTTP.Port)
	}
	if cfg.Catalog.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("expected ReadTimeoutSec=10, got %d", cfg.Catalog.HTTP.ReadTimeoutSec)
	}
	if cfg.Rating.Driver != "memory" {
		t.Errorf("expected default rating driver memory, got %q", cfg.Rating.Driver)
	}
	if cfg.Catalog.DataFile != "products.csv" {
		t.Errorf("expected default data file products.csv, got %q", cfg.Catalog.DataFile)
	}
	if cfg.Gateway.RatingLookupTimeoutSec != 5 {
		t.Errorf("expected RatingLookupTimeoutSec=5, got %d", cfg.Gateway.RatingLookupTimeoutSec)
	}
	if cfg.Query.Retrieval.TopK != 3 {
		t.Errorf("expected Retrieval.TopK=3, got %d", cfg.Query.Retrieval.TopK)
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()
	cfg.Gateway.HTTP.Port = 70000

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestValidate_RatingDriver(t *testing.T) {
	tests := []struct {
		name    string
		driver  string
		addrs   []string
		wantErr bool
	}{
		{"memory ok", "memory", nil, false},
		{"redis with addrs ok", "redis", []string{"localhost:6379"}, false},
		{"redis without addrs", "redis", nil, true},
		{"unknown driver", "postgres", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{}
			cfg.ApplyDefaults()
			cfg.Rating.Driver = tt.driver
			cfg.Rating.Redis.Addrs = tt.addrs

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestExpandEnvVars(t *testing.T) {
	os.Setenv("SHOPCHAT_TEST_URL", "http://catalog:8000")
	defer os.Unsetenv("SHOPCHAT_TEST_URL")

	in := []byte("catalog_url: ${SHOPCHAT_TEST_URL}\nrating_url: ${SHOPCHAT_TEST_MISSING:-http://rating:8003}\n")
	out := string(expandEnvVars(in))

	want := "catalog_url: http://catalog:8000\nrating_url: http://rating:8003\n"
	if out != want {
		t.Errorf("expandEnvVars:\ngot:  %q\nwant: %q", out, want)
	}
}
