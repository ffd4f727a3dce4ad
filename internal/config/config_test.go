package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.CountryCode != "US" {
		t.Errorf("CountryCode = %q, want US", cfg.CountryCode)
	}
	if cfg.IndicatorCode != "NY.GDP.MKTP.CD" {
		t.Errorf("IndicatorCode = %q, want NY.GDP.MKTP.CD", cfg.IndicatorCode)
	}
	if cfg.StartYear != 2013 || cfg.EndYear != 2023 {
		t.Errorf("year range = %d:%d, want 2013:2023", cfg.StartYear, cfg.EndYear)
	}
	if cfg.RequestTimeout != 10 {
		t.Errorf("RequestTimeout = %d, want 10", cfg.RequestTimeout)
	}
	if cfg.MaxRetries != 0 {
		t.Errorf("MaxRetries = %d, want 0", cfg.MaxRetries)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("COUNTRY_CODE", "CA")
	t.Setenv("INDICATOR_CODE", "SL.UEM.TOTL.ZS")
	t.Setenv("START_YEAR", "2000")
	t.Setenv("END_YEAR", "2010")
	t.Setenv("MAX_RETRIES", "3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.CountryCode != "CA" {
		t.Errorf("CountryCode = %q, want CA", cfg.CountryCode)
	}
	if cfg.IndicatorCode != "SL.UEM.TOTL.ZS" {
		t.Errorf("IndicatorCode = %q, want SL.UEM.TOTL.ZS", cfg.IndicatorCode)
	}
	if cfg.StartYear != 2000 || cfg.EndYear != 2010 {
		t.Errorf("year range = %d:%d, want 2000:2010", cfg.StartYear, cfg.EndYear)
	}
	if cfg.MaxRetries != 3 {
		t.Errorf("MaxRetries = %d, want 3", cfg.MaxRetries)
	}
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("START_YEAR", "not-a-year")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.StartYear != 2013 {
		t.Errorf("StartYear = %d, want default 2013", cfg.StartYear)
	}
}
