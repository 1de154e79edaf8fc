package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"

	"lg/nutri-go-api/internal/nutrition"
)

// config is everything main needs to start the server. Values come from the
// environment (optionally seeded from .env) plus an optional plan policy file.
type config struct {
	Port              string
	DBURL             string
	AdminPasswordHash string
	CORSOrigins       []string
	Policy            nutrition.Policy
}

// defaultCORSOrigins matches the dev server the browser client runs on.
var defaultCORSOrigins = []string{"http://localhost:5173", "http://127.0.0.1:5173"}

// loadConfig reads the process environment. A missing ADMIN_PASSWORD_HASH is
// allowed; admin routes then reject every request.
func loadConfig() (config, error) {
	cfg := config{
		Port:              getEnv("PORT", "3000"),
		DBURL:             os.Getenv("DB_URL"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		CORSOrigins:       splitList(os.Getenv("CORS_ORIGINS")),
		Policy:            nutrition.DefaultPolicy(),
	}
	if cfg.DBURL == "" {
		return config{}, fmt.Errorf("DB_URL not set")
	}
	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = defaultCORSOrigins
	}

	if path := os.Getenv("PLAN_POLICY_FILE"); path != "" {
		p, err := loadPolicy(path)
		if err != nil {
			return config{}, err
		}
		cfg.Policy = p
	}
	return cfg, nil
}

// loadPolicy reads a YAML plan policy file, e.g.
//
//	meals:
//	  - meal_type: breakfast
//	    label: Breakfast
//	    weight: 0.25
func loadPolicy(path string) (nutrition.Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nutrition.Policy{}, fmt.Errorf("read plan policy: %w", err)
	}
	return parsePolicy(data)
}

func parsePolicy(data []byte) (nutrition.Policy, error) {
	var p nutrition.Policy
	if err := yaml.UnmarshalStrict(data, &p); err != nil {
		return nutrition.Policy{}, fmt.Errorf("parse plan policy: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nutrition.Policy{}, err
	}
	return p, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitList splits a comma-separated env value, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
