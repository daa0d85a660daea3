package utils

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds process-level settings read from the environment at startup.
// API credentials are deliberately not validated here: with them missing the
// upstream fetch simply fails and the site falls back to cache or empty.
type Config struct {
	Port            int
	APIURL          string
	APIUsername     string
	APIPassword     string
	CachePath       string
	CacheTimeout    time.Duration
	SiteProfilePath string
}

// LoadConfig reads .env (if present) and the environment.
func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] no .env file found, using system env vars")
	}

	return Config{
		Port:            getEnvInt("PORT", 5000),
		APIURL:          os.Getenv("API_URL"),
		APIUsername:     os.Getenv("AUTOTRADER_USERNAME"),
		APIPassword:     os.Getenv("AUTOTRADER_PASSWORD"),
		CachePath:       getEnv("CACHE_FILE", "cache_listings.json"),
		CacheTimeout:    time.Duration(getEnvInt("CACHE_TIMEOUT", 1800)) * time.Second,
		SiteProfilePath: getEnv("SITE_PROFILE", "config/dealer.yaml"),
	}
}

// SiteProfile is the dealership identity rendered into every page: name,
// contact details, footer text. Kept in a YAML file so content edits don't
// need a rebuild.
type SiteProfile struct {
	Name     string `yaml:"name"`
	Tagline  string `yaml:"tagline"`
	Phone    string `yaml:"phone"`
	WhatsApp string `yaml:"whatsapp"`
	Email    string `yaml:"email"`
	Address  string `yaml:"address"`
}

// LoadSiteProfile reads the dealer profile, falling back to defaults when the
// file is missing or malformed.
func LoadSiteProfile(path string) SiteProfile {
	profile := SiteProfile{
		Name:    "Motorhub Motors",
		Tagline: "Premium and armoured vehicles",
		Email:   "sales@motorhub.example",
		Address: "Johannesburg, South Africa",
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[config] read site profile %s: %v", path, err)
		}
		return profile
	}
	if err := yaml.Unmarshal(data, &profile); err != nil {
		log.Printf("[config] bad site profile %s: %v", path, err)
	}
	return profile
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return fallback
}
