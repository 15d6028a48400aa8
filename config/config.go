package config

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// Default crisis keywords screened before any completion call.
var defaultCrisisKeywords = []string{
	"suicide",
	"kill myself",
	"hopeless",
	"can't go on",
	"hurt myself",
	"end it all",
}

// Config holds the application configuration
type Config struct {
	Database struct {
		Driver   string `yaml:"driver"` // "sqlite" or "postgres"
		Path     string `yaml:"path"`   // sqlite file path
		Host     string `yaml:"host"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		DBName   string `yaml:"dbname"`
		Port     string `yaml:"port"`
		SSLMode  string `yaml:"sslmode"`
	} `yaml:"database"`
	Chat struct {
		// APIKey may be empty; an empty key is a handled state and the
		// responder answers with its connectivity fallback instead.
		APIKey         string   `yaml:"api_key"`
		BaseURL        string   `yaml:"base_url"`
		Model          string   `yaml:"model"`
		MaxTokens      uint32   `yaml:"max_tokens"`
		Temperature    float32  `yaml:"temperature"`
		CrisisKeywords []string `yaml:"crisis_keywords"`
	} `yaml:"chat"`
	Auth struct {
		Secret  string `yaml:"secret"`
		ExpHour int    `yaml:"exp_hour"`
	} `yaml:"auth"`
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
}

// GlobalConfig is the global configuration instance
var GlobalConfig Config

// DSN generates the database DSN from database config
func (c *Config) DSN() string {
	if c.Database.Driver == "sqlite" {
		return c.Database.Path
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.Database.Host,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.Port,
		c.Database.SSLMode,
	)
}

// LoadConfig reads and parses the YAML configuration file into GlobalConfig
func LoadConfig(filePath string) error {
	// Read the YAML file
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}

	// Unmarshal YAML into a fresh GlobalConfig
	GlobalConfig = Config{}
	if err := yaml.Unmarshal(data, &GlobalConfig); err != nil {
		return err
	}

	applyDefaults(&GlobalConfig)

	// Validate required fields
	if GlobalConfig.Database.Driver != "sqlite" && GlobalConfig.Database.Driver != "postgres" {
		log.Fatal("database.driver must be sqlite or postgres")
	}
	if GlobalConfig.Database.Driver == "sqlite" && GlobalConfig.Database.Path == "" {
		log.Fatal("database.path is required for the sqlite driver")
	}
	if GlobalConfig.Database.Driver == "postgres" {
		if GlobalConfig.Database.Host == "" {
			log.Fatal("database.host is required for the postgres driver")
		}
		if GlobalConfig.Database.User == "" {
			log.Fatal("database.user is required for the postgres driver")
		}
		if GlobalConfig.Database.DBName == "" {
			log.Fatal("database.dbname is required for the postgres driver")
		}
		if GlobalConfig.Database.Port == "" {
			log.Fatal("database.port is required for the postgres driver")
		}
		if GlobalConfig.Database.SSLMode == "" {
			log.Fatal("database.sslmode is required for the postgres driver")
		}
	}
	if GlobalConfig.Auth.Secret == "" {
		log.Fatal("auth.secret is required in config.yaml")
	}
	if GlobalConfig.Server.Port < 1 || GlobalConfig.Server.Port > 65535 {
		log.Fatal("server.port must be between 1 and 65535")
	}

	return nil
}

func applyDefaults(c *Config) {
	if c.Database.Driver == "" {
		c.Database.Driver = "sqlite"
	}
	if c.Database.Driver == "sqlite" && c.Database.Path == "" {
		c.Database.Path = "workzen.db"
	}
	if c.Chat.APIKey == "" {
		c.Chat.APIKey = os.Getenv("MISTRAL_API_KEY")
	}
	if c.Chat.BaseURL == "" {
		c.Chat.BaseURL = "https://api.mistral.ai/v1"
	}
	if c.Chat.Model == "" {
		c.Chat.Model = "mistral-small-latest"
	}
	if c.Chat.MaxTokens == 0 {
		c.Chat.MaxTokens = 400
	}
	if c.Chat.Temperature == 0 {
		c.Chat.Temperature = 0.7
	}
	if len(c.Chat.CrisisKeywords) == 0 {
		c.Chat.CrisisKeywords = append([]string(nil), defaultCrisisKeywords...)
	}
	if c.Auth.ExpHour == 0 {
		c.Auth.ExpHour = 24
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
}
