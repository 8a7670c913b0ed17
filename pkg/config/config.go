package config

import (
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App       App       `yaml:"app"`
	Database  Database  `yaml:"database"`
	Admin     Admin     `yaml:"admin"`
	Simulator Simulator `yaml:"simulator"`
	Allows    Allows    `yaml:"allows"`
}

type App struct {
	Name string `yaml:"name"`
	Port string `yaml:"port"`
	Host string `yaml:"host"`
	Env  string `yaml:"env"`
}

type Database struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
	User string `yaml:"user"`
	Pass string `yaml:"pass"`
	Name string `yaml:"name"`
}

type Admin struct {
	Key string `yaml:"key"`
}

// Simulator holds the boot values of the fault-injection gateway. The live
// configuration is owned by the simulator package and mutated over the
// admin API.
type Simulator struct {
	Enabled         bool    `yaml:"enabled"`
	DelayMs         int     `yaml:"delay_ms"`
	FailureRate     float64 `yaml:"failure_rate"`
	NotFoundRate    float64 `yaml:"not_found_rate"`
	ServerErrorRate float64 `yaml:"server_error_rate"`
}

type Allows struct {
	Methods []string `yaml:"methods"`
	Origins []string `yaml:"origins"`
	Headers []string `yaml:"headers"`
}

func InitConfig() *Config {
	var configs Config
	file_name, _ := filepath.Abs("./config.yaml")
	yaml_file, _ := os.ReadFile(file_name)
	yaml.Unmarshal(yaml_file, &configs)

	// Override with environment variables if they exist (for Docker)
	if dbHost := os.Getenv("DB_HOST"); dbHost != "" {
		configs.Database.Host = dbHost
	}
	if dbPort := os.Getenv("DB_PORT"); dbPort != "" {
		configs.Database.Port = dbPort
	}
	if dbUser := os.Getenv("DB_USER"); dbUser != "" {
		configs.Database.User = dbUser
	}
	if dbPassword := os.Getenv("DB_PASSWORD"); dbPassword != "" {
		configs.Database.Pass = dbPassword
	}
	if dbName := os.Getenv("DB_NAME"); dbName != "" {
		configs.Database.Name = dbName
	}

	// Override app configuration with environment variables
	if appHost := os.Getenv("APP_HOST"); appHost != "" {
		configs.App.Host = appHost
	}
	if appPort := os.Getenv("APP_PORT"); appPort != "" {
		configs.App.Port = appPort
	}
	if appName := os.Getenv("APP_NAME"); appName != "" {
		configs.App.Name = appName
	}
	if appEnv := os.Getenv("APP_ENV"); appEnv != "" {
		configs.App.Env = appEnv
	}
	if configs.App.Env == "" {
		configs.App.Env = "dev"
	}

	if adminKey := os.Getenv("ADMIN_KEY"); adminKey != "" {
		configs.Admin.Key = adminKey
	}

	if simEnabled := os.Getenv("SIMULATOR_ENABLED"); simEnabled != "" {
		configs.Simulator.Enabled, _ = strconv.ParseBool(simEnabled)
	}
	if simDelay := os.Getenv("SIMULATOR_DELAY_MS"); simDelay != "" {
		configs.Simulator.DelayMs, _ = strconv.Atoi(simDelay)
	}

	return &configs
}
