package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// JsonConfig defines a configuration structure tailored for JSON
// unmarshalling. It is an intermediate DTO used only for reading JSON
// configuration files; after unmarshalling, non-empty fields are copied
// into the runtime Config.
type JsonConfig struct {
	EndpointAddr       string `json:"endpoint_addr"`
	DatabaseDSN        string `json:"database_dsn"`
	Domain             string `json:"domain"`
	SMTPServer         string `json:"smtp_server"`
	SMTPPort           int    `json:"smtp_port"`
	SMTPUser           string `json:"smtp_user"`
	SMTPPass           string `json:"smtp_pass"`
	SMTPTimeoutSeconds int    `json:"smtp_timeout_seconds"`
}

// parseJson loads configuration values from the JSON file at path into the
// provided Config. An empty path means no file was requested and is not an
// error. Fields absent from the file keep their current values.
func parseJson(config *Config, path string) error {
	if path == "" {
		return nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("error parsing config file: %w", err)
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.Domain != "" {
		config.Domain = c.Domain
	}
	if c.SMTPServer != "" {
		config.SMTPServer = c.SMTPServer
	}
	if c.SMTPPort != 0 {
		config.SMTPPort = c.SMTPPort
	}
	if c.SMTPUser != "" {
		config.SMTPUser = c.SMTPUser
	}
	if c.SMTPPass != "" {
		config.SMTPPass = c.SMTPPass
	}
	if c.SMTPTimeoutSeconds != 0 {
		config.SMTPTimeout = time.Duration(c.SMTPTimeoutSeconds) * time.Second
	}

	return nil
}
