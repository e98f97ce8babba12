package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseFlags_OverridesDefaults(t *testing.T) {
	c := &Config{}
	c.LoadDefaults()

	parseFlags(c, []string{
		"-a", ":9090",
		"-d", "postgres://u:p@db:5432/signupd",
		"-m", "example.com",
		"-s", "smtp.example.com",
		"-p", "465",
		"-u", "mailer",
		"-w", "pw",
		"-t", "5",
	})

	assert.Equal(t, ":9090", c.EndpointAddr)
	assert.Equal(t, "postgres://u:p@db:5432/signupd", c.DatabaseDSN)
	assert.Equal(t, "example.com", c.Domain)
	assert.Equal(t, "smtp.example.com", c.SMTPServer)
	assert.Equal(t, 465, c.SMTPPort)
	assert.Equal(t, "mailer", c.SMTPUser)
	assert.Equal(t, "pw", c.SMTPPass)
	assert.Equal(t, 5*time.Second, c.SMTPTimeout)
}

func TestParseFlags_UnknownFlagsIgnored(t *testing.T) {
	c := &Config{}
	c.LoadDefaults()

	// Flags belonging to other components must not break parsing.
	parseFlags(c, []string{"-x", "1", "-m", "example.com", "--weird=2"})

	assert.Equal(t, "example.com", c.Domain)
	assert.Equal(t, ":8080", c.EndpointAddr)
}

func TestParseFlags_NoFlagsKeepsValues(t *testing.T) {
	c := &Config{}
	c.LoadDefaults()
	c.Domain = "kept.example.com"

	parseFlags(c, nil)

	assert.Equal(t, "kept.example.com", c.Domain)
	assert.Equal(t, 10*time.Second, c.SMTPTimeout)
}
