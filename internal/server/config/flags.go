package config

import (
	"flag"
	"time"

	"signupd/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-d string   PostgreSQL DSN
//	-m string   mail domain
//	-s string   SMTP server host
//	-p int      SMTP server port
//	-u string   SMTP user
//	-w string   SMTP password
//	-t int      SMTP send timeout, seconds
//
// The function first filters args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-d", "-m", "-s", "-p", "-u", "-w", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.Domain, "m", config.Domain, "mail domain")
	fs.StringVar(&config.SMTPServer, "s", config.SMTPServer, "SMTP server host")
	fs.IntVar(&config.SMTPPort, "p", config.SMTPPort, "SMTP server port")
	fs.StringVar(&config.SMTPUser, "u", config.SMTPUser, "SMTP user")
	fs.StringVar(&config.SMTPPass, "w", config.SMTPPass, "SMTP password")

	smtpTimeout := fs.Int("t", int(config.SMTPTimeout.Seconds()), "smtp_timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.SMTPTimeout = time.Duration(*smtpTimeout) * time.Second
}
