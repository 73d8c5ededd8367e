// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// stringList is a comma separated flag value.
type stringList []string

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database URL
//	-c/-config json file path with configs
//	-secret-key token signing key
//	-algorithm token signing algorithm (HS256, HS384, HS512)
//	-token-expire-minutes token TTL in minutes
//	-token-issuer token issuer name
//	-password-hash-cost bcrypt cost for new password hashes
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-cors-origins comma separated allowed origins
//	-rate-limit-requests requests allowed per window and client
//	-rate-limit-window rate limit window (e.g., "60s")
//	-debug enable debug logging
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var corsOrigins stringList
	var databaseURL string
	var jsonConfigPath string
	var secretKey string
	var algorithm string
	var tokenExpireMinutes int
	var tokenIssuer string
	var passwordHashCost int
	var requestTimeout time.Duration
	var rateLimitRequests int
	var rateLimitWindow time.Duration
	var debug bool

	fs := flag.NewFlagSet("items-keeper", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseURL, "d", "", "Database URL")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&secretKey, "secret-key", "", "Token signing key")
	fs.StringVar(&algorithm, "algorithm", "", "Token signing algorithm")
	fs.IntVar(&tokenExpireMinutes, "token-expire-minutes", 0, "Access token TTL in minutes")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.IntVar(&passwordHashCost, "password-hash-cost", 0, "Bcrypt cost for password hashes")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.Var(&corsOrigins, "cors-origins", "Comma separated list of allowed origins")
	fs.IntVar(&rateLimitRequests, "rate-limit-requests", 0, "Requests allowed per window and client")
	fs.DurationVar(&rateLimitWindow, "rate-limit-window", 0, "Rate limit window (e.g., 60s)")
	fs.BoolVar(&debug, "debug", false, "Enable debug logging")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Debug: debug,
		},
		Auth: Auth{
			SecretKey:                secretKey,
			Algorithm:                algorithm,
			AccessTokenExpireMinutes: tokenExpireMinutes,
			TokenIssuer:              tokenIssuer,
			PasswordHashCost:         passwordHashCost,
		},
		Storage: Storage{
			DB: DB{
				URL: databaseURL,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			CORSOrigins:    corsOrigins,
		},
		RateLimit: RateLimit{
			Requests: rateLimitRequests,
			Window:   rateLimitWindow,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host means all interfaces. It validates the port range, checks IP
// correctness unless host is "localhost", and returns an error if the format
// or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

// String joins the list with commas.
func (l *stringList) String() string {
	return strings.Join(*l, ",")
}

// Set splits s on commas, trimming blanks.
func (l *stringList) Set(s string) error {
	*l = splitList(s)
	return nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
