// Package config assembles service options from defaults, an optional JSON
// file, command-line flags and environment variables, in increasing order
// of precedence. A .env file in the working directory is loaded first.
package config

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Options holds the configuration values for the application.
type Options struct {
	// ServerAddress is the HTTP listen address (ip:port).
	ServerAddress string
	// BaseURL prefixes every short URL handed out.
	BaseURL string
	// GRPCAddress is the gRPC listen address; empty disables gRPC.
	GRPCAddress string

	FilePath    string
	DatabaseDSN string
	RedisAddr   string
	NATSURL     string

	// GeoIPPath points at a MaxMind City database. When empty, GeoEndpoint
	// is queried over HTTP instead; when both are empty, locations stay
	// unknown.
	GeoIPPath     string
	GeoEndpoint   string
	EnrichTimeout time.Duration

	Workers    int
	QueueSize  int
	CodeLength int

	TrustedSubnet string
	// RateLimit is link creations per second per client; 0 disables.
	RateLimit float64
	RateBurst int

	LogLevel    string
	JWTSecret   string
	EnablePprof bool
	EnableHTTPS bool

	// Config is the path of the JSON config file.
	Config string
}

// fileOptions mirrors Options in the JSON config file. Absent keys leave
// the defaults untouched.
type fileOptions struct {
	ServerAddress *string  `json:"server_address"`
	BaseURL       *string  `json:"base_url"`
	GRPCAddress   *string  `json:"grpc_address"`
	FilePath      *string  `json:"file_storage_path"`
	DatabaseDSN   *string  `json:"database_dsn"`
	RedisAddr     *string  `json:"redis_addr"`
	NATSURL       *string  `json:"nats_url"`
	GeoIPPath     *string  `json:"geoip_path"`
	GeoEndpoint   *string  `json:"geo_endpoint"`
	EnrichTimeout *string  `json:"enrich_timeout"`
	Workers       *int     `json:"workers"`
	QueueSize     *int     `json:"queue_size"`
	CodeLength    *int     `json:"code_length"`
	TrustedSubnet *string  `json:"trusted_subnet"`
	RateLimit     *float64 `json:"rate_limit"`
	RateBurst     *int     `json:"rate_burst"`
	LogLevel      *string  `json:"log_level"`
	JWTSecret     *string  `json:"jwt_secret"`
	EnablePprof   *bool    `json:"enable_pprof"`
	EnableHTTPS   *bool    `json:"enable_https"`
}

// Defaults returns the options used when nothing else is configured.
func Defaults() Options {
	return Options{
		ServerAddress: "localhost:8080",
		BaseURL:       "http://localhost:8080",
		EnrichTimeout: time.Second,
		Workers:       4,
		QueueSize:     1024,
		CodeLength:    8,
		RateLimit:     10,
		RateBurst:     20,
		LogLevel:      "info",
	}
}

// Parse reads the process arguments and environment.
func Parse() (*Options, error) {
	return ParseArgs(os.Args[1:])
}

// ParseArgs is Parse over an explicit argument list.
func ParseArgs(args []string) (*Options, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	flagged := Defaults()
	fset := flag.NewFlagSet("shortener", flag.ContinueOnError)
	fset.StringVar(&flagged.ServerAddress, "a", flagged.ServerAddress, "run on ip:port server")
	fset.StringVar(&flagged.BaseURL, "b", flagged.BaseURL, "result base url")
	fset.StringVar(&flagged.GRPCAddress, "g", flagged.GRPCAddress, "grpc ip:port, empty disables grpc")
	fset.StringVar(&flagged.FilePath, "f", flagged.FilePath, "path to storage file")
	fset.StringVar(&flagged.DatabaseDSN, "d", flagged.DatabaseDSN, "db address")
	fset.StringVar(&flagged.RedisAddr, "r", flagged.RedisAddr, "redis address for the stats cache")
	fset.StringVar(&flagged.NATSURL, "n", flagged.NATSURL, "nats url for click transport")
	fset.StringVar(&flagged.GeoIPPath, "geoip", flagged.GeoIPPath, "path to a MaxMind City database")
	fset.StringVar(&flagged.GeoEndpoint, "geo-endpoint", flagged.GeoEndpoint, "http geolocation endpoint")
	fset.DurationVar(&flagged.EnrichTimeout, "enrich-timeout", flagged.EnrichTimeout, "geolocation lookup timeout")
	fset.IntVar(&flagged.Workers, "workers", flagged.Workers, "click worker count")
	fset.IntVar(&flagged.QueueSize, "queue", flagged.QueueSize, "click queue size")
	fset.IntVar(&flagged.CodeLength, "code-length", flagged.CodeLength, "generated short code length")
	fset.StringVar(&flagged.TrustedSubnet, "t", flagged.TrustedSubnet, "trusted subnet CIDR")
	fset.Float64Var(&flagged.RateLimit, "rate", flagged.RateLimit, "link creations per second per client, 0 disables")
	fset.IntVar(&flagged.RateBurst, "burst", flagged.RateBurst, "link creation burst per client")
	fset.StringVar(&flagged.LogLevel, "l", flagged.LogLevel, "log level")
	fset.StringVar(&flagged.JWTSecret, "k", flagged.JWTSecret, "jwt signing secret")
	fset.BoolVar(&flagged.EnablePprof, "p", flagged.EnablePprof, "enable pprof")
	fset.BoolVar(&flagged.EnableHTTPS, "s", flagged.EnableHTTPS, "enable https")
	fset.StringVar(&flagged.Config, "c", flagged.Config, "path to json config")
	if err := fset.Parse(args); err != nil {
		return nil, err
	}

	cfgPath := flagged.Config
	if v := os.Getenv("CONFIG"); v != "" {
		cfgPath = v
	}

	opts := Defaults()
	if cfgPath != "" {
		if err := loadFile(cfgPath, &opts); err != nil {
			return nil, err
		}
	}
	opts.Config = cfgPath

	fset.Visit(func(f *flag.Flag) {
		copyFlag(f.Name, &flagged, &opts)
	})

	if err := applyEnv(&opts); err != nil {
		return nil, err
	}

	return &opts, nil
}

func copyFlag(name string, from, to *Options) {
	switch name {
	case "a":
		to.ServerAddress = from.ServerAddress
	case "b":
		to.BaseURL = from.BaseURL
	case "g":
		to.GRPCAddress = from.GRPCAddress
	case "f":
		to.FilePath = from.FilePath
	case "d":
		to.DatabaseDSN = from.DatabaseDSN
	case "r":
		to.RedisAddr = from.RedisAddr
	case "n":
		to.NATSURL = from.NATSURL
	case "geoip":
		to.GeoIPPath = from.GeoIPPath
	case "geo-endpoint":
		to.GeoEndpoint = from.GeoEndpoint
	case "enrich-timeout":
		to.EnrichTimeout = from.EnrichTimeout
	case "workers":
		to.Workers = from.Workers
	case "queue":
		to.QueueSize = from.QueueSize
	case "code-length":
		to.CodeLength = from.CodeLength
	case "t":
		to.TrustedSubnet = from.TrustedSubnet
	case "rate":
		to.RateLimit = from.RateLimit
	case "burst":
		to.RateBurst = from.RateBurst
	case "l":
		to.LogLevel = from.LogLevel
	case "k":
		to.JWTSecret = from.JWTSecret
	case "p":
		to.EnablePprof = from.EnablePprof
	case "s":
		to.EnableHTTPS = from.EnableHTTPS
	}
}

func loadFile(path string, opts *Options) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var f fileOptions
	if err := json.Unmarshal(content, &f); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setString(&opts.ServerAddress, f.ServerAddress)
	setString(&opts.BaseURL, f.BaseURL)
	setString(&opts.GRPCAddress, f.GRPCAddress)
	setString(&opts.FilePath, f.FilePath)
	setString(&opts.DatabaseDSN, f.DatabaseDSN)
	setString(&opts.RedisAddr, f.RedisAddr)
	setString(&opts.NATSURL, f.NATSURL)
	setString(&opts.GeoIPPath, f.GeoIPPath)
	setString(&opts.GeoEndpoint, f.GeoEndpoint)
	setString(&opts.TrustedSubnet, f.TrustedSubnet)
	setString(&opts.LogLevel, f.LogLevel)
	setString(&opts.JWTSecret, f.JWTSecret)

	if f.EnrichTimeout != nil {
		d, err := time.ParseDuration(*f.EnrichTimeout)
		if err != nil {
			return fmt.Errorf("config enrich_timeout: %w", err)
		}
		opts.EnrichTimeout = d
	}
	if f.Workers != nil {
		opts.Workers = *f.Workers
	}
	if f.QueueSize != nil {
		opts.QueueSize = *f.QueueSize
	}
	if f.CodeLength != nil {
		opts.CodeLength = *f.CodeLength
	}
	if f.RateLimit != nil {
		opts.RateLimit = *f.RateLimit
	}
	if f.RateBurst != nil {
		opts.RateBurst = *f.RateBurst
	}
	if f.EnablePprof != nil {
		opts.EnablePprof = *f.EnablePprof
	}
	if f.EnableHTTPS != nil {
		opts.EnableHTTPS = *f.EnableHTTPS
	}

	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func applyEnv(opts *Options) error {
	strs := map[string]*string{
		"SERVER_ADDRESS":    &opts.ServerAddress,
		"BASE_URL":          &opts.BaseURL,
		"GRPC_ADDRESS":      &opts.GRPCAddress,
		"FILE_STORAGE_PATH": &opts.FilePath,
		"DATABASE_DSN":      &opts.DatabaseDSN,
		"REDIS_ADDR":        &opts.RedisAddr,
		"NATS_URL":          &opts.NATSURL,
		"GEOIP_PATH":        &opts.GeoIPPath,
		"GEO_ENDPOINT":      &opts.GeoEndpoint,
		"TRUSTED_SUBNET":    &opts.TrustedSubnet,
		"LOG_LEVEL":         &opts.LogLevel,
		"JWT_SECRET":        &opts.JWTSecret,
	}
	for key, dst := range strs {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}

	ints := map[string]*int{
		"WORKERS":     &opts.Workers,
		"QUEUE_SIZE":  &opts.QueueSize,
		"CODE_LENGTH": &opts.CodeLength,
		"RATE_BURST":  &opts.RateBurst,
	}
	for key, dst := range ints {
		if v := os.Getenv(key); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("env %s: %w", key, err)
			}
			*dst = n
		}
	}

	bools := map[string]*bool{
		"ENABLE_PPROF": &opts.EnablePprof,
		"ENABLE_HTTPS": &opts.EnableHTTPS,
	}
	for key, dst := range bools {
		if v := os.Getenv(key); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("env %s: %w", key, err)
			}
			*dst = b
		}
	}

	if v := os.Getenv("RATE_LIMIT"); v != "" {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("env RATE_LIMIT: %w", err)
		}
		opts.RateLimit = r
	}

	if v := os.Getenv("ENRICH_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("env ENRICH_TIMEOUT: %w", err)
		}
		opts.EnrichTimeout = d
	}

	return nil
}
