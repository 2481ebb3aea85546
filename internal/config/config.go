package config

import (
	"flag"
	"github.com/caarlos0/env/v8"
	"github.com/joho/godotenv"
	"log"
	"os"
	"time"
)

type Config interface {
	ServerAddress() string
	DatabaseURI() string
	OrderAPIAddress() string
	OrderAPIToken() string
	RedisAddress() string
	PollInterval() time.Duration
	ReportCacheTTL() time.Duration
}

type Builder struct {
	parameters *parameters
	arguments  []string
	err        error
}

type parameters struct {
	ServerAddress   string        `env:"RUN_ADDRESS"`
	DatabaseURI     string        `env:"DATABASE_URI"`
	OrderAPIAddress string        `env:"ORDER_API_ADDRESS"`
	OrderAPIToken   string        `env:"ORDER_API_TOKEN"`
	RedisAddress    string        `env:"REDIS_ADDRESS"`
	PollInterval    time.Duration `env:"POLL_INTERVAL"`
	ReportCacheTTL  time.Duration `env:"REPORT_CACHE_TTL"`
}

const (
	defaultServerAddress  = "localhost:8080"
	defaultRedisAddress   = "localhost:6379"
	defaultPollInterval   = 5 * time.Minute
	defaultReportCacheTTL = time.Minute
)

func NewBuilder() *Builder {
	return &Builder{
		parameters: &parameters{
			ServerAddress:  defaultServerAddress,
			RedisAddress:   defaultRedisAddress,
			PollInterval:   defaultPollInterval,
			ReportCacheTTL: defaultReportCacheTTL,
		},
		arguments: os.Args[1:],
	}
}

func (b *Builder) LoadDotenv() *Builder {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	return b
}

func (b *Builder) LoadEnv() *Builder {
	if err := env.Parse(b.parameters); err != nil {
		b.err = err
	}

	return b
}

func (b *Builder) LoadFlags() *Builder {
	fs := flag.NewFlagSet("shipdesk", flag.ContinueOnError)
	fs.StringVar(&b.parameters.ServerAddress, "a", b.parameters.ServerAddress, "address and port for the HTTP server")
	fs.StringVar(&b.parameters.DatabaseURI, "d", b.parameters.DatabaseURI, "PostgreSQL connection URI")
	fs.StringVar(&b.parameters.OrderAPIAddress, "r", b.parameters.OrderAPIAddress, "order API base address")
	fs.DurationVar(&b.parameters.PollInterval, "p", b.parameters.PollInterval, "order API poll interval")
	if err := fs.Parse(b.arguments); err != nil {
		b.err = err
	}

	return b
}

func (b *Builder) Build() (Config, error) {
	return b, b.err
}

func (b *Builder) ServerAddress() string {
	return b.parameters.ServerAddress
}

func (b *Builder) DatabaseURI() string {
	return b.parameters.DatabaseURI
}

func (b *Builder) OrderAPIAddress() string {
	return b.parameters.OrderAPIAddress
}

func (b *Builder) OrderAPIToken() string {
	return b.parameters.OrderAPIToken
}

func (b *Builder) RedisAddress() string {
	return b.parameters.RedisAddress
}

func (b *Builder) PollInterval() time.Duration {
	return b.parameters.PollInterval
}

func (b *Builder) ReportCacheTTL() time.Duration {
	return b.parameters.ReportCacheTTL
}
