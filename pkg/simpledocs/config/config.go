package config

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tendant/simple-docs/pkg/simpledocs"
	"github.com/tendant/simple-docs/pkg/simpledocs/api"
	credfile "github.com/tendant/simple-docs/pkg/simpledocs/credrepo/file"
	credmemory "github.com/tendant/simple-docs/pkg/simpledocs/credrepo/memory"
	credpg "github.com/tendant/simple-docs/pkg/simpledocs/credrepo/postgres"
	fsstorage "github.com/tendant/simple-docs/pkg/simpledocs/storage/fs"
	memorystorage "github.com/tendant/simple-docs/pkg/simpledocs/storage/memory"
	s3storage "github.com/tendant/simple-docs/pkg/simpledocs/storage/s3"
)

// Option applies configuration to a ServerConfig instance.
type Option func(*ServerConfig) error

// Load constructs a ServerConfig by applying the supplied options on
// top of library defaults.
func Load(opts ...Option) (*ServerConfig, error) {
	cfg := defaults()

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func defaults() ServerConfig {
	return ServerConfig{
		Port:            "8080",
		Environment:     "development",
		SessionSecret:   "secret",
		StorageType:     "memory",
		CredentialsType: "memory",
	}
}

// ServerConfig represents server configuration for the simple-docs service
type ServerConfig struct {
	Port        string
	Environment string // development, production, testing

	// SessionSecret signs session cookies.
	SessionSecret string

	// Document storage configuration
	StorageType string // "memory", "fs", "s3"
	StorageDir  string // base directory for the fs backend
	S3          S3Config

	// Credential storage configuration
	CredentialsType string // "memory", "file", "postgres"
	CredentialsPath string // mapping file for the file backend
	DatabaseURL     string // connection string for the postgres backend
}

// S3Config carries the s3 storage backend settings
type S3Config struct {
	Region          string
	Bucket          string
	Prefix          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
	UsePathStyle    bool
	CreateBucket    bool
}

// Validate validates the server configuration
func (c *ServerConfig) Validate() error {
	if c.Port == "" {
		return errors.New("port is required")
	}

	switch c.StorageType {
	case "memory":
	case "fs":
		if c.StorageDir == "" {
			return errors.New("storage directory is required when using fs storage")
		}
	case "s3":
		if c.S3.Bucket == "" {
			return errors.New("s3 bucket is required when using s3 storage")
		}
	default:
		return fmt.Errorf("storage_type must be 'memory', 'fs' or 's3', got %q", c.StorageType)
	}

	switch c.CredentialsType {
	case "memory":
	case "file":
		if c.CredentialsPath == "" {
			return errors.New("credentials path is required when using file credentials")
		}
	case "postgres":
		if c.DatabaseURL == "" {
			return errors.New("database_url is required when using postgres credentials")
		}
	default:
		return fmt.Errorf("credentials_type must be 'memory', 'file' or 'postgres', got %q", c.CredentialsType)
	}

	if c.Environment == "production" && c.SessionSecret == "secret" {
		return errors.New("session secret must be set in production")
	}

	return nil
}

// BuildDocumentService creates the document Service from the configuration
func (c *ServerConfig) BuildDocumentService() (simpledocs.Service, error) {
	store, err := c.buildBlobStore()
	if err != nil {
		return nil, fmt.Errorf("failed to build storage backend: %w", err)
	}

	return simpledocs.New(simpledocs.WithBlobStore(store))
}

func (c *ServerConfig) buildBlobStore() (simpledocs.BlobStore, error) {
	switch c.StorageType {
	case "memory":
		return memorystorage.New(), nil
	case "fs":
		return fsstorage.New(fsstorage.Config{BaseDir: c.StorageDir})
	case "s3":
		return s3storage.New(s3storage.Config{
			Region:                 c.S3.Region,
			Bucket:                 c.S3.Bucket,
			Prefix:                 c.S3.Prefix,
			AccessKeyID:            c.S3.AccessKeyID,
			SecretAccessKey:        c.S3.SecretAccessKey,
			Endpoint:               c.S3.Endpoint,
			UsePathStyle:           c.S3.UsePathStyle,
			CreateBucketIfNotExist: c.S3.CreateBucket,
		})
	default:
		return nil, fmt.Errorf("unknown storage type: %s", c.StorageType)
	}
}

// BuildCredentialService creates the CredentialService from the configuration
func (c *ServerConfig) BuildCredentialService(ctx context.Context) (*simpledocs.CredentialService, error) {
	repo, err := c.buildCredentialRepository(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build credential repository: %w", err)
	}

	return simpledocs.NewCredentialService(repo), nil
}

func (c *ServerConfig) buildCredentialRepository(ctx context.Context) (simpledocs.CredentialRepository, error) {
	switch c.CredentialsType {
	case "memory":
		return credmemory.New(), nil
	case "file":
		return credfile.New(c.CredentialsPath)
	case "postgres":
		pool, err := pgxpool.New(ctx, c.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		return credpg.NewWithPool(ctx, pool)
	default:
		return nil, fmt.Errorf("unknown credentials type: %s", c.CredentialsType)
	}
}

// BuildHandler assembles the full HTTP handler (UI plus JSON API) from
// the configuration.
func (c *ServerConfig) BuildHandler(ctx context.Context) (http.Handler, error) {
	docs, err := c.BuildDocumentService()
	if err != nil {
		return nil, err
	}

	credentials, err := c.BuildCredentialService(ctx)
	if err != nil {
		return nil, err
	}

	sessions := api.NewSessionManager([]byte(c.SessionSecret), c.Environment == "production")
	return api.NewHandler(docs, credentials, sessions).Routes(), nil
}
