package config

// Programmatic options, for embedding the server in another process or
// for tests that want a known configuration without touching the
// environment.

// WithPort sets the HTTP port.
func WithPort(port string) Option {
	return func(c *ServerConfig) error {
		c.Port = port
		return nil
	}
}

// WithEnvironment sets the runtime environment name.
func WithEnvironment(environment string) Option {
	return func(c *ServerConfig) error {
		c.Environment = environment
		return nil
	}
}

// WithSessionSecret sets the cookie signing secret.
func WithSessionSecret(secret string) Option {
	return func(c *ServerConfig) error {
		c.SessionSecret = secret
		return nil
	}
}

// WithMemoryStorage selects the in-memory document backend.
func WithMemoryStorage() Option {
	return func(c *ServerConfig) error {
		c.StorageType = "memory"
		return nil
	}
}

// WithFilesystemStorage selects the filesystem document backend rooted
// at dir.
func WithFilesystemStorage(dir string) Option {
	return func(c *ServerConfig) error {
		c.StorageType = "fs"
		c.StorageDir = dir
		return nil
	}
}

// WithS3Storage selects the S3 document backend.
func WithS3Storage(s3 S3Config) Option {
	return func(c *ServerConfig) error {
		c.StorageType = "s3"
		c.S3 = s3
		return nil
	}
}

// WithMemoryCredentials selects the in-memory credential repository.
func WithMemoryCredentials() Option {
	return func(c *ServerConfig) error {
		c.CredentialsType = "memory"
		return nil
	}
}

// WithFileCredentials selects the file-backed credential repository at
// path.
func WithFileCredentials(path string) Option {
	return func(c *ServerConfig) error {
		c.CredentialsType = "file"
		c.CredentialsPath = path
		return nil
	}
}

// WithPostgresCredentials selects the PostgreSQL credential repository.
func WithPostgresCredentials(databaseURL string) Option {
	return func(c *ServerConfig) error {
		c.CredentialsType = "postgres"
		c.DatabaseURL = databaseURL
		return nil
	}
}
