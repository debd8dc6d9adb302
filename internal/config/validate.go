package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in (0, 65535] (got %d)", c.Server.Port)
	}

	if c.Database.MaxConns < c.Database.MinConns {
		return fmt.Errorf("database.max_conns (%d) must be >= database.min_conns (%d)",
			c.Database.MaxConns, c.Database.MinConns)
	}

	// The image store is allowed to be unconfigured, but a half-configured
	// store is a deployment mistake.
	if err := c.ImageStore.validate(); err != nil {
		return fmt.Errorf("image_store: %w", err)
	}

	return nil
}

func (c ImageStoreConfig) validate() error {
	partial := c.Bucket != "" || c.AccessKey != "" || c.SecretKey != ""
	if partial && !c.Configured() {
		return fmt.Errorf("bucket, access_key and secret_key must all be set together")
	}
	if c.DeleteTimeout <= 0 {
		return fmt.Errorf("delete_timeout must be > 0 (got %v)", c.DeleteTimeout)
	}
	if c.UploadTimeout <= 0 {
		return fmt.Errorf("upload_timeout must be > 0 (got %v)", c.UploadTimeout)
	}
	return nil
}
