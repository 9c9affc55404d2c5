package config

import (
	"fmt"
	"strings"

	"github.com/dailydoses/humor-backend/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.IsProduction() && c.Admin.PasswordHash == "" {
		return fmt.Errorf("admin.password_hash is required in production")
	}

	if !domain.HumorCategory(c.Push.Category).IsValid() {
		return fmt.Errorf("push.category %q is not a humor category", c.Push.Category)
	}

	if c.CORS.AllowCredentials && containsWildcard(c.CORS.AllowedOrigins) {
		return fmt.Errorf("cors: wildcard origin cannot be combined with credentials")
	}

	if c.Storage.MaxUploadMB <= 0 {
		return fmt.Errorf("storage.max_upload_mb must be > 0 (got %d)", c.Storage.MaxUploadMB)
	}

	return nil
}

func containsWildcard(origins string) bool {
	for _, o := range strings.Split(origins, ",") {
		if strings.TrimSpace(o) == "*" {
			return true
		}
	}
	return false
}
