package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/checkfiles/pkg/config"
)

// envVarPrefix is the prefix for all checkfiles environment variables.
const envVarPrefix = "CHECKFILES_"

// LoadFromEnv applies environment variable overrides to the
// configuration. Supported variables:
//
//	CHECKFILES_TAB_SIZE       integer
//	CHECKFILES_CHECKED_EXTS   space-separated extension list
//	CHECKFILES_IGNORED_FILES  space-separated path list
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	if value := os.Getenv(envVarPrefix + "TAB_SIZE"); value != "" {
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid %sTAB_SIZE %q: %w", envVarPrefix, value, err)
		}
		cfg.TabSize = n
	}

	if value := os.Getenv(envVarPrefix + "CHECKED_EXTS"); value != "" {
		cfg.Extensions = strings.Fields(value)
	}

	if value := os.Getenv(envVarPrefix + "IGNORED_FILES"); value != "" {
		cfg.IgnoreFiles = strings.Fields(value)
	}

	return nil
}
