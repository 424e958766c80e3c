package configloader

import (
	"fmt"
	"strings"

	"github.com/yaklabco/checkfiles/pkg/config"
)

// Validate rejects invalid configuration before any scanning begins.
// A non-positive tab size is the one fatal condition: detection is
// independent of tab width, but the fix transform divides lines into
// tab stops and cannot proceed with it.
func Validate(cfg *config.Config) error {
	if cfg == nil {
		return fmt.Errorf("nil configuration")
	}

	if cfg.TabSize <= 0 {
		return fmt.Errorf("tab_size: %d: must be a positive integer", cfg.TabSize)
	}

	for _, ext := range cfg.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("checked_exts: %q: extensions must start with a dot", ext)
		}
	}

	return nil
}
