package platform

import (
	"runtime"

	"getdriver.dev/cli/internal/core/domain"
)

// Describe derives the platform descriptor for the current host. It is
// called once at startup; everything downstream receives the descriptor
// explicitly instead of re-querying the OS.
func Describe() (domain.Descriptor, error) {
	return domain.DescribePlatform(runtime.GOOS)
}
