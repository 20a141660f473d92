//go:build arm64

package rapidutf8

// NEON is mandatory on arm64.
func pickKernel() (int, string) {
	return 16, "neon"
}
