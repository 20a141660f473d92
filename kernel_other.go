//go:build !(amd64 || arm64)

package rapidutf8

// No lane kernel on this platform.
func pickKernel() (int, string) {
	return 0, "scalar"
}
