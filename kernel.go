package rapidutf8

// vectorWidth is the number of lanes processed per block, chosen once at
// startup. Zero means the platform has no lane kernel and the scalar path
// handles everything.
var vectorWidth, kernelName = pickKernel()

// Kernel returns the name of the lane kernel selected for this process.
func Kernel() string {
	return kernelName
}

// VectorWidth returns the number of byte lanes per block, or 0 when the
// scalar fallback is in use.
func VectorWidth() int {
	return vectorWidth
}
