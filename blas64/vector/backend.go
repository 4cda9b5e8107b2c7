package vector

var backend = "gonum"

// Backend names the BLAS implementation in use.
func Backend() string {
	return backend
}
