package builtin

import "os"

// pathEnv and osGetwd exist so the handful of direct os calls built-ins
// need are named the same way across this package instead of scattering
// bare os.Getenv/os.Getwd calls through each handler file.
func pathEnv() string {
	return os.Getenv("PATH")
}

func osGetwd() (string, error) {
	return os.Getwd()
}
