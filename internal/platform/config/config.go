package config

import "os"

// Server captures HTTP server level configuration.
type Server struct {
	Addr        string
	CatalogPath string
	PolicyPath  string
}

// FromEnv builds a Server config from environment variables so main stays lean.
// Empty paths mean built-in defaults for the catalog and policy.
func FromEnv() Server {
	addr := os.Getenv("KYCGATE_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	return Server{
		Addr:        addr,
		CatalogPath: os.Getenv("KYCGATE_CATALOG_FILE"),
		PolicyPath:  os.Getenv("KYCGATE_POLICY_FILE"),
	}
}
