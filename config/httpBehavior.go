package config

// HTTPBehavior holds the listener and upstream TLS settings of the proxy
type HTTPBehavior struct {
	Listen                string // Local address the proxy should listen on
	CertDir               string // Path to the local trusted certificate, for TLS MITM
	InsecureSkipVerifyTLS bool   // Skip upstream TLS cert verification
}
