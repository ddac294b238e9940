package tlsconfig

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
)

// Files names the PEM files of one side of an mTLS connection
type Files struct {
	Cert string
	Key  string
	CA   string
}

// FromEnv reads TLS_CERT, TLS_KEY and TLS_CA
func FromEnv() Files {
	return Files{
		Cert: os.Getenv("TLS_CERT"),
		Key:  os.Getenv("TLS_KEY"),
		CA:   os.Getenv("TLS_CA"),
	}
}

// Enabled reports whether a certificate was configured
func (f Files) Enabled() bool {
	return f.Cert != ""
}

// load reads this side's key pair and the CA pool used to verify the peer
func (f Files) load() (tls.Certificate, *x509.CertPool, error) {
	cert, err := tls.LoadX509KeyPair(f.Cert, f.Key)
	if err != nil {
		return tls.Certificate{}, nil, fmt.Errorf("load key pair: %w", err)
	}

	caCert, err := os.ReadFile(f.CA)
	if err != nil {
		return tls.Certificate{}, nil, fmt.Errorf("read CA cert: %w", err)
	}

	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(caCert) {
		return tls.Certificate{}, nil, fmt.Errorf("failed to parse CA certificate %s", f.CA)
	}

	return cert, pool, nil
}

// Server creates a tls.Config for the dosing gRPC server requiring client certs (mTLS).
func (f Files) Server() (*tls.Config, error) {
	cert, pool, err := f.load()
	if err != nil {
		return nil, err
	}

	return &tls.Config{
		Certificates: []tls.Certificate{cert},
		ClientCAs:    pool,
		ClientAuth:   tls.RequireAndVerifyClientCert,
		MinVersion:   tls.VersionTLS12,
	}, nil
}

// Client creates a tls.Config for a dosing client that presents a cert (mTLS).
func (f Files) Client() (*tls.Config, error) {
	cert, pool, err := f.load()
	if err != nil {
		return nil, err
	}

	return &tls.Config{
		Certificates: []tls.Certificate{cert},
		RootCAs:      pool,
		MinVersion:   tls.VersionTLS12,
	}, nil
}
