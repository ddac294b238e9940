package tlsconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFromEnv(t *testing.T) {
	t.Setenv("TLS_CERT", "/certs/dosing.pem")
	t.Setenv("TLS_KEY", "/certs/dosing-key.pem")
	t.Setenv("TLS_CA", "/certs/ca.pem")

	files := FromEnv()
	if !files.Enabled() {
		t.Fatal("expected TLS to be enabled")
	}
	if files.Key != "/certs/dosing-key.pem" || files.CA != "/certs/ca.pem" {
		t.Errorf("unexpected files %+v", files)
	}
}

func TestEnabled_NoCert(t *testing.T) {
	if (Files{}).Enabled() {
		t.Error("expected TLS disabled without a certificate")
	}
}

func TestServer_MissingKeyPair(t *testing.T) {
	dir := t.TempDir()
	files := Files{
		Cert: filepath.Join(dir, "missing.pem"),
		Key:  filepath.Join(dir, "missing-key.pem"),
		CA:   filepath.Join(dir, "ca.pem"),
	}

	if _, err := files.Server(); err == nil {
		t.Error("expected error for missing key pair")
	}
	if _, err := files.Client(); err == nil {
		t.Error("expected error for missing key pair")
	}
}

func TestLoad_BadCA(t *testing.T) {
	dir := t.TempDir()
	ca := filepath.Join(dir, "ca.pem")
	if err := os.WriteFile(ca, []byte("not a certificate"), 0o600); err != nil {
		t.Fatal(err)
	}

	// key pair fails first, so the CA is never reached without real certs
	if _, _, err := (Files{Cert: ca, Key: ca, CA: ca}).load(); err == nil {
		t.Error("expected error for invalid PEM material")
	}
}
