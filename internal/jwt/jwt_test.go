package jwt

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func setupKeys(t *testing.T) {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatal(err)
	}

	privateKey = key
	publicKey = &key.PublicKey
}

func TestSignAndValidate(t *testing.T) {
	setupKeys(t)
	a := assert.New(t)

	signed, err := Sign(42)
	a.NoError(err)
	a.NotEqual("", signed)

	id, err := ValidAccountID(signed)
	a.NoError(err)
	a.Equal(int64(42), id)

	_, err = ValidAccountID(signed + "tampered")
	a.Error(err)

	_, err = ValidAccountID("not-a-jwt")
	a.Error(err)
}

func TestLoadKeysFromFiles(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()

	privatePath := filepath.Join(dir, "private.key")
	privatePEM := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	})
	if err := os.WriteFile(privatePath, privatePEM, 0600); err != nil {
		t.Fatal(err)
	}

	publicPath := filepath.Join(dir, "public.pem")
	publicBytes, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		t.Fatal(err)
	}
	publicPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "PUBLIC KEY",
		Bytes: publicBytes,
	})
	if err := os.WriteFile(publicPath, publicPEM, 0644); err != nil {
		t.Fatal(err)
	}

	privateKey = loadPrivateKey(privatePath)
	publicKey = loadPublicKey(publicPath)

	signed, err := Sign(7)
	assert.NoError(t, err)

	id, err := ValidAccountID(signed)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), id)
}
