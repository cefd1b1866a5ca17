package webhook

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// signPayload produces a PEM public key and a base64 signature for payload,
// the way a Commerce instance signs outgoing webhook requests.
func signPayload(t *testing.T, payload []byte) (publicKeyPEM, signatureB64 string) {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	digest := sha256.Sum256(payload)
	signature, err := rsa.SignPKCS1v15(rand.Reader, key, crypto.SHA256, digest[:])
	require.NoError(t, err)

	keyBytes, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	keyPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: keyBytes})

	return string(keyPEM), base64.StdEncoding.EncodeToString(signature)
}

func TestVerifySignatureAcceptsValidSignature(t *testing.T) {
	payload := []byte(`{"order":{"id":7}}`)
	publicKey, signature := signPayload(t, payload)

	assert.NoError(t, VerifySignature(payload, signature, publicKey))
}

func TestVerifySignatureRejectsTamperedPayload(t *testing.T) {
	payload := []byte(`{"order":{"id":7}}`)
	publicKey, signature := signPayload(t, payload)

	err := VerifySignature([]byte(`{"order":{"id":8}}`), signature, publicKey)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestVerifySignatureRejectsMalformedInputs(t *testing.T) {
	payload := []byte(`{}`)
	publicKey, signature := signPayload(t, payload)

	t.Run("bad public key", func(t *testing.T) {
		err := VerifySignature(payload, signature, "not a pem key")
		assert.ErrorIs(t, err, ErrInvalidPublicKey)
	})

	t.Run("bad base64 signature", func(t *testing.T) {
		err := VerifySignature(payload, "!!not-base64!!", publicKey)
		assert.ErrorIs(t, err, ErrInvalidSignature)
	})
}
