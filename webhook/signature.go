package webhook

import (
	"crypto"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
)

var (
	// ErrInvalidPublicKey indicates the configured public key could not be
	// parsed as a PEM-encoded RSA public key.
	ErrInvalidPublicKey = errors.New("webhook: invalid public key")

	// ErrInvalidSignature indicates the signature does not match the payload.
	ErrInvalidSignature = errors.New("webhook: signature verification failed")
)

// VerifySignature checks the x-adobe-commerce-webhook-signature header value
// against the raw request payload. The signature is base64-encoded
// RSA-SHA256 over the payload bytes; publicKeyPEM is the PEM public key
// configured in the Commerce instance.
func VerifySignature(payload []byte, signatureB64, publicKeyPEM string) error {
	block, _ := pem.Decode([]byte(publicKeyPEM))
	if block == nil {
		return ErrInvalidPublicKey
	}

	parsed, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPublicKey, err)
	}
	publicKey, ok := parsed.(*rsa.PublicKey)
	if !ok {
		return fmt.Errorf("%w: not an RSA key", ErrInvalidPublicKey)
	}

	signature, err := base64.StdEncoding.DecodeString(signatureB64)
	if err != nil {
		return fmt.Errorf("%w: malformed base64 signature", ErrInvalidSignature)
	}

	digest := sha256.Sum256(payload)
	if err := rsa.VerifyPKCS1v15(publicKey, crypto.SHA256, digest[:], signature); err != nil {
		return ErrInvalidSignature
	}
	return nil
}
