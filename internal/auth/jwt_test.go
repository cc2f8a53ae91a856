package auth

import (
	"crypto/ed25519"
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer     = "test-relay"
	testTimeToLive = 3 * time.Minute
	testSubject    = "5f0b1d4e-7d0c-4f6a-9d55-2f1fbb0e4a77"
)

func TestJwtIssuerSign(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err, "failed to generate key pair")

	issuer := NewJwtIssuer(testIssuer, jwt.GetSigningMethod(AlgorithmEd25519), testTimeToLive, priv)
	now := time.Now().UTC().Truncate(time.Second)

	signed, err := issuer.Sign(testSubject, now)
	require.NoError(t, err, "no error must be raised")
	require.Equal(t, now.Add(testTimeToLive).Unix(), signed.ExpiresAt)

	var claims JwtClaims
	_, err = jwt.ParseWithClaims(signed.Signed, &claims, func(*jwt.Token) (any, error) {
		return pub, nil
	})
	require.NoError(t, err, "token must be verified with public key")
	require.Equal(t, testIssuer, claims.Issuer)
	require.Equal(t, testSubject, claims.Subject)
	require.NotEmpty(t, claims.ID, "token id must be generated")
	require.Equal(t, now.Unix(), claims.IssuedAt.Unix())
}

func TestNewEd25519JwtIssuerFromFile(t *testing.T) {
	_, priv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err, "failed to generate key pair")

	der, err := x509.MarshalPKCS8PrivateKey(priv)
	require.NoError(t, err, "failed to marshal private key")

	keyFile := filepath.Join(t.TempDir(), "collector.pem")
	err = os.WriteFile(keyFile, pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der}), 0o600)
	require.NoError(t, err, "failed to write key file")

	t.Log("issuer built from valid key file")
	{
		issuer, err := NewEd25519JwtIssuerFromFile(testIssuer, testTimeToLive, keyFile)
		require.NoError(t, err, "no error must be raised")

		_, err = issuer.Sign(testSubject, time.Now())
		require.NoError(t, err, "token must be signed")
	}

	t.Log("missing key file")
	{
		_, err := NewEd25519JwtIssuerFromFile(testIssuer, testTimeToLive, filepath.Join(t.TempDir(), "missing.pem"))
		require.Error(t, err, "missing file must be reported")
	}

	t.Log("key file with garbage")
	{
		garbage := filepath.Join(t.TempDir(), "garbage.pem")
		require.NoError(t, os.WriteFile(garbage, []byte("not a key"), 0o600))

		_, err := NewEd25519JwtIssuerFromFile(testIssuer, testTimeToLive, garbage)
		require.Error(t, err, "garbage must be rejected")
	}
}
