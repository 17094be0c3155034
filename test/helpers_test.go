//go:build integration
// +build integration

package test

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	goProof "github.com/MrEthical07/goProof"
)

const (
	azureSecret = "azure-integration-secret"
	oktaSecret  = "okta-integration-secret"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis run failed: %v", err)
	}
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return mr, rdb
}

func newRevocationEngine(t *testing.T, rdb *redis.Client, failClosed bool) *goProof.Engine {
	t.Helper()

	cfg := goProof.Config{
		Keys: goProof.KeysConfig{
			AzureSecret: []byte(azureSecret),
			OktaSecret:  []byte(oktaSecret),
		},
		Revocation: goProof.RevocationConfig{
			Enabled:     true,
			RedisPrefix: "apr",
			FailClosed:  failClosed,
		},
		Metrics: goProof.MetricsConfig{Enabled: true},
	}

	engine, err := goProof.New().WithConfig(cfg).WithRedis(rdb).Build()
	if err != nil {
		t.Fatalf("build engine failed: %v", err)
	}
	t.Cleanup(engine.Close)
	return engine
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token failed: %v", err)
	}
	return signed
}

func azureAdminToken(t *testing.T) (token, jti string) {
	t.Helper()

	jti = uuid.NewString()
	return signToken(t, azureSecret, jwt.MapClaims{
		"iss":   "azure",
		"jti":   jti,
		"roles": []string{"admin"},
	}), jti
}

func oktaToken(t *testing.T) (token, jti string) {
	t.Helper()

	jti = uuid.NewString()
	return signToken(t, oktaSecret, jwt.MapClaims{
		"iss": "okta",
		"jti": jti,
	}), jti
}
