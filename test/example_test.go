package test

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	goProof "github.com/MrEthical07/goProof"
	"github.com/MrEthical07/goProof/name"
	"github.com/MrEthical07/goProof/proof"
)

// ExampleNew demonstrates engine construction with production-style dependencies.
func ExampleNew() {
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:6379"})

	cfg := goProof.Config{
		Keys: goProof.KeysConfig{
			AzureSecret: []byte("azure-hs256-secret"),
			OktaSecret:  []byte("okta-hs256-secret"),
		},
		Revocation: goProof.RevocationConfig{
			Enabled:     true,
			RedisPrefix: "apr",
		},
	}

	engine, _ := goProof.New().
		WithConfig(cfg).
		WithRedis(rdb).
		Build()
	_ = engine
}

// ExampleEngine_TryListApps shows a typical authorization entrypoint call
// and structured error handling.
func ExampleEngine_TryListApps() {
	var engine *goProof.Engine
	_, err := engine.TryListApps(context.Background(), "eyJhbGciOi...")
	if errors.Is(err, goProof.ErrTokenInvalid) {
		_ = err
	}
}

// ExampleWith shows branding a value and checking a proof against it.
func ExampleWith() {
	ok := name.With("some-token", func(tok name.Named[string]) bool {
		bound := proof.Bind(tok.Name(), proof.T())
		_, err := bound.For(tok.Name())
		return err == nil
	})
	fmt.Println(ok)
	// Output: true
}
