package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	goProof "github.com/MrEthical07/goProof"
)

const (
	azureSecret = "loadtest-azure-secret"
	oktaSecret  = "loadtest-okta-secret"
)

func main() {
	var (
		tokens      = flag.Int("tokens", 10000, "number of tokens to mint")
		concurrency = flag.Int("concurrency", 256, "number of concurrent workers")
		ops         = flag.Int("ops", 200000, "operations per phase (list + delete)")
		redisAddr   = flag.String("redis-addr", "", "redis address; if empty, REDIS_ADDR env or miniredis is used")
		prefix      = flag.String("prefix", "apr", "revocation key prefix")
	)
	flag.Parse()

	if *tokens <= 0 || *concurrency <= 0 || *ops <= 0 {
		fmt.Fprintln(os.Stderr, "tokens, concurrency, and ops must be > 0")
		os.Exit(2)
	}

	ctx := context.Background()

	addr := *redisAddr
	if addr == "" {
		addr = os.Getenv("REDIS_ADDR")
	}

	var (
		cleanup func()
		client  *redis.Client
	)
	if addr == "" {
		mr, err := miniredis.Run()
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to start miniredis: %v\n", err)
			os.Exit(1)
		}
		addr = mr.Addr()
		client = redis.NewClient(&redis.Options{Addr: addr})
		cleanup = func() {
			_ = client.Close()
			mr.Close()
		}
		fmt.Printf("using miniredis at %s\n", addr)
	} else {
		client = redis.NewClient(&redis.Options{Addr: addr})
		cleanup = func() { _ = client.Close() }
		fmt.Printf("using redis at %s\n", addr)
	}
	defer cleanup()

	cfg := goProof.Config{
		Keys: goProof.KeysConfig{
			AzureSecret: []byte(azureSecret),
			OktaSecret:  []byte(oktaSecret),
		},
		Revocation: goProof.RevocationConfig{
			Enabled:     true,
			RedisPrefix: *prefix,
		},
		Metrics: goProof.MetricsConfig{
			Enabled:                 true,
			EnableLatencyHistograms: true,
		},
	}

	engine, err := goProof.New().WithConfig(cfg).WithRedis(client).Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "engine build failed: %v\n", err)
		os.Exit(1)
	}
	defer engine.Close()

	fmt.Printf("minting %d tokens...\n", *tokens)
	startSeed := time.Now()
	plain, admin, err := mintTokens(*tokens)
	if err != nil {
		fmt.Fprintf(os.Stderr, "minting failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("minted in %s\n", time.Since(startSeed).Round(time.Millisecond))

	listStats := runPhase(ctx, *ops, *concurrency, plain, func(ctx context.Context, token string) error {
		_, err := engine.TryListApps(ctx, token)
		return err
	})
	deleteStats := runPhase(ctx, *ops, *concurrency, admin, func(ctx context.Context, token string) error {
		_, err := engine.TryDeleteApp(ctx, token)
		return err
	})

	fmt.Println("---- results ----")
	printStats("list", listStats)
	printStats("delete", deleteStats)

	snap := engine.MetricsSnapshot()
	fmt.Printf("verify_success=%d verify_failure=%d role_denied=%d\n",
		snap.Counters[goProof.MetricVerifySuccess],
		snap.Counters[goProof.MetricVerifyFailure],
		snap.Counters[goProof.MetricRoleDenied],
	)
}

// mintTokens signs half the tokens per issuer; the admin set carries the
// role in whichever claim shape the issuer uses.
func mintTokens(n int) (plain, admin []string, err error) {
	plain = make([]string, 0, n)
	admin = make([]string, 0, n)

	for i := 0; i < n; i++ {
		var token string
		if i%2 == 0 {
			token, err = sign(azureSecret, jwt.MapClaims{
				"iss": "azure",
				"jti": uuid.NewString(),
			})
			if err != nil {
				return nil, nil, err
			}
			plain = append(plain, token)

			token, err = sign(azureSecret, jwt.MapClaims{
				"iss":   "azure",
				"jti":   uuid.NewString(),
				"roles": []string{"admin"},
			})
		} else {
			token, err = sign(oktaSecret, jwt.MapClaims{
				"iss": "okta",
				"jti": uuid.NewString(),
			})
			if err != nil {
				return nil, nil, err
			}
			plain = append(plain, token)

			token, err = sign(oktaSecret, jwt.MapClaims{
				"iss":   "okta",
				"jti":   uuid.NewString(),
				"admin": true,
			})
		}
		if err != nil {
			return nil, nil, err
		}
		admin = append(admin, token)
	}
	return plain, admin, nil
}

func sign(secret string, claims jwt.MapClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func runPhase(ctx context.Context, ops, concurrency int, tokens []string, op func(context.Context, string) error) phaseStats {
	var (
		wg        sync.WaitGroup
		cursor    int64
		failures  int64
		latencies = make([]time.Duration, 0, ops)
		mu        sync.Mutex
	)

	start := time.Now()
	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			r := rand.New(rand.NewSource(time.Now().UnixNano() + int64(worker)*7919))
			for {
				i := int(atomic.AddInt64(&cursor, 1)) - 1
				if i >= ops {
					return
				}
				token := tokens[r.Intn(len(tokens))]
				t0 := time.Now()
				err := op(ctx, token)
				d := time.Since(t0)
				if err != nil {
					atomic.AddInt64(&failures, 1)
				}
				mu.Lock()
				latencies = append(latencies, d)
				mu.Unlock()
			}
		}(w)
	}
	wg.Wait()
	total := time.Since(start)
	return computeStats(total, latencies, failures)
}

type phaseStats struct {
	total    time.Duration
	ops      int
	failures int64
	p50      time.Duration
	p95      time.Duration
	p99      time.Duration
	opsPerS  float64
}

func computeStats(total time.Duration, samples []time.Duration, failures int64) phaseStats {
	if len(samples) == 0 {
		return phaseStats{total: total}
	}
	sort.Slice(samples, func(i, j int) bool { return samples[i] < samples[j] })
	return phaseStats{
		total:    total,
		ops:      len(samples),
		failures: failures,
		p50:      percentile(samples, 50),
		p95:      percentile(samples, 95),
		p99:      percentile(samples, 99),
		opsPerS:  float64(len(samples)) / total.Seconds(),
	}
}

func percentile(samples []time.Duration, p int) time.Duration {
	if len(samples) == 0 {
		return 0
	}
	if p <= 0 {
		return samples[0]
	}
	if p >= 100 {
		return samples[len(samples)-1]
	}
	idx := (len(samples) - 1) * p / 100
	return samples[idx]
}

func printStats(name string, s phaseStats) {
	fmt.Printf("%s: ops=%d failures=%d total=%s ops/sec=%.0f p50=%s p95=%s p99=%s\n",
		name,
		s.ops,
		s.failures,
		s.total.Round(time.Millisecond),
		s.opsPerS,
		s.p50.Round(time.Microsecond),
		s.p95.Round(time.Microsecond),
		s.p99.Round(time.Microsecond),
	)
}
