package middleware

import (
	"context"
	"net/http"
	"strings"

	goProof "github.com/MrEthical07/goProof"
)

type decisionContextKey struct{}

// DecisionFromContext returns the authorization decision injected by a
// guard, or false when the request did not pass through one.
func DecisionFromContext(ctx context.Context) (*goProof.Decision, bool) {
	decision, ok := ctx.Value(decisionContextKey{}).(*goProof.Decision)
	return decision, ok
}

// Guard returns middleware that rejects requests whose bearer token does
// not authorize perm.
func Guard(engine *goProof.Engine, perm goProof.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if engine == nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			token, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := goProof.WithClientIP(r.Context(), remoteIP(r))
			decision, err := engine.Authorize(ctx, token, perm)
			if err != nil {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}

			ctx = context.WithValue(ctx, decisionContextKey{}, decision)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireViewApps gates the wrapped handler on [goProof.PermViewApps].
func RequireViewApps(engine *goProof.Engine) func(http.Handler) http.Handler {
	return Guard(engine, goProof.PermViewApps)
}

// RequireDeleteApp gates the wrapped handler on [goProof.PermDeleteApp].
func RequireDeleteApp(engine *goProof.Engine) func(http.Handler) http.Handler {
	return Guard(engine, goProof.PermDeleteApp)
}

func bearerToken(value string) (string, bool) {
	const bearer = "Bearer "
	if !strings.HasPrefix(value, bearer) {
		return "", false
	}

	token := value[len(bearer):]
	if token == "" {
		return "", false
	}

	return token, true
}

func remoteIP(r *http.Request) string {
	host := r.RemoteAddr
	if i := strings.LastIndexByte(host, ':'); i >= 0 {
		host = host[:i]
	}
	return host
}
