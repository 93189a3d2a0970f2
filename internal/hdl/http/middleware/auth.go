package middleware

import (
	"context"
	"errors"
	"fmt"
	"github.com/KeivinIsmaili/cashcard/internal/auth"
	"github.com/KeivinIsmaili/cashcard/internal/hdl/http/utils"
	"github.com/KeivinIsmaili/cashcard/internal/hdl/validation"
	"github.com/KeivinIsmaili/cashcard/internal/model"
	"go.uber.org/zap"
	"net/http"
)

var ErrAuthHeaderIsMissing = errors.New("authorization header is missing")
var ErrAccessDenied = errors.New("access denied")

type principalKey struct{}

func WithPrincipal(ctx context.Context, p *model.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

func PrincipalFromContext(ctx context.Context) (*model.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(*model.Principal)
	return p, ok && p != nil
}

// BasicAuth resolves HTTP Basic credentials to a principal and stores it in
// the request context. Anything unresolvable is answered with 401.
func BasicAuth(au auth.Verifier, realm string) func(http.Handler) http.Handler {
	challenge := fmt.Sprintf("Basic realm=%q", realm)
	unauthorized := func(w http.ResponseWriter, err error) {
		w.Header().Set("WWW-Authenticate", challenge)
		utils.ErrResponse(w, http.StatusUnauthorized, err)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				username, password, ok := r.BasicAuth()
				if !ok {
					unauthorized(w, ErrAuthHeaderIsMissing)
					return
				}

				if err := validation.CredentialsReq(username, password); err != nil {
					unauthorized(w, err)
					return
				}

				p, err := au.Authenticate(username, password)
				if err != nil {
					zap.L().Debug("authentication failed", zap.String("username", username), zap.Error(err))
					unauthorized(w, auth.ErrInvalidCredentials)
					return
				}

				next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), p)))
			},
		)
	}
}

// RequireRole rejects authenticated principals lacking role with 403.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				p, ok := PrincipalFromContext(r.Context())
				if !ok {
					utils.ErrResponse(w, http.StatusUnauthorized, ErrAuthHeaderIsMissing)
					return
				}

				if !p.HasRole(role) {
					zap.L().Debug("access denied", zap.String("principal", p.Name), zap.String("role", role))
					utils.ErrResponse(w, http.StatusForbidden, ErrAccessDenied)
					return
				}

				next.ServeHTTP(w, r)
			},
		)
	}
}
