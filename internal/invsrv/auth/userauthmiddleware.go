package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/switchscope/switchscope/internal/common/httpx"
	"github.com/switchscope/switchscope/internal/invsrv/config"
	"github.com/switchscope/switchscope/internal/invsrv/invcommon"
)

// UserAuthMiddleware handles authentication for both normal and test modes
func UserAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			log.Ctx(ctx).Warn().Msg("missing or invalid authorization header")
			httpx.ErrUnAuthorized("missing or invalid authorization header").Send(w)
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		token = strings.TrimSpace(token)

		// First try normal token validation
		ctx, err := ValidateToken(ctx, token)
		if err == nil {
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		// If token validation failed and we're in test mode, try the fixed
		// test user token
		if config.IsTest() {
			ctx, terr := handleTestUserMode(r.Context(), token)
			if terr != nil {
				log.Ctx(ctx).Warn().Err(terr).Msg("authentication failed in test mode")
				httpx.ErrUnAuthorized(terr.Error()).Send(w)
				return
			}
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		log.Ctx(ctx).Warn().Err(err).Msg("token validation failed")
		httpx.ErrUnAuthorized("invalid authorization. login required").Send(w)
	})
}

// handleTestUserMode processes authentication in test mode
func handleTestUserMode(ctx context.Context, token string) (context.Context, error) {
	if token != config.Config().Auth.TestUserToken {
		return ctx, fmt.Errorf("invalid token in test mode")
	}
	ctx = invcommon.WithUserContext(ctx, &invcommon.UserContext{
		UserID: "test-user",
		Role:   invcommon.RoleAdmin,
	})
	return ctx, nil
}

// RequireAdminMiddleware rejects requests whose resolved user cannot write.
// It must run after UserAuthMiddleware.
func RequireAdminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !invcommon.IsAdmin(r.Context()) {
			httpx.SendError(w, ErrAdminRequired)
			return
		}
		next.ServeHTTP(w, r)
	})
}
