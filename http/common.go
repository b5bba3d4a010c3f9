package http

import (
	"net/http"

	"github.com/ninenine-news/backend/httpjson"
	"github.com/ninenine-news/backend/subm"
	"github.com/ninenine-news/backend/user/auth"
)

// requireAuth extracts verified claims or writes a 401 and returns nil.
func requireAuth(w http.ResponseWriter, r *http.Request) *auth.Claims {
	claims := auth.ClaimsFromContext(r.Context())
	if claims == nil {
		httpjson.WriteErrorJson(w,
			"access token required",
			http.StatusUnauthorized,
			"token_required")
		return nil
	}
	return claims
}

// requireAdmin additionally demands the administrator role.
func requireAdmin(w http.ResponseWriter, r *http.Request) *auth.Claims {
	claims := requireAuth(w, r)
	if claims == nil {
		return nil
	}
	if !claims.IsAdmin {
		httpjson.WriteErrorJson(w,
			"admin access required",
			http.StatusForbidden,
			"admin_required")
		return nil
	}
	return claims
}

func callerOf(claims *auth.Claims) subm.Caller {
	return subm.Caller{ID: claims.UserID, Admin: claims.IsAdmin}
}
