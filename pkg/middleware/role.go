package middleware

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/delivery-dashboard-api/pkg/apiErrors"
)

// Roles restringe rotas pelo papel do token. Os papéis administrativos vêm da
// configuração (AUTH_ADMIN_ROLES).
type Roles struct {
	admin []string
}

func NewRoles(adminRoles []string) Roles {
	return Roles{admin: adminRoles}
}

// RoleMiddleware cria um middleware que restringe o acesso com base nos roles.
// allowedRoles vazio aceita qualquer usuário autenticado.
func RoleMiddleware(allowedRoles []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userClaims, ok := ClaimsFromContext(r.Context())
			if !ok {
				logrus.Warning("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			if len(allowedRoles) == 0 {
				next.ServeHTTP(w, r)
				return
			}

			for _, role := range allowedRoles {
				if userClaims.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			logrus.Warningf("Acesso negado para usuário ID=%s, Role=%s", userClaims.UserID(), userClaims.Role)
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
		})
	}
}

// AdminOnly permite acesso apenas aos papéis administrativos
func (r Roles) AdminOnly() func(http.Handler) http.Handler {
	return RoleMiddleware(r.admin)
}

// Authenticated permite acesso a qualquer usuário com token válido
func (r Roles) Authenticated() func(http.Handler) http.Handler {
	return RoleMiddleware(nil)
}
