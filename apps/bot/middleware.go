package bot

import (
	"crypto/subtle"

	"github.com/getevo/evo/v2"
	"github.com/getevo/evo/v2/lib/settings"
	"github.com/marketchat/shopbot-backend/lib/response"
)

// AdminAuthMiddleware guards the transcript endpoints with a shared token
func AdminAuthMiddleware(request *evo.Request) error {
	token := settings.Get("ADMIN.ACCESS_TOKEN").String()
	if token == "" {
		// No token configured means the admin surface is closed
		return response.ErrUnauthorized
	}

	header := request.Header("Authorization")
	if subtle.ConstantTimeCompare([]byte(header), []byte(token)) != 1 {
		return response.ErrUnauthorized
	}

	return request.Next()
}
