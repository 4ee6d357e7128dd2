/*
Copyright 2024 MoneyAPI Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/moneyapi/moneyapi"
	"github.com/moneyapi/moneyapi/config"
)

const (
	KeyHeader = "Authorization"
)

// AuthMiddleware handles authentication for API routes. It accepts either the
// configured master secret or a stored API key, sent in the Authorization
// header.
type AuthMiddleware struct {
	service *moneyapi.MoneyAPI
}

// NewAuthMiddleware creates a new instance of AuthMiddleware.
//
// Parameters:
// - service: The MoneyAPI service used to look up stored API keys.
//
// Returns:
// - *AuthMiddleware: A new instance of the authentication middleware.
func NewAuthMiddleware(service *moneyapi.MoneyAPI) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// Authenticate returns a middleware function that guards every route except
// the root liveness path. The token must equal the configured secret key or
// match a stored API key; anything else is rejected before any entity storage
// access happens.
//
// Responses:
// - 401 Unauthorized: When the token is missing or matches nothing.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Skip auth for root path
		if c.Request.URL.Path == "/" {
			c.Next()
			return
		}

		// Check if secure mode is enabled
		conf, err := config.Fetch()
		if err == nil && !conf.Server.Secure {
			c.Next()
			return
		}

		key := extractKey(c)
		if key == "" {
			c.JSON(401, gin.H{"error": "Authentication required. Use the Authorization header"})
			c.Abort()
			return
		}

		// First check if it's the master key
		if err == nil && conf.Server.SecretKey == key {
			c.Set("isMasterKey", true)
			c.Next()
			return
		}

		// If not the master key, try the stored API keys
		apiKey, err := m.service.GetAPIKeyByKey(c.Request.Context(), key)
		if err != nil {
			c.JSON(401, gin.H{"error": "Invalid API key"})
			c.Abort()
			return
		}

		// Update last-used timestamp in background
		go func() {
			_ = m.service.TouchAPIKey(context.Background(), apiKey.ID)
		}()

		c.Set("apiKey", apiKey)
		c.Next()
	}
}

// extractKey retrieves the authentication token from the Authorization
// header. A conventional "Bearer " prefix is tolerated and stripped.
//
// Parameters:
// - c: The Gin context containing the request headers.
//
// Returns:
// - string: The authentication token, or empty string if not found.
func extractKey(c *gin.Context) string {
	return strings.TrimPrefix(c.GetHeader(KeyHeader), "Bearer ")
}
