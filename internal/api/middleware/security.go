package middleware

import "github.com/gin-gonic/gin"

// SecurityHeaders cabeçalhos de segurança comuns.
// A API só devolve JSON, planilhas, calendários e arquivos estáticos, então o CSP é fechado.
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Header("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
		c.Header("Permissions-Policy", "camera=(), microphone=(), geolocation=()")

		c.Next()
	}
}
