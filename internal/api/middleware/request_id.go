package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDKey    = "request_id"
	requestIDHeader = "X-Request-ID"
	// limite para ids vindos de fora, evita lixo no log
	requestIDMaxLen = 64
)

// RequestID reaproveita o X-Request-ID recebido ou gera um UUID.
// O valor fica no contexto do gin e volta no cabeçalho da resposta.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(requestIDHeader)
		if rid == "" || len(rid) > requestIDMaxLen {
			rid = uuid.NewString()
		}

		c.Set(requestIDKey, rid)
		c.Header(requestIDHeader, rid)

		c.Next()
	}
}

// GetRequestID id da requisição corrente ("" fora do middleware)
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
