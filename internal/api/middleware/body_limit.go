package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sistema-cadastro/backend/pkg/response"
)

const bodyTooLargeMsg = response.BodyTooLargeMessage

// BodyLimit limita o corpo das requisições a maxBytes.
// Content-Length declarado acima do limite é recusado antes de ler;
// corpos sem tamanho declarado são cortados pelo MaxBytesReader, e o
// handler que esbarrar no limite ao fazer bind responde 413 (ver bindOrReject).
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			response.RequestTooLarge(c)
			c.Abort()
			return
		}
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}

		c.Next()
	}
}
