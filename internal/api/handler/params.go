package handler

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sistema-cadastro/backend/internal/service"
	"sistema-cadastro/backend/pkg/response"
)

// MustGetIDParam lê um id numérico positivo do path.
// Em caso de falha já escreve 400; o chamador deve apenas retornar.
func MustGetIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "ID inválido.")
		return 0, false
	}
	return id, true
}

// bindOrReject faz o bind da requisição. Corpo cortado pelo limite de tamanho
// responde 413; qualquer outra falha responde 400 com badRequestMsg.
func bindOrReject(c *gin.Context, obj interface{}, badRequestMsg string) bool {
	if err := c.ShouldBind(obj); err != nil {
		if isBodyTooLarge(err) {
			response.RequestTooLarge(c)
		} else {
			response.BadRequest(c, badRequestMsg)
		}
		return false
	}
	return true
}

func isBodyTooLarge(err error) bool {
	var tooLarge *http.MaxBytesError
	return errors.As(err, &tooLarge)
}

// formAttachment abre o arquivo do campo informado.
// Campo ausente devolve (nil, nil, nil); o close deve ser chamado quando não-nil.
func formAttachment(c *gin.Context, field string) (*service.Attachment, func() error, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil, nil
		}
		return nil, nil, err
	}
	return openAttachment(fh)
}

func openAttachment(fh *multipart.FileHeader) (*service.Attachment, func() error, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, nil, err
	}
	return &service.Attachment{Name: fh.Filename, Content: f}, f.Close, nil
}
