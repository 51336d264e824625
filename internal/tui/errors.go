package tui

import (
	"errors"
	"strings"

	"github.com/inohub/prospect-console/internal/adapter"
	"github.com/inohub/prospect-console/internal/service"
)

func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, adapter.ErrSessionExpired):
		return "Sessão expirada, faça login novamente"
	case errors.Is(err, adapter.ErrUnauthorized):
		return "Usuário ou senha inválidos"
	case errors.Is(err, adapter.ErrNotFound):
		return "Registro não encontrado"
	case errors.Is(err, adapter.ErrConflict):
		return "Nome de usuário já está em uso"
	case errors.Is(err, adapter.ErrServerFailure):
		return "Falha no servidor, tente novamente"
	case errors.Is(err, adapter.ErrWrongFormat):
		return "O arquivo retornado não é um CSV"
	case errors.Is(err, adapter.ErrEmptyFile):
		return "O arquivo retornado está vazio"
	case errors.Is(err, service.ErrJobNotReady):
		return "A prospecção ainda não está pronta para download"
	case errors.Is(err, service.ErrWeakPassword):
		return "Senha fraca: mínimo 8 caracteres, 1 maiúscula e 1 caractere especial"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Sem rede ou servidor indisponível"
	}

	return err.Error()
}
