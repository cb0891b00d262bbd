// Package identity transporta el usuario autenticado en el context.Context.
// La autenticación vive fuera del libro; aquí solo se consume para sellar la auditoría.
package identity

import (
	"context"

	"github.com/jhoicas/donaciones-api/internal/domain"
	"github.com/jhoicas/donaciones-api/internal/domain/entity"
)

type ctxKey struct{}

// WithUser devuelve un contexto que transporta al usuario.
func WithUser(ctx context.Context, u entity.User) context.Context {
	return context.WithValue(ctx, ctxKey{}, u)
}

// CurrentUser devuelve el usuario del contexto o ErrUnauthorized.
func CurrentUser(ctx context.Context) (entity.User, error) {
	u, ok := ctx.Value(ctxKey{}).(entity.User)
	if !ok || u.ID == "" {
		return entity.User{}, domain.ErrUnauthorized
	}
	return u, nil
}
