package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/productividad-api/internal/application/auth"
	"github.com/jhoicas/productividad-api/internal/application/dto"
	"github.com/jhoicas/productividad-api/internal/domain"
	"github.com/jhoicas/productividad-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/productividad-api/pkg/jwt"
)

const testSecret = "test-secret"

type memUsers struct {
	byName map[string]*entity.User
}

func (m *memUsers) Create(_ context.Context, u *entity.User) error {
	if _, ok := m.byName[u.Username]; ok {
		return domain.ErrDuplicate
	}
	m.byName[u.Username] = u
	return nil
}

func (m *memUsers) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	u, ok := m.byName[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func newAuth() (*auth.AuthUseCase, *memUsers) {
	repo := &memUsers{byName: map[string]*entity.User{}}
	return auth.NewAuthUseCase(repo, auth.JWTConfig{Secret: testSecret, ExpMinutes: 30, Issuer: "test"}), repo
}

func TestLogin_EmiteTokenConRol(t *testing.T) {
	uc, _ := newAuth()
	_, err := uc.CreateUser(context.Background(), "tecnico1", "password-123", entity.RoleMantenimiento)
	require.NoError(t, err)

	resp, err := uc.Login(context.Background(), dto.LoginRequest{Username: "tecnico1", Password: "password-123"})
	require.NoError(t, err)

	claims, err := pkgjwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleMantenimiento, claims.Role)
	assert.Equal(t, "tecnico1", claims.Username)
	assert.Equal(t, resp.User.ID, claims.UserID)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc, _ := newAuth()
	_, err := uc.CreateUser(context.Background(), "admin", "password-123", entity.RoleAdmin)
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "otra-clave"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Username: "nadie", Password: "password-123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "usuario inexistente no se distingue")
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	uc, repo := newAuth()
	_, err := uc.CreateUser(context.Background(), "viejo", "password-123", entity.RoleAdmin)
	require.NoError(t, err)
	repo.byName["viejo"].Active = false

	_, err = uc.Login(context.Background(), dto.LoginRequest{Username: "viejo", Password: "password-123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCreateUser_Validaciones(t *testing.T) {
	uc, _ := newAuth()

	_, err := uc.CreateUser(context.Background(), "ab", "password-123", entity.RoleAdmin)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.CreateUser(context.Background(), "operador", "password-123", "vendedor")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.CreateUser(context.Background(), "operador", "password-123", entity.RoleAdmin)
	require.NoError(t, err)
	_, err = uc.CreateUser(context.Background(), "operador", "password-456", entity.RoleAdmin)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}
