package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"cajacentral/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUsuarioRepo struct {
	usuarios map[uint]*model.Usuario
	nextID   uint
}

func newFakeUsuarioRepo() *fakeUsuarioRepo {
	return &fakeUsuarioRepo{usuarios: map[uint]*model.Usuario{}}
}

func (r *fakeUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	r.nextID++
	u.ID = r.nextID
	cp := *u
	r.usuarios[u.ID] = &cp
	return nil
}

func (r *fakeUsuarioRepo) FindByUsername(_ context.Context, username string) (*model.Usuario, error) {
	for _, u := range r.usuarios {
		if strings.EqualFold(u.Username, username) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUsuarioRepo) FindByID(_ context.Context, id uint) (*model.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

type fakeSessionStore struct{ sesiones map[string]uint }

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sesiones: map[string]uint{}}
}

func (s *fakeSessionStore) Guardar(_ context.Context, sid string, userID uint, _ time.Duration) error {
	s.sesiones[sid] = userID
	return nil
}

func (s *fakeSessionStore) Existe(_ context.Context, sid string) (bool, error) {
	_, ok := s.sesiones[sid]
	return ok, nil
}

func (s *fakeSessionStore) Eliminar(_ context.Context, sid string) error {
	delete(s.sesiones, sid)
	return nil
}

const secretPrueba = "secreto-de-prueba"

func nuevoEntornoAuth(t *testing.T) (*AuthService, *fakeUsuarioRepo, *fakeSessionStore) {
	t.Helper()
	usuarios := newFakeUsuarioRepo()
	sesiones := newFakeSessionStore()
	svc := NewAuthService(usuarios, sesiones, secretPrueba, time.Hour)

	hash, err := bcrypt.GenerateFromPassword([]byte("cambiame"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, usuarios.Create(context.Background(), &model.Usuario{
		Username:     "admin",
		Nombre:       "Administrador",
		PasswordHash: string(hash),
		Rol:          "admin",
		Activo:       true,
	}))
	return svc, usuarios, sesiones
}

func TestLoginEmiteTokenYAbreSesion(t *testing.T) {
	svc, _, sesiones := nuevoEntornoAuth(t)

	token, expiresIn, u, err := svc.Login(context.Background(), "admin", "cambiame")
	require.NoError(t, err)
	assert.Equal(t, int(time.Hour.Seconds()), expiresIn)
	assert.Equal(t, "admin", u.Username)

	parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
		return []byte(secretPrueba), nil
	})
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, "admin", claims["username"])
	assert.Equal(t, "admin", claims["rol"])
	assert.EqualValues(t, u.ID, claims["user_id"])

	// El sid firmado en el token es la sesión que quedó viva en el store.
	sid, _ := claims["sid"].(string)
	require.NotEmpty(t, sid)
	viva, err := sesiones.Existe(context.Background(), sid)
	require.NoError(t, err)
	assert.True(t, viva)
}

func TestLoginCredencialesInvalidas(t *testing.T) {
	svc, usuarios, sesiones := nuevoEntornoAuth(t)

	hash, _ := bcrypt.GenerateFromPassword([]byte("otra"), bcrypt.MinCost)
	require.NoError(t, usuarios.Create(context.Background(), &model.Usuario{
		Username:     "baja",
		Nombre:       "Usuario dado de baja",
		PasswordHash: string(hash),
		Rol:          "operador",
		Activo:       false,
	}))

	casos := []struct{ nombre, username, password string }{
		{"usuario desconocido", "nadie", "cambiame"},
		{"contraseña incorrecta", "admin", "adivinada"},
		{"cuenta desactivada", "baja", "otra"},
	}
	for _, tc := range casos {
		t.Run(tc.nombre, func(t *testing.T) {
			_, _, _, err := svc.Login(context.Background(), tc.username, tc.password)
			assert.ErrorIs(t, err, ErrCredenciales)
		})
	}
	assert.Empty(t, sesiones.sesiones, "un login fallido nunca abre sesión")
}

func TestLogoutCierraLaSesion(t *testing.T) {
	svc, _, sesiones := nuevoEntornoAuth(t)

	token, _, _, err := svc.Login(context.Background(), "admin", "cambiame")
	require.NoError(t, err)

	parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
		return []byte(secretPrueba), nil
	})
	require.NoError(t, err)
	sid := parsed.Claims.(jwt.MapClaims)["sid"].(string)

	require.NoError(t, svc.Logout(context.Background(), sid))
	viva, err := sesiones.Existe(context.Background(), sid)
	require.NoError(t, err)
	assert.False(t, viva, "el token muere junto con su sesión")
}

func TestPerfil(t *testing.T) {
	svc, usuarios, _ := nuevoEntornoAuth(t)

	var id uint
	for _, u := range usuarios.usuarios {
		id = u.ID
	}
	u, err := svc.Perfil(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "admin", u.Username)

	_, err = svc.Perfil(context.Background(), 999)
	assert.ErrorIs(t, err, ErrNoEncontrado)
}
