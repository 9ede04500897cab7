package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cajacentral/internal/model"
	"cajacentral/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ErrCredenciales covers unknown usernames, wrong passwords and disabled
// accounts alike so the response never reveals which one failed.
var ErrCredenciales = errors.New("credenciales inválidas")

// SessionStore keeps live sessions. A token is only honored while its session
// key exists; logout deletes the key and the token dies with it.
type SessionStore interface {
	Guardar(ctx context.Context, sid string, userID uint, ttl time.Duration) error
	Existe(ctx context.Context, sid string) (bool, error)
	Eliminar(ctx context.Context, sid string) error
}

type redisSessionStore struct{ rdb *redis.Client }

func NewRedisSessionStore(rdb *redis.Client) SessionStore { return &redisSessionStore{rdb: rdb} }

func sessionKey(sid string) string { return "sesion:" + sid }

func (s *redisSessionStore) Guardar(ctx context.Context, sid string, userID uint, ttl time.Duration) error {
	return s.rdb.Set(ctx, sessionKey(sid), userID, ttl).Err()
}

func (s *redisSessionStore) Existe(ctx context.Context, sid string) (bool, error) {
	n, err := s.rdb.Exists(ctx, sessionKey(sid)).Result()
	return n > 0, err
}

func (s *redisSessionStore) Eliminar(ctx context.Context, sid string) error {
	return s.rdb.Del(ctx, sessionKey(sid)).Err()
}

type AuthService struct {
	usuarios  repository.UsuarioRepository
	sesiones  SessionStore
	jwtSecret []byte
	duracion  time.Duration
}

func NewAuthService(usuarios repository.UsuarioRepository, sesiones SessionStore, jwtSecret string, duracion time.Duration) *AuthService {
	return &AuthService{usuarios: usuarios, sesiones: sesiones, jwtSecret: []byte(jwtSecret), duracion: duracion}
}

// Login verifies credentials, opens a session in the store and returns a
// signed token carrying the session id.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, int, *model.Usuario, error) {
	u, err := s.usuarios.FindByUsername(ctx, username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", 0, nil, ErrCredenciales
	}
	if err != nil {
		return "", 0, nil, err
	}
	if !u.Activo {
		return "", 0, nil, ErrCredenciales
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return "", 0, nil, ErrCredenciales
	}

	sid := uuid.NewString()
	if err := s.sesiones.Guardar(ctx, sid, u.ID, s.duracion); err != nil {
		return "", 0, nil, fmt.Errorf("guardando sesión: %w", err)
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":  u.ID,
		"sid":      sid,
		"username": u.Username,
		"rol":      u.Rol,
		"iat":      now.Unix(),
		"exp":      now.Add(s.duracion).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return "", 0, nil, fmt.Errorf("firmando token: %w", err)
	}
	return token, int(s.duracion.Seconds()), u, nil
}

func (s *AuthService) Logout(ctx context.Context, sid string) error {
	return s.sesiones.Eliminar(ctx, sid)
}

func (s *AuthService) Perfil(ctx context.Context, userID uint) (*model.Usuario, error) {
	u, err := s.usuarios.FindByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoEncontrado
	}
	return u, err
}
