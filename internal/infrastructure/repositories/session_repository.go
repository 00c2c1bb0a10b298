package repositories

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/you/notehub/domain"
)

const (
	sessionPrefix   = "session:"
	userIndexPrefix = "user_session:"

	// refreshTokenBytes is the entropy of each opaque token value.
	refreshTokenBytes = 32

	// expiredRetention keeps a session record readable for a while past its
	// refresh expiry, so a refresh attempt with a stale session can be told
	// apart from one with an unknown session.
	expiredRetention = time.Hour
)

// replaceScript installs a fresh session for a user, deleting whatever
// session the user index currently points at. Runs atomically, closing the
// race between concurrent logins for the same user.
var replaceScript = redis.NewScript(`
local old = redis.call("GET", KEYS[1])
if old then
	redis.call("DEL", ARGV[4] .. old)
end
redis.call("SET", KEYS[1], ARGV[1], "PX", ARGV[3])
redis.call("SET", KEYS[2], ARGV[2], "PX", ARGV[3])
return 1
`)

// rotateScript swaps a session for its successor only if the stored refresh
// token matches the presented one. The delete and the create are a single
// atomic step, so a replayed old token can never race the rotation.
var rotateScript = redis.NewScript(`
local data = redis.call("GET", KEYS[1])
if not data then
	return 0
end
local sess = cjson.decode(data)
if sess.refreshToken ~= ARGV[1] then
	return 0
end
redis.call("DEL", KEYS[1])
redis.call("SET", KEYS[2], ARGV[2], "PX", ARGV[3])
redis.call("SET", KEYS[3], ARGV[4], "PX", ARGV[3])
return 1
`)

// SessionRepositoryImpl implements domain.SessionRepository using Redis
type SessionRepositoryImpl struct {
	client     *redis.Client
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(client *redis.Client, accessTTL, refreshTTL time.Duration) domain.SessionRepository {
	return &SessionRepositoryImpl{
		client:     client,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

func sessionKey(id string) string { return sessionPrefix + id }

func userIndexKey(userID uint) string {
	return userIndexPrefix + strconv.FormatUint(uint64(userID), 10)
}

func randomToken() (string, error) {
	buf := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

func (r *SessionRepositoryImpl) newSession(userID uint) (*domain.Session, error) {
	accessToken, err := randomToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	refreshToken, err := randomToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	now := time.Now()
	return &domain.Session{
		ID:               uuid.NewString(),
		UserID:           userID,
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		AccessExpiresAt:  now.Add(r.accessTTL),
		RefreshExpiresAt: now.Add(r.refreshTTL),
		CreatedAt:        now,
	}, nil
}

func (r *SessionRepositoryImpl) storageTTL() time.Duration {
	return r.refreshTTL + expiredRetention
}

// Create implements domain.SessionRepository
func (r *SessionRepositoryImpl) Create(ctx context.Context, userID uint) (*domain.Session, error) {
	session, err := r.newSession(userID)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(session)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal session: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, sessionKey(session.ID), data, r.storageTTL())
	pipe.Set(ctx, userIndexKey(userID), session.ID, r.storageTTL())
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, err
	}
	return session, nil
}

// FindByID implements domain.SessionRepository
func (r *SessionRepositoryImpl) FindByID(ctx context.Context, sessionID string) (*domain.Session, error) {
	data, err := r.client.Get(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}

	var session domain.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &session, nil
}

// FindByIDAndRefreshToken implements domain.SessionRepository. A token
// mismatch is indistinguishable from a missing session.
func (r *SessionRepositoryImpl) FindByIDAndRefreshToken(ctx context.Context, sessionID, refreshToken string) (*domain.Session, error) {
	session, err := r.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if subtle.ConstantTimeCompare([]byte(session.RefreshToken), []byte(refreshToken)) != 1 {
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}

// ReplaceForUser implements domain.SessionRepository. Any prior session for
// the user is deleted in the same atomic step that creates the new one.
func (r *SessionRepositoryImpl) ReplaceForUser(ctx context.Context, userID uint) (*domain.Session, error) {
	session, err := r.newSession(userID)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(session)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal session: %w", err)
	}

	keys := []string{userIndexKey(userID), sessionKey(session.ID)}
	argv := []any{session.ID, string(data), r.storageTTL().Milliseconds(), sessionPrefix}
	if err := replaceScript.Run(ctx, r.client, keys, argv...).Err(); err != nil {
		return nil, err
	}
	return session, nil
}

// Rotate implements domain.SessionRepository. The old session is invalidated
// and the new one created as one atomic operation, conditional on the
// presented refresh token still matching the stored one.
func (r *SessionRepositoryImpl) Rotate(ctx context.Context, sessionID, refreshToken string, userID uint) (*domain.Session, error) {
	session, err := r.newSession(userID)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(session)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal session: %w", err)
	}

	keys := []string{sessionKey(sessionID), sessionKey(session.ID), userIndexKey(userID)}
	argv := []any{refreshToken, string(data), r.storageTTL().Milliseconds(), session.ID}
	ok, err := rotateScript.Run(ctx, r.client, keys, argv...).Int()
	if err != nil {
		return nil, err
	}
	if ok != 1 {
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}

// DeleteByID implements domain.SessionRepository. Deleting a session that no
// longer exists is not an error.
func (r *SessionRepositoryImpl) DeleteByID(ctx context.Context, sessionID string) error {
	session, err := r.FindByID(ctx, sessionID)
	if err != nil {
		if err == domain.ErrSessionNotFound {
			return nil
		}
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, sessionKey(sessionID))
	pipe.Del(ctx, userIndexKey(session.UserID))
	_, err = pipe.Exec(ctx)
	return err
}

// DeleteByUserID implements domain.SessionRepository
func (r *SessionRepositoryImpl) DeleteByUserID(ctx context.Context, userID uint) error {
	sessionID, err := r.client.Get(ctx, userIndexKey(userID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil
		}
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, sessionKey(sessionID))
	pipe.Del(ctx, userIndexKey(userID))
	_, err = pipe.Exec(ctx)
	return err
}

// DeleteByIDAndRefreshToken implements domain.SessionRepository
func (r *SessionRepositoryImpl) DeleteByIDAndRefreshToken(ctx context.Context, sessionID, refreshToken string) error {
	session, err := r.FindByIDAndRefreshToken(ctx, sessionID, refreshToken)
	if err != nil {
		if err == domain.ErrSessionNotFound {
			return nil
		}
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, sessionKey(sessionID))
	pipe.Del(ctx, userIndexKey(session.UserID))
	_, err = pipe.Exec(ctx)
	return err
}
