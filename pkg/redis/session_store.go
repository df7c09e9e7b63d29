package redis

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// ErrSessionNotFound is returned when a session id has no stored session.
var ErrSessionNotFound = errors.New("session not found")

// SessionData holds the data stored against a session id.
type SessionData struct {
	UserID string `json:"userId"`
	Token  string `json:"token"`
}

// SessionStore keeps encrypted sessions in Redis. Each user has at most
// one active session: creating a new one evicts the previous session id
// recorded under the user index key.
type SessionStore struct {
	encryptionKey []byte
}

var (
	setSessionValue = Set
	getSessionValue = Get
	delSessionValue = Del
)

// NewSessionStore creates a new session store
func NewSessionStore(encryptionKeyHex string) (*SessionStore, error) {
	key, err := hex.DecodeString(encryptionKeyHex)
	if err != nil {
		return nil, errors.New("invalid encryption key hex")
	}
	if len(key) != 32 {
		return nil, errors.New("encryption key must be 32 bytes (64 hex chars)")
	}
	return &SessionStore{encryptionKey: key}, nil
}

// CreateSession stores encrypted session data and points the owning
// user's index at the new session, discarding any previous one.
func (s *SessionStore) CreateSession(ctx context.Context, sessionID string, data *SessionData, expiration time.Duration) error {
	if prevID, err := getSessionValue(ctx, "user_session:"+data.UserID); err == nil && prevID != "" {
		_ = delSessionValue(ctx, "session:"+prevID)
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}
	encryptedData, err := s.encrypt(jsonData)
	if err != nil {
		return err
	}

	if err := setSessionValue(ctx, "session:"+sessionID, encryptedData, expiration); err != nil {
		return err
	}
	return setSessionValue(ctx, "user_session:"+data.UserID, sessionID, expiration)
}

// GetSession retrieves and decrypts session data
func (s *SessionStore) GetSession(ctx context.Context, sessionID string) (*SessionData, error) {
	encryptedDataStr, err := getSessionValue(ctx, "session:"+sessionID)
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	decryptedData, err := s.decrypt(encryptedDataStr)
	if err != nil {
		return nil, err
	}

	var data SessionData
	if err := json.Unmarshal(decryptedData, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// DeleteSession removes a session and its user index entry. Deleting a
// session that no longer exists is not an error.
func (s *SessionStore) DeleteSession(ctx context.Context, sessionID string) error {
	data, err := s.GetSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil
		}
		return err
	}
	if err := delSessionValue(ctx, "session:"+sessionID); err != nil {
		return err
	}
	return delSessionValue(ctx, "user_session:"+data.UserID)
}

// DeleteUserSession revokes whatever session the user currently holds.
// Used when an admin resets a client's credential. No-op when the user
// has no active session.
func (s *SessionStore) DeleteUserSession(ctx context.Context, userID string) error {
	sessionID, err := getSessionValue(ctx, "user_session:"+userID)
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil
		}
		return err
	}
	if err := delSessionValue(ctx, "session:"+sessionID); err != nil {
		return err
	}
	return delSessionValue(ctx, "user_session:"+userID)
}

func (s *SessionStore) encrypt(plaintext []byte) (string, error) {
	block, err := aes.NewCipher(s.encryptionKey)
	if err != nil {
		return "", err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	ciphertext := gcm.Seal(nonce, nonce, plaintext, nil)
	return hex.EncodeToString(ciphertext), nil
}

func (s *SessionStore) decrypt(ciphertextHex string) ([]byte, error) {
	ciphertext, err := hex.DecodeString(ciphertextHex)
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(s.encryptionKey)
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	if len(ciphertext) < gcm.NonceSize() {
		return nil, errors.New("ciphertext too short")
	}

	nonce, ciphertext := ciphertext[:gcm.NonceSize()], ciphertext[gcm.NonceSize():]
	return gcm.Open(nil, nonce, ciphertext, nil)
}
