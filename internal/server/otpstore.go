// internal/server/otpstore.go
package server

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"laundry-king/internal/common/database"
	stderrors "laundry-king/internal/common/errors"

	"github.com/redis/go-redis/v9"
)

// OTPStore keeps issued one-time codes in Redis under a TTL. Codes are
// single-use: a successful verification deletes the key. This is the only
// state the development backend holds.
type OTPStore struct {
	redis  *database.RedisClient
	ttl    time.Duration
	length int
}

func NewOTPStore(rdb *database.RedisClient, ttl time.Duration, length int) *OTPStore {
	return &OTPStore{
		redis:  rdb,
		ttl:    ttl,
		length: length,
	}
}

func otpKey(phone string) string {
	return fmt.Sprintf("otp:%s", phone)
}

// Issue generates a fresh numeric code for phone and stores it, replacing
// any earlier unexpired code.
func (s *OTPStore) Issue(ctx context.Context, phone string) (string, error) {
	code, err := s.generateCode()
	if err != nil {
		return "", stderrors.NewOTPStoreFailedError(err)
	}

	if err := s.redis.Set(ctx, otpKey(phone), code, s.ttl); err != nil {
		return "", stderrors.NewOTPStoreFailedError(err)
	}
	return code, nil
}

// Verify checks code against the stored value and consumes it on success.
func (s *OTPStore) Verify(ctx context.Context, phone, code string) error {
	stored, err := s.redis.Get(ctx, otpKey(phone))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return stderrors.NewOTPExpiredError(phone)
		}
		return stderrors.NewOTPStoreFailedError(err)
	}

	if stored != code {
		return stderrors.NewInvalidOTPError(phone)
	}

	if err := s.redis.Del(ctx, otpKey(phone)); err != nil {
		return stderrors.NewOTPStoreFailedError(err)
	}
	return nil
}

func (s *OTPStore) generateCode() (string, error) {
	max := big.NewInt(1)
	for i := 0; i < s.length; i++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", s.length, n), nil
}
