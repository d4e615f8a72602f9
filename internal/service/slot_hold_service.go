package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ErrSlotHeld is returned when another booking request is already holding
// the same slot.
var ErrSlotHeld = errors.New("time slot is currently being booked by someone else")

// releaseHoldScript deletes a hold only if it still belongs to the caller,
// so a request that outlived its TTL cannot release somebody else's hold.
// Redis Go client automatically uses EVALSHA after the first call.
var releaseHoldScript = redis.NewScript(`
	if redis.call('GET', KEYS[1]) == ARGV[1] then
		return redis.call('DEL', KEYS[1])
	end
	return 0
`)

const (
	// RedisSlotHoldKeyPrefix namespaces slot hold keys
	RedisSlotHoldKeyPrefix = "slot:hold:"

	// slotHoldTTL bounds how long a booking request may sit between the
	// availability check and the database insert. Expiry frees the slot
	// if the process dies mid-booking.
	slotHoldTTL = 30 * time.Second
)

// SlotHoldService serializes the check-then-book window for a single slot
// through Redis. The availability engine's conflict check and the eventual
// insert are separate round trips; without this hold two near-simultaneous
// requests could both pass the check. The database exclusion constraint
// remains the final authority.
type SlotHoldService struct {
	redisClient *redis.Client
	log         *logrus.Logger
}

func NewSlotHoldService(redisClient *redis.Client, log *logrus.Logger) *SlotHoldService {
	return &SlotHoldService{
		redisClient: redisClient,
		log:         log,
	}
}

// Acquire takes a short-lived exclusive hold on a stylist's slot. The
// returned token must be passed to Release. Returns ErrSlotHeld when a
// concurrent request already holds the slot.
func (s *SlotHoldService) Acquire(ctx context.Context, stylistID uuid.UUID, date, startTime string) (string, error) {
	key := s.key(stylistID, date, startTime)
	token := uuid.New().String()

	ok, err := s.redisClient.SetNX(ctx, key, token, slotHoldTTL).Result()
	if err != nil {
		s.log.Warnf("Failed to acquire slot hold %s: %+v", key, err)
		return "", err
	}
	if !ok {
		return "", ErrSlotHeld
	}
	return token, nil
}

// Release frees a hold taken by Acquire. Safe to call after expiry; a hold
// now owned by another request is left alone.
func (s *SlotHoldService) Release(ctx context.Context, stylistID uuid.UUID, date, startTime, token string) error {
	key := s.key(stylistID, date, startTime)
	if err := releaseHoldScript.Run(ctx, s.redisClient, []string{key}, token).Err(); err != nil && !errors.Is(err, redis.Nil) {
		s.log.Warnf("Failed to release slot hold %s: %+v", key, err)
		return err
	}
	return nil
}

func (s *SlotHoldService) key(stylistID uuid.UUID, date, startTime string) string {
	return fmt.Sprintf("%s%s:%s:%s", RedisSlotHoldKeyPrefix, stylistID, date, startTime)
}
