package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	redis "github.com/redis/go-redis/v9"
	"github.com/tidwall/gjson"

	"github.com/KirkDiggler/destiny-api/internal/errors"
	"github.com/KirkDiggler/destiny-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/destiny-api/internal/redis"
)

const (
	profileKeyPrefix = "destiny:profile:"
	ownerIndexPrefix = "destiny:owner:"

	scanBatch = 100

	// Error messages
	errProfileNil    = "profile cannot be nil"
	errOwnerIDEmpty  = "owner ID cannot be empty"
	errSlotNegative  = "slot cannot be negative"
	errVisitRequired = "visit function is required"
)

// KeyPattern matches every profile key
const KeyPattern = profileKeyPrefix + "*"

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis profile repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed profile repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

// Key returns the storage key of a profile
func Key(ownerID string, slot int) string {
	return fmt.Sprintf("%s%s:%d", profileKeyPrefix, ownerID, slot)
}

func ownerKey(ownerID string) string {
	return ownerIndexPrefix + ownerID + ":slots"
}

func validateAddress(ownerID string, slot int) error {
	if ownerID == "" {
		return errors.InvalidArgument(errOwnerIDEmpty)
	}
	if slot < 0 {
		return errors.InvalidArgument(errSlotNegative)
	}
	return nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if err := validateAddress(input.OwnerID, input.Slot); err != nil {
		return nil, err
	}

	result, err := r.client.Get(ctx, Key(input.OwnerID, input.Slot)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("profile %s/%d not found", input.OwnerID, input.Slot).
				WithMeta("owner_id", input.OwnerID).
				WithMeta("slot", input.Slot)
		}
		return nil, errors.Wrapf(err, "failed to get profile")
	}

	data, err := Decode([]byte(result))
	if err != nil {
		return nil, err
	}

	return &GetOutput{Profile: data}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Profile == nil {
		return nil, errors.InvalidArgument(errProfileNil)
	}
	if err := validateAddress(input.Profile.OwnerID, input.Profile.Slot); err != nil {
		return nil, err
	}

	saved := *input.Profile
	saved.UpdatedAt = r.clock.Now()
	if saved.Specs == nil {
		saved.Specs = map[string]float64{}
	}

	data, err := json.Marshal(&saved)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal profile")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, Key(saved.OwnerID, saved.Slot), data, 0)
	pipe.SAdd(ctx, ownerKey(saved.OwnerID), strconv.Itoa(saved.Slot))

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to save profile")
	}

	return &SaveOutput{Profile: &saved}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	members, err := r.client.SMembers(ctx, ownerKey(input.OwnerID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list profile slots")
	}

	slots := make([]int, 0, len(members))
	for _, m := range members {
		slot, err := strconv.Atoi(m)
		if err != nil {
			slog.WarnContext(ctx, "ignoring malformed slot in owner index",
				"owner_id", input.OwnerID,
				"member", m)
			continue
		}
		slots = append(slots, slot)
	}
	sort.Ints(slots)

	if len(slots) == 0 {
		return &ListOutput{Profiles: []*Data{}}, nil
	}

	keys := make([]string, len(slots))
	for i, slot := range slots {
		keys[i] = Key(input.OwnerID, slot)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get profiles")
	}

	profiles := make([]*Data, 0, len(values))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			// index entry without a profile behind it
			continue
		}
		data, err := Decode([]byte(raw))
		if err != nil {
			slog.WarnContext(ctx, "skipping undecodable profile",
				"key", keys[i],
				"error", err)
			continue
		}
		profiles = append(profiles, data)
	}

	return &ListOutput{Profiles: profiles}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if err := validateAddress(input.OwnerID, input.Slot); err != nil {
		return nil, err
	}

	key := Key(input.OwnerID, input.Slot)
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("profile %s/%d not found", input.OwnerID, input.Slot)
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, key)
	pipe.SRem(ctx, ownerKey(input.OwnerID), strconv.Itoa(input.Slot))

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete profile")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) Scan(ctx context.Context, input ScanInput) (*ScanOutput, error) {
	if input.Visit == nil {
		return nil, errors.InvalidArgument(errVisitRequired)
	}

	out := &ScanOutput{}
	iter := r.client.Scan(ctx, 0, KeyPattern, scanBatch).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()

		raw, err := r.client.Get(ctx, key).Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return out, errors.Wrapf(err, "failed to read %s", key)
		}

		data, err := Decode([]byte(raw))
		if err != nil {
			slog.WarnContext(ctx, "skipping undecodable profile", "key", key, "error", err)
			out.Skipped++
			continue
		}

		if err := input.Visit(ctx, data); err != nil {
			return out, err
		}
		out.Visited++
	}
	if err := iter.Err(); err != nil {
		return out, errors.Wrapf(err, "failed to scan profiles")
	}

	return out, nil
}

// Decode parses a stored profile blob. Spec values are read one by one so a
// single non-numeric entry (older clients wrote strings) is coerced or
// dropped instead of failing the whole profile.
func Decode(raw []byte) (*Data, error) {
	if !gjson.ValidBytes(raw) {
		return nil, errors.DataLossf("profile blob is not valid JSON")
	}

	doc := gjson.ParseBytes(raw)
	if !doc.IsObject() {
		return nil, errors.DataLossf("profile blob is not an object")
	}

	data := &Data{
		ID:      doc.Get("profile_id").String(),
		OwnerID: doc.Get("owner_id").String(),
		Slot:    int(doc.Get("slot").Int()),
		Name:    doc.Get("name").String(),
		Server:  doc.Get("server").String(),
		Specs:   map[string]float64{},
	}

	if ts := doc.Get("updated_at"); ts.Exists() {
		if t, err := time.Parse(time.RFC3339Nano, ts.String()); err == nil {
			data.UpdatedAt = t
		}
	}

	doc.Get("specs").ForEach(func(key, value gjson.Result) bool {
		switch value.Type {
		case gjson.Number:
			data.Specs[key.String()] = value.Float()
		case gjson.String:
			if f, err := strconv.ParseFloat(strings.TrimSpace(value.String()), 64); err == nil {
				data.Specs[key.String()] = f
			}
		}
		return true
	})

	return data, nil
}
