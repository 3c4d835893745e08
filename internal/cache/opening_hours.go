package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"

	"github.com/shiftwise/staff-scheduler/internal/models"
)

const openingHoursTTL = 5 * time.Minute

// OpeningHours is a read-through redis cache for a store's opening-hours
// rows. Redis being unreachable degrades to a miss, never to an error.
type OpeningHours struct {
	rdb *redis.Client
}

func NewOpeningHours(rdb *redis.Client) *OpeningHours {
	return &OpeningHours{rdb: rdb}
}

func key(storeID uint) string {
	return fmt.Sprintf("store:%d:opening_hours", storeID)
}

func (c *OpeningHours) Get(
	ctx context.Context,
	storeID uint,
) ([]models.OpeningHour, bool) {

	raw, err := c.rdb.Get(ctx, key(storeID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Debug().Err(err).Uint("store_id", storeID).Msg("opening hours cache read failed")
		}
		return nil, false
	}

	var hours []models.OpeningHour
	if err := json.Unmarshal(raw, &hours); err != nil {
		return nil, false
	}
	return hours, true
}

func (c *OpeningHours) Set(
	ctx context.Context,
	storeID uint,
	hours []models.OpeningHour,
) {
	raw, err := json.Marshal(hours)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key(storeID), raw, openingHoursTTL).Err(); err != nil {
		log.Debug().Err(err).Uint("store_id", storeID).Msg("opening hours cache write failed")
	}
}
