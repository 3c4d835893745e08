package schedule

import (
	"context"

	domain "github.com/shiftwise/staff-scheduler/internal/domain/schedule"
	"github.com/shiftwise/staff-scheduler/internal/dto"
	"github.com/shiftwise/staff-scheduler/internal/httperr"
	"github.com/shiftwise/staff-scheduler/internal/models"
)

// HoursCache is a read-through cache over a store's opening hours.
// A nil implementation means every read hits the database.
type HoursCache interface {
	Get(ctx context.Context, storeID uint) ([]models.OpeningHour, bool)
	Set(ctx context.Context, storeID uint, hours []models.OpeningHour)
}

type GetStoreHours struct {
	repo  domain.Repository
	cache HoursCache
}

func NewGetStoreHours(repo domain.Repository, cache HoursCache) *GetStoreHours {
	return &GetStoreHours{repo: repo, cache: cache}
}

func (uc *GetStoreHours) Execute(
	ctx context.Context,
	storeID uint,
) (*dto.StoreHoursDTO, error) {

	store, err := uc.repo.GetStoreByID(ctx, storeID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeStoreNotFound)
	}

	var hours []models.OpeningHour
	cached := false
	if uc.cache != nil {
		hours, cached = uc.cache.Get(ctx, storeID)
	}

	if !cached {
		hours, err = uc.repo.ListOpeningHours(ctx, storeID)
		if err != nil {
			return nil, err
		}
		if uc.cache != nil && len(hours) > 0 {
			uc.cache.Set(ctx, storeID, hours)
		}
	}

	if len(hours) == 0 {
		return nil, httperr.ErrBusiness(httperr.CodeOpeningHoursNotFound)
	}

	out := &dto.StoreHoursDTO{
		StoreID:   store.ID,
		StoreName: store.Name,
	}
	for _, h := range hours {
		out.Hours = append(out.Hours, dto.OpeningHourDTO{
			Day:         h.Day,
			OpeningTime: h.OpeningTime,
			ClosingTime: h.ClosingTime,
		})
	}

	return out, nil
}
