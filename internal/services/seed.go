package services

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/dmitrijs2005/dailytracker/internal/dbx"
	"github.com/dmitrijs2005/dailytracker/internal/models"
)

// SeedDays is how many past days (today included) Seed fills.
const SeedDays = 10

// Seed fills the last SeedDays days with one to three sample tasks each in
// random configured categories, then marks the owner's even-numbered items
// Completed. Everything runs in one transaction. It returns the number of
// items added.
func (s *ItemService) Seed(ctx context.Context, ownerID string, today time.Time, rnd *rand.Rand) (int, error) {
	if len(s.categories) == 0 {
		return 0, fmt.Errorf("seed: no categories configured")
	}
	today = models.Date(today)

	added := 0
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Items(tx)

		var ids []int64
		for i := range SeedDays {
			day := today.AddDate(0, 0, -i)
			for range 1 + rnd.IntN(3) {
				id, err := repo.Create(ctx, ownerID, models.NewItem{
					Title:    "Task for " + day.Format(models.DateLayout),
					Category: s.categories[rnd.IntN(len(s.categories))],
					DueDate:  day,
					Type:     models.TypeTask,
				})
				if err != nil {
					return err
				}
				ids = append(ids, id)
			}
		}

		for _, id := range ids {
			if id%2 != 0 {
				continue
			}
			if _, err := repo.UpdateStatus(ctx, ownerID, id, models.StatusCompleted); err != nil {
				return err
			}
		}
		added = len(ids)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("seed: %w", err)
	}

	s.log.Info(ctx, "sample data added", "user_id", ownerID, "items", added)
	return added, nil
}
