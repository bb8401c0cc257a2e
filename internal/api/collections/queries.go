package collections

import (
	"inkwell-app/internal/domain/collections"

	"gorm.io/gorm"
)

func membershipCount(db *gorm.DB, collectionID string) (int64, error) {
	var n int64
	err := db.Model(&collections.CollectionWork{}).
		Where("collection_id = ?", collectionID).
		Count(&n).Error
	return n, err
}

func membershipCounts(db *gorm.DB, rows []collections.Collection) (map[string]int64, error) {
	counts := make(map[string]int64, len(rows))
	if len(rows) == 0 {
		return counts, nil
	}

	ids := make([]string, 0, len(rows))
	for _, col := range rows {
		ids = append(ids, col.ID)
	}

	var grouped []struct {
		CollectionID string
		N            int64
	}
	err := db.Model(&collections.CollectionWork{}).
		Select("collection_id, count(*) AS n").
		Where("collection_id IN ?", ids).
		Group("collection_id").
		Find(&grouped).Error
	if err != nil {
		return nil, err
	}

	for _, g := range grouped {
		counts[g.CollectionID] = g.N
	}
	return counts, nil
}
