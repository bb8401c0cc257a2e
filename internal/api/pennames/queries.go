package pennames

import (
	"inkwell-app/internal/domain/pennames"
	"inkwell-app/internal/domain/works"

	"gorm.io/gorm"
)

func workCount(db *gorm.DB, penNameID string) (int64, error) {
	var n int64
	err := db.Model(&works.Work{}).Where("pen_name_id = ?", penNameID).Count(&n).Error
	return n, err
}

func workCounts(db *gorm.DB, rows []pennames.PenName) (map[string]int64, error) {
	counts := make(map[string]int64, len(rows))
	if len(rows) == 0 {
		return counts, nil
	}

	ids := make([]string, 0, len(rows))
	for _, p := range rows {
		ids = append(ids, p.ID)
	}

	var grouped []struct {
		PenNameID string
		N         int64
	}
	err := db.Model(&works.Work{}).
		Select("pen_name_id, count(*) AS n").
		Where("pen_name_id IN ?", ids).
		Group("pen_name_id").
		Find(&grouped).Error
	if err != nil {
		return nil, err
	}

	for _, g := range grouped {
		counts[g.PenNameID] = g.N
	}
	return counts, nil
}
