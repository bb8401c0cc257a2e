package works

import (
	"context"

	"inkwell-app/internal/domain/collections"
	"inkwell-app/internal/domain/works"

	"gorm.io/gorm"
)

// workWithPenName joins the owning pen name so ownership and
// user-scoped filters can run in SQL, and preloads it so the policy
// core sees a typed row instead of join columns.
func workWithPenName(db *gorm.DB) *gorm.DB {
	return db.Model(&works.Work{}).
		Joins("JOIN pen_names ON pen_names.id = works.pen_name_id").
		Preload("PenName")
}

// foreignCollectionChecker answers the cross-reference guard's question
// from the collection membership table.
type foreignCollectionChecker struct {
	db *gorm.DB
}

func (f foreignCollectionChecker) WorkInForeignCollection(ctx context.Context, workID, ownerUserID string) (bool, error) {
	var n int64
	err := f.db.WithContext(ctx).
		Model(&collections.CollectionWork{}).
		Joins("JOIN collections ON collections.id = collection_works.collection_id").
		Where("collection_works.work_id = ? AND collections.user_id <> ?", workID, ownerUserID).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
