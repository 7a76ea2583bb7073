package accessrepo

import (
	"context"
	"errors"

	"shiptrack/internal/core/domain/model/access"
	"shiptrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAccessRepository implements AccessRepository using GORM.
type GormAccessRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormAccessRepository creates a new GORM access-control repository.
func NewGormAccessRepository(db *gorm.DB, tracker aggregateTracker) *GormAccessRepository {
	return &GormAccessRepository{
		db:      db,
		tracker: tracker,
	}
}

// Get retrieves the singleton AccessControl aggregate. Returns
// ObjectNotFound when the tracker was never bootstrapped with an initial
// administrator.
func (r *GormAccessRepository) Get(ctx context.Context) (*access.AccessControl, error) {
	var ownership OwnershipDTO
	if err := r.db.WithContext(ctx).First(&ownership, "id = ?", ownershipRowID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("access control", ownershipRowID)
		}
		return nil, err
	}

	var members []RoleMemberDTO
	if err := r.db.WithContext(ctx).Find(&members).Error; err != nil {
		return nil, err
	}

	return toDomain(ownership, members)
}

// Save persists the full aggregate state. Membership rows are replaced
// wholesale; the role sets are small and the operation runs inside the
// caller's transaction.
func (r *GormAccessRepository) Save(ctx context.Context, aggregate *access.AccessControl) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	ownership, members := fromDomain(aggregate)

	if err := r.db.WithContext(ctx).Save(&ownership).Error; err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).
		Where("1 = 1").
		Delete(&RoleMemberDTO{}).Error; err != nil {
		return err
	}

	if len(members) > 0 {
		if err := r.db.WithContext(ctx).Create(&members).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.Admin().String(), aggregate)
	return nil
}
