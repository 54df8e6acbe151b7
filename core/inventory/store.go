package inventory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"craft-planner/core/procurement"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrInvalidID is returned for non-positive root or item ids.
	ErrInvalidID = errors.New("ids must be positive")
	// ErrNegativeQuantity is returned when a negative owned quantity is written.
	ErrNegativeQuantity = errors.New("quantity must not be negative")
	// ErrUnavailable is returned when no database is configured.
	ErrUnavailable = errors.New("owned stock store is not available")
)

// Store persists owned stock per crafting root.
type Store struct {
	db  *gorm.DB
	now func() time.Time
}

// NewStore wraps db. A nil db yields a store whose operations return ErrUnavailable.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db, now: time.Now}
}

// Available reports whether a database is attached.
func (s *Store) Available() bool {
	return s != nil && s.db != nil
}

// Migrate creates or updates the owned_materials table.
func (s *Store) Migrate() error {
	if !s.Available() {
		return ErrUnavailable
	}
	if err := s.db.AutoMigrate(&OwnedMaterial{}); err != nil {
		return fmt.Errorf("failed to migrate %s: %w", TableName, err)
	}
	return nil
}

// Get returns the owned stock recorded for root as a fresh inventory.
func (s *Store) Get(ctx context.Context, root procurement.ItemID) (procurement.Inventory, error) {
	if !s.Available() {
		return nil, ErrUnavailable
	}
	if root <= 0 {
		return nil, ErrInvalidID
	}

	var rows []OwnedMaterial
	err := s.db.WithContext(ctx).
		Where("root_id = ? AND quantity > 0", int(root)).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load owned stock for %d: %w", root, err)
	}

	owned := make(map[procurement.ItemID]int, len(rows))
	for _, r := range rows {
		owned[procurement.ItemID(r.ItemID)] = r.Quantity
	}
	return procurement.NewInventory(owned), nil
}

// Set records qty units of item owned for root. Zero removes the row.
func (s *Store) Set(ctx context.Context, root, item procurement.ItemID, qty int) error {
	if !s.Available() {
		return ErrUnavailable
	}
	if root <= 0 || item <= 0 {
		return ErrInvalidID
	}
	if qty < 0 {
		return ErrNegativeQuantity
	}

	db := s.db.WithContext(ctx)
	if qty == 0 {
		err := db.Where("root_id = ? AND item_id = ?", int(root), int(item)).Delete(&OwnedMaterial{}).Error
		if err != nil {
			return fmt.Errorf("failed to remove owned item %d for %d: %w", item, root, err)
		}
		return nil
	}

	row := OwnedMaterial{RootID: int(root), ItemID: int(item), Quantity: qty, UpdatedAt: s.now()}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "root_id"}, {Name: "item_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"quantity", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to save owned item %d for %d: %w", item, root, err)
	}
	return nil
}

// Clear removes all owned stock recorded for root.
func (s *Store) Clear(ctx context.Context, root procurement.ItemID) error {
	if !s.Available() {
		return ErrUnavailable
	}
	if root <= 0 {
		return ErrInvalidID
	}
	err := s.db.WithContext(ctx).Where("root_id = ?", int(root)).Delete(&OwnedMaterial{}).Error
	if err != nil {
		return fmt.Errorf("failed to clear owned stock for %d: %w", root, err)
	}
	return nil
}

// Roots lists the roots that have owned stock recorded, ascending.
func (s *Store) Roots(ctx context.Context) ([]procurement.ItemID, error) {
	if !s.Available() {
		return nil, ErrUnavailable
	}
	var ids []int
	err := s.db.WithContext(ctx).Model(&OwnedMaterial{}).
		Distinct("root_id").Order("root_id").Pluck("root_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tracked roots: %w", err)
	}
	out := make([]procurement.ItemID, len(ids))
	for i, id := range ids {
		out[i] = procurement.ItemID(id)
	}
	return out, nil
}
