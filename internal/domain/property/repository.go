package property

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	ListAll(ctx context.Context) ([]Property, error)
	GetByID(ctx context.Context, id int64) (*Property, error)
	Create(ctx context.Context, p *Property) error
	Save(ctx context.Context, p *Property) error
	Delete(ctx context.Context, id int64) error

	CreateImage(ctx context.Context, img *Image) error
	GetImage(ctx context.Context, propertyID, imageID int64) (*Image, error)
	DeleteImage(ctx context.Context, imageID int64) error
	ImageExists(ctx context.Context, imageID int64) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListAll(ctx context.Context) ([]Property, error) {
	var props []Property
	err := r.db.WithContext(ctx).
		Preload("Images").
		Order("created_at DESC").
		Find(&props).Error
	return props, err
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Property, error) {
	var p Property
	err := r.db.WithContext(ctx).
		Preload("Images").
		Where("id = ?", id).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPropertyNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) Create(ctx context.Context, p *Property) error {
	return translateConstraint(r.db.WithContext(ctx).Create(p).Error)
}

func (r *repository) Save(ctx context.Context, p *Property) error {
	return translateConstraint(r.db.WithContext(ctx).Omit("Images").Save(p).Error)
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	// Deleting the property cascades to its image rows.
	return r.db.WithContext(ctx).
		Select(clause.Associations).
		Delete(&Property{ID: id}).Error
}

func (r *repository) CreateImage(ctx context.Context, img *Image) error {
	return r.db.WithContext(ctx).Create(img).Error
}

func (r *repository) GetImage(ctx context.Context, propertyID, imageID int64) (*Image, error) {
	var img Image
	err := r.db.WithContext(ctx).
		Where("id = ? AND property_id = ?", imageID, propertyID).
		First(&img).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrImageNotFound
	}
	if err != nil {
		return nil, err
	}
	return &img, nil
}

func (r *repository) DeleteImage(ctx context.Context, imageID int64) error {
	return r.db.WithContext(ctx).Delete(&Image{}, imageID).Error
}

func (r *repository) ImageExists(ctx context.Context, imageID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Image{}).Where("id = ?", imageID).Count(&count).Error
	return count > 0, err
}

// translateConstraint surfaces postgres constraint violations with the
// constraint name instead of a bare driver error.
func translateConstraint(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505", "23514": // unique_violation, check_violation
			return fmt.Errorf("constraint %s violated: %w", pgErr.ConstraintName, err)
		}
	}
	return err
}
