package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/shareit-hub/service-shareit/internal/domain"
	"github.com/shareit-hub/service-shareit/internal/domain/request"
	"github.com/shareit-hub/service-shareit/internal/platform/database"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormItemRequestRepository is the GORM-based implementation of ItemRequestRepository.
type GormItemRequestRepository struct {
	db *gorm.DB
}

// NewGormItemRequestRepository creates a new GormItemRequestRepository.
func NewGormItemRequestRepository(db *gorm.DB) *GormItemRequestRepository {
	return &GormItemRequestRepository{db: db}
}

// FindByID retrieves an item request by id.
func (r *GormItemRequestRepository) FindByID(ctx context.Context, id int64) (*request.ItemRequest, error) {
	var model ItemRequestModel
	if err := database.Conn(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, request.NewNotFoundError(id)
		}
		return nil, fmt.Errorf("failed to find item request by ID: %w", err)
	}
	return toDomainItemRequest(&model), nil
}

// Exists reports whether an item request with id is stored.
func (r *GormItemRequestRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := database.Conn(ctx, r.db).Model(&ItemRequestModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check item request existence: %w", err)
	}
	return count > 0, nil
}

// FindByRequestor retrieves the user's requests, newest first.
func (r *GormItemRequestRepository) FindByRequestor(ctx context.Context, requestorID int64) ([]*request.ItemRequest, error) {
	var models []ItemRequestModel
	if err := database.Conn(ctx, r.db).
		Where("requestor_id = ?", requestorID).
		Order("created DESC, id DESC").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find requestor requests: %w", err)
	}
	return toDomainItemRequests(models), nil
}

// FindOthers retrieves a page of requests made by other users, newest first.
func (r *GormItemRequestRepository) FindOthers(ctx context.Context, requestorID int64, page domain.Page) ([]*request.ItemRequest, error) {
	var models []ItemRequestModel
	if err := database.Conn(ctx, r.db).
		Where("requestor_id <> ?", requestorID).
		Order("created DESC, id DESC").
		Offset(page.Offset()).
		Limit(page.Limit()).
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find other users' requests: %w", err)
	}
	return toDomainItemRequests(models), nil
}

// Save persists a new item request.
func (r *GormItemRequestRepository) Save(ctx context.Context, req *request.ItemRequest) (*request.ItemRequest, error) {
	model := &ItemRequestModel{
		Description: req.Description(),
		RequestorID: req.RequestorID(),
		Created:     req.Created(),
	}
	if err := database.Conn(ctx, r.db).Omit(clause.Associations).Create(model).Error; err != nil {
		return nil, fmt.Errorf("failed to save item request: %w", err)
	}
	return toDomainItemRequest(model), nil
}

// --- Conversion Helpers ---

func toDomainItemRequest(m *ItemRequestModel) *request.ItemRequest {
	return request.Reconstruct(m.ID, m.RequestorID, m.Description, m.Created)
}

func toDomainItemRequests(models []ItemRequestModel) []*request.ItemRequest {
	out := make([]*request.ItemRequest, len(models))
	for i := range models {
		out[i] = toDomainItemRequest(&models[i])
	}
	return out
}
