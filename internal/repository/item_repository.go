package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shareit-hub/service-shareit/internal/domain"
	"github.com/shareit-hub/service-shareit/internal/domain/item"
	"github.com/shareit-hub/service-shareit/internal/platform/database"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormItemRepository is the GORM-based implementation of ItemRepository.
type GormItemRepository struct {
	db *gorm.DB
}

// NewGormItemRepository creates a new GormItemRepository.
func NewGormItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

// FindByID retrieves an item by id.
func (r *GormItemRepository) FindByID(ctx context.Context, id int64) (*item.Item, error) {
	var model ItemModel
	if err := database.Conn(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, item.NewNotFoundError(id)
		}
		return nil, fmt.Errorf("failed to find item by ID: %w", err)
	}
	return toDomainItem(&model), nil
}

// FindByOwner retrieves a page of the owner's items ordered by id.
func (r *GormItemRepository) FindByOwner(ctx context.Context, ownerID int64, page domain.Page) ([]*item.Item, error) {
	var models []ItemModel
	if err := database.Conn(ctx, r.db).
		Where("owner_id = ?", ownerID).
		Order("id ASC").
		Offset(page.Offset()).
		Limit(page.Limit()).
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find owner items: %w", err)
	}
	return toDomainItems(models), nil
}

// Search retrieves a page of available items whose name or description
// contains text, ignoring case.
func (r *GormItemRepository) Search(ctx context.Context, text string, page domain.Page) ([]*item.Item, error) {
	pattern := "%" + escapeLike(text) + "%"

	var models []ItemModel
	if err := database.Conn(ctx, r.db).
		Where("available = ?", true).
		Where("name ILIKE ? OR description ILIKE ?", pattern, pattern).
		Order("id ASC").
		Offset(page.Offset()).
		Limit(page.Limit()).
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to search items: %w", err)
	}
	return toDomainItems(models), nil
}

// FindByRequestIDs retrieves every item created in answer to one of the requests.
func (r *GormItemRepository) FindByRequestIDs(ctx context.Context, requestIDs []int64) ([]*item.Item, error) {
	if len(requestIDs) == 0 {
		return []*item.Item{}, nil
	}

	var models []ItemModel
	if err := database.Conn(ctx, r.db).
		Where("request_id IN ?", requestIDs).
		Order("id ASC").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find items by request: %w", err)
	}
	return toDomainItems(models), nil
}

// Save persists a new item.
func (r *GormItemRepository) Save(ctx context.Context, it *item.Item) (*item.Item, error) {
	model := toItemModel(it)
	if err := database.Conn(ctx, r.db).Omit(clause.Associations).Create(model).Error; err != nil {
		return nil, fmt.Errorf("failed to save item: %w", err)
	}
	return toDomainItem(model), nil
}

// Update persists name, description and availability changes.
func (r *GormItemRepository) Update(ctx context.Context, it *item.Item) error {
	result := database.Conn(ctx, r.db).
		Model(&ItemModel{}).
		Where("id = ?", it.ID()).
		Updates(map[string]interface{}{
			"name":        it.Name(),
			"description": it.Description(),
			"available":   it.Available(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return item.NewNotFoundError(it.ID())
	}
	return nil
}

// GormCommentRepository is the GORM-based implementation of CommentRepository.
type GormCommentRepository struct {
	db *gorm.DB
}

// NewGormCommentRepository creates a new GormCommentRepository.
func NewGormCommentRepository(db *gorm.DB) *GormCommentRepository {
	return &GormCommentRepository{db: db}
}

// FindByItemID retrieves the comments of an item, oldest first, with author names.
func (r *GormCommentRepository) FindByItemID(ctx context.Context, itemID int64) ([]*item.Comment, error) {
	var models []CommentModel
	if err := database.Conn(ctx, r.db).
		Preload("Author").
		Where("item_id = ?", itemID).
		Order("created ASC, id ASC").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find item comments: %w", err)
	}

	comments := make([]*item.Comment, len(models))
	for i := range models {
		comments[i] = toDomainComment(&models[i])
	}
	return comments, nil
}

// Save persists a new comment.
func (r *GormCommentRepository) Save(ctx context.Context, c *item.Comment) (*item.Comment, error) {
	model := &CommentModel{
		Text:     c.Text(),
		ItemID:   c.ItemID(),
		AuthorID: c.AuthorID(),
		Created:  c.Created(),
	}
	if err := database.Conn(ctx, r.db).Omit(clause.Associations).Create(model).Error; err != nil {
		return nil, fmt.Errorf("failed to save comment: %w", err)
	}
	return item.ReconstructComment(model.ID, model.ItemID, model.AuthorID, c.AuthorName(), model.Text, model.Created), nil
}

// --- Conversion Helpers ---

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func toItemModel(it *item.Item) *ItemModel {
	return &ItemModel{
		ID:          it.ID(),
		Name:        it.Name(),
		Description: it.Description(),
		Available:   it.Available(),
		OwnerID:     it.OwnerID(),
		RequestID:   it.RequestID(),
	}
}

func toDomainItem(m *ItemModel) *item.Item {
	return item.Reconstruct(m.ID, m.OwnerID, m.Name, m.Description, m.Available, m.RequestID)
}

func toDomainItems(models []ItemModel) []*item.Item {
	items := make([]*item.Item, len(models))
	for i := range models {
		items[i] = toDomainItem(&models[i])
	}
	return items
}

func toDomainComment(m *CommentModel) *item.Comment {
	return item.ReconstructComment(m.ID, m.ItemID, m.AuthorID, m.Author.Name, m.Text, m.Created)
}
