package repository

import "time"

// UserModel is the GORM model for the users table.
type UserModel struct {
	ID    int64  `gorm:"primaryKey;autoIncrement"`
	Name  string `gorm:"not null;size:255"`
	Email string `gorm:"not null;size:512;uniqueIndex"`
}

// TableName returns the table name for the GORM model.
func (UserModel) TableName() string {
	return "users"
}

// ItemRequestModel is the GORM model for the item_requests table.
type ItemRequestModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Description string    `gorm:"not null;size:1000"`
	RequestorID int64     `gorm:"not null;index"`
	Requestor   UserModel `gorm:"foreignKey:RequestorID;constraint:OnDelete:CASCADE"`
	Created     time.Time `gorm:"not null;index"`
}

// TableName returns the table name for the GORM model.
func (ItemRequestModel) TableName() string {
	return "item_requests"
}

// ItemModel is the GORM model for the items table.
type ItemModel struct {
	ID          int64             `gorm:"primaryKey;autoIncrement"`
	Name        string            `gorm:"not null;size:255"`
	Description string            `gorm:"not null;size:1000"`
	Available   bool              `gorm:"not null"`
	OwnerID     int64             `gorm:"not null;index"`
	Owner       UserModel         `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	RequestID   *int64            `gorm:"index"`
	Request     *ItemRequestModel `gorm:"foreignKey:RequestID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for the GORM model.
func (ItemModel) TableName() string {
	return "items"
}

// CommentModel is the GORM model for the comments table.
type CommentModel struct {
	ID       int64     `gorm:"primaryKey;autoIncrement"`
	Text     string    `gorm:"not null;size:2000"`
	ItemID   int64     `gorm:"not null;index"`
	Item     ItemModel `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE"`
	AuthorID int64     `gorm:"not null;index"`
	Author   UserModel `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Created  time.Time `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (CommentModel) TableName() string {
	return "comments"
}

// BookingModel is the GORM model for the bookings table.
type BookingModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	StartDate time.Time `gorm:"not null;index"`
	EndDate   time.Time `gorm:"not null;index"`
	ItemID    int64     `gorm:"not null;index"`
	Item      ItemModel `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE"`
	BookerID  int64     `gorm:"not null;index"`
	Booker    UserModel `gorm:"foreignKey:BookerID;constraint:OnDelete:CASCADE"`
	Status    string    `gorm:"not null;size:20;index"`
}

// TableName returns the table name for the GORM model.
func (BookingModel) TableName() string {
	return "bookings"
}

// AllModels lists every model in dependency order for AutoMigrate.
func AllModels() []any {
	return []any{
		&UserModel{},
		&ItemRequestModel{},
		&ItemModel{},
		&CommentModel{},
		&BookingModel{},
	}
}
