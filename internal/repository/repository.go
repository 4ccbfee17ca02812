package repository

import "gorm.io/gorm"

type Repository struct {
	DB         *gorm.DB
	Users      UserRepo
	Categories CategoryRepo
	Brands     BrandRepo
	Products   ProductRepo
	Orders     OrderRepo
	OrderItems OrderItemRepo
}

func New(db *gorm.DB) *Repository {
	return &Repository{
		DB:         db,
		Users:      NewUserRepo(db),
		Categories: NewCategoryRepo(db),
		Brands:     NewBrandRepo(db),
		Products:   NewProductRepo(db),
		Orders:     NewOrderRepo(db),
		OrderItems: NewOrderItemRepo(db),
	}
}
