package persistence

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/storefront/backend/internal/domain/cart"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/identity"
	"github.com/storefront/backend/internal/domain/order"
	"github.com/storefront/backend/internal/infrastructure/config"
)

// AutoMigrate creates or updates the schema for all domain entities
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&catalog.Product{},
		&catalog.Category{},
		&cart.Line{},
		&order.Order{},
		&order.Line{},
		&identity.Account{},
	)
}

// Seed populates the initial admin account and a sample catalog when
// the relevant tables are empty. Failures here are fatal: a storefront
// without an admin or a catalog is not usable, so the caller should
// abort startup rather than run half-seeded.
func Seed(ctx context.Context, db *gorm.DB, cfg config.SeedConfig, log *zap.Logger) error {
	if !cfg.Enabled {
		return nil
	}

	if err := seedAdmin(ctx, db, cfg, log); err != nil {
		return fmt.Errorf("failed to seed admin account: %w", err)
	}
	if err := seedCatalog(ctx, db, log); err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}

	return nil
}

func seedAdmin(ctx context.Context, db *gorm.DB, cfg config.SeedConfig, log *zap.Logger) error {
	var count int64
	if err := db.WithContext(ctx).Model(&identity.Account{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	password := cfg.AdminPassword
	if password == "" {
		// Development convenience only; production config validation
		// rejects an empty seed password.
		password = "admin123!"
		log.Warn("Seeding admin account with default password, change it immediately")
	}

	admin, err := identity.NewAccount(cfg.AdminUsername, cfg.AdminEmail, password, identity.RoleAdmin)
	if err != nil {
		return err
	}

	if err := db.WithContext(ctx).Create(admin).Error; err != nil {
		return err
	}

	log.Info("Seeded admin account", zap.String("username", admin.Username))
	return nil
}

type seedProduct struct {
	name, description, category, subcategory, imageURL string
	price                                              string
}

var sampleProducts = []seedProduct{
	{"Wireless Mouse", "Ergonomic 2.4GHz wireless mouse", "electronics", "peripherals", "/images/wireless-mouse.jpg", "24.99"},
	{"Mechanical Keyboard", "Tenkeyless board with brown switches", "electronics", "peripherals", "/images/mech-keyboard.jpg", "89.99"},
	{"USB-C Hub", "7-in-1 hub with HDMI and card reader", "electronics", "accessories", "/images/usbc-hub.jpg", "39.99"},
	{"Standing Desk Mat", "Anti-fatigue mat for standing desks", "office", "furniture", "/images/desk-mat.jpg", "49.50"},
	{"Desk Lamp", "Dimmable LED lamp with USB charging port", "office", "lighting", "/images/desk-lamp.jpg", "32.00"},
	{"Notebook Set", "Pack of three dotted A5 notebooks", "office", "stationery", "/images/notebooks.jpg", "14.25"},
}

type seedCategory struct {
	name, slug string
	children   []seedCategory
}

var sampleCategories = []seedCategory{
	{name: "Electronics", slug: "electronics", children: []seedCategory{
		{name: "Peripherals", slug: "peripherals"},
		{name: "Accessories", slug: "accessories"},
	}},
	{name: "Office", slug: "office", children: []seedCategory{
		{name: "Furniture", slug: "furniture"},
		{name: "Lighting", slug: "lighting"},
		{name: "Stationery", slug: "stationery"},
	}},
}

func seedCatalog(ctx context.Context, db *gorm.DB, log *zap.Logger) error {
	var count int64
	if err := db.WithContext(ctx).Model(&catalog.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, sc := range sampleCategories {
			root, err := catalog.NewCategory(sc.name, sc.slug)
			if err != nil {
				return err
			}
			if err := tx.Create(root).Error; err != nil {
				return err
			}
			for _, child := range sc.children {
				c, err := catalog.NewChildCategory(child.name, child.slug, root)
				if err != nil {
					return err
				}
				if err := tx.Create(c).Error; err != nil {
					return err
				}
			}
		}

		for _, sp := range sampleProducts {
			price, err := decimal.NewFromString(sp.price)
			if err != nil {
				return err
			}
			p, err := catalog.NewProduct(sp.name, sp.description, sp.category, sp.subcategory, sp.imageURL, price)
			if err != nil {
				return err
			}
			if err := tx.Create(p).Error; err != nil {
				return err
			}
		}

		log.Info("Seeded sample catalog",
			zap.Int("products", len(sampleProducts)),
			zap.Int("categories", len(sampleCategories)),
		)
		return nil
	})
}
