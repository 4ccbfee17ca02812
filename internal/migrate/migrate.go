package migrate

import (
	"context"

	"shop-service/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type MigrateOptions struct {
	CreateExtensions       bool // pgcrypto, uuid-ossp, pg_trgm
	CreateChecks           bool // CHECK-constraint для целостности
	CreateIndexes          bool // индексы и UNIQUE
	CreateFKsViaSQL        bool // FK через SQL (поверх GORM-constraint)
	CreateUpdatedAtTrigger bool // триггер обновления updated_at
}

func DefaultMigrateOptions() MigrateOptions {
	return MigrateOptions{
		CreateExtensions:       true,
		CreateChecks:           true,
		CreateIndexes:          true,
		CreateFKsViaSQL:        true,
		CreateUpdatedAtTrigger: true,
	}
}

func MigrateShopDB(ctx context.Context, db *gorm.DB, log *zap.Logger, opt MigrateOptions) error {
	log.Info("Начало миграции базы данных магазина")

	// Расширения
	if opt.CreateExtensions {
		log.Info("Создание расширений PostgreSQL")
		for _, ext := range []string{
			`CREATE EXTENSION IF NOT EXISTS pgcrypto`,
			`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`,
			`CREATE EXTENSION IF NOT EXISTS pg_trgm`,
		} {
			if err := db.Exec(ext).Error; err != nil {
				log.Error("Не удалось включить расширение", zap.String("sql", ext), zap.Error(err))
				return err
			}
		}
		log.Info("Расширения PostgreSQL успешно созданы")
	}

	// Таблицы
	log.Info("Создание таблиц каталога и заказов")
	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Brand{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.Address{},
	); err != nil {
		log.Error("Не удалось создать таблицы", zap.Error(err))
		return err
	}
	log.Info("Таблицы успешно созданы")

	// Триггеры updated_at
	if opt.CreateUpdatedAtTrigger {
		log.Info("Создание триггеров updated_at")
		if err := db.Exec(`
CREATE OR REPLACE FUNCTION set_updated_at() RETURNS trigger AS $$
BEGIN NEW.updated_at = now(); RETURN NEW; END; $$ LANGUAGE plpgsql;
`).Error; err != nil {
			log.Error("Не удалось создать функцию set_updated_at", zap.Error(err))
			return err
		}
		for _, tbl := range []string{"users", "categories", "brands", "products", "orders", "order_items", "addresses"} {
			if err := db.Exec(`
DROP TRIGGER IF EXISTS trg_` + tbl + `_updated ON ` + tbl + `;
CREATE TRIGGER trg_` + tbl + `_updated
BEFORE UPDATE ON ` + tbl + `
FOR EACH ROW EXECUTE FUNCTION set_updated_at();
`).Error; err != nil {
				log.Error("Не удалось создать триггер updated_at", zap.String("table", tbl), zap.Error(err))
				return err
			}
		}
		log.Info("Триггеры updated_at успешно созданы")
	}

	// CHECK-constraint
	if opt.CreateChecks {
		log.Info("Создание CHECK-ограничений")

		// Статусы (так как храним TEXT)
		if err := db.Exec(`
ALTER TABLE orders
  DROP CONSTRAINT IF EXISTS chk_orders_status_allowed;
ALTER TABLE orders
  ADD CONSTRAINT chk_orders_status_allowed
  CHECK (status IN ('new','processing','shipped','delivered','cancelled'));
`).Error; err != nil {
			log.Error("Не удалось создать CHECK для статусов заказа", zap.Error(err))
			return err
		}

		if err := db.Exec(`
ALTER TABLE orders
  DROP CONSTRAINT IF EXISTS chk_orders_payment_status_allowed;
ALTER TABLE orders
  ADD CONSTRAINT chk_orders_payment_status_allowed
  CHECK (payment_status IN ('pending','paid','failed'));
`).Error; err != nil {
			log.Error("Не удалось создать CHECK для статусов оплаты", zap.Error(err))
			return err
		}

		if err := db.Exec(`
ALTER TABLE orders
  DROP CONSTRAINT IF EXISTS chk_orders_payment_method_allowed;
ALTER TABLE orders
  ADD CONSTRAINT chk_orders_payment_method_allowed
  CHECK (payment_method IN ('stripe','cod'));
`).Error; err != nil {
			log.Error("Не удалось создать CHECK для способов оплаты", zap.Error(err))
			return err
		}

		// Количество >= 1
		if err := db.Exec(`
ALTER TABLE order_items
  DROP CONSTRAINT IF EXISTS chk_order_items_quantity_min_one;
ALTER TABLE order_items
  ADD CONSTRAINT chk_order_items_quantity_min_one
  CHECK (quantity >= 1);
`).Error; err != nil {
			log.Error("Не удалось создать CHECK для order_items.quantity", zap.Error(err))
			return err
		}

		// Суммы неотрицательные
		if err := db.Exec(`
ALTER TABLE order_items
  DROP CONSTRAINT IF EXISTS chk_order_items_amounts_non_negative;
ALTER TABLE order_items
  ADD CONSTRAINT chk_order_items_amounts_non_negative
  CHECK (unit_amount_cents >= 0 AND total_cents >= 0);
`).Error; err != nil {
			log.Error("Не удалось создать CHECK для сумм в order_items", zap.Error(err))
			return err
		}
		if err := db.Exec(`
ALTER TABLE orders
  DROP CONSTRAINT IF EXISTS chk_orders_grand_total_non_negative;
ALTER TABLE orders
  ADD CONSTRAINT chk_orders_grand_total_non_negative
  CHECK (grand_total_cents >= 0);
`).Error; err != nil {
			log.Error("Не удалось создать CHECK для orders.grand_total_cents", zap.Error(err))
			return err
		}
		if err := db.Exec(`
ALTER TABLE products
  DROP CONSTRAINT IF EXISTS chk_products_price_non_negative;
ALTER TABLE products
  ADD CONSTRAINT chk_products_price_non_negative
  CHECK (price_cents >= 0);
`).Error; err != nil {
			log.Error("Не удалось создать CHECK для products.price_cents", zap.Error(err))
			return err
		}

		log.Info("CHECK-ограничения успешно созданы")
	}

	// Индексы
	if opt.CreateIndexes {
		log.Info("Создание индексов")

		for _, stmt := range []string{
			// Композитный UNIQUE(order_id, product_id) на случай если тегами не создался
			`CREATE UNIQUE INDEX IF NOT EXISTS ux_order_items_order_product ON order_items (order_id, product_id)`,
			// Для выборок: заказы пользователя по дате
			`CREATE INDEX IF NOT EXISTS ix_orders_user_created ON orders (user_id, created_at DESC)`,
			`CREATE INDEX IF NOT EXISTS ix_orders_status_created ON orders (status, created_at DESC)`,
			// Витрина: активные товары по категории/бренду и цене
			`CREATE INDEX IF NOT EXISTS ix_products_category_active ON products (category_id, is_active)`,
			`CREATE INDEX IF NOT EXISTS ix_products_brand_active ON products (brand_id, is_active)`,
			`CREATE INDEX IF NOT EXISTS ix_products_price ON products (price_cents)`,
			// Поиск по имени
			`CREATE INDEX IF NOT EXISTS ix_products_name_trgm ON products USING gin (lower(name) gin_trgm_ops)`,
		} {
			if err := db.Exec(stmt).Error; err != nil {
				log.Error("Не удалось создать индекс", zap.String("sql", stmt), zap.Error(err))
				return err
			}
		}

		log.Info("Индексы успешно созданы")
	}

	// Внешние ключи
	if opt.CreateFKsViaSQL {
		log.Info("Создание внешних ключей")

		if err := db.Exec(`
ALTER TABLE order_items
  DROP CONSTRAINT IF EXISTS fk_order_items_order,
  ADD CONSTRAINT fk_order_items_order
    FOREIGN KEY (order_id) REFERENCES orders(id) ON DELETE CASCADE;
`).Error; err != nil {
			log.Error("Не удалось создать FK order_items.order_id -> orders.id", zap.Error(err))
			return err
		}

		if err := db.Exec(`
ALTER TABLE addresses
  DROP CONSTRAINT IF EXISTS fk_addresses_order,
  ADD CONSTRAINT fk_addresses_order
    FOREIGN KEY (order_id) REFERENCES orders(id) ON DELETE CASCADE;
`).Error; err != nil {
			log.Error("Не удалось создать FK addresses.order_id -> orders.id", zap.Error(err))
			return err
		}

		if err := db.Exec(`
ALTER TABLE orders
  DROP CONSTRAINT IF EXISTS fk_orders_user,
  ADD CONSTRAINT fk_orders_user
    FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE;
`).Error; err != nil {
			log.Error("Не удалось создать FK orders.user_id -> users.id", zap.Error(err))
			return err
		}

		if err := db.Exec(`
ALTER TABLE products
  DROP CONSTRAINT IF EXISTS fk_products_category,
  ADD CONSTRAINT fk_products_category
    FOREIGN KEY (category_id) REFERENCES categories(id) ON DELETE RESTRICT;
ALTER TABLE products
  DROP CONSTRAINT IF EXISTS fk_products_brand,
  ADD CONSTRAINT fk_products_brand
    FOREIGN KEY (brand_id) REFERENCES brands(id) ON DELETE RESTRICT;
`).Error; err != nil {
			log.Error("Не удалось создать FK products -> categories/brands", zap.Error(err))
			return err
		}

		log.Info("Внешние ключи успешно созданы")
	}

	log.Info("Миграция базы данных магазина успешно завершена")
	return nil
}
