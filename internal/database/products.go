package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"mockup-catalog-backend/internal/models"
)

const productColumns = `id, product_name, item_sku, parent_child, parent_sku, size, color,
	mockup_id, mockup_ids, smart_object_uuid, smart_object_uuids, image_url,
	marketplace_title, category, tax_class, quantity, price, created_at, updated_at`

func (d *DatabaseClient) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := d.db.SelectContext(ctx, &products, `
		SELECT `+productColumns+`
		FROM products
		ORDER BY id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// GetProduct returns nil, nil when no product has the id.
func (d *DatabaseClient) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	var product models.Product
	err := d.db.GetContext(ctx, &product, `
		SELECT `+productColumns+`
		FROM products
		WHERE id = $1
	`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return &product, nil
}

// CreateProduct inserts p and fills in its id and timestamps.
func (d *DatabaseClient) CreateProduct(ctx context.Context, p *models.Product) error {
	stmt, err := d.db.PrepareNamedContext(ctx, `
		INSERT INTO products (
			product_name, item_sku, parent_child, parent_sku, size, color,
			mockup_id, mockup_ids, smart_object_uuid, smart_object_uuids, image_url,
			marketplace_title, category, tax_class, quantity, price
		) VALUES (
			:product_name, :item_sku, :parent_child, :parent_sku, :size, :color,
			:mockup_id, :mockup_ids, :smart_object_uuid, :smart_object_uuids, :image_url,
			:marketplace_title, :category, :tax_class, :quantity, :price
		)
		RETURNING id, created_at, updated_at
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare product insert: %w", err)
	}
	defer stmt.Close()

	if err := stmt.GetContext(ctx, p, p); err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

func (d *DatabaseClient) UpdateProduct(ctx context.Context, p *models.Product) error {
	result, err := d.db.NamedExecContext(ctx, `
		UPDATE products SET
			product_name = :product_name,
			item_sku = :item_sku,
			parent_child = :parent_child,
			parent_sku = :parent_sku,
			size = :size,
			color = :color,
			mockup_id = :mockup_id,
			mockup_ids = :mockup_ids,
			smart_object_uuid = :smart_object_uuid,
			smart_object_uuids = :smart_object_uuids,
			image_url = :image_url,
			marketplace_title = :marketplace_title,
			category = :category,
			tax_class = :tax_class,
			quantity = :quantity,
			price = :price,
			updated_at = NOW()
		WHERE id = :id
	`, p)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	return checkAffected(result)
}

func (d *DatabaseClient) DeleteProduct(ctx context.Context, id int64) error {
	result, err := d.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return checkAffected(result)
}

func (d *DatabaseClient) CountProducts(ctx context.Context) (int, error) {
	var count int
	if err := d.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM products`); err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}

func (d *DatabaseClient) ProductSKUExists(ctx context.Context, sku string) (bool, error) {
	rows, err := d.RawQuery(ctx, `SELECT 1 AS found FROM products WHERE item_sku = $1 LIMIT 1`, sku)
	if err != nil {
		return false, err
	}
	return len(rows) > 0, nil
}

func (d *DatabaseClient) ListCategories(ctx context.Context) ([]string, error) {
	var categories []string
	err := d.db.SelectContext(ctx, &categories, `
		SELECT DISTINCT category
		FROM products
		WHERE category <> ''
		ORDER BY category
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// RenameParentSKU rewrites parent_sku on generated products after a blank's
// SKU changed, so children stay attached.
func (d *DatabaseClient) RenameParentSKU(ctx context.Context, oldSKU, newSKU string) (int64, error) {
	result, err := d.db.ExecContext(ctx, `
		UPDATE generated_products
		SET parent_sku = $1
		WHERE parent_sku = $2
	`, newSKU, oldSKU)
	if err != nil {
		return 0, fmt.Errorf("failed to rename parent sku: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n, nil
}
