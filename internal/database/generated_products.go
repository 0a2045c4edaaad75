package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"mockup-catalog-backend/internal/models"
)

const generatedColumns = `id, product_name, marketplace_title, item_sku, parent_sku,
	parent_product_id, size, color, original_design_url, mockup_urls, mockup_ids,
	smart_object_uuids, is_published, created_at`

func (d *DatabaseClient) ListGeneratedProducts(ctx context.Context) ([]models.GeneratedProduct, error) {
	var products []models.GeneratedProduct
	err := d.db.SelectContext(ctx, &products, `
		SELECT `+generatedColumns+`
		FROM generated_products
		ORDER BY id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list generated products: %w", err)
	}
	return products, nil
}

func (d *DatabaseClient) GetGeneratedProduct(ctx context.Context, id int64) (*models.GeneratedProduct, error) {
	var product models.GeneratedProduct
	err := d.db.GetContext(ctx, &product, `
		SELECT `+generatedColumns+`
		FROM generated_products
		WHERE id = $1
	`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get generated product: %w", err)
	}
	return &product, nil
}

func (d *DatabaseClient) ListGeneratedByParentSKU(ctx context.Context, parentSKU string) ([]models.GeneratedProduct, error) {
	var products []models.GeneratedProduct
	err := d.db.SelectContext(ctx, &products, `
		SELECT `+generatedColumns+`
		FROM generated_products
		WHERE parent_sku = $1
		ORDER BY id
	`, parentSKU)
	if err != nil {
		return nil, fmt.Errorf("failed to list generated products for %s: %w", parentSKU, err)
	}
	return products, nil
}

func (d *DatabaseClient) CreateGeneratedProduct(ctx context.Context, g *models.GeneratedProduct) error {
	stmt, err := d.db.PrepareNamedContext(ctx, `
		INSERT INTO generated_products (
			product_name, marketplace_title, item_sku, parent_sku, parent_product_id,
			size, color, original_design_url, mockup_urls, mockup_ids,
			smart_object_uuids, is_published
		) VALUES (
			:product_name, :marketplace_title, :item_sku, :parent_sku, :parent_product_id,
			:size, :color, :original_design_url, :mockup_urls, :mockup_ids,
			:smart_object_uuids, :is_published
		)
		RETURNING id, created_at
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare generated product insert: %w", err)
	}
	defer stmt.Close()

	if err := stmt.GetContext(ctx, g, g); err != nil {
		return fmt.Errorf("failed to create generated product: %w", err)
	}
	return nil
}

func (d *DatabaseClient) DeleteGeneratedProduct(ctx context.Context, id int64) error {
	result, err := d.db.ExecContext(ctx, `DELETE FROM generated_products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete generated product: %w", err)
	}
	return checkAffected(result)
}
