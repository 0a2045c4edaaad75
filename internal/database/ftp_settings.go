package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"mockup-catalog-backend/internal/models"
)

const ftpColumns = `id, host, port, username, password, is_default, created_at, updated_at`

func (d *DatabaseClient) ListFTPSettings(ctx context.Context) ([]models.FTPSetting, error) {
	var settings []models.FTPSetting
	err := d.db.SelectContext(ctx, &settings, `
		SELECT `+ftpColumns+`
		FROM ftp_settings
		ORDER BY is_default DESC, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list ftp settings: %w", err)
	}
	return settings, nil
}

func (d *DatabaseClient) GetFTPSetting(ctx context.Context, id int64) (*models.FTPSetting, error) {
	var setting models.FTPSetting
	err := d.db.GetContext(ctx, &setting, `SELECT `+ftpColumns+` FROM ftp_settings WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get ftp setting: %w", err)
	}
	return &setting, nil
}

// GetDefaultFTPSetting returns the setting flagged as default, or nil.
func (d *DatabaseClient) GetDefaultFTPSetting(ctx context.Context) (*models.FTPSetting, error) {
	var setting models.FTPSetting
	err := d.db.GetContext(ctx, &setting, `
		SELECT `+ftpColumns+`
		FROM ftp_settings
		WHERE is_default
		ORDER BY updated_at DESC
		LIMIT 1
	`)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get default ftp setting: %w", err)
	}
	return &setting, nil
}

func (d *DatabaseClient) CreateFTPSetting(ctx context.Context, s *models.FTPSetting) error {
	tx, err := d.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if s.IsDefault {
		if _, err := tx.ExecContext(ctx, `UPDATE ftp_settings SET is_default = FALSE WHERE is_default`); err != nil {
			return fmt.Errorf("failed to clear default ftp setting: %w", err)
		}
	}

	err = tx.QueryRowxContext(ctx, `
		INSERT INTO ftp_settings (host, port, username, password, is_default)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, s.Host, s.Port, s.Username, s.Password, s.IsDefault).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create ftp setting: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit ftp setting: %w", err)
	}
	return nil
}

func (d *DatabaseClient) UpdateFTPSetting(ctx context.Context, s *models.FTPSetting) error {
	tx, err := d.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if s.IsDefault {
		if _, err := tx.ExecContext(ctx, `UPDATE ftp_settings SET is_default = FALSE WHERE is_default AND id <> $1`, s.ID); err != nil {
			return fmt.Errorf("failed to clear default ftp setting: %w", err)
		}
	}

	result, err := tx.ExecContext(ctx, `
		UPDATE ftp_settings
		SET host = $1, port = $2, username = $3, password = $4, is_default = $5, updated_at = NOW()
		WHERE id = $6
	`, s.Host, s.Port, s.Username, s.Password, s.IsDefault, s.ID)
	if err != nil {
		return fmt.Errorf("failed to update ftp setting: %w", err)
	}
	if err := checkAffected(result); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit ftp setting: %w", err)
	}
	return nil
}

func (d *DatabaseClient) DeleteFTPSetting(ctx context.Context, id int64) error {
	result, err := d.db.ExecContext(ctx, `DELETE FROM ftp_settings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete ftp setting: %w", err)
	}
	return checkAffected(result)
}

// SetDefaultFTPSetting flags id as the default and clears the flag elsewhere.
func (d *DatabaseClient) SetDefaultFTPSetting(ctx context.Context, id int64) error {
	tx, err := d.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `UPDATE ftp_settings SET is_default = FALSE WHERE is_default AND id <> $1`, id); err != nil {
		return fmt.Errorf("failed to clear default ftp setting: %w", err)
	}

	result, err := tx.ExecContext(ctx, `UPDATE ftp_settings SET is_default = TRUE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to set default ftp setting: %w", err)
	}
	if err := checkAffected(result); err != nil {
		return err
	}

	return tx.Commit()
}
