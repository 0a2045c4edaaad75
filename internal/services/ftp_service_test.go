package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"mockup-catalog-backend/internal/ftp"
	"mockup-catalog-backend/internal/models"
	"mockup-catalog-backend/internal/services"
)

func ftpRequest(host string, isDefault bool) models.FTPSettingRequest {
	return models.FTPSettingRequest{Host: host, Username: "upload", Password: "secret", IsDefault: isDefault}
}

func TestFTPService_CreateAndDefaults(t *testing.T) {
	db := newMemDB()
	svc := services.NewFTPService(db, &fakeFTP{}, nil)
	ctx := context.Background()

	first, err := svc.Create(ctx, ftpRequest(" ftp.one.com ", false))
	require.NoError(t, err)
	assert.True(t, first.IsDefault, "first setting becomes the default")
	assert.Equal(t, models.DefaultFTPPort, first.Port)
	assert.Equal(t, "ftp.one.com", first.Host)

	second, err := svc.Create(ctx, ftpRequest("ftp.two.com", true))
	require.NoError(t, err)
	assert.True(t, second.IsDefault)

	settings, err := svc.List(ctx)
	require.NoError(t, err)
	defaults := 0
	for _, s := range settings {
		if s.IsDefault {
			defaults++
			assert.Equal(t, second.ID, s.ID)
		}
	}
	assert.Equal(t, 1, defaults)

	require.NoError(t, svc.SetDefault(ctx, first.ID))
	current, err := db.GetDefaultFTPSetting(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, current.ID)

	assert.ErrorIs(t, svc.SetDefault(ctx, 999), services.ErrNotFound)
}

func TestFTPService_Validation(t *testing.T) {
	svc := services.NewFTPService(newMemDB(), &fakeFTP{}, nil)
	ctx := context.Background()

	bad := ftpRequest("ftp.one.com", false)
	bad.Port = 70000
	_, err := svc.Create(ctx, bad)
	assert.ErrorIs(t, err, services.ErrValidation)

	noHost := ftpRequest("  ", false)
	_, err = svc.Create(ctx, noHost)
	assert.ErrorIs(t, err, services.ErrValidation)

	noPassword := ftpRequest("ftp.one.com", false)
	noPassword.Password = ""
	_, err = svc.Create(ctx, noPassword)
	assert.ErrorIs(t, err, services.ErrValidation)
}

func TestFTPService_Update(t *testing.T) {
	db := newMemDB()
	svc := services.NewFTPService(db, &fakeFTP{}, nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, ftpRequest("ftp.one.com", false))
	require.NoError(t, err)

	req := ftpRequest("ftp.renamed.com", false)
	req.Port = 2121
	updated, err := svc.Update(ctx, created.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "ftp.renamed.com", updated.Host)
	assert.Equal(t, 2121, updated.Port)
	assert.True(t, updated.IsDefault, "default flag is not dropped by an edit")

	_, err = svc.Update(ctx, 999, req)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestFTPService_DeleteDefaultGuard(t *testing.T) {
	db := newMemDB()
	svc := services.NewFTPService(db, &fakeFTP{}, nil)
	ctx := context.Background()

	first, err := svc.Create(ctx, ftpRequest("ftp.one.com", false))
	require.NoError(t, err)
	second, err := svc.Create(ctx, ftpRequest("ftp.two.com", false))
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, first.ID), services.ErrValidation)
	require.NoError(t, svc.Delete(ctx, second.ID))
	require.NoError(t, svc.Delete(ctx, first.ID), "last setting may be deleted")
	assert.ErrorIs(t, svc.Delete(ctx, first.ID), services.ErrNotFound)
}

func TestFTPService_Test(t *testing.T) {
	client := &fakeFTP{}
	svc := services.NewFTPService(newMemDB(), client, nil)
	ctx := context.Background()

	result, err := svc.Test(ctx, ftpRequest("ftp.one.com", false))
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "Connected successfully to ftp.one.com. Server message: ok", result.Message)
	assert.Equal(t, 21, client.settings.Port)

	client.err = &ftp.Error{Kind: ftp.KindConnection, Err: errors.New("dial tcp: i/o timeout")}
	result, err = svc.Test(ctx, ftpRequest("ftp.one.com", false))
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "Failed to connect to FTP server: dial tcp: i/o timeout", result.Message)
}
