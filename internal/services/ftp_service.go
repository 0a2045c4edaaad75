package services

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"mockup-catalog-backend/internal/models"
)

type FTPService struct {
	store    FTPSettingStore
	client   FTPClient
	validate *validator.Validate
	logger   *zap.Logger
}

func NewFTPService(store FTPSettingStore, client FTPClient, logger *zap.Logger) *FTPService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FTPService{
		store:    store,
		client:   client,
		validate: NewValidator(),
		logger:   logger,
	}
}

func (s *FTPService) List(ctx context.Context) ([]models.FTPSetting, error) {
	settings, err := s.store.ListFTPSettings(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = []models.FTPSetting{}
	}
	return settings, nil
}

// Create stores a new setting. The first setting saved becomes the default.
func (s *FTPService) Create(ctx context.Context, req models.FTPSettingRequest) (*models.FTPSetting, error) {
	req = normalizeFTPRequest(req)
	if err := validateStruct(s.validate, req); err != nil {
		return nil, err
	}

	setting := &models.FTPSetting{
		Host:      req.Host,
		Port:      req.Port,
		Username:  req.Username,
		Password:  req.Password,
		IsDefault: req.IsDefault,
	}
	if !setting.IsDefault {
		current, err := s.store.GetDefaultFTPSetting(ctx)
		if err != nil {
			return nil, err
		}
		setting.IsDefault = current == nil
	}

	if err := s.store.CreateFTPSetting(ctx, setting); err != nil {
		return nil, err
	}
	s.logger.Info("ftp setting created", zap.Int64("id", setting.ID), zap.String("host", setting.Host))
	return setting, nil
}

func (s *FTPService) Update(ctx context.Context, id int64, req models.FTPSettingRequest) (*models.FTPSetting, error) {
	req = normalizeFTPRequest(req)
	if err := validateStruct(s.validate, req); err != nil {
		return nil, err
	}

	setting, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	setting.Host = req.Host
	setting.Port = req.Port
	setting.Username = req.Username
	setting.Password = req.Password
	setting.IsDefault = req.IsDefault || setting.IsDefault

	if err := s.store.UpdateFTPSetting(ctx, setting); err != nil {
		return nil, storeErr(err)
	}
	return setting, nil
}

// Delete refuses to remove the default while other settings exist.
func (s *FTPService) Delete(ctx context.Context, id int64) error {
	setting, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	if setting.IsDefault {
		all, err := s.store.ListFTPSettings(ctx)
		if err != nil {
			return err
		}
		if len(all) > 1 {
			return invalid("set another server as default before deleting the default FTP setting")
		}
	}
	return storeErr(s.store.DeleteFTPSetting(ctx, id))
}

func (s *FTPService) SetDefault(ctx context.Context, id int64) error {
	return storeErr(s.store.SetDefaultFTPSetting(ctx, id))
}

// Test tries the given connection details without saving them. Connection
// problems are reported in the result.
func (s *FTPService) Test(ctx context.Context, req models.FTPSettingRequest) (models.FTPResultResponse, error) {
	req = normalizeFTPRequest(req)
	if err := validateStruct(s.validate, req); err != nil {
		return models.FTPResultResponse{}, err
	}

	msg, err := s.client.Test(ctx, ftpSettings(&models.FTPSetting{
		Host:     req.Host,
		Port:     req.Port,
		Username: req.Username,
		Password: req.Password,
	}))
	if err != nil {
		return models.FTPResultResponse{Success: false, Message: err.Error()}, nil
	}
	return models.FTPResultResponse{Success: true, Message: msg}, nil
}

func (s *FTPService) get(ctx context.Context, id int64) (*models.FTPSetting, error) {
	setting, err := s.store.GetFTPSetting(ctx, id)
	if err != nil {
		return nil, err
	}
	if setting == nil {
		return nil, ErrNotFound
	}
	return setting, nil
}

func normalizeFTPRequest(req models.FTPSettingRequest) models.FTPSettingRequest {
	req.Host = strings.TrimSpace(req.Host)
	req.Username = strings.TrimSpace(req.Username)
	if req.Port == 0 {
		req.Port = models.DefaultFTPPort
	}
	return req
}
