package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"mockup-catalog-backend/internal/catalog"
	"mockup-catalog-backend/internal/database"
	"mockup-catalog-backend/internal/dynamicmockups"
	"mockup-catalog-backend/internal/ftp"
	"mockup-catalog-backend/internal/mockup"
	"mockup-catalog-backend/internal/models"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
)

type ProductStore interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id int64) (*models.Product, error)
	CreateProduct(ctx context.Context, p *models.Product) error
	UpdateProduct(ctx context.Context, p *models.Product) error
	DeleteProduct(ctx context.Context, id int64) error
	CountProducts(ctx context.Context) (int, error)
	ProductSKUExists(ctx context.Context, sku string) (bool, error)
	ListCategories(ctx context.Context) ([]string, error)
	RenameParentSKU(ctx context.Context, oldSKU, newSKU string) (int64, error)
}

type GeneratedStore interface {
	ListGeneratedProducts(ctx context.Context) ([]models.GeneratedProduct, error)
	GetGeneratedProduct(ctx context.Context, id int64) (*models.GeneratedProduct, error)
	ListGeneratedByParentSKU(ctx context.Context, parentSKU string) ([]models.GeneratedProduct, error)
	CreateGeneratedProduct(ctx context.Context, g *models.GeneratedProduct) error
	DeleteGeneratedProduct(ctx context.Context, id int64) error
}

type FTPSettingStore interface {
	ListFTPSettings(ctx context.Context) ([]models.FTPSetting, error)
	GetFTPSetting(ctx context.Context, id int64) (*models.FTPSetting, error)
	GetDefaultFTPSetting(ctx context.Context) (*models.FTPSetting, error)
	CreateFTPSetting(ctx context.Context, s *models.FTPSetting) error
	UpdateFTPSetting(ctx context.Context, s *models.FTPSetting) error
	DeleteFTPSetting(ctx context.Context, id int64) error
	SetDefaultFTPSetting(ctx context.Context, id int64) error
}

// TemplateSource lists the mockup templates of the rendering account.
type TemplateSource interface {
	ListMockups(ctx context.Context) ([]dynamicmockups.Mockup, error)
	RetryWithBackoff(ctx context.Context, fn func() error, maxRetries int) error
}

// ImageFetcher checks and downloads remote images.
type ImageFetcher interface {
	CheckImage(ctx context.Context, imageURL string) error
	Download(ctx context.Context, downloadURL string) ([]byte, error)
}

type ObjectStorage interface {
	UploadFile(ctx context.Context, storagePath string, data []byte, contentType string) (string, error)
}

type RunStore interface {
	SaveRun(ctx context.Context, run *mockup.Run) error
	GetRun(ctx context.Context, id string) (*mockup.Run, error)
	DeleteRun(ctx context.Context, id string) error
}

type FTPClient interface {
	Upload(ctx context.Context, settings *ftp.Settings, filename string, data io.Reader) (string, error)
	Test(ctx context.Context, settings *ftp.Settings) (string, error)
}

// NewValidator returns a validator with the catalog's custom rules registered.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("skuprefix", func(fl validator.FieldLevel) bool {
		return catalog.ValidatePrefix(fl.Field().String()) == nil
	})
	return v
}

func validateStruct(v *validator.Validate, s interface{}) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "skuprefix":
		return catalog.ErrInvalidPrefix.Error()
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// storeErr maps a repository miss onto ErrNotFound.
func storeErr(err error) error {
	if errors.Is(err, database.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
