package minio

import (
	"context"
	"net/url"
	"time"

	"github.com/DRSN-tech/frag-avenue/internal/cfg"
	"github.com/DRSN-tech/frag-avenue/pkg/e"
	"github.com/jimlawless/whereami"
	"github.com/minio/minio-go/v7"
)

// ImageRepo выдаёт ссылки на изображения товаров из бакета MinIO.
type ImageRepo struct {
	mc  *minio.Client
	cfg *cfg.MinIOCfg
}

func NewImageRepo(mc *minio.Client, cfg *cfg.MinIOCfg) *ImageRepo {
	return &ImageRepo{
		mc:  mc,
		cfg: cfg,
	}
}

// PresignGet возвращает подписанную ссылку на объект и срок её действия.
func (i *ImageRepo) PresignGet(ctx context.Context, key string) (string, time.Duration, error) {
	u, err := i.mc.PresignedGetObject(ctx, i.cfg.BucketName, key, i.cfg.PresignTTL, url.Values{})
	if err != nil {
		return "", 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return u.String(), i.cfg.PresignTTL, nil
}
