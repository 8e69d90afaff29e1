// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/roastmyidea/internal/pkg/objstore"
	"github.com/ecodeclub/roastmyidea/internal/roast/internal/domain"
	"github.com/ecodeclub/roastmyidea/internal/roast/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

const (
	maxPitchDeckSize = 20 << 20
	maxImageSize     = 5 << 20
	maxImages        = 5
	uploadParallel   = 3
)

var imageExts = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpg",
	"image/gif":  "gif",
	"image/webp": "webp",
}

//go:generate mockgen -source=./upload.go -destination=../../mocks/upload.mock.go -package=roastmocks UploadService
type UploadService interface {
	// Upload 单个文件失败只记录日志，不影响其他文件
	Upload(ctx context.Context, sn string, deck *domain.File, images []domain.File) domain.UploadResult
}

type uploadService struct {
	store  objstore.Storage
	repo   repository.RoastRepository
	now    func() time.Time
	logger *elog.Component
}

func NewUploadService(store objstore.Storage, repo repository.RoastRepository) UploadService {
	return &uploadService{
		store:  store,
		repo:   repo,
		now:    time.Now,
		logger: elog.DefaultLogger,
	}
}

func (u *uploadService) Upload(ctx context.Context, sn string,
	deck *domain.File, images []domain.File) domain.UploadResult {
	var (
		res   domain.UploadResult
		files []domain.RoastFile
	)
	if deck != nil {
		url, err := u.uploadPitchDeck(ctx, sn, *deck)
		if err != nil {
			u.logger.Error("上传路演文档失败", elog.String("sn", sn), elog.FieldErr(err))
		} else {
			res.PitchDeckURL = url
			files = append(files, domain.RoastFile{Type: domain.FileTypePitchDeck, URL: url})
		}
	}

	if len(images) > maxImages {
		images = images[:maxImages]
	}
	urls := make([]string, len(images))
	var eg errgroup.Group
	eg.SetLimit(uploadParallel)
	for i, img := range images {
		eg.Go(func() error {
			url, err := u.uploadImage(ctx, sn, i, img)
			if err != nil {
				u.logger.Error("上传图片失败",
					elog.String("sn", sn),
					elog.Int("index", i),
					elog.FieldErr(err))
				return nil
			}
			urls[i] = url
			return nil
		})
	}
	_ = eg.Wait()
	res.ImageURLs = slice.FilterMap(urls, func(idx int, src string) (string, bool) {
		return src, src != ""
	})
	for _, url := range res.ImageURLs {
		files = append(files, domain.RoastFile{Type: domain.FileTypeImage, URL: url})
	}

	if len(files) > 0 {
		if err := u.repo.SaveFiles(ctx, sn, files); err != nil {
			u.logger.Error("记录上传文件失败", elog.String("sn", sn), elog.FieldErr(err))
		}
	}
	return res
}

func (u *uploadService) uploadPitchDeck(ctx context.Context, sn string, f domain.File) (string, error) {
	if len(f.Data) > maxPitchDeckSize {
		return "", fmt.Errorf("文件 %s 超过 20MB", f.Name)
	}
	if contentType(f) != "application/pdf" {
		return "", fmt.Errorf("文件 %s 不是 PDF", f.Name)
	}
	path := fmt.Sprintf("roasts/%s/pitch-deck-%d.pdf", sn, u.now().UnixMilli())
	return u.store.Put(ctx, path, "application/pdf", f.Data)
}

func (u *uploadService) uploadImage(ctx context.Context, sn string, idx int, f domain.File) (string, error) {
	if len(f.Data) > maxImageSize {
		return "", fmt.Errorf("图片 %s 超过 5MB", f.Name)
	}
	ct := contentType(f)
	ext, ok := imageExts[ct]
	if !ok {
		return "", fmt.Errorf("图片 %s 的类型 %s 不支持", f.Name, ct)
	}
	if nameExt := strings.TrimPrefix(strings.ToLower(filepath.Ext(f.Name)), "."); nameExt != "" {
		ext = nameExt
	}
	path := fmt.Sprintf("roasts/%s/image-%d-%d.%s", sn, idx, u.now().UnixMilli(), ext)
	return u.store.Put(ctx, path, ct, f.Data)
}

// contentType 优先使用客户端声明的类型
func contentType(f domain.File) string {
	ct := f.ContentType
	if ct == "" || ct == "application/octet-stream" {
		ct = http.DetectContentType(f.Data)
	}
	if idx := strings.IndexByte(ct, ';'); idx >= 0 {
		ct = ct[:idx]
	}
	return strings.TrimSpace(strings.ToLower(ct))
}
