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

package web

import (
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/roastmyidea/internal/roast/internal/domain"
	"github.com/ecodeclub/roastmyidea/internal/roast/internal/errs"
	"github.com/gotomicro/ego/core/elog"
)

// 读取的上限比业务上限稍大，超限的文件交给 service 判断
const maxReadSize = 20<<20 + 1

func (h *Handler) Upload(ctx *ginx.Context) (ginx.Result, error) {
	form, err := ctx.MultipartForm()
	if err != nil {
		return h.fail(ctx, errs.ValidationEmpty, "Roast ID is required", err)
	}
	sn := strings.TrimSpace(firstValue(form.Value["roastId"]))
	if sn == "" {
		return h.fail(ctx, errs.ValidationEmpty, "Roast ID is required", fmt.Errorf("缺少 roastId"))
	}
	var deck *domain.File
	if headers := form.File["pitchDeck"]; len(headers) > 0 {
		f, err1 := readFile(headers[0])
		if err1 != nil {
			h.logger.Warn("读取路演文档失败", elog.String("sn", sn), elog.FieldErr(err1))
		} else {
			deck = &f
		}
	}
	images := make([]domain.File, 0, len(form.File["images"]))
	for _, header := range form.File["images"] {
		f, err1 := readFile(header)
		if err1 != nil {
			h.logger.Warn("读取图片失败", elog.String("sn", sn), elog.FieldErr(err1))
			continue
		}
		images = append(images, f)
	}
	res := h.uploadSvc.Upload(ctx, sn, deck, images)
	return ginx.Result{
		Data: UploadResp{
			Success: true,
			Files: Files{
				PitchDeckUrl: res.PitchDeckURL,
				ImageUrls:    res.ImageURLs,
			},
		},
	}, nil
}

func readFile(header *multipart.FileHeader) (domain.File, error) {
	file, err := header.Open()
	if err != nil {
		return domain.File{}, err
	}
	defer file.Close()
	data, err := io.ReadAll(io.LimitReader(file, maxReadSize))
	if err != nil {
		return domain.File{}, err
	}
	return domain.File{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

func firstValue(vals []string) string {
	if len(vals) == 0 {
		return ""
	}
	return vals[0]
}
