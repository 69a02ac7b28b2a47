// Copyright (c) 2025 JustTzyy
// SoftWear - retail inventory management core
// This source code is licensed under the MIT license found in the LICENSE file.

package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/JustTzyy/softwear/internal/model"
	"github.com/klauspost/compress/zstd"
)

// Export writes all entries matching the filter to w as zstd-compressed,
// indented JSON. Pagination on the filter is ignored; the export walks every
// page of the result.
func Export(ctx context.Context, b *Browser, f model.AuditLogFilter, w io.Writer) error {
	f.Page = 1
	f.PageSize = MaxPageSize

	data := model.AuditExport{ExportedAt: time.Now().UTC()}
	for {
		entries, total, err := b.Query(ctx, f)
		if err != nil {
			return fmt.Errorf("collect audit entries: %w", err)
		}
		data.Entries = append(data.Entries, entries...)
		data.Total = total
		if len(entries) < f.PageSize || len(data.Entries) >= total {
			break
		}
		f.Page++
	}

	zw, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("create zstd writer: %w", err)
	}
	defer func() { _ = zw.Close() }()
	enc := json.NewEncoder(zw)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&data); err != nil {
		return fmt.Errorf("encode audit export: %w", err)
	}
	return zw.Close() // flush the frame; the deferred Close is then a no-op
}

// ReadExport decodes a zstd-compressed JSON audit export produced by Export.
func ReadExport(r io.Reader) (*model.AuditExport, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("create zstd reader: %w", err)
	}
	defer zr.Close()
	var data model.AuditExport
	if err := json.NewDecoder(zr).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode audit export: %w", err)
	}
	return &data, nil
}
