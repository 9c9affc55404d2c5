package bundle

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/dailydoses/humor-backend/internal/domain"
)

// CoverUploadInput holds the parsed multipart fields of a cover upload.
// File is nil for the delete op, which carries no file part.
type CoverUploadInput struct {
	BundleUUID string
	Op         domain.CoverOp
	Index      int
	Password   string
	File       io.Reader
	Ext        string
}

// Validate checks the field combination before any I/O happens.
func (i CoverUploadInput) Validate() error {
	if i.BundleUUID == "" {
		return domain.NewValidationError("bundle_uuid", "required")
	}
	if !i.Op.IsValid() {
		return domain.NewValidationError("op", "must be add, replace or delete")
	}
	if i.Op != domain.CoverOpAdd && i.Index < 0 {
		return domain.NewValidationError("index", "must be non-negative")
	}
	if i.Op != domain.CoverOpDelete && i.File == nil {
		return domain.NewValidationError("file", "required")
	}
	return nil
}

// UploadCover runs the cover image pipeline: validate, gate, store the blob,
// then mutate the bundle's cover_img_list inside a transaction. Replaced or
// spliced-out objects are deleted from the store only after the list update
// commits, so a rollback never loses a referenced image.
func (s *Service) UploadCover(ctx context.Context, input CoverUploadInput) ([]string, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if err := s.gate.Verify(input.Password); err != nil {
		return nil, err
	}

	var uploadedURL string
	if input.Op != domain.CoverOpDelete {
		url, err := s.store.Save(ctx, input.File, input.Ext)
		if err != nil {
			return nil, fmt.Errorf("store cover image: %w", err)
		}
		uploadedURL = url
	}

	var newList []string
	var orphaned []string

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		b, err := s.bundles.GetByUUID(txCtx, input.BundleUUID)
		if err != nil {
			return fmt.Errorf("get bundle: %w", err)
		}

		list := append([]string(nil), b.CoverImgList...)

		switch input.Op {
		case domain.CoverOpAdd:
			list = append(list, uploadedURL)

		case domain.CoverOpReplace:
			if input.Index >= len(list) {
				return domain.NewValidationError("index", "out of range")
			}
			orphaned = append(orphaned, list[input.Index])
			list[input.Index] = uploadedURL

		case domain.CoverOpDelete:
			if input.Index >= len(list) {
				return domain.NewValidationError("index", "out of range")
			}
			orphaned = append(orphaned, list[input.Index])
			list = append(list[:input.Index], list[input.Index+1:]...)
		}

		if err := s.bundles.UpdateCoverImgList(txCtx, input.BundleUUID, list); err != nil {
			return fmt.Errorf("update cover list: %w", err)
		}

		newList = list
		return nil
	})
	if err != nil {
		// The DB mutation failed, so the freshly stored blob is the orphan.
		if uploadedURL != "" {
			if delErr := s.store.Delete(ctx, uploadedURL); delErr != nil {
				s.log.WarnContext(ctx, "orphaned cover image not cleaned up",
					slog.String("url", uploadedURL),
					slog.String("error", delErr.Error()),
				)
			}
		}
		return nil, err
	}

	for _, url := range orphaned {
		if delErr := s.store.Delete(ctx, url); delErr != nil {
			s.log.WarnContext(ctx, "replaced cover image not cleaned up",
				slog.String("url", url),
				slog.String("error", delErr.Error()),
			)
		}
	}

	s.log.InfoContext(ctx, "cover list updated",
		slog.String("bundle_uuid", input.BundleUUID),
		slog.String("op", string(input.Op)),
		slog.Int("covers", len(newList)),
	)

	return newList, nil
}

// ThumbnailUploadInput holds the parsed multipart fields of a thumbnail upload.
type ThumbnailUploadInput struct {
	BundleUUID string
	Password   string
	File       io.Reader
	Ext        string
}

// UploadThumbnail stores a new thumbnail and points the bundle at it,
// deleting the previous thumbnail object after the swap commits.
func (s *Service) UploadThumbnail(ctx context.Context, input ThumbnailUploadInput) (string, error) {
	if input.BundleUUID == "" {
		return "", domain.NewValidationError("bundle_uuid", "required")
	}
	if input.File == nil {
		return "", domain.NewValidationError("file", "required")
	}

	if err := s.gate.Verify(input.Password); err != nil {
		return "", err
	}

	url, err := s.store.Save(ctx, input.File, input.Ext)
	if err != nil {
		return "", fmt.Errorf("store thumbnail: %w", err)
	}

	var previous *string
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		b, err := s.bundles.GetByUUID(txCtx, input.BundleUUID)
		if err != nil {
			return fmt.Errorf("get bundle: %w", err)
		}
		previous = b.ThumbnailPath

		return s.bundles.UpdateThumbnail(txCtx, input.BundleUUID, &url)
	})
	if err != nil {
		if delErr := s.store.Delete(ctx, url); delErr != nil {
			s.log.WarnContext(ctx, "orphaned thumbnail not cleaned up",
				slog.String("url", url),
				slog.String("error", delErr.Error()),
			)
		}
		return "", err
	}

	if previous != nil {
		if delErr := s.store.Delete(ctx, *previous); delErr != nil {
			s.log.WarnContext(ctx, "replaced thumbnail not cleaned up",
				slog.String("url", *previous),
				slog.String("error", delErr.Error()),
			)
		}
	}

	s.log.InfoContext(ctx, "thumbnail updated", slog.String("bundle_uuid", input.BundleUUID))

	return url, nil
}
