package property

import (
	"context"
	"errors"
	"fmt"
	"log"
	"mime/multipart"

	"realestate/internal/storage"
)

// Service orchestrates the property aggregate: the row, its image rows
// and their blobs.
//
// Blob and row writes are not wrapped in a cross-store transaction.
// The policy is best-effort: on create/update a storage failure is
// surfaced to the caller and blobs already written stay on disk (the
// property row is kept); storage.Disk.Sweep can reclaim orphans
// offline. On delete, blobs are removed before the row so a failure
// leaves consistent rows rather than dangling paths.
type Service struct {
	repo  Repository
	blobs storage.Store
}

func NewService(repo Repository, blobs storage.Store) *Service {
	return &Service{repo: repo, blobs: blobs}
}

// List returns every property with images attached, newest first.
func (s *Service) List(ctx context.Context) ([]Property, error) {
	return s.repo.ListAll(ctx)
}

// Create persists a new property owned by ownerID and attaches the
// uploaded files. Input is assumed validated.
func (s *Service) Create(ctx context.Context, ownerID int64, req *CreatePropertyRequest, files []*multipart.FileHeader) (*Property, error) {
	p := req.ToEntity(ownerID)

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to create property: %w", err)
	}

	if err := s.attachImages(ctx, p.ID, files); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, p.ID)
}

// Get returns the property with images, or ErrPropertyNotFound.
func (s *Service) Get(ctx context.Context, id int64) (*Property, error) {
	return s.repo.GetByID(ctx, id)
}

// Update applies the supplied fields, detaches the listed images (blob
// first, then row) and attaches new uploads. Ids in DeleteImages that
// do not belong to this property are skipped; id existence across the
// whole table is the validation layer's concern, not this method's.
func (s *Service) Update(ctx context.Context, id int64, req *UpdatePropertyRequest, files []*multipart.FileHeader) (*Property, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.ApplyTo(p)
	if err := s.repo.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to update property: %w", err)
	}

	for _, imageID := range req.DeleteImages {
		img, err := s.repo.GetImage(ctx, p.ID, imageID)
		if errors.Is(err, ErrImageNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}

		s.deleteBlob(ctx, img.ImageURL)
		if err := s.repo.DeleteImage(ctx, img.ID); err != nil {
			return nil, fmt.Errorf("failed to delete image %d: %w", img.ID, err)
		}
	}

	if err := s.attachImages(ctx, p.ID, files); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, p.ID)
}

// Delete removes the property. Image rows cascade with the row; their
// blobs are deleted here first so they do not accumulate as orphans.
func (s *Service) Delete(ctx context.Context, id int64) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	for _, img := range p.Images {
		s.deleteBlob(ctx, img.ImageURL)
	}

	return s.repo.Delete(ctx, p.ID)
}

func (s *Service) attachImages(ctx context.Context, propertyID int64, files []*multipart.FileHeader) error {
	for _, fh := range files {
		path, err := s.blobs.Save(ctx, fh, ImageNamespace)
		if err != nil {
			return fmt.Errorf("failed to store image %q: %w", fh.Filename, err)
		}

		img := &Image{PropertyID: propertyID, ImageURL: path}
		if err := s.repo.CreateImage(ctx, img); err != nil {
			return fmt.Errorf("failed to record image %q: %w", fh.Filename, err)
		}
	}
	return nil
}

func (s *Service) deleteBlob(ctx context.Context, path string) {
	err := s.blobs.Delete(ctx, path)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		// Row deletion proceeds; the orphan is left for Sweep.
		log.Printf("failed to delete blob %s: %v", path, err)
	}
}
