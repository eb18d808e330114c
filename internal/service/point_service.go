package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vbonduro/ecoleta/internal/domain"
	"github.com/vbonduro/ecoleta/internal/photostore"
)

// pointRepository is the subset of store.PointStore that PointService requires.
type pointRepository interface {
	Create(ctx context.Context, point domain.Point, itemIDs []int64) (*domain.Point, error)
	GetByID(ctx context.Context, id int64) (*domain.Point, error)
	ListByFilter(ctx context.Context, city, uf string, itemIDs []int64) ([]*domain.Point, error)
	Delete(ctx context.Context, id int64) error
}

// itemRepository is the subset of store.ItemStore that PointService requires.
type itemRepository interface {
	List(ctx context.Context) ([]*domain.Item, error)
	ListByPointID(ctx context.Context, pointID int64) ([]*domain.Item, error)
}

// PointFilter selects points by exact city and uf that accept at least one
// of ItemIDs.
type PointFilter struct {
	City    string
	UF      string
	ItemIDs []int64
}

type PointService struct {
	points  pointRepository
	items   itemRepository
	uploads photostore.PhotoStore
	tracer  trace.Tracer
	logger  *slog.Logger
}

func NewPointService(
	points pointRepository,
	items itemRepository,
	uploads photostore.PhotoStore,
	tracer trace.Tracer,
	logger *slog.Logger,
) *PointService {
	return &PointService{
		points:  points,
		items:   items,
		uploads: uploads,
		tracer:  tracer,
		logger:  logger,
	}
}

// CreatePoint validates the input, stores the image and then inserts the
// point with its item associations in one transaction. When the transaction
// fails the stored image is removed again and the error matches
// ErrTransaction.
func (s *PointService) CreatePoint(ctx context.Context, in PointInput, image []byte, mimeType string) (_ *domain.Point, err error) {
	ctx, span := s.tracer.Start(ctx, "PointService.CreatePoint",
		trace.WithAttributes(attribute.String("city", in.City), attribute.String("uf", in.UF)))
	defer func() { endSpan(span, err) }()

	itemIDs, err := in.Validate()
	if err != nil {
		return nil, err
	}
	if len(image) == 0 {
		return nil, &ValidationError{Field: "image", Reason: "is required"}
	}

	filename, err := s.uploads.Save(ctx, mimeType, bytes.NewReader(image))
	if err != nil {
		return nil, fmt.Errorf("failed to save image: %w", err)
	}
	s.logger.Debug("point image saved", "filename", filename, "bytes", len(image))

	point, err := s.points.Create(ctx, domain.Point{
		Image:     filename,
		Name:      in.Name,
		Email:     in.Email,
		Whatsapp:  in.Whatsapp,
		Latitude:  in.Latitude,
		Longitude: in.Longitude,
		City:      in.City,
		UF:        in.UF,
	}, itemIDs)
	if err != nil {
		if derr := s.uploads.Delete(ctx, filename); derr != nil {
			s.logger.Error("failed to remove image after rollback", "filename", filename, "error", derr)
		}
		return nil, fmt.Errorf("%w: %w", ErrTransaction, err)
	}

	span.SetAttributes(attribute.Int64("point_id", point.ID))
	s.logger.Info("point created", "point_id", point.ID, "items", len(itemIDs))
	return point, nil
}

// ListPoints returns the points matching f, each at most once. An empty
// ItemIDs matches nothing.
func (s *PointService) ListPoints(ctx context.Context, f PointFilter) (_ []*domain.Point, err error) {
	ctx, span := s.tracer.Start(ctx, "PointService.ListPoints",
		trace.WithAttributes(
			attribute.String("city", f.City),
			attribute.String("uf", f.UF),
			attribute.Int64Slice("item_ids", f.ItemIDs),
		))
	defer func() { endSpan(span, err) }()

	points, err := s.points.ListByFilter(ctx, f.City, f.UF, f.ItemIDs)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("results", len(points)))
	return points, nil
}

// GetPoint returns the point and the items it accepts, or ErrNotFound.
func (s *PointService) GetPoint(ctx context.Context, id int64) (_ *domain.Point, _ []*domain.Item, err error) {
	ctx, span := s.tracer.Start(ctx, "PointService.GetPoint",
		trace.WithAttributes(attribute.Int64("point_id", id)))
	defer func() { endSpan(span, err) }()

	point, err := s.points.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if point == nil {
		return nil, nil, fmt.Errorf("%w with id: %d", ErrNotFound, id)
	}

	items, err := s.items.ListByPointID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	return point, items, nil
}

// DeletePoint removes the point, its item associations and its image.
// Deleting an unknown id succeeds.
func (s *PointService) DeletePoint(ctx context.Context, id int64) (err error) {
	ctx, span := s.tracer.Start(ctx, "PointService.DeletePoint",
		trace.WithAttributes(attribute.Int64("point_id", id)))
	defer func() { endSpan(span, err) }()

	point, err := s.points.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if point == nil {
		return nil
	}

	if err := s.points.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.uploads.Delete(ctx, point.Image); err != nil && !errors.Is(err, photostore.ErrNotFound) {
		s.logger.Error("failed to delete point image", "point_id", id, "filename", point.Image, "error", err)
	}

	s.logger.Info("point deleted", "point_id", id)
	return nil
}

func (s *PointService) ListItems(ctx context.Context) (_ []*domain.Item, err error) {
	ctx, span := s.tracer.Start(ctx, "PointService.ListItems")
	defer func() { endSpan(span, err) }()

	return s.items.List(ctx)
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
