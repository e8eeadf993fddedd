package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hbnb-crew/hbnb-api/internal/domain"
	"github.com/hbnb-crew/hbnb-api/internal/platform/logger"
	"github.com/hbnb-crew/hbnb-api/internal/store"
)

// ReviewStore implements the store.ReviewStore interface using a
// PostgreSQL database as the storage backend. The unique constraint on
// (user_id, place_id) makes the one-review-per-user-per-place check
// and the insert atomic.
type ReviewStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewReviewStore creates a new PostgreSQL implementation of the
// ReviewStore interface.
func NewReviewStore(db *sql.DB, log *slog.Logger) *ReviewStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &ReviewStore{
		db:     db,
		logger: log.With(slog.String("component", "review_store")),
	}
}

// Ensure ReviewStore implements store.ReviewStore interface
var _ store.ReviewStore = (*ReviewStore)(nil)

// Create implements store.ReviewStore.Create.
func (s *ReviewStore) Create(ctx context.Context, review *domain.Review) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO reviews (id, text, rating, user_id, place_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		review.ID,
		review.Text,
		review.Rating,
		review.UserID,
		review.PlaceID,
		review.CreatedAt,
		review.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err, "reviews_user_place_key") {
			log.Warn("duplicate review for user and place",
				slog.String("user_id", review.UserID.String()),
				slog.String("place_id", review.PlaceID.String()))
			return store.ErrDuplicate
		}
		if isUniqueViolation(err, "") {
			return store.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return mapReferenceError(err, "user or place")
		}

		log.Error("failed to create review",
			slog.String("error", err.Error()),
			slog.String("review_id", review.ID.String()))
		return err
	}

	log.Info("review created successfully",
		slog.String("review_id", review.ID.String()),
		slog.String("place_id", review.PlaceID.String()))
	return nil
}

// GetByID implements store.ReviewStore.GetByID.
func (s *ReviewStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	query := reviewSelect + ` WHERE id = $1`
	return s.scanReview(logger.FromContextOrDefault(ctx, s.logger),
		s.db.QueryRowContext(ctx, query, id))
}

// List implements store.ReviewStore.List.
func (s *ReviewStore) List(ctx context.Context) ([]*domain.Review, error) {
	return s.listWhere(ctx, "", nil)
}

// ListByPlace implements store.ReviewStore.ListByPlace.
func (s *ReviewStore) ListByPlace(ctx context.Context, placeID uuid.UUID) ([]*domain.Review, error) {
	return s.listWhere(ctx, ` WHERE place_id = $1`, []any{placeID})
}

// ListByUser implements store.ReviewStore.ListByUser.
func (s *ReviewStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Review, error) {
	return s.listWhere(ctx, ` WHERE user_id = $1`, []any{userID})
}

// Update implements store.ReviewStore.Update. The user and place
// references are fixed at creation, so only text and rating change.
func (s *ReviewStore) Update(ctx context.Context, review *domain.Review) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE reviews
		SET text = $1, rating = $2, updated_at = $3
		WHERE id = $4
	`
	result, err := s.db.ExecContext(ctx, query, review.Text, review.Rating, review.UpdatedAt, review.ID)
	if err != nil {
		log.Error("failed to update review",
			slog.String("error", err.Error()),
			slog.String("review_id", review.ID.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return store.ErrReviewNotFound
	}

	return nil
}

// Delete implements store.ReviewStore.Delete.
func (s *ReviewStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete review",
			slog.String("error", err.Error()),
			slog.String("review_id", id.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return store.ErrReviewNotFound
	}

	return nil
}

const reviewSelect = `
	SELECT id, text, rating, user_id, place_id, created_at, updated_at
	FROM reviews`

func (s *ReviewStore) scanReview(log *slog.Logger, row *sql.Row) (*domain.Review, error) {
	var review domain.Review
	err := row.Scan(
		&review.ID,
		&review.Text,
		&review.Rating,
		&review.UserID,
		&review.PlaceID,
		&review.CreatedAt,
		&review.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrReviewNotFound
		}
		log.Error("failed to scan review", slog.String("error", err.Error()))
		return nil, err
	}

	return &review, nil
}

func (s *ReviewStore) listWhere(ctx context.Context, where string, args []any) ([]*domain.Review, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, reviewSelect+where+` ORDER BY created_at`, args...)
	if err != nil {
		log.Error("failed to query reviews", slog.String("error", err.Error()))
		return nil, err
	}
	defer closeRows(rows, log)

	reviews := []*domain.Review{}
	for rows.Next() {
		var review domain.Review
		if err := rows.Scan(
			&review.ID,
			&review.Text,
			&review.Rating,
			&review.UserID,
			&review.PlaceID,
			&review.CreatedAt,
			&review.UpdatedAt,
		); err != nil {
			return nil, err
		}
		reviews = append(reviews, &review)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return reviews, nil
}
