package review

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

const (
	insertReviewQuery = `
		INSERT INTO ratings (user_id, product_id, comment, rating, approved, created_at)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING rating_id
	`
	listApprovedQuery = `
		SELECT r.rating_id, r.user_id, r.product_id, r.comment, r.rating, r.approved, r.created_at, u.name
		FROM ratings r
		JOIN users u ON u.user_id = r.user_id
		WHERE r.product_id = $1 AND r.approved = 1
		ORDER BY r.rating_id
	`
	moderateReviewQuery = `UPDATE ratings SET approved = $1 WHERE rating_id = $2`
	getReviewByIDQuery  = `
		SELECT rating_id, user_id, product_id, comment, rating, approved, created_at
		FROM ratings
		WHERE rating_id = $1
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(rev Review) (Review, error) {
	var comment sql.NullString
	if rev.Comment != nil {
		comment = sql.NullString{String: *rev.Comment, Valid: true}
	}
	var rating sql.NullFloat64
	if rev.Rating != nil {
		rating = sql.NullFloat64{Float64: *rev.Rating, Valid: true}
	}

	if err := r.db.QueryRow(insertReviewQuery, rev.UserID, rev.ProductID, comment, rating, rev.Approved, rev.CreatedAt).Scan(&rev.ID); err != nil {
		return Review{}, err
	}
	return rev, nil
}

func (r *PostgresRepository) ListApproved(productID int) ([]Review, error) {
	rows, err := r.db.Query(listApprovedQuery, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Review, 0)
	for rows.Next() {
		var rev Review
		var comment sql.NullString
		var rating sql.NullFloat64
		var createdAt sql.NullString
		if err := rows.Scan(&rev.ID, &rev.UserID, &rev.ProductID, &comment, &rating, &rev.Approved, &createdAt, &rev.ReviewerName); err != nil {
			return nil, err
		}
		if comment.Valid {
			rev.Comment = &comment.String
		}
		if rating.Valid {
			rev.Rating = &rating.Float64
		}
		if createdAt.Valid {
			rev.CreatedAt = createdAt.String
		}
		out = append(out, rev)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) Moderate(reviewID int, approved int) error {
	result, err := r.db.Exec(moderateReviewQuery, approved, reviewID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) GetByID(reviewID int) (Review, error) {
	var rev Review
	var comment sql.NullString
	var rating sql.NullFloat64
	var createdAt sql.NullString
	err := r.db.QueryRow(getReviewByIDQuery, reviewID).Scan(&rev.ID, &rev.UserID, &rev.ProductID, &comment, &rating, &rev.Approved, &createdAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return Review{}, ErrNotFound
		}
		return Review{}, err
	}
	if comment.Valid {
		rev.Comment = &comment.String
	}
	if rating.Valid {
		rev.Rating = &rating.Float64
	}
	if createdAt.Valid {
		rev.CreatedAt = createdAt.String
	}
	return rev, nil
}
