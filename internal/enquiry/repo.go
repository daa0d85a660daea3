// Package enquiry stores and serves contact-form submissions.
package enquiry

import (
	"context"
	"database/sql"
	"fmt"

	"motorhub/pkg/models"
)

type Repo struct {
	DB *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{DB: db}
}

func (r *Repo) Insert(ctx context.Context, e *models.Enquiry) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO enquiries (id, name, email, phone, message, listing_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, e.ID, e.Name, e.Email, e.Phone, e.Message, e.ListingID, e.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("insert enquiry: %w", err)
	}
	return nil
}

// List returns the most recent enquiries, newest first.
func (r *Repo) List(ctx context.Context, limit int) ([]models.Enquiry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, email, phone, message, listing_id, created_at
		FROM enquiries
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list enquiries: %w", err)
	}
	defer rows.Close()

	out := make([]models.Enquiry, 0, limit)
	for rows.Next() {
		var (
			e         models.Enquiry
			email     sql.NullString
			phone     sql.NullString
			listingID sql.NullString
		)
		if err := rows.Scan(&e.ID, &e.Name, &email, &phone, &e.Message, &listingID, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan enquiry: %w", err)
		}
		e.Email = email.String
		e.Phone = phone.String
		e.ListingID = listingID.String
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}
	return out, nil
}
