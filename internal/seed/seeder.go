// internal/seed/seeder.go
package seed

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	"loan-catalog/internal/common/database"
	"loan-catalog/internal/common/logger"
)

//go:embed schema.sql
var Schema string

// Child tables first so foreign keys never block the wipe.
var clearOrder = []string{
	"click_tracking",
	"reviews",
	"offer_tags",
	"offers",
	"tags",
	"organizations",
	"cities",
}

const (
	insertCity         = `INSERT INTO cities (id, name, state, country_code, slug) VALUES ($1, $2, $3, $4, $5)`
	insertTag          = `INSERT INTO tags (id, name, slug, description) VALUES ($1, $2, $3, $4)`
	insertOrganization = `INSERT INTO organizations (id, name, description, website, city_id) VALUES ($1, $2, $3, $4, $5)`
	insertOffer        = `INSERT INTO offers
		(id, title, description, status, type, url, starts_at, ends_at, organization_id, city_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	insertOfferTag = `INSERT INTO offer_tags (offer_id, tag_id) VALUES ($1, $2)`
	insertReview   = `INSERT INTO reviews (id, rating, title, comment, offer_id, created_at) VALUES ($1, $2, $3, $4, $5, $6)`
)

// Result counts the rows written per table.
type Result struct {
	Cities        int
	Tags          int
	Organizations int
	Offers        int
	OfferTags     int
	Reviews       int
}

type Seeder struct {
	db     *database.PostgresClient
	logger logger.Logger
}

func NewSeeder(db *database.PostgresClient, log logger.Logger) *Seeder {
	return &Seeder{db: db, logger: log.WithFields(map[string]interface{}{"component": "seeder"})}
}

// Migrate applies the embedded schema. Every statement is idempotent.
func (s *Seeder) Migrate(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	s.logger.Info("schema applied", nil)
	return nil
}

// Run replaces the contents of every catalog table with ds in one
// transaction.
func (s *Seeder) Run(ctx context.Context, ds Dataset) (Result, error) {
	var res Result
	err := s.db.WithTx(ctx, func(tx *sql.Tx) error {
		for _, table := range clearOrder {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
				return fmt.Errorf("clear %s: %w", table, err)
			}
		}

		for _, c := range ds.Cities {
			if _, err := tx.ExecContext(ctx, insertCity, c.ID, c.Name, nullString(c.State), c.CountryCode, c.Slug); err != nil {
				return fmt.Errorf("insert city %s: %w", c.Slug, err)
			}
			res.Cities++
		}

		for _, t := range ds.Tags {
			if _, err := tx.ExecContext(ctx, insertTag, t.ID, t.Name, t.Slug, t.Description); err != nil {
				return fmt.Errorf("insert tag %s: %w", t.Slug, err)
			}
			res.Tags++
		}

		for _, o := range ds.Organizations {
			if _, err := tx.ExecContext(ctx, insertOrganization, o.ID, o.Name, o.Description, o.Website, nullString(o.CityID)); err != nil {
				return fmt.Errorf("insert organization %s: %w", o.Name, err)
			}
			res.Organizations++
		}

		for _, o := range ds.Offers {
			if _, err := tx.ExecContext(ctx, insertOffer,
				o.ID, o.Title, o.Description, string(o.Status), string(o.Type), nullString(o.URL),
				o.StartsAt, o.EndsAt, o.OrganizationID, nullString(o.CityID),
			); err != nil {
				return fmt.Errorf("insert offer %s: %w", o.ID, err)
			}
			res.Offers++

			for _, tagID := range o.TagIDs {
				if _, err := tx.ExecContext(ctx, insertOfferTag, o.ID, tagID); err != nil {
					return fmt.Errorf("link offer %s to tag %s: %w", o.ID, tagID, err)
				}
				res.OfferTags++
			}
		}

		for _, r := range ds.Reviews {
			if _, err := tx.ExecContext(ctx, insertReview, r.ID, string(r.Rating), r.Title, r.Comment, r.OfferID, r.CreatedAt); err != nil {
				return fmt.Errorf("insert review %s: %w", r.ID, err)
			}
			res.Reviews++
		}
		return nil
	})
	if err != nil {
		s.logger.WithError(err).Error("seeding failed", nil)
		return Result{}, err
	}

	s.logger.Info("seed complete", map[string]interface{}{
		"cities":        res.Cities,
		"tags":          res.Tags,
		"organizations": res.Organizations,
		"offers":        res.Offers,
		"offer_tags":    res.OfferTags,
		"reviews":       res.Reviews,
	})
	return res, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
