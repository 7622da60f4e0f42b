package catalog

import (
	"context"
	"fmt"

	"lawmitra-backend/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// LoadFromPostgres builds a catalog from the laws table. The table holds the
// same static reference content as the embedded dataset; it is read once at
// startup and the pool is not retained. Ordering follows the position column
// so relevance tie-breaks stay stable across deployments.
func LoadFromPostgres(ctx context.Context, db *pgxpool.Pool) (*Catalog, error) {
	query := `
		SELECT
			id,
			title,
			category,
			summary,
			content,
			penalty,
			helpline
		FROM laws
		ORDER BY position, id`

	rows, err := db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query laws: %w", err)
	}
	defer rows.Close()

	var laws []models.Law
	for rows.Next() {
		var law models.Law
		err := rows.Scan(
			&law.ID,
			&law.Title,
			&law.Category,
			&law.Summary,
			&law.Content,
			&law.Penalty,
			&law.Helpline,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan law row: %w", err)
		}
		laws = append(laws, law)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read laws: %w", err)
	}

	contacts, err := loadContacts(ctx, db)
	if err != nil {
		return nil, err
	}
	for i := range laws {
		laws[i].ContactList = contacts[laws[i].ID]
	}

	return New(laws)
}

// loadContacts reads the helpline contact lists keyed by law id
func loadContacts(ctx context.Context, db *pgxpool.Pool) (map[string][]models.Contact, error) {
	query := `
		SELECT law_id, name, number
		FROM law_contacts
		ORDER BY law_id, position`

	rows, err := db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query law contacts: %w", err)
	}
	defer rows.Close()

	contacts := make(map[string][]models.Contact)
	for rows.Next() {
		var lawID string
		var c models.Contact
		if err := rows.Scan(&lawID, &c.Name, &c.Number); err != nil {
			return nil, fmt.Errorf("failed to scan contact row: %w", err)
		}
		contacts[lawID] = append(contacts[lawID], c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read law contacts: %w", err)
	}
	return contacts, nil
}
