package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"github.com/fwojciec/regscout"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ regscout.SearchHistoryService = (*SearchHistoryService)(nil)

// SearchHistoryService implements regscout.SearchHistoryService using SQLite.
type SearchHistoryService struct {
	db *DB
}

// NewSearchHistoryService creates a new SearchHistoryService.
func NewSearchHistoryService(db *DB) *SearchHistoryService {
	return &SearchHistoryService{db: db}
}

// CreateSearch persists a search and its ranked documents.
func (s *SearchHistoryService) CreateSearch(ctx context.Context, search *regscout.Search) error {
	if search.Query == "" {
		return regscout.Errorf(regscout.EINVALID, "search query required")
	}

	search.ID = uuid.New().String()
	if search.CreatedAt.IsZero() {
		search.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO searches (id, query, fingerprint, intent_type, kind, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, search.ID, search.Query, search.Fingerprint, string(search.IntentType), string(search.Kind),
		search.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return err
	}

	for i, doc := range search.Documents {
		doc.ID = uuid.New().String()
		doc.SearchID = search.ID
		if doc.FetchedAt.IsZero() {
			doc.FetchedAt = search.CreatedAt
		}

		subLinks, err := json.Marshal(doc.SubLinks)
		if err != nil {
			return err
		}

		_, err = s.db.ExecContext(ctx, `
			INSERT INTO documents (id, search_id, url, title, content, sub_links, source_section, identifier, score, position, fetched_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, doc.ID, doc.SearchID, doc.URL, doc.Title, doc.Content, string(subLinks),
			doc.SourceSection, doc.Identifier, doc.Score, i, doc.FetchedAt.Format(time.RFC3339))
		if err != nil {
			return err
		}
	}

	return nil
}

// FindSearchByID retrieves a search with its documents in rank order.
func (s *SearchHistoryService) FindSearchByID(ctx context.Context, id string) (*regscout.Search, error) {
	var search regscout.Search
	var intentType, kind, createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, query, fingerprint, intent_type, kind, created_at
		FROM searches
		WHERE id = ?
	`, id).Scan(&search.ID, &search.Query, &search.Fingerprint, &intentType, &kind, &createdAt)

	if err == sql.ErrNoRows {
		return nil, regscout.Errorf(regscout.ENOTFOUND, "search not found")
	}
	if err != nil {
		return nil, err
	}

	search.IntentType = regscout.IntentType(intentType)
	search.Kind = regscout.ResultKind(kind)
	search.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	search.Documents, err = s.findDocuments(ctx, search.ID)
	if err != nil {
		return nil, err
	}

	return &search, nil
}

// FindSearches retrieves searches matching the filter, newest first,
// without their documents.
func (s *SearchHistoryService) FindSearches(ctx context.Context, filter regscout.SearchFilter) ([]*regscout.Search, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, query, fingerprint, intent_type, kind, created_at FROM searches WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Query != nil {
		query.WriteString(" AND query = ?")
		args = append(args, *filter.Query)
	}

	query.WriteString(" ORDER BY created_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var searches []*regscout.Search
	for rows.Next() {
		var search regscout.Search
		var intentType, kind, createdAt string

		if err := rows.Scan(&search.ID, &search.Query, &search.Fingerprint, &intentType, &kind, &createdAt); err != nil {
			return nil, err
		}

		search.IntentType = regscout.IntentType(intentType)
		search.Kind = regscout.ResultKind(kind)
		search.CreatedAt, err = parseRFC3339(createdAt, "created_at")
		if err != nil {
			return nil, err
		}

		searches = append(searches, &search)
	}

	return searches, rows.Err()
}

// DeleteSearch permanently removes a search and its documents.
func (s *SearchHistoryService) DeleteSearch(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM searches WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return regscout.Errorf(regscout.ENOTFOUND, "search not found")
	}

	return nil
}

// findDocuments loads the documents of one search ordered by rank position.
func (s *SearchHistoryService) findDocuments(ctx context.Context, searchID string) ([]*regscout.Document, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, search_id, url, title, content, sub_links, source_section, identifier, score, fetched_at
		FROM documents
		WHERE search_id = ?
		ORDER BY position ASC
	`, searchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*regscout.Document
	for rows.Next() {
		var doc regscout.Document
		var subLinks, fetchedAt string

		if err := rows.Scan(&doc.ID, &doc.SearchID, &doc.URL, &doc.Title, &doc.Content,
			&subLinks, &doc.SourceSection, &doc.Identifier, &doc.Score, &fetchedAt); err != nil {
			return nil, err
		}

		if subLinks != "" {
			if err := json.Unmarshal([]byte(subLinks), &doc.SubLinks); err != nil {
				return nil, err
			}
		}
		doc.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at")
		if err != nil {
			return nil, err
		}

		docs = append(docs, &doc)
	}

	return docs, rows.Err()
}
