package db

import (
	"database/sql"
	"time"

	"github.com/dori/wisht/internal/model"
	"github.com/google/uuid"
)

// DefaultListID is the row backing the unscoped routes
const DefaultListID = "default"

// CreateList creates a new shared list with a fresh share identifier
func (db *DB) CreateList() (*model.List, error) {
	id := uuid.New().String()
	shareID := uuid.New().String()
	now := time.Now()

	_, err := db.Exec(`
		INSERT INTO lists (id, share_id, created_at) VALUES (?, ?, ?)
	`, id, shareID, now)
	if err != nil {
		return nil, err
	}

	return &model.List{
		ID:        id,
		ShareID:   shareID,
		CreatedAt: now,
	}, nil
}

// GetListByShareID resolves a share identifier to its list. An empty share
// identifier addresses the default list. Returns nil when no list matches.
func (db *DB) GetListByShareID(shareID string) (*model.List, error) {
	var l model.List
	err := db.QueryRow(`
		SELECT id, share_id, created_at FROM lists WHERE share_id = ?
	`, shareID).Scan(&l.ID, &l.ShareID, &l.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}
