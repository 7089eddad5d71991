package db

import (
	"database/sql"
	"errors"
	"time"

	"github.com/dori/wisht/internal/model"
	"github.com/google/uuid"
)

// ErrNotFound is returned when a mutation targets an item that does not exist
var ErrNotFound = errors.New("item not found")

// GetPendingItems returns the pending items of a list
func (db *DB) GetPendingItems(listID string) ([]model.Item, error) {
	rows, err := db.Query(`
		SELECT id, title, category, created_at
		FROM todo_items
		WHERE list_id = ?
		ORDER BY created_at, id
	`, listID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		var it model.Item
		if err := rows.Scan(&it.ID, &it.Title, &it.Category, &it.CreatedAt); err != nil {
			return nil, err
		}
		it.Status = model.StatusPending
		items = append(items, it)
	}
	return items, rows.Err()
}

// GetDoneItems returns the completed items of a list
func (db *DB) GetDoneItems(listID string) ([]model.Item, error) {
	rows, err := db.Query(`
		SELECT id, title, category, comment, completed_at
		FROM done_items
		WHERE list_id = ?
		ORDER BY completed_at, id
	`, listID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		var it model.Item
		var completedAt time.Time
		if err := rows.Scan(&it.ID, &it.Title, &it.Category, &it.Comment, &completedAt); err != nil {
			return nil, err
		}
		it.Status = model.StatusDone
		it.CompletedAt = &completedAt
		items = append(items, it)
	}
	return items, rows.Err()
}

// CreateItem creates a new pending item on a list
func (db *DB) CreateItem(listID, title, category string) (*model.Item, error) {
	id := uuid.New().String()
	now := time.Now()

	_, err := db.Exec(`
		INSERT INTO todo_items (id, list_id, title, category, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, id, listID, title, category, now)
	if err != nil {
		return nil, err
	}

	return &model.Item{
		ID:        id,
		Title:     title,
		Category:  category,
		Status:    model.StatusPending,
		CreatedAt: now,
	}, nil
}

// UpdateItem updates a pending item's title and category
func (db *DB) UpdateItem(listID, id, title, category string) (*model.Item, error) {
	res, err := db.Exec(`
		UPDATE todo_items SET title = ?, category = ?
		WHERE id = ? AND list_id = ?
	`, title, category, id, listID)
	if err != nil {
		return nil, err
	}
	if n, err := res.RowsAffected(); err != nil {
		return nil, err
	} else if n == 0 {
		return nil, ErrNotFound
	}

	var it model.Item
	err = db.QueryRow(`
		SELECT id, title, category, created_at FROM todo_items WHERE id = ?
	`, id).Scan(&it.ID, &it.Title, &it.Category, &it.CreatedAt)
	if err != nil {
		return nil, err
	}
	it.Status = model.StatusPending
	return &it, nil
}

// CompleteItem moves a pending item to the done collection, assigning the
// completion timestamp and the initial comment. The move is one transaction
// so the item is never in both collections and never in neither.
func (db *DB) CompleteItem(listID, id, comment string) (*model.Item, error) {
	now := time.Now()
	var it model.Item

	err := db.Transaction(func(tx *sql.Tx) error {
		err := tx.QueryRow(`
			SELECT id, title, category FROM todo_items
			WHERE id = ? AND list_id = ?
		`, id, listID).Scan(&it.ID, &it.Title, &it.Category)
		if err == sql.ErrNoRows {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		if _, err := tx.Exec(`
			INSERT INTO done_items (id, list_id, title, category, comment, completed_at)
			VALUES (?, ?, ?, ?, ?, ?)
		`, it.ID, listID, it.Title, it.Category, comment, now); err != nil {
			return err
		}

		_, err = tx.Exec(`DELETE FROM todo_items WHERE id = ?`, it.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	it.Status = model.StatusDone
	it.Comment = comment
	it.CompletedAt = &now
	return &it, nil
}

// UpdateComment replaces a done item's completion comment
func (db *DB) UpdateComment(listID, id, comment string) (*model.Item, error) {
	res, err := db.Exec(`
		UPDATE done_items SET comment = ?
		WHERE id = ? AND list_id = ?
	`, comment, id, listID)
	if err != nil {
		return nil, err
	}
	if n, err := res.RowsAffected(); err != nil {
		return nil, err
	} else if n == 0 {
		return nil, ErrNotFound
	}

	var it model.Item
	var completedAt time.Time
	err = db.QueryRow(`
		SELECT id, title, category, comment, completed_at FROM done_items WHERE id = ?
	`, id).Scan(&it.ID, &it.Title, &it.Category, &it.Comment, &completedAt)
	if err != nil {
		return nil, err
	}
	it.Status = model.StatusDone
	it.CompletedAt = &completedAt
	return &it, nil
}
