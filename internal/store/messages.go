package store

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

var errMessageQuery = errors.New("message query error")

// SentMessage is a contact message that the form processor accepted.
type SentMessage struct {
	MessageID int64
	Name      string
	Email     string
	Body      string
	CreatedOn time.Time
}

func NewMessages(db *sql.DB) Messages {
	return Messages{db: db}
}

// Messages is the outbox of previously sent contact messages.
type Messages struct {
	db *sql.DB
}

func (m Messages) Save(ctx context.Context, name string, email string, body string) (SentMessage, error) {
	message := SentMessage{Name: name, Email: email, Body: body, CreatedOn: time.Now()}

	result, errExec := m.db.ExecContext(ctx,
		`INSERT INTO messages (name, email, body, created_on) VALUES (?, ?, ?, ?)`,
		message.Name, message.Email, message.Body, message.CreatedOn)
	if errExec != nil {
		return SentMessage{}, errors.Join(errExec, errMessageQuery)
	}

	messageID, errID := result.LastInsertId()
	if errID != nil {
		return SentMessage{}, errors.Join(errID, errMessageQuery)
	}
	message.MessageID = messageID

	return message, nil
}

// Recent returns the newest sent messages, newest first.
func (m Messages) Recent(ctx context.Context, limit int) ([]SentMessage, error) {
	rows, errQuery := m.db.QueryContext(ctx,
		`SELECT message_id, name, email, body, created_on FROM messages ORDER BY created_on DESC, message_id DESC LIMIT ?`, limit)
	if errQuery != nil {
		return nil, errors.Join(errQuery, errMessageQuery)
	}
	defer rows.Close()

	var messages []SentMessage
	for rows.Next() {
		var message SentMessage
		if err := rows.Scan(&message.MessageID, &message.Name, &message.Email,
			&message.Body, &message.CreatedOn); err != nil {
			return nil, errors.Join(err, errMessageQuery)
		}
		messages = append(messages, message)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Join(err, errMessageQuery)
	}

	return messages, nil
}
