package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bengkel-backend/internal/repository/postgres"
)

func TestMessageRepositoryHistory(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := postgres.NewMessageRepository(db)
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	// Interleaved conversation, both directions, oldest first.
	rows := sqlmock.NewRows([]string{"id", "sender_id", "receiver_id", "content", "attachment_url", "created_on"}).
		AddRow(1, 3, 4, "hi", nil, base).
		AddRow(2, 4, 3, "hello", nil, base.Add(time.Minute)).
		AddRow(3, 3, 4, "are you free?", nil, base.Add(2*time.Minute)).
		AddRow(4, 4, 3, "yes", "http://x/map.png", base.Add(3*time.Minute))

	mock.ExpectQuery(`FROM messages\s+WHERE \(sender_id = \$1 AND receiver_id = \$2\) OR \(sender_id = \$2 AND receiver_id = \$1\)\s+ORDER BY created_on ASC`).
		WithArgs(int32(3), int32(4)).
		WillReturnRows(rows)

	msgs, err := repo.History(context.Background(), 3, 4)
	require.NoError(t, err)
	require.Len(t, msgs, 4)

	// Oldest first, with both directions present.
	for i := 1; i < len(msgs); i++ {
		assert.False(t, msgs[i].CreatedOn.Before(msgs[i-1].CreatedOn))
	}
	assert.Equal(t, int32(3), msgs[0].SenderID)
	assert.Equal(t, int32(4), msgs[1].SenderID)
	assert.Equal(t, "http://x/map.png", msgs[3].AttachmentURL)
	assert.NoError(t, mock.ExpectationsWereMet())
}
