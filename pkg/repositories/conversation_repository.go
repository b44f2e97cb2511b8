package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/salvacode/orientlink/pkg/database"
	"github.com/salvacode/orientlink/pkg/models"
)

// ConversationFilter narrows conversation listings. UserID is required;
// the remaining fields are optional and combine with AND.
type ConversationFilter struct {
	UserID      string
	ProviderID  *int64     // Only conversations linked to this provider
	Since       *time.Time // Only conversations created at or after this moment
	MessageType string     // Only conversations with this message-type tag
}

// ConversationRepository provides data access for conversation records.
type ConversationRepository interface {
	Create(ctx context.Context, c *models.Conversation) error
	List(ctx context.Context, filter ConversationFilter) ([]*models.Conversation, error)
}

type conversationRepository struct {
	db *database.DB
}

// NewConversationRepository creates a new ConversationRepository.
func NewConversationRepository(db *database.DB) ConversationRepository {
	return &conversationRepository{db: db}
}

var _ ConversationRepository = (*conversationRepository)(nil)

func (r *conversationRepository) Create(ctx context.Context, c *models.Conversation) error {
	query := `
		INSERT INTO conversations (
			user_id, provider_id, original_message, translated_message,
			source_language, target_language, ai_interpretation, alerts,
			suggested_responses, message_type, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at`

	err := r.db.QueryRow(ctx, query,
		c.UserID,
		c.ProviderID,
		c.OriginalMessage,
		c.TranslatedMessage,
		c.SourceLanguage,
		c.TargetLanguage,
		c.AIInterpretation,
		c.Alerts,
		c.SuggestedResponses,
		c.MessageType,
		time.Now(),
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create conversation: %w", err)
	}

	return nil
}

func (r *conversationRepository) List(ctx context.Context, filter ConversationFilter) ([]*models.Conversation, error) {
	query := `
		SELECT id, user_id, provider_id, original_message, translated_message,
		       source_language, target_language, ai_interpretation, alerts,
		       suggested_responses, message_type, created_at
		FROM conversations
		WHERE user_id = $1`
	args := []any{filter.UserID}

	if filter.ProviderID != nil {
		args = append(args, *filter.ProviderID)
		query += fmt.Sprintf(" AND provider_id = $%d", len(args))
	}
	if filter.Since != nil {
		args = append(args, *filter.Since)
		query += fmt.Sprintf(" AND created_at >= $%d", len(args))
	}
	if filter.MessageType != "" {
		args = append(args, filter.MessageType)
		query += fmt.Sprintf(" AND message_type = $%d", len(args))
	}

	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}
	defer rows.Close()

	var conversations []*models.Conversation
	for rows.Next() {
		var c models.Conversation
		err := rows.Scan(
			&c.ID,
			&c.UserID,
			&c.ProviderID,
			&c.OriginalMessage,
			&c.TranslatedMessage,
			&c.SourceLanguage,
			&c.TargetLanguage,
			&c.AIInterpretation,
			&c.Alerts,
			&c.SuggestedResponses,
			&c.MessageType,
			&c.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan conversation: %w", err)
		}
		conversations = append(conversations, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate conversations: %w", err)
	}

	return conversations, nil
}
