package services

import (
	"context"
	"time"

	"github.com/salvacode/orientlink/pkg/apperrors"
	"github.com/salvacode/orientlink/pkg/models"
	"github.com/salvacode/orientlink/pkg/repositories"
)

// mockProviderRepo is an in-memory ProviderRepository for service tests.
type mockProviderRepo struct {
	byID    map[int64]*models.ProviderProfile
	byURL   map[string]*models.ProviderProfile
	nextID  int64
	created []*models.ProviderProfile
	updated []*models.ProviderProfile

	createErr error
	updateErr error
	getErr    error
}

func newMockProviderRepo() *mockProviderRepo {
	return &mockProviderRepo{
		byID:   map[int64]*models.ProviderProfile{},
		byURL:  map[string]*models.ProviderProfile{},
		nextID: 1,
	}
}

var _ repositories.ProviderRepository = (*mockProviderRepo)(nil)

func (m *mockProviderRepo) add(p *models.ProviderProfile) {
	if p.ID == 0 {
		p.ID = m.nextID
		m.nextID++
	}
	m.byID[p.ID] = p
	m.byURL[p.SourceURL] = p
}

func (m *mockProviderRepo) Create(ctx context.Context, p *models.ProviderProfile) error {
	if m.createErr != nil {
		return m.createErr
	}
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	m.add(p)
	m.created = append(m.created, p)
	return nil
}

func (m *mockProviderRepo) Update(ctx context.Context, p *models.ProviderProfile) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	if _, ok := m.byID[p.ID]; !ok {
		return apperrors.ErrNotFound
	}
	p.UpdatedAt = time.Now()
	m.add(p)
	m.updated = append(m.updated, p)
	return nil
}

func (m *mockProviderRepo) GetByID(ctx context.Context, id int64) (*models.ProviderProfile, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	p, ok := m.byID[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return p, nil
}

func (m *mockProviderRepo) GetByURL(ctx context.Context, sourceURL string) (*models.ProviderProfile, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	p, ok := m.byURL[sourceURL]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return p, nil
}

func (m *mockProviderRepo) ListByUser(ctx context.Context, userID string) ([]*models.ProviderProfile, error) {
	var result []*models.ProviderProfile
	for _, p := range m.byID {
		if p.UserID == userID {
			result = append(result, p)
		}
	}
	return result, nil
}

func (m *mockProviderRepo) SearchByName(ctx context.Context, name string) ([]*models.ProviderProfile, error) {
	var result []*models.ProviderProfile
	for _, p := range m.byID {
		result = append(result, p)
	}
	return result, nil
}

// mockConversationRepo records created conversations in memory.
type mockConversationRepo struct {
	conversations []*models.Conversation
	nextID        int64

	createErr error
	listErr   error
	lastList  repositories.ConversationFilter
}

func newMockConversationRepo() *mockConversationRepo {
	return &mockConversationRepo{nextID: 1}
}

var _ repositories.ConversationRepository = (*mockConversationRepo)(nil)

func (m *mockConversationRepo) Create(ctx context.Context, c *models.Conversation) error {
	if m.createErr != nil {
		return m.createErr
	}
	c.ID = m.nextID
	m.nextID++
	c.CreatedAt = time.Now()
	m.conversations = append(m.conversations, c)
	return nil
}

func (m *mockConversationRepo) List(ctx context.Context, filter repositories.ConversationFilter) ([]*models.Conversation, error) {
	m.lastList = filter
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.conversations, nil
}
