package memory

import (
	"time"

	"mindwell-be/internal/entity"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// maxContextMessages bounds the rolling window sent to the LLM.
const maxContextMessages = 12

// ChatContextRepository keeps a per-user rolling window of recent chat
// messages so the companion prompt can be assembled without re-reading
// the whole conversation from the database on every turn. Entries expire
// after an hour of inactivity; on a miss the service rebuilds from DB.
type ChatContextRepository struct {
	cache *cache.Cache
}

func NewChatContextRepository() *ChatContextRepository {
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &ChatContextRepository{
		cache: c,
	}
}

func (r *ChatContextRepository) Get(userId uuid.UUID) ([]*entity.ChatMessage, bool) {
	if x, found := r.cache.Get(userId.String()); found {
		return x.([]*entity.ChatMessage), true
	}
	return nil, false
}

func (r *ChatContextRepository) Put(userId uuid.UUID, msgs []*entity.ChatMessage) {
	if len(msgs) > maxContextMessages {
		msgs = msgs[len(msgs)-maxContextMessages:]
	}
	r.cache.Set(userId.String(), msgs, cache.DefaultExpiration)
}

func (r *ChatContextRepository) Append(userId uuid.UUID, msg *entity.ChatMessage) {
	msgs, _ := r.Get(userId)
	msgs = append(msgs, msg)
	r.Put(userId, msgs)
}

func (r *ChatContextRepository) Delete(userId uuid.UUID) {
	r.cache.Delete(userId.String())
}
