package service

import (
	"context"
	"fmt"
	"time"

	"mindwell-be/internal/dto"
	"mindwell-be/internal/entity"
	"mindwell-be/internal/repository/memory"
	"mindwell-be/internal/repository/specification"
	"mindwell-be/internal/repository/unitofwork"
	"mindwell-be/pkg/companion"
	"mindwell-be/pkg/llm"

	"github.com/google/uuid"
)

const chatSystemPrompt = "You are a caring mental wellness companion. Listen with empathy, keep replies short and supportive, suggest gentle evidence-based techniques when appropriate, and never provide medical diagnoses. Encourage the user to seek professional help for serious concerns."

type IChatService interface {
	History(ctx context.Context, userId uuid.UUID) ([]*dto.ChatMessageResponse, error)
	Send(ctx context.Context, userId uuid.UUID, req *dto.SendChatMessageRequest) (*dto.SendChatMessageResponse, error)
}

type chatService struct {
	uowFactory  unitofwork.RepositoryFactory
	contextRepo *memory.ChatContextRepository
	llmProvider llm.LLMProvider // nil means canned replies only
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	contextRepo *memory.ChatContextRepository,
	llmProvider llm.LLMProvider,
) IChatService {
	return &chatService{
		uowFactory:  uowFactory,
		contextRepo: contextRepo,
		llmProvider: llmProvider,
	}
}

func toChatMessageResponse(msg *entity.ChatMessage) *dto.ChatMessageResponse {
	return &dto.ChatMessageResponse{
		Id:        msg.Id,
		Sender:    string(msg.Sender),
		Content:   msg.Content,
		CreatedAt: msg.CreatedAt,
	}
}

func (s *chatService) History(ctx context.Context, userId uuid.UUID) ([]*dto.ChatMessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.ChatMessageResponse, 0, len(messages))
	for _, msg := range messages {
		out = append(out, toChatMessageResponse(msg))
	}
	return out, nil
}

// contextWindow returns the recent conversation for prompt assembly,
// rebuilding the cache from the database on a miss.
func (s *chatService) contextWindow(ctx context.Context, userId uuid.UUID) []*entity.ChatMessage {
	if cached, found := s.contextRepo.Get(userId); found {
		return cached
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		fmt.Printf("[WARN] Failed to rebuild chat context for %s: %v\n", userId, err)
		return nil
	}

	s.contextRepo.Put(userId, messages)
	window, _ := s.contextRepo.Get(userId)
	return window
}

func (s *chatService) generateReply(ctx context.Context, history []*entity.ChatMessage, userContent string) string {
	if s.llmProvider == nil {
		return companion.Reply(userContent)
	}

	llmHistory := make([]llm.Message, 0, len(history)+2)
	llmHistory = append(llmHistory, llm.Message{Role: "system", Content: chatSystemPrompt})
	for _, msg := range history {
		role := "user"
		if msg.Sender == entity.ChatSenderAI {
			role = "assistant"
		}
		llmHistory = append(llmHistory, llm.Message{Role: role, Content: msg.Content})
	}
	llmHistory = append(llmHistory, llm.Message{Role: "user", Content: userContent})

	reply, err := s.llmProvider.Chat(ctx, llmHistory,
		llm.WithTemperature(0.7),
		llm.WithMaxTokens(1024),
	)
	if err != nil || reply == "" {
		// Degrade to canned support rather than surfacing an error.
		fmt.Printf("[WARN] LLM chat failed, using canned reply: %v\n", err)
		return companion.Reply(userContent)
	}
	return reply
}

func (s *chatService) Send(ctx context.Context, userId uuid.UUID, req *dto.SendChatMessageRequest) (*dto.SendChatMessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	userMessage := &entity.ChatMessage{
		Id:        uuid.New(),
		UserId:    userId,
		Content:   req.Content,
		Sender:    entity.ChatSenderUser,
		CreatedAt: time.Now(),
	}

	// The window is read before persisting the new message so it is not
	// doubled into the prompt.
	history := s.contextWindow(ctx, userId)

	if err := uow.ChatMessageRepository().Create(ctx, userMessage); err != nil {
		return nil, err
	}
	s.contextRepo.Append(userId, userMessage)

	replyContent := s.generateReply(ctx, history, req.Content)

	aiMessage := &entity.ChatMessage{
		Id:        uuid.New(),
		UserId:    userId,
		Content:   replyContent,
		Sender:    entity.ChatSenderAI,
		CreatedAt: time.Now(),
	}

	if err := uow.ChatMessageRepository().Create(ctx, aiMessage); err != nil {
		return nil, err
	}
	s.contextRepo.Append(userId, aiMessage)

	return &dto.SendChatMessageResponse{
		UserMessage: *toChatMessageResponse(userMessage),
		AiMessage:   *toChatMessageResponse(aiMessage),
	}, nil
}
