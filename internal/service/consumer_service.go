package service

import (
	"context"
	"encoding/json"
	"log"

	"mindwell-be/internal/dto"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub                *gochannel.GoChannel
	topicName             string
	recommendationService IRecommendationService
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	recommendationService IRecommendationService,
) IConsumerService {
	return &consumerService{
		pubSub:                pubSub,
		topicName:             topicName,
		recommendationService: recommendationService,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.GenerateRecommendationsMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Generating recommendations for user %s (source: %s)", payload.UserId, payload.Source)

	_, err := cs.recommendationService.Generate(ctx, payload.UserId, &dto.GenerateRecommendationsRequest{
		Source:  payload.Source,
		Context: payload.Context,
	})
	if err != nil {
		// Recommendation generation is best-effort; no retries.
		log.Printf("[ERROR] Failed to generate recommendations for user %s: %v", payload.UserId, err)
	}

	msg.Ack()
}
