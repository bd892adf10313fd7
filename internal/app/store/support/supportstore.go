package supportstore

import (
	"context"
	"time"

	"github.com/towdeskhq/towdesk/internal/app/system/normalize"
	"github.com/towdeskhq/towdesk/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	inboxLimit  = 500
	threadLimit = 500
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("support_messages")}
}

// Thread summarizes one sender's conversation for the inbox list.
type Thread struct {
	Sender    string    `bson:"_id"`
	LastBody  string    `bson:"last_body"`
	LastAt    time.Time `bson:"last_at"`
	Messages  int64     `bson:"messages"`
	Unreplied bool      `bson:"unreplied"`
}

// Threads groups messages by sender, newest conversation first. A thread is
// unreplied when its latest message came from the client side.
func (s *Store) Threads(ctx context.Context) ([]Thread, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: 1}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$sender"},
			{Key: "last_body", Value: bson.D{{Key: "$last", Value: "$body"}}},
			{Key: "last_at", Value: bson.D{{Key: "$last", Value: "$created_at"}}},
			{Key: "last_from_admin", Value: bson.D{{Key: "$last", Value: "$from_admin"}}},
			{Key: "messages", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$addFields", Value: bson.D{
			{Key: "unreplied", Value: bson.D{{Key: "$eq", Value: bson.A{"$last_from_admin", false}}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "last_at", Value: -1}}}},
		{{Key: "$limit", Value: inboxLimit}},
	}

	cur, err := s.c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var threads []Thread
	if err := cur.All(ctx, &threads); err != nil {
		return nil, err
	}
	return threads, nil
}

// Conversation returns the messages for one sender, oldest first.
func (s *Store) Conversation(ctx context.Context, sender string) ([]models.SupportMessage, error) {
	sender = normalize.Email(sender)

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: 1}}).
		SetLimit(threadLimit)

	cur, err := s.c.Find(ctx, bson.M{"sender": sender}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var msgs []models.SupportMessage
	if err := cur.All(ctx, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

// Reply appends an admin message to a sender's conversation.
func (s *Store) Reply(ctx context.Context, sender, adminName, body string) (models.SupportMessage, error) {
	msg := models.SupportMessage{
		ID:        primitive.NewObjectID(),
		Sender:    normalize.Email(sender),
		FromAdmin: true,
		AdminName: adminName,
		Body:      body,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := s.c.InsertOne(ctx, msg); err != nil {
		return models.SupportMessage{}, err
	}
	return msg, nil
}

// CountUnreplied returns the number of threads awaiting an admin reply.
func (s *Store) CountUnreplied(ctx context.Context) (int64, error) {
	threads, err := s.Threads(ctx)
	if err != nil {
		return 0, err
	}
	var n int64
	for _, t := range threads {
		if t.Unreplied {
			n++
		}
	}
	return n, nil
}
