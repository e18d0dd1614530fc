package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/clinicops/directory-admin/internal/core/domain"
)

const auditCollection = "audit_log"

// AuditRepository stores the local audit trail in MongoDB.
type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

type auditDoc struct {
	ID        string            `bson:"_id"`
	Actor     string            `bson:"actor"`
	Action    string            `bson:"action"`
	TargetID  string            `bson:"target_id,omitempty"`
	Detail    map[string]string `bson:"detail,omitempty"`
	CreatedAt int64             `bson:"created_at"`
}

func (r *AuditRepository) Append(ctx context.Context, entry *domain.AuditEntry) error {
	doc := auditDoc{
		ID:        entry.ID,
		Actor:     entry.Actor,
		Action:    entry.Action,
		TargetID:  entry.TargetID,
		Detail:    entry.Detail,
		CreatedAt: entry.CreatedAt.Unix(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("append audit entry: %w", err)
	}
	return nil
}

func (r *AuditRepository) Recent(ctx context.Context, limit int64) ([]domain.AuditEntry, error) {
	if limit <= 0 {
		limit = 50
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find audit entries: %w", err)
	}
	defer cur.Close(ctx)

	var entries []domain.AuditEntry
	for cur.Next(ctx) {
		var doc auditDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode audit entry: %w", err)
		}
		entries = append(entries, domain.AuditEntry{
			ID:        doc.ID,
			Actor:     doc.Actor,
			Action:    doc.Action,
			TargetID:  doc.TargetID,
			Detail:    doc.Detail,
			CreatedAt: unixToTime(doc.CreatedAt),
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit entries: %w", err)
	}

	return entries, nil
}
