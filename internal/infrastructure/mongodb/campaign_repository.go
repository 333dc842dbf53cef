package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/Petfood-admin/internal/domain/entity"
	"github.com/jhoicas/Petfood-admin/internal/domain/repository"
)

var _ repository.CampaignRepository = (*CampaignRepo)(nil)

// CampaignRepo campañas programadas sobre la colección scheduledCampaigns.
type CampaignRepo struct {
	col *mongo.Collection
}

// NewCampaignRepository construye el adaptador de campañas.
func NewCampaignRepository(db *mongo.Database) *CampaignRepo {
	return &CampaignRepo{col: db.Collection(ColCampaigns)}
}

// ListActive campañas activas.
func (r *CampaignRepo) ListActive(ctx context.Context) ([]entity.Campaign, error) {
	cursor, err := r.col.Find(ctx, bson.M{"isActive": true})
	if err != nil {
		return nil, wrap("mongo.Campaigns.ListActive", err)
	}
	var docs []campaignDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, wrap("mongo.Campaigns.ListActive: decode", err)
	}
	out := make([]entity.Campaign, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toEntity())
	}
	return out, nil
}

// MarkRun registra lastRunAt.
func (r *CampaignRepo) MarkRun(ctx context.Context, id string, at time.Time) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	_, err = r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"lastRunAt": at}})
	return wrap("mongo.Campaigns.MarkRun", err)
}
