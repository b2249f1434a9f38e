package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"brewdash/internal/model"
)

// AnalysisRepo persists computed analyses for history and warm restarts.
type AnalysisRepo interface {
	SaveSnapshot(ctx context.Context, fingerprint string, analysis *model.FourPAnalysis) error
	GetSnapshot(ctx context.Context, fingerprint string) (*model.FourPAnalysis, error)
}

type snapshotDoc struct {
	Fingerprint string               `bson:"fingerprint"`
	Analysis    *model.FourPAnalysis `bson:"analysis"`
	SavedAt     time.Time            `bson:"savedAt"`
}

type analysisRepo struct {
	snapshots *mongo.Collection
}

// NewAnalysisRepo creates a new analysis repository
func NewAnalysisRepo(db *mongo.Database) AnalysisRepo {
	return &analysisRepo{
		snapshots: db.Collection("analysis_snapshots"),
	}
}

func (r *analysisRepo) SaveSnapshot(ctx context.Context, fingerprint string, analysis *model.FourPAnalysis) error {
	opts := options.Replace().SetUpsert(true)
	doc := snapshotDoc{Fingerprint: fingerprint, Analysis: analysis, SavedAt: time.Now()}
	_, err := r.snapshots.ReplaceOne(ctx, bson.M{"fingerprint": fingerprint}, doc, opts)
	return err
}

func (r *analysisRepo) GetSnapshot(ctx context.Context, fingerprint string) (*model.FourPAnalysis, error) {
	var doc snapshotDoc
	err := r.snapshots.FindOne(ctx, bson.M{"fingerprint": fingerprint}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc.Analysis, nil
}
