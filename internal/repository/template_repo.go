package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/garland3/congenial-disco/internal/model"
)

// TemplateRepo handles MongoDB operations for interview templates
type TemplateRepo interface {
	Create(ctx context.Context, template *model.InterviewTemplate) error
	GetByID(ctx context.Context, id string) (*model.InterviewTemplate, error)
	ListActive(ctx context.Context) ([]*model.InterviewTemplate, error)
	Update(ctx context.Context, template *model.InterviewTemplate) error
	Deactivate(ctx context.Context, id string) error
}

type templateRepo struct {
	collection *mongo.Collection
}

// NewTemplateRepo creates a new template repository
func NewTemplateRepo(db *mongo.Database) TemplateRepo {
	return &templateRepo{
		collection: db.Collection("interview_templates"),
	}
}

func (r *templateRepo) Create(ctx context.Context, template *model.InterviewTemplate) error {
	template.CreatedAt = time.Now()
	template.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, template)
	return err
}

func (r *templateRepo) GetByID(ctx context.Context, id string) (*model.InterviewTemplate, error) {
	var template model.InterviewTemplate
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&template)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &template, nil
}

func (r *templateRepo) ListActive(ctx context.Context) ([]*model.InterviewTemplate, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"isActive": true})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var templates []*model.InterviewTemplate
	if err := cursor.All(ctx, &templates); err != nil {
		return nil, err
	}
	return templates, nil
}

func (r *templateRepo) Update(ctx context.Context, template *model.InterviewTemplate) error {
	template.UpdatedAt = time.Now()
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": template.ID}, template)
	return err
}

func (r *templateRepo) Deactivate(ctx context.Context, id string) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"isActive": false, "updatedAt": time.Now()},
	})
	return err
}
