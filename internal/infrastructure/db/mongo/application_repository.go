package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fitapply/job-board/internal/core/domain"
)

const applicationsCollection = "applications"

type ApplicationRepository struct {
	coll *mongo.Collection
}

func NewApplicationRepository(db *mongo.Database) *ApplicationRepository {
	return &ApplicationRepository{coll: db.Collection(applicationsCollection)}
}

type applicationDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	AccountID   primitive.ObjectID `bson:"account_id"`
	JobID       primitive.ObjectID `bson:"job_id"`
	JobTitle    string             `bson:"job_title"`
	Company     string             `bson:"company"`
	CoverLetter string             `bson:"cover_letter"`
	AppliedAt   time.Time          `bson:"applied_at"`
	Status      string             `bson:"status"`
}

func (d *applicationDoc) toDomain() *domain.Application {
	return &domain.Application{
		ID:          d.ID.Hex(),
		AccountID:   d.AccountID.Hex(),
		JobID:       d.JobID.Hex(),
		JobTitle:    d.JobTitle,
		Company:     d.Company,
		CoverLetter: d.CoverLetter,
		AppliedAt:   d.AppliedAt.UTC(),
		Status:      domain.ApplicationStatus(d.Status),
	}
}

// pairFilter builds the (account_id, job_id) filter; invalid ids cannot
// match anything, so callers see not-found semantics.
func pairFilter(accountID, jobID string) (bson.M, error) {
	accountOID, err := primitive.ObjectIDFromHex(accountID)
	if err != nil {
		return nil, domain.ErrAccountNotFound
	}
	jobOID, err := primitive.ObjectIDFromHex(jobID)
	if err != nil {
		return nil, domain.ErrJobNotFound
	}
	return bson.M{"account_id": accountOID, "job_id": jobOID}, nil
}

// Create inserts the application. The unique (account_id, job_id) index
// turns a concurrent duplicate insert into ErrAlreadyApplied, which is what
// makes the apply flow race-free.
func (r *ApplicationRepository) Create(ctx context.Context, app *domain.Application) (*domain.Application, error) {
	accountOID, err := primitive.ObjectIDFromHex(app.AccountID)
	if err != nil {
		return nil, domain.ErrAccountNotFound
	}
	jobOID, err := primitive.ObjectIDFromHex(app.JobID)
	if err != nil {
		return nil, domain.ErrJobNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := applicationDoc{
		AccountID:   accountOID,
		JobID:       jobOID,
		JobTitle:    app.JobTitle,
		Company:     app.Company,
		CoverLetter: app.CoverLetter,
		AppliedAt:   app.AppliedAt,
		Status:      string(app.Status),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrAlreadyApplied
		}
		return nil, fmt.Errorf("insert application: %w", err)
	}

	created := *app
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *ApplicationRepository) Exists(ctx context.Context, accountID, jobID string) (bool, error) {
	filter, err := pairFilter(accountID, jobID)
	if err != nil {
		return false, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("check application: %w", err)
	}
	return n > 0, nil
}

func (r *ApplicationRepository) FindByAccount(ctx context.Context, accountID string) ([]*domain.Application, error) {
	oid, err := primitive.ObjectIDFromHex(accountID)
	if err != nil {
		return nil, domain.ErrAccountNotFound
	}
	return r.find(ctx, bson.M{"account_id": oid})
}

func (r *ApplicationRepository) FindAll(ctx context.Context) ([]*domain.Application, error) {
	return r.find(ctx, bson.M{})
}

func (r *ApplicationRepository) find(ctx context.Context, filter bson.M) ([]*domain.Application, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	defer cursor.Close(ctx)

	var apps []*domain.Application
	for cursor.Next(ctx) {
		var doc applicationDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode application: %w", err)
		}
		apps = append(apps, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return apps, nil
}

func (r *ApplicationRepository) CountByStatus(ctx context.Context, accountID string, status domain.ApplicationStatus) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(accountID)
	if err != nil {
		return 0, domain.ErrAccountNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.coll.CountDocuments(ctx, bson.M{"account_id": oid, "status": string(status)})
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) (*domain.Application, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrApplicationNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc applicationDoc
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"status": string(status)}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("update application status: %w", err)
	}
	return doc.toDomain(), nil
}

// EnsureIndexes creates the unique compound index that enforces at most one
// application per (account, job) pair.
func (r *ApplicationRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "account_id", Value: 1},
			{Key: "job_id", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
	return err
}
