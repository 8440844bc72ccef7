package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"civictrack/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readconcern"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
)

const (
	IssuesCollection      = "issues"
	HistoryCollection     = "issue_history"
	CountersCollection    = "counters"
	AuthoritiesCollection = "authorities"
)

// MongoStore is the MongoDB backed store. Multi-document writes use
// transactions, so the server must run as a replica set.
type MongoStore struct {
	client      *mongo.Client
	issues      *mongo.Collection
	history     *mongo.Collection
	counters    *mongo.Collection
	authorities *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{
		client:      db.Client(),
		issues:      db.Collection(IssuesCollection),
		history:     db.Collection(HistoryCollection),
		counters:    db.Collection(CountersCollection),
		authorities: db.Collection(AuthoritiesCollection),
	}
}

// EnsureIndexes creates the indexes the queries below rely on.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := s.history.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "issueId", Value: 1}, {Key: "timestamp", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("history index: %w", err)
	}

	_, err = s.issues.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "reportedDate", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "location.city", Value: 1}}},
		{Keys: bson.D{{Key: "assignedTo.department", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("issue indexes: %w", err)
	}

	_, err = s.authorities.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("authority index: %w", err)
	}
	return nil
}

func (s *MongoStore) NextSequence(ctx context.Context, key string) (int64, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)
	err := s.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": key},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("increment counter %s: %w", key, err)
	}
	return counter.Seq, nil
}

func (s *MongoStore) InsertIssue(ctx context.Context, issue *models.Issue, first models.HistoryEntry) error {
	first.IssueID = issue.ID
	err := s.withTransaction(ctx, nil, func(sc mongo.SessionContext) (interface{}, error) {
		if _, err := s.issues.InsertOne(sc, issue); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return nil, ErrDuplicate
			}
			return nil, fmt.Errorf("insert issue: %w", err)
		}
		if _, err := s.history.InsertOne(sc, first); err != nil {
			return nil, fmt.Errorf("insert history: %w", err)
		}
		return nil, nil
	})
	return err
}

func (s *MongoStore) ApplyStatusChange(ctx context.Context, id string, change models.StatusChange, entry models.HistoryEntry) (*models.Issue, error) {
	entry.IssueID = id
	update := statusUpdateDocument(change)

	var updated models.Issue
	err := s.withTransaction(ctx, nil, func(sc mongo.SessionContext) (interface{}, error) {
		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
		err := s.issues.FindOneAndUpdate(sc, bson.M{"_id": id}, update, opts).Decode(&updated)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, ErrNotFound
			}
			return nil, fmt.Errorf("update issue: %w", err)
		}
		if _, err := s.history.InsertOne(sc, entry); err != nil {
			return nil, fmt.Errorf("insert history: %w", err)
		}
		return nil, nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *MongoStore) FindIssue(ctx context.Context, id string) (*models.Issue, error) {
	var issue models.Issue
	err := s.issues.FindOne(ctx, bson.M{"_id": id}).Decode(&issue)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find issue %s: %w", id, err)
	}
	return &issue, nil
}

func (s *MongoStore) FindIssues(ctx context.Context, filter models.IssueFilter) ([]models.Issue, error) {
	findOptions := options.Find().SetSort(newestFirst)

	cursor, err := s.issues.Find(ctx, issueFilterDocument(filter), findOptions)
	if err != nil {
		return nil, fmt.Errorf("find issues: %w", err)
	}
	defer cursor.Close(ctx)

	issues := []models.Issue{}
	if err := cursor.All(ctx, &issues); err != nil {
		return nil, fmt.Errorf("decode issues: %w", err)
	}
	return issues, nil
}

func (s *MongoStore) History(ctx context.Context, issueID string) ([]models.HistoryEntry, error) {
	findOptions := options.Find().SetSort(ledgerOrder)

	cursor, err := s.history.Find(ctx, bson.M{"issueId": issueID}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("find history: %w", err)
	}
	defer cursor.Close(ctx)

	entries := []models.HistoryEntry{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("decode history: %w", err)
	}
	return entries, nil
}

// Snapshot joins issues with their ledger in one aggregation run inside a
// snapshot read concern transaction.
func (s *MongoStore) Snapshot(ctx context.Context) ([]models.IssueRecord, error) {
	txnOpts := options.Transaction().SetReadConcern(readconcern.Snapshot())

	var records []models.IssueRecord
	err := s.withTransaction(ctx, txnOpts, func(sc mongo.SessionContext) (interface{}, error) {
		cursor, err := s.issues.Aggregate(sc, snapshotPipeline())
		if err != nil {
			return nil, fmt.Errorf("aggregate snapshot: %w", err)
		}
		defer cursor.Close(sc)

		records = []models.IssueRecord{}
		if err := cursor.All(sc, &records); err != nil {
			return nil, fmt.Errorf("decode snapshot: %w", err)
		}
		return nil, nil
	})
	if err != nil {
		return nil, err
	}
	for i := range records {
		sortLedger(records[i].History)
	}
	return records, nil
}

func (s *MongoStore) CreateAuthority(ctx context.Context, authority *models.Authority) error {
	if authority.ID.IsZero() {
		authority.ID = primitive.NewObjectID()
	}
	if _, err := s.authorities.InsertOne(ctx, authority); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("insert authority: %w", err)
	}
	return nil
}

func (s *MongoStore) FindAuthorityByEmail(ctx context.Context, email string) (*models.Authority, error) {
	return s.findAuthority(ctx, bson.M{"email": email})
}

func (s *MongoStore) FindAuthorityByID(ctx context.Context, id string) (*models.Authority, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	return s.findAuthority(ctx, bson.M{"_id": objID})
}

func (s *MongoStore) findAuthority(ctx context.Context, filter bson.M) (*models.Authority, error) {
	var authority models.Authority
	err := s.authorities.FindOne(ctx, filter).Decode(&authority)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find authority: %w", err)
	}
	return &authority, nil
}

func (s *MongoStore) withTransaction(ctx context.Context, opts *options.TransactionOptions, fn func(mongo.SessionContext) (interface{}, error)) error {
	if opts == nil {
		opts = options.Transaction().SetWriteConcern(writeconcern.Majority())
	}
	session, err := s.client.StartSession()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, fn, opts)
	return err
}

var (
	newestFirst = bson.D{{Key: "reportedDate", Value: -1}, {Key: "_id", Value: -1}}
	ledgerOrder = bson.D{{Key: "timestamp", Value: 1}, {Key: "_id", Value: 1}}
)

func issueFilterDocument(filter models.IssueFilter) bson.M {
	doc := bson.M{}
	if filter.Status != "" {
		doc["status"] = filter.Status
	}
	if filter.Category != "" {
		doc["category"] = filter.Category
	}
	if filter.City != "" {
		doc["location.city"] = filter.City
	}
	return doc
}

// statusUpdateDocument builds the update for a status change. A nil
// assignment unsets the stored one.
func statusUpdateDocument(change models.StatusChange) bson.M {
	set := bson.M{
		"status":      change.Status,
		"updatedDate": change.UpdatedDate,
	}
	update := bson.M{"$set": set}
	if change.AssignedTo != nil {
		set["assignedTo"] = change.AssignedTo
	} else {
		update["$unset"] = bson.M{"assignedTo": ""}
	}
	return update
}

func snapshotPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$sort", Value: newestFirst}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: HistoryCollection},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "issueId"},
			{Key: "as", Value: "history"},
		}}},
	}
}

// $lookup does not guarantee the order of joined documents.
func sortLedger(entries []models.HistoryEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.Before(entries[j].Timestamp)
	})
}
