package mongodb

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vidserve/backend/pkg/apperr"
)

// DefaultFindLimit caps FindMany cursors when the caller passes no limit.
const DefaultFindLimit = 10

// Policy is the on-missing behavior for a store operation. With Required set,
// an empty result raises an error carrying Message (default message, 500
// status, unless overridden); otherwise the operation returns a neutral
// empty result.
type Policy struct {
	Required bool
	Message  string
	Status   int
}

// Require builds a Policy that raises the given message on an empty result.
func Require(message string) Policy {
	return Policy{Required: true, Message: message}
}

func (p Policy) missing() error {
	return apperr.NotFound(p.Message, p.Status)
}

// Store is a thin uniform wrapper over collection-level CRUD. It passes
// filters and updates straight through to the driver; no transactionality or
// ordering is added.
type Store struct {
	db     *mongo.Database
	logger *logrus.Logger
}

func NewStore(db *mongo.Database, logger *logrus.Logger) *Store {
	return &Store{db: db, logger: logger}
}

// FindOne returns the matching document or nil when absent (unless the
// policy requires a result).
func (s *Store) FindOne(ctx context.Context, collection string, filter bson.M, projection bson.M, pol Policy) (bson.M, error) {
	if projection == nil {
		projection = bson.M{}
	}
	res := s.db.Collection(collection).FindOne(ctx, filter, options.FindOne().SetProjection(projection))

	var doc bson.M
	err := res.Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		if pol.Required {
			return nil, pol.missing()
		}
		return nil, nil
	}
	if err != nil {
		s.logger.WithError(err).WithField("collection", collection).Error("find one query failed")
		return nil, err
	}
	return doc, nil
}

// FindMany returns a live cursor over at most limit documents (default 10).
// The cursor is a finite, forward-only sequence; callers own closing it.
func (s *Store) FindMany(ctx context.Context, collection string, filter bson.M, projection bson.M, limit int64, pol Policy) (*mongo.Cursor, error) {
	if projection == nil {
		projection = bson.M{}
	}
	if limit <= 0 {
		limit = DefaultFindLimit
	}
	opts := options.Find().SetProjection(projection).SetLimit(limit)
	cur, err := s.db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		s.logger.WithError(err).WithField("collection", collection).Error("find many query failed")
		if pol.Required {
			return nil, pol.missing()
		}
		return nil, err
	}
	return cur, nil
}

// InsertOne inserts the document and returns the inserted count.
func (s *Store) InsertOne(ctx context.Context, collection string, doc any, pol Policy) (int64, error) {
	_, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		s.logger.WithError(err).WithField("collection", collection).Error("insert one query failed")
		if pol.Required {
			return 0, pol.missing()
		}
		return 0, err
	}
	return 1, nil
}

// InsertMany inserts the documents and returns the inserted count.
func (s *Store) InsertMany(ctx context.Context, collection string, docs []any, pol Policy) (int64, error) {
	res, err := s.db.Collection(collection).InsertMany(ctx, docs)
	if err != nil {
		s.logger.WithError(err).WithField("collection", collection).Error("insert many query failed")
		if pol.Required {
			return 0, pol.missing()
		}
		return 0, err
	}
	return int64(len(res.InsertedIDs)), nil
}

// UpdateOne applies the update to the first matching document and returns
// (matched, modified). With a Required policy a zero match raises.
func (s *Store) UpdateOne(ctx context.Context, collection string, filter bson.M, update bson.M, pol Policy) (int64, int64, error) {
	res, err := s.db.Collection(collection).UpdateOne(ctx, filter, update)
	return s.updateResult(collection, res, err, pol)
}

// UpdateMany applies the update to every matching document.
func (s *Store) UpdateMany(ctx context.Context, collection string, filter bson.M, update bson.M, pol Policy) (int64, int64, error) {
	res, err := s.db.Collection(collection).UpdateMany(ctx, filter, update)
	return s.updateResult(collection, res, err, pol)
}

func (s *Store) updateResult(collection string, res *mongo.UpdateResult, err error, pol Policy) (int64, int64, error) {
	if err != nil {
		s.logger.WithError(err).WithField("collection", collection).Error("update query failed")
		if pol.Required {
			return 0, 0, pol.missing()
		}
		return 0, 0, err
	}
	if pol.Required && res.MatchedCount == 0 {
		return 0, 0, pol.missing()
	}
	return res.MatchedCount, res.ModifiedCount, nil
}

// DeleteOne removes the first matching document and returns the deleted count.
func (s *Store) DeleteOne(ctx context.Context, collection string, filter bson.M, pol Policy) (int64, error) {
	res, err := s.db.Collection(collection).DeleteOne(ctx, filter)
	return s.deleteResult(collection, res, err, pol)
}

// DeleteMany removes every matching document.
func (s *Store) DeleteMany(ctx context.Context, collection string, filter bson.M, pol Policy) (int64, error) {
	res, err := s.db.Collection(collection).DeleteMany(ctx, filter)
	return s.deleteResult(collection, res, err, pol)
}

func (s *Store) deleteResult(collection string, res *mongo.DeleteResult, err error, pol Policy) (int64, error) {
	if err != nil {
		s.logger.WithError(err).WithField("collection", collection).Error("delete query failed")
		if pol.Required {
			return 0, pol.missing()
		}
		return 0, err
	}
	if pol.Required && res.DeletedCount == 0 {
		return 0, pol.missing()
	}
	return res.DeletedCount, nil
}
