package repository

import (
	"context"
	"time"

	"orghub/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// IOrgRepository defines organization persistence
type IOrgRepository interface {
	Create(ctx context.Context, org *model.Organization) (*model.Organization, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Organization, error)
	FindByName(ctx context.Context, name string) (*model.Organization, error)
	List(ctx context.Context, nameFilter string, limit, offset int64) (int64, []*model.Organization, error)
	AddMember(ctx context.Context, orgID primitive.ObjectID, member model.MemberPermission) error
	UpdateMemberAccess(ctx context.Context, orgID, userID primitive.ObjectID, level model.AccessLevel) error
	RemoveMember(ctx context.Context, orgID, userID primitive.ObjectID) error
}

// OrgRepository implements organization persistence
type OrgRepository struct {
	collection *mongo.Collection
}

func NewOrgRepository(db *mongo.Database) IOrgRepository {
	return &OrgRepository{collection: db.Collection("organizations")}
}

func (r *OrgRepository) Create(ctx context.Context, org *model.Organization) (*model.Organization, error) {
	now := time.Now().UTC()
	org.CreatedAt = now
	org.UpdatedAt = now
	res, err := r.collection.InsertOne(ctx, org)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateOrganization
		}
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		org.ID = oid
	}
	return org, nil
}

func (r *OrgRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Organization, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *OrgRepository) FindByName(ctx context.Context, name string) (*model.Organization, error) {
	return r.findOne(ctx, bson.M{"name": name})
}

func (r *OrgRepository) findOne(ctx context.Context, filter bson.M) (*model.Organization, error) {
	var org model.Organization
	if err := r.collection.FindOne(ctx, filter).Decode(&org); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrOrganizationNotFound
		}
		return nil, err
	}
	return &org, nil
}

// List counts then fetches one page. The filter, when non-empty, is a
// case-insensitive substring match against name.
func (r *OrgRepository) List(ctx context.Context, nameFilter string, limit, offset int64) (int64, []*model.Organization, error) {
	filter := bson.M{}
	if nameFilter != "" {
		filter["name"] = primitive.Regex{Pattern: nameFilter, Options: "i"}
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, nil, err
	}

	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSkip(offset).SetLimit(limit))
	if err != nil {
		return 0, nil, err
	}
	defer cursor.Close(ctx)

	orgs := []*model.Organization{}
	if err := cursor.All(ctx, &orgs); err != nil {
		return 0, nil, err
	}
	return total, orgs, nil
}

// AddMember appends the member with a guard against a concurrent insert of the
// same user: the update matches only while no entry for that user exists, so
// two racing adds cannot both append.
func (r *OrgRepository) AddMember(ctx context.Context, orgID primitive.ObjectID, member model.MemberPermission) error {
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": orgID, "members.user_id": bson.M{"$ne": member.UserID}},
		bson.M{
			"$push": bson.M{"members": member},
			"$set":  bson.M{"updated_at": time.Now().UTC()},
		},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrAlreadyMember
	}
	return nil
}

func (r *OrgRepository) UpdateMemberAccess(ctx context.Context, orgID, userID primitive.ObjectID, level model.AccessLevel) error {
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": orgID, "members.user_id": userID},
		bson.M{
			"$set": bson.M{
				"members.$.access_level": level,
				"updated_at":             time.Now().UTC(),
			},
		},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrMemberNotFound
	}
	return nil
}

func (r *OrgRepository) RemoveMember(ctx context.Context, orgID, userID primitive.ObjectID) error {
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": orgID, "members.user_id": userID},
		bson.M{
			"$pull": bson.M{"members": bson.M{"user_id": userID}},
			"$set":  bson.M{"updated_at": time.Now().UTC()},
		},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrMemberNotFound
	}
	return nil
}
