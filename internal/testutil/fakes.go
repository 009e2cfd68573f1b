// Package testutil provides in-memory repository fakes for service and
// handler tests, so the membership engine can be exercised without a
// running MongoDB.
package testutil

import (
	"context"
	"strings"
	"sync"
	"time"

	"orghub/internal/model"
	"orghub/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FakeUserRepository is an in-memory repository.IUserRepository.
type FakeUserRepository struct {
	mu    sync.Mutex
	users []*model.User
}

var _ repository.IUserRepository = (*FakeUserRepository)(nil)

func NewFakeUserRepository() *FakeUserRepository {
	return &FakeUserRepository{}
}

func cloneUser(u *model.User) *model.User {
	c := *u
	c.Organizations = append([]primitive.ObjectID{}, u.Organizations...)
	return &c
}

func (f *FakeUserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == user.Email {
			return nil, repository.ErrDuplicateUser
		}
	}
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now().UTC()
	if user.Organizations == nil {
		user.Organizations = []primitive.ObjectID{}
	}
	f.users = append(f.users, cloneUser(user))
	return cloneUser(user), nil
}

func (f *FakeUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *FakeUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *FakeUserRepository) List(ctx context.Context, nameFilter string, limit, offset int64) (int64, []*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	matched := []*model.User{}
	for _, u := range f.users {
		if nameFilter == "" || strings.Contains(strings.ToLower(u.Name), strings.ToLower(nameFilter)) {
			matched = append(matched, u)
		}
	}
	total := int64(len(matched))
	page := []*model.User{}
	for i := offset; i < total && int64(len(page)) < limit; i++ {
		page = append(page, cloneUser(matched[i]))
	}
	return total, page, nil
}

func (f *FakeUserRepository) AddOrganization(ctx context.Context, userID, orgID primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ID == userID {
			for _, existing := range u.Organizations {
				if existing == orgID {
					return nil
				}
			}
			u.Organizations = append(u.Organizations, orgID)
			return nil
		}
	}
	return repository.ErrUserNotFound
}

func (f *FakeUserRepository) RemoveOrganization(ctx context.Context, userID, orgID primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ID == userID {
			kept := u.Organizations[:0]
			for _, existing := range u.Organizations {
				if existing != orgID {
					kept = append(kept, existing)
				}
			}
			u.Organizations = kept
			return nil
		}
	}
	return repository.ErrUserNotFound
}

// FakeOrgRepository is an in-memory repository.IOrgRepository.
type FakeOrgRepository struct {
	mu   sync.Mutex
	orgs []*model.Organization
}

var _ repository.IOrgRepository = (*FakeOrgRepository)(nil)

func NewFakeOrgRepository() *FakeOrgRepository {
	return &FakeOrgRepository{}
}

func cloneOrg(o *model.Organization) *model.Organization {
	c := *o
	c.Members = append([]model.MemberPermission{}, o.Members...)
	return &c
}

func (f *FakeOrgRepository) Create(ctx context.Context, org *model.Organization) (*model.Organization, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, o := range f.orgs {
		if o.Name == org.Name {
			return nil, repository.ErrDuplicateOrganization
		}
	}
	org.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	org.CreatedAt = now
	org.UpdatedAt = now
	f.orgs = append(f.orgs, cloneOrg(org))
	return cloneOrg(org), nil
}

func (f *FakeOrgRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Organization, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, o := range f.orgs {
		if o.ID == id {
			return cloneOrg(o), nil
		}
	}
	return nil, repository.ErrOrganizationNotFound
}

func (f *FakeOrgRepository) FindByName(ctx context.Context, name string) (*model.Organization, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, o := range f.orgs {
		if o.Name == name {
			return cloneOrg(o), nil
		}
	}
	return nil, repository.ErrOrganizationNotFound
}

func (f *FakeOrgRepository) List(ctx context.Context, nameFilter string, limit, offset int64) (int64, []*model.Organization, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	matched := []*model.Organization{}
	for _, o := range f.orgs {
		if nameFilter == "" || strings.Contains(strings.ToLower(o.Name), strings.ToLower(nameFilter)) {
			matched = append(matched, o)
		}
	}
	total := int64(len(matched))
	page := []*model.Organization{}
	for i := offset; i < total && int64(len(page)) < limit; i++ {
		page = append(page, cloneOrg(matched[i]))
	}
	return total, page, nil
}

// AddMember mirrors the conditional-update semantics of the Mongo
// implementation: the write matches only while no entry for the user exists.
func (f *FakeOrgRepository) AddMember(ctx context.Context, orgID primitive.ObjectID, member model.MemberPermission) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, o := range f.orgs {
		if o.ID != orgID {
			continue
		}
		for _, m := range o.Members {
			if m.UserID == member.UserID {
				return repository.ErrAlreadyMember
			}
		}
		o.Members = append(o.Members, member)
		o.UpdatedAt = time.Now().UTC()
		return nil
	}
	return repository.ErrAlreadyMember
}

func (f *FakeOrgRepository) UpdateMemberAccess(ctx context.Context, orgID, userID primitive.ObjectID, level model.AccessLevel) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, o := range f.orgs {
		if o.ID != orgID {
			continue
		}
		for i, m := range o.Members {
			if m.UserID == userID {
				o.Members[i].AccessLevel = level
				o.UpdatedAt = time.Now().UTC()
				return nil
			}
		}
	}
	return repository.ErrMemberNotFound
}

func (f *FakeOrgRepository) RemoveMember(ctx context.Context, orgID, userID primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, o := range f.orgs {
		if o.ID != orgID {
			continue
		}
		for i, m := range o.Members {
			if m.UserID == userID {
				o.Members = append(o.Members[:i], o.Members[i+1:]...)
				o.UpdatedAt = time.Now().UTC()
				return nil
			}
		}
	}
	return repository.ErrMemberNotFound
}
