package service_test

import (
	"context"
	"errors"
	"testing"

	"orghub/internal/config"
	"orghub/internal/model"
	"orghub/internal/repository"
	"orghub/internal/service"
	"orghub/internal/testutil"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type orgTestEnv struct {
	orgs  *service.OrgService
	users *service.UserService
}

func newOrgTestEnv() orgTestEnv {
	cfg := config.New()
	userRepo := testutil.NewFakeUserRepository()
	orgRepo := testutil.NewFakeOrgRepository()
	return orgTestEnv{
		orgs:  service.NewOrgService(cfg, orgRepo, userRepo),
		users: service.NewUserService(cfg, userRepo),
	}
}

func (e orgTestEnv) createUser(t *testing.T, name, email string) *model.User {
	t.Helper()
	u, err := e.users.Create(context.Background(), name, email)
	if err != nil {
		t.Fatalf("create user %q: %v", name, err)
	}
	return u
}

func (e orgTestEnv) createOrg(t *testing.T, name string, creator *model.User) *model.Organization {
	t.Helper()
	o, err := e.orgs.Create(context.Background(), name, creator.ID.Hex())
	if err != nil {
		t.Fatalf("create organization %q: %v", name, err)
	}
	return o
}

func TestCreateOrganization_EnrollsCreatorAsAdmin(t *testing.T) {
	env := newOrgTestEnv()
	ctx := context.Background()

	creator := env.createUser(t, "Jane", "jane@x.com")
	org := env.createOrg(t, "Acme", creator)

	if len(org.Members) != 1 {
		t.Fatalf("members: got %d, want 1", len(org.Members))
	}
	if org.Members[0].UserID != creator.ID {
		t.Errorf("member user_id: got %s, want %s", org.Members[0].UserID.Hex(), creator.ID.Hex())
	}
	if org.Members[0].AccessLevel != model.AccessLevelAdmin {
		t.Errorf("member access_level: got %s, want ADMIN", org.Members[0].AccessLevel)
	}
	if org.CreatedBy != creator.ID {
		t.Errorf("created_by: got %s, want %s", org.CreatedBy.Hex(), creator.ID.Hex())
	}

	// Back-reference appended to the creator's organizations list.
	u, err := env.users.Get(ctx, creator.ID.Hex())
	if err != nil {
		t.Fatalf("get creator: %v", err)
	}
	if len(u.Organizations) != 1 || u.Organizations[0] != org.ID {
		t.Errorf("creator organizations: got %v, want [%s]", u.Organizations, org.ID.Hex())
	}
}

func TestCreateOrganization_Failures(t *testing.T) {
	env := newOrgTestEnv()
	ctx := context.Background()
	creator := env.createUser(t, "Jane", "jane@x.com")

	if _, err := env.orgs.Create(ctx, "", creator.ID.Hex()); !errors.Is(err, service.ErrValidation) {
		t.Errorf("empty name: got %v, want ErrValidation", err)
	}
	if _, err := env.orgs.Create(ctx, "Acme", ""); !errors.Is(err, service.ErrValidation) {
		t.Errorf("empty created_by: got %v, want ErrValidation", err)
	}
	if _, err := env.orgs.Create(ctx, "Acme", "not-a-hex-id"); !errors.Is(err, service.ErrInvalidID) {
		t.Errorf("malformed created_by: got %v, want ErrInvalidID", err)
	}
	if _, err := env.orgs.Create(ctx, "Acme", primitive.NewObjectID().Hex()); !errors.Is(err, repository.ErrUserNotFound) {
		t.Errorf("unknown creator: got %v, want ErrUserNotFound", err)
	}

	env.createOrg(t, "Acme", creator)
	if _, err := env.orgs.Create(ctx, "Acme", creator.ID.Hex()); !errors.Is(err, repository.ErrDuplicateOrganization) {
		t.Errorf("duplicate name: got %v, want ErrDuplicateOrganization", err)
	}
}

func TestAddMember(t *testing.T) {
	env := newOrgTestEnv()
	ctx := context.Background()

	creator := env.createUser(t, "Jane", "jane@x.com")
	target := env.createUser(t, "Bob", "bob@x.com")
	org := env.createOrg(t, "Acme", creator)

	updated, err := env.orgs.AddMember(ctx, org.ID.Hex(), creator.ID.Hex(), target.ID.Hex(), "WRITE")
	if err != nil {
		t.Fatalf("AddMember: %v", err)
	}
	if len(updated.Members) != 2 {
		t.Fatalf("members: got %d, want 2", len(updated.Members))
	}
	m, ok := updated.Member(target.ID)
	if !ok {
		t.Fatal("target not in members")
	}
	if m.AccessLevel != model.AccessLevelWrite {
		t.Errorf("access_level: got %s, want WRITE", m.AccessLevel)
	}

	u, err := env.users.Get(ctx, target.ID.Hex())
	if err != nil {
		t.Fatalf("get target: %v", err)
	}
	if len(u.Organizations) != 1 || u.Organizations[0] != org.ID {
		t.Errorf("target organizations: got %v, want [%s]", u.Organizations, org.ID.Hex())
	}
}

func TestAddMember_OrderedChecks(t *testing.T) {
	env := newOrgTestEnv()
	ctx := context.Background()

	creator := env.createUser(t, "Jane", "jane@x.com")
	writer := env.createUser(t, "Bob", "bob@x.com")
	outsider := env.createUser(t, "Carol", "carol@x.com")
	org := env.createOrg(t, "Acme", creator)
	if _, err := env.orgs.AddMember(ctx, org.ID.Hex(), creator.ID.Hex(), writer.ID.Hex(), "WRITE"); err != nil {
		t.Fatalf("seed writer: %v", err)
	}

	tests := []struct {
		name    string
		orgID   string
		author  string
		user    string
		level   string
		wantErr error
	}{
		{"malformed org id", "nope", creator.ID.Hex(), outsider.ID.Hex(), "READ", service.ErrInvalidID},
		{"malformed author id", org.ID.Hex(), "nope", outsider.ID.Hex(), "READ", service.ErrInvalidID},
		{"malformed user id", org.ID.Hex(), creator.ID.Hex(), "nope", "READ", service.ErrInvalidID},
		{"organization missing", primitive.NewObjectID().Hex(), creator.ID.Hex(), outsider.ID.Hex(), "READ", repository.ErrOrganizationNotFound},
		{"user missing", org.ID.Hex(), creator.ID.Hex(), primitive.NewObjectID().Hex(), "READ", repository.ErrUserNotFound},
		// A WRITE member is not authorized, even with a valid target.
		{"author not admin", org.ID.Hex(), writer.ID.Hex(), outsider.ID.Hex(), "READ", service.ErrNotAuthorized},
		// Authorization is checked before the bad level is noticed.
		{"author not admin wins over bad level", org.ID.Hex(), writer.ID.Hex(), outsider.ID.Hex(), "owner", service.ErrNotAuthorized},
		{"already a member", org.ID.Hex(), creator.ID.Hex(), writer.ID.Hex(), "READ", repository.ErrAlreadyMember},
		{"invalid access level", org.ID.Hex(), creator.ID.Hex(), outsider.ID.Hex(), "owner", model.ErrInvalidAccessLevel},
		{"lowercase access level", org.ID.Hex(), creator.ID.Hex(), outsider.ID.Hex(), "admin", model.ErrInvalidAccessLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.orgs.AddMember(ctx, tt.orgID, tt.author, tt.user, tt.level)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestAddThenRemoveMember_RestoresMemberSet(t *testing.T) {
	env := newOrgTestEnv()
	ctx := context.Background()

	creator := env.createUser(t, "Jane", "jane@x.com")
	target := env.createUser(t, "Bob", "bob@x.com")
	org := env.createOrg(t, "Acme", creator)

	if _, err := env.orgs.AddMember(ctx, org.ID.Hex(), creator.ID.Hex(), target.ID.Hex(), "READ"); err != nil {
		t.Fatalf("AddMember: %v", err)
	}
	after, err := env.orgs.RemoveMember(ctx, org.ID.Hex(), creator.ID.Hex(), target.ID.Hex())
	if err != nil {
		t.Fatalf("RemoveMember: %v", err)
	}

	if len(after.Members) != 1 || after.Members[0].UserID != creator.ID {
		t.Errorf("members after add+remove: got %v, want only the creator", after.Members)
	}
	u, err := env.users.Get(ctx, target.ID.Hex())
	if err != nil {
		t.Fatalf("get target: %v", err)
	}
	if len(u.Organizations) != 0 {
		t.Errorf("target organizations after remove: got %v, want empty", u.Organizations)
	}
}

func TestUpdateMemberAccess_Idempotent(t *testing.T) {
	env := newOrgTestEnv()
	ctx := context.Background()

	creator := env.createUser(t, "Jane", "jane@x.com")
	target := env.createUser(t, "Bob", "bob@x.com")
	org := env.createOrg(t, "Acme", creator)
	if _, err := env.orgs.AddMember(ctx, org.ID.Hex(), creator.ID.Hex(), target.ID.Hex(), "READ"); err != nil {
		t.Fatalf("AddMember: %v", err)
	}

	first, err := env.orgs.UpdateMemberAccess(ctx, org.ID.Hex(), creator.ID.Hex(), target.ID.Hex(), "WRITE")
	if err != nil {
		t.Fatalf("first update: %v", err)
	}
	second, err := env.orgs.UpdateMemberAccess(ctx, org.ID.Hex(), creator.ID.Hex(), target.ID.Hex(), "WRITE")
	if err != nil {
		t.Fatalf("second update: %v", err)
	}

	m1, _ := first.Member(target.ID)
	m2, _ := second.Member(target.ID)
	if m1.AccessLevel != model.AccessLevelWrite || m2.AccessLevel != model.AccessLevelWrite {
		t.Errorf("access levels: first %s second %s, want WRITE both times", m1.AccessLevel, m2.AccessLevel)
	}
	if len(first.Members) != len(second.Members) {
		t.Errorf("member counts differ: %d vs %d", len(first.Members), len(second.Members))
	}
}

func TestUpdateMemberAccess_NonMember(t *testing.T) {
	env := newOrgTestEnv()
	ctx := context.Background()

	creator := env.createUser(t, "Jane", "jane@x.com")
	outsider := env.createUser(t, "Bob", "bob@x.com")
	org := env.createOrg(t, "Acme", creator)

	_, err := env.orgs.UpdateMemberAccess(ctx, org.ID.Hex(), creator.ID.Hex(), outsider.ID.Hex(), "READ")
	if !errors.Is(err, repository.ErrMemberNotFound) {
		t.Errorf("got %v, want ErrMemberNotFound", err)
	}
}

// Demoting the creator, or the last ADMIN, is permitted. An organization can
// end up with zero ADMINs.
func TestUpdateMemberAccess_SelfDemotionAllowed(t *testing.T) {
	env := newOrgTestEnv()
	ctx := context.Background()

	creator := env.createUser(t, "Jane", "jane@x.com")
	org := env.createOrg(t, "Acme", creator)

	updated, err := env.orgs.UpdateMemberAccess(ctx, org.ID.Hex(), creator.ID.Hex(), creator.ID.Hex(), "READ")
	if err != nil {
		t.Fatalf("self demotion: %v", err)
	}
	m, _ := updated.Member(creator.ID)
	if m.AccessLevel != model.AccessLevelRead {
		t.Errorf("access_level: got %s, want READ", m.AccessLevel)
	}

	// No ADMIN is left; further membership mutations are locked out.
	other := env.createUser(t, "Bob", "bob@x.com")
	if _, err := env.orgs.AddMember(ctx, org.ID.Hex(), creator.ID.Hex(), other.ID.Hex(), "READ"); !errors.Is(err, service.ErrNotAuthorized) {
		t.Errorf("mutation with zero admins: got %v, want ErrNotAuthorized", err)
	}
}

func TestRemoveMember_CreatorProtected(t *testing.T) {
	env := newOrgTestEnv()
	ctx := context.Background()

	creator := env.createUser(t, "Jane", "jane@x.com")
	writer := env.createUser(t, "Bob", "bob@x.com")
	org := env.createOrg(t, "Acme", creator)
	if _, err := env.orgs.AddMember(ctx, org.ID.Hex(), creator.ID.Hex(), writer.ID.Hex(), "WRITE"); err != nil {
		t.Fatalf("seed writer: %v", err)
	}

	// Even the creator, acting as an ADMIN, cannot remove themself.
	if _, err := env.orgs.RemoveMember(ctx, org.ID.Hex(), creator.ID.Hex(), creator.ID.Hex()); !errors.Is(err, service.ErrCannotRemoveCreator) {
		t.Errorf("admin removing creator: got %v, want ErrCannotRemoveCreator", err)
	}

	// The creator check runs before authorization: a non-ADMIN author gets
	// the creator rejection, not the authorization one.
	if _, err := env.orgs.RemoveMember(ctx, org.ID.Hex(), writer.ID.Hex(), creator.ID.Hex()); !errors.Is(err, service.ErrCannotRemoveCreator) {
		t.Errorf("non-admin removing creator: got %v, want ErrCannotRemoveCreator", err)
	}
}

func TestRemoveMember_Failures(t *testing.T) {
	env := newOrgTestEnv()
	ctx := context.Background()

	creator := env.createUser(t, "Jane", "jane@x.com")
	writer := env.createUser(t, "Bob", "bob@x.com")
	outsider := env.createUser(t, "Carol", "carol@x.com")
	org := env.createOrg(t, "Acme", creator)
	if _, err := env.orgs.AddMember(ctx, org.ID.Hex(), creator.ID.Hex(), writer.ID.Hex(), "WRITE"); err != nil {
		t.Fatalf("seed writer: %v", err)
	}

	if _, err := env.orgs.RemoveMember(ctx, primitive.NewObjectID().Hex(), creator.ID.Hex(), writer.ID.Hex()); !errors.Is(err, repository.ErrOrganizationNotFound) {
		t.Errorf("organization missing: got %v, want ErrOrganizationNotFound", err)
	}
	if _, err := env.orgs.RemoveMember(ctx, org.ID.Hex(), writer.ID.Hex(), outsider.ID.Hex()); !errors.Is(err, service.ErrNotAuthorized) {
		t.Errorf("author not admin: got %v, want ErrNotAuthorized", err)
	}
	if _, err := env.orgs.RemoveMember(ctx, org.ID.Hex(), creator.ID.Hex(), outsider.ID.Hex()); !errors.Is(err, repository.ErrMemberNotFound) {
		t.Errorf("target not a member: got %v, want ErrMemberNotFound", err)
	}
}

// The end-to-end scenario: creator auto-enrolled, ADMIN adds a WRITE member,
// creator removal rejected, WRITE member cannot add others.
func TestMembershipScenario(t *testing.T) {
	env := newOrgTestEnv()
	ctx := context.Background()

	a := env.createUser(t, "Jane", "jane@x.com")
	b := env.createUser(t, "Bob", "bob@x.com")
	c := env.createUser(t, "Carol", "carol@x.com")

	org := env.createOrg(t, "Acme", a)
	if !org.IsAdmin(a.ID) {
		t.Fatal("creator is not an ADMIN member")
	}

	org2, err := env.orgs.AddMember(ctx, org.ID.Hex(), a.ID.Hex(), b.ID.Hex(), "WRITE")
	if err != nil {
		t.Fatalf("A adds B: %v", err)
	}
	if len(org2.Members) != 2 {
		t.Fatalf("members: got %d, want 2", len(org2.Members))
	}

	if _, err := env.orgs.RemoveMember(ctx, org.ID.Hex(), a.ID.Hex(), a.ID.Hex()); !errors.Is(err, service.ErrCannotRemoveCreator) {
		t.Errorf("A removes A: got %v, want ErrCannotRemoveCreator", err)
	}
	if _, err := env.orgs.AddMember(ctx, org.ID.Hex(), b.ID.Hex(), c.ID.Hex(), "READ"); !errors.Is(err, service.ErrNotAuthorized) {
		t.Errorf("B adds C: got %v, want ErrNotAuthorized", err)
	}
}

func TestGetOrganization(t *testing.T) {
	env := newOrgTestEnv()
	ctx := context.Background()

	creator := env.createUser(t, "Jane", "jane@x.com")
	org := env.createOrg(t, "Acme", creator)

	byID, err := env.orgs.Get(ctx, org.ID.Hex())
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if byID.ID != org.ID {
		t.Errorf("by id: got %s, want %s", byID.ID.Hex(), org.ID.Hex())
	}

	byName, err := env.orgs.Get(ctx, "Acme")
	if err != nil {
		t.Fatalf("get by name: %v", err)
	}
	if byName.ID != org.ID {
		t.Errorf("by name: got %s, want %s", byName.ID.Hex(), org.ID.Hex())
	}

	// A malformed identifier that is also not an existing name is a plain
	// not-found, never an invalid-identifier failure.
	if _, err := env.orgs.Get(ctx, "not-an-id-and-not-a-name"); !errors.Is(err, repository.ErrOrganizationNotFound) {
		t.Errorf("malformed key: got %v, want ErrOrganizationNotFound", err)
	}

	// A well-formed id that matches nothing is not retried as a name.
	if _, err := env.orgs.Get(ctx, primitive.NewObjectID().Hex()); !errors.Is(err, repository.ErrOrganizationNotFound) {
		t.Errorf("absent id: got %v, want ErrOrganizationNotFound", err)
	}
}

func TestListOrganizations_Pagination(t *testing.T) {
	env := newOrgTestEnv()
	ctx := context.Background()

	creator := env.createUser(t, "Jane", "jane@x.com")
	env.createOrg(t, "Acme East", creator)
	env.createOrg(t, "Acme West", creator)
	env.createOrg(t, "Acme North", creator)

	total1, page1, err := env.orgs.List(ctx, "acme", 2, 0)
	if err != nil {
		t.Fatalf("first page: %v", err)
	}
	total2, page2, err := env.orgs.List(ctx, "acme", 2, 2)
	if err != nil {
		t.Fatalf("second page: %v", err)
	}

	if total1 != 3 || total2 != 3 {
		t.Errorf("total_count: got %d and %d, want 3 for both pages", total1, total2)
	}
	if len(page1) != 2 || len(page2) != 1 {
		t.Fatalf("page sizes: got %d and %d, want 2 and 1", len(page1), len(page2))
	}

	seen := map[primitive.ObjectID]bool{}
	for _, o := range append(page1, page2...) {
		if seen[o.ID] {
			t.Errorf("organization %s appears in both pages", o.ID.Hex())
		}
		seen[o.ID] = true
	}
	if len(seen) != 3 {
		t.Errorf("union of pages: got %d organizations, want 3", len(seen))
	}

	// Filter miss is an empty page, not an error.
	total, page, err := env.orgs.List(ctx, "globex", 2, 0)
	if err != nil {
		t.Fatalf("empty result: %v", err)
	}
	if total != 0 || len(page) != 0 {
		t.Errorf("empty result: got total %d and %d rows, want 0 and 0", total, len(page))
	}
}
