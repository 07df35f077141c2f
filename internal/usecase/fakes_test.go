package usecase

import (
	"context"
	"sort"
	"time"

	"asset-registry/internal/data/entity"
	"asset-registry/internal/data/repository"
	"asset-registry/pkg/token"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// In-memory fakes for the repository interfaces. WithTx returns the fake
// itself; the fake tx manager just runs the function, so transactional code
// paths are exercised without a database.

type fakeTxManager struct{}

func (fakeTxManager) WithinTransaction(ctx context.Context, fn func(tx pgx.Tx) error) error {
	return fn(nil)
}

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (f *fakeUserRepo) WithTx(tx pgx.Tx) repository.UserRepository { return f }

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if u, ok := f.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByPhone(ctx context.Context, phone string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Phone == phone {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

type fakeAssetRepo struct {
	assets map[int64]*entity.Asset
	nextID int64
}

func newFakeAssetRepo() *fakeAssetRepo {
	return &fakeAssetRepo{assets: make(map[int64]*entity.Asset)}
}

func (f *fakeAssetRepo) WithTx(tx pgx.Tx) repository.AssetRepository { return f }

func (f *fakeAssetRepo) Create(ctx context.Context, asset *entity.Asset) error {
	f.nextID++
	asset.ID = f.nextID
	cp := *asset
	f.assets[asset.ID] = &cp
	return nil
}

func (f *fakeAssetRepo) all() []*entity.Asset {
	out := make([]*entity.Asset, 0, len(f.assets))
	for _, a := range f.assets {
		cp := *a
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (f *fakeAssetRepo) FindAll(ctx context.Context) ([]*entity.Asset, error) {
	return f.all(), nil
}

func (f *fakeAssetRepo) FindAllByOwner(ctx context.Context, userID uuid.UUID) ([]*entity.Asset, error) {
	var out []*entity.Asset
	for _, a := range f.all() {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAssetRepo) FindByID(ctx context.Context, id int64) (*entity.Asset, error) {
	if a, ok := f.assets[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeAssetRepo) FindByIDAndOwner(ctx context.Context, id int64, userID uuid.UUID) (*entity.Asset, error) {
	if a, ok := f.assets[id]; ok && a.UserID == userID {
		cp := *a
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeAssetRepo) Update(ctx context.Context, asset *entity.Asset) error {
	if _, ok := f.assets[asset.ID]; !ok {
		return ErrNotFound
	}
	cp := *asset
	f.assets[asset.ID] = &cp
	return nil
}

func (f *fakeAssetRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.assets[id]; !ok {
		return ErrNotFound
	}
	delete(f.assets, id)
	return nil
}

type fakeRevokedRepo struct {
	revoked map[uuid.UUID]*entity.RevokedToken
}

func newFakeRevokedRepo() *fakeRevokedRepo {
	return &fakeRevokedRepo{revoked: make(map[uuid.UUID]*entity.RevokedToken)}
}

func (f *fakeRevokedRepo) Revoke(ctx context.Context, tok *entity.RevokedToken) error {
	if _, ok := f.revoked[tok.JTI]; ok {
		return nil // idempotent
	}
	cp := *tok
	f.revoked[tok.JTI] = &cp
	return nil
}

func (f *fakeRevokedRepo) IsRevoked(ctx context.Context, jti uuid.UUID) (bool, error) {
	_, ok := f.revoked[jti]
	return ok, nil
}

func (f *fakeRevokedRepo) CleanExpired(ctx context.Context) error {
	now := time.Now()
	for jti, tok := range f.revoked {
		if tok.ExpiresAt.Before(now) {
			delete(f.revoked, jti)
		}
	}
	return nil
}

func newTestService() (*Service, *fakeUserRepo, *fakeAssetRepo, *fakeRevokedRepo) {
	users := newFakeUserRepo()
	assets := newFakeAssetRepo()
	revoked := newFakeRevokedRepo()

	repo := &repository.Repository{
		User:         users,
		Asset:        assets,
		RevokedToken: revoked,
	}

	tokens := token.NewManager("test-secret", time.Hour)
	svc := NewService(repo, fakeTxManager{}, tokens, zap.NewNop())

	return svc, users, assets, revoked
}
