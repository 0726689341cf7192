package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"skill-swap/internal/domain/skill"
	"skill-swap/internal/domain/swap"
	"skill-swap/internal/domain/user"
	"skill-swap/internal/repository"

	"github.com/google/uuid"
)

type fakeCache struct {
	data    map[string][]byte
	deleted []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string][]byte{}}
}

func (c *fakeCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (c *fakeCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = b
	return nil
}

func (c *fakeCache) Delete(_ context.Context, key string) error {
	delete(c.data, key)
	c.deleted = append(c.deleted, key)
	return nil
}

func (c *fakeCache) DeleteByPattern(_ context.Context, pattern string) error {
	prefix := strings.TrimSuffix(pattern, "*")
	for k := range c.data {
		if strings.HasPrefix(k, prefix) {
			delete(c.data, k)
		}
	}
	c.deleted = append(c.deleted, pattern)
	return nil
}

type fakeProfiles struct {
	profiles []user.Profile
	calls    int
}

func (r *fakeProfiles) ListProfiles(context.Context) ([]user.Profile, error) {
	r.calls++
	return r.profiles, nil
}

func (r *fakeProfiles) GetProfile(_ context.Context, id uuid.UUID) (user.Profile, error) {
	for _, p := range r.profiles {
		if p.ID == id {
			return p, nil
		}
	}
	return user.Profile{}, user.ErrNotFound
}

type fakeSkillRepo struct {
	skills []skill.Skill
	calls  int
}

func (r *fakeSkillRepo) GetAllSkills(context.Context) ([]skill.Skill, error) {
	r.calls++
	return append([]skill.Skill(nil), r.skills...), nil
}

func (r *fakeSkillRepo) CreateSkill(_ context.Context, name string) (skill.Skill, error) {
	s := skill.Skill{ID: uuid.New(), Name: name, Category: "other", DifficultyLevel: "intermediate"}
	r.skills = append(r.skills, s)
	return s, nil
}

func (r *fakeSkillRepo) FindByName(_ context.Context, name string) (skill.Skill, error) {
	for _, s := range r.skills {
		if s.Name == name {
			return s, nil
		}
	}
	return skill.Skill{}, skill.ErrNotFound
}

func (r *fakeSkillRepo) FindByID(_ context.Context, id uuid.UUID) (skill.Skill, error) {
	for _, s := range r.skills {
		if s.ID == id {
			return s, nil
		}
	}
	return skill.Skill{}, skill.ErrNotFound
}

func (r *fakeSkillRepo) EnsureSkill(ctx context.Context, name string) (skill.Skill, error) {
	if s, err := r.FindByName(ctx, name); err == nil {
		return s, nil
	}
	return r.CreateSkill(ctx, name)
}

type fakeUserSkillRepo struct {
	items []skill.UserSkill
}

func (r *fakeUserSkillRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]skill.UserSkill, error) {
	out := []skill.UserSkill{}
	for _, it := range r.items {
		if it.UserID == userID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *fakeUserSkillRepo) HasSkill(_ context.Context, userID uuid.UUID, skillID uuid.UUID, typ skill.Type) (bool, error) {
	for _, it := range r.items {
		if it.UserID == userID && it.SkillID == skillID && it.SkillType == typ {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserSkillRepo) Create(_ context.Context, us skill.UserSkill) (skill.UserSkill, error) {
	r.items = append(r.items, us)
	return us, nil
}

func (r *fakeUserSkillRepo) Delete(_ context.Context, id uuid.UUID, userID uuid.UUID) error {
	for i, it := range r.items {
		if it.ID != id {
			continue
		}
		if it.UserID != userID {
			return repository.ErrUserSkillForbidden
		}
		r.items = append(r.items[:i], r.items[i+1:]...)
		return nil
	}
	return repository.ErrUserSkillNotFound
}

type fakeSwapRepo struct {
	byID map[uuid.UUID]swap.Request
}

func newFakeSwapRepo() *fakeSwapRepo {
	return &fakeSwapRepo{byID: map[uuid.UUID]swap.Request{}}
}

func (r *fakeSwapRepo) Create(_ context.Context, req swap.Request) (swap.Request, error) {
	r.byID[req.ID] = req
	return req, nil
}

func (r *fakeSwapRepo) FindByID(_ context.Context, id uuid.UUID) (swap.Request, error) {
	req, ok := r.byID[id]
	if !ok {
		return swap.Request{}, swap.ErrNotFound
	}
	return req, nil
}

func (r *fakeSwapRepo) ListForUser(_ context.Context, userID uuid.UUID) ([]swap.Request, error) {
	out := []swap.Request{}
	for _, req := range r.byID {
		if req.RequesterID == userID || req.TargetID == userID {
			out = append(out, req)
		}
	}
	return out, nil
}

func (r *fakeSwapRepo) UpdateStatus(_ context.Context, id uuid.UUID, from swap.Status, to swap.Status) (swap.Request, error) {
	req, ok := r.byID[id]
	if !ok || req.Status != from {
		return swap.Request{}, swap.ErrNotFound
	}
	req.Status = to
	r.byID[id] = req
	return req, nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]user.User
}

func (r *fakeUserRepo) CreateUser(_ context.Context, u user.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetUserByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.GetUserByEmail(ctx, email)
	return err == nil, nil
}

func (r *fakeUserRepo) UpdateUser(_ context.Context, u user.User) error {
	r.users[u.ID] = u
	return nil
}

type notification struct {
	to      uuid.UUID
	payload any
}

type fakeNotifier struct {
	sent []notification
}

func (n *fakeNotifier) NotifyUser(userID uuid.UUID, payload any) {
	n.sent = append(n.sent, notification{to: userID, payload: payload})
}
