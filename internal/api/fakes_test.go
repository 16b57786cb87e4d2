package api

import (
	"Connectly/internal/model"
	"Connectly/internal/repository"
	"context"
	"sort"
	"sync"
	"time"
)

// memoryDB 测试用内存存储，实现三个仓储接口
type memoryDB struct {
	mu       sync.Mutex
	seq      uint64
	users    map[uint64]*model.User
	posts    map[uint64]*model.Post
	comments map[uint64]*model.Comment
}

func newMemoryDB() *memoryDB {
	return &memoryDB{
		users:    make(map[uint64]*model.User),
		posts:    make(map[uint64]*model.Post),
		comments: make(map[uint64]*model.Comment),
	}
}

func (db *memoryDB) nextID() uint64 {
	db.seq++
	return db.seq
}

type memoryUserRepo struct{ db *memoryDB }

func (r memoryUserRepo) ListUsers(_ context.Context) ([]*model.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	out := make([]*model.User, 0, len(r.db.users))
	for _, u := range r.db.users {
		cp := *u
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r memoryUserRepo) GetUserById(_ context.Context, id uint64) (*model.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if u, ok := r.db.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r memoryUserRepo) find(match func(*model.User) bool) *model.User {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, u := range r.db.users {
		if match(u) {
			cp := *u
			return &cp
		}
	}
	return nil
}

func (r memoryUserRepo) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	return r.find(func(u *model.User) bool { return u.Username == username }), nil
}

func (r memoryUserRepo) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	return r.find(func(u *model.User) bool { return u.Email == email }), nil
}

func (r memoryUserRepo) CreateUser(_ context.Context, user *model.User) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, u := range r.db.users {
		if u.Username == user.Username {
			return &repository.DuplicateKeyError{Field: "username"}
		}
		if u.Email == user.Email {
			return &repository.DuplicateKeyError{Field: "email"}
		}
	}
	user.ID = r.db.nextID()
	user.CreatedAt = time.Now()
	cp := *user
	r.db.users[user.ID] = &cp
	return nil
}

func (r memoryUserRepo) DeleteUser(_ context.Context, id uint64) ([]*model.Post, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	removed := make([]*model.Post, 0)
	for cid, c := range r.db.comments {
		if c.UserID == id || r.db.posts[c.PostID] != nil && r.db.posts[c.PostID].UserID == id {
			delete(r.db.comments, cid)
		}
	}
	for pid, p := range r.db.posts {
		if p.UserID == id {
			cp := *p
			removed = append(removed, &cp)
			delete(r.db.posts, pid)
		}
	}
	delete(r.db.users, id)
	sort.Slice(removed, func(i, j int) bool { return removed[i].ID < removed[j].ID })
	return removed, nil
}

type memoryPostRepo struct{ db *memoryDB }

func (r memoryPostRepo) withAuthor(p *model.Post) *model.Post {
	cp := *p
	if u, ok := r.db.users[p.UserID]; ok {
		cp.User = *u
	}
	return &cp
}

func (r memoryPostRepo) ListPosts(_ context.Context) ([]*model.Post, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	out := make([]*model.Post, 0, len(r.db.posts))
	for _, p := range r.db.posts {
		out = append(out, r.withAuthor(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r memoryPostRepo) GetPost(_ context.Context, id uint64) (*model.Post, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if p, ok := r.db.posts[id]; ok {
		return r.withAuthor(p), nil
	}
	return nil, nil
}

func (r memoryPostRepo) CreatePost(_ context.Context, post *model.Post) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	post.ID = r.db.nextID()
	post.CreatedAt = time.Now()
	post.UpdatedAt = post.CreatedAt
	cp := *post
	r.db.posts[post.ID] = &cp
	return nil
}

func (r memoryPostRepo) UpdatePost(_ context.Context, post *model.Post) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	cp := *post
	r.db.posts[post.ID] = &cp
	return nil
}

func (r memoryPostRepo) DeletePost(_ context.Context, id uint64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for cid, c := range r.db.comments {
		if c.PostID == id {
			delete(r.db.comments, cid)
		}
	}
	delete(r.db.posts, id)
	return nil
}

func (r memoryPostRepo) CountByType(_ context.Context) (map[string]int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	out := make(map[string]int64)
	for _, p := range r.db.posts {
		out[p.PostType]++
	}
	return out, nil
}

type memoryCommentRepo struct{ db *memoryDB }

func (r memoryCommentRepo) ListComments(_ context.Context) ([]*model.Comment, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	out := make([]*model.Comment, 0, len(r.db.comments))
	for _, c := range r.db.comments {
		cp := *c
		if u, ok := r.db.users[c.UserID]; ok {
			cp.User = *u
		}
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r memoryCommentRepo) GetComment(_ context.Context, id uint64) (*model.Comment, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if c, ok := r.db.comments[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (r memoryCommentRepo) CreateComment(_ context.Context, comment *model.Comment) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	comment.ID = r.db.nextID()
	comment.CreatedAt = time.Now()
	cp := *comment
	r.db.comments[comment.ID] = &cp
	return nil
}

func (r memoryCommentRepo) DeleteComment(_ context.Context, id uint64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	delete(r.db.comments, id)
	return nil
}

type memoryBlacklist struct {
	mu      sync.Mutex
	revoked map[string]bool
}

func (b *memoryBlacklist) Revoke(_ context.Context, signature string, _ time.Duration) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.revoked[signature] = true
	return nil
}

func (b *memoryBlacklist) IsRevoked(_ context.Context, signature string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.revoked[signature], nil
}

type memoryStats struct {
	mu     sync.Mutex
	counts map[string]int64
}

func (s *memoryStats) Incr(_ context.Context, postType string, delta int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts[postType] += delta
	return nil
}

func (s *memoryStats) Counts(_ context.Context) (map[string]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]int64, len(s.counts))
	for k, v := range s.counts {
		out[k] = v
	}
	return out, nil
}
