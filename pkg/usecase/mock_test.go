package usecase_test

import (
	"context"
	"errors"
	"sync"

	"github.com/m-mizutani/relcheck/pkg/domain/model"
)

// MockRepositorySource is a mock implementation of RepositorySource
type MockRepositorySource struct {
	getLatestReleaseFunc func(ctx context.Context, repo string) (*model.ReleaseInfo, error)
	pathExistsFunc       func(ctx context.Context, repo, path, ref string) (bool, error)

	releaseCalls []string
	pathCalls    []PathCall
}

type PathCall struct {
	Repo string
	Path string
	Ref  string
}

func (m *MockRepositorySource) GetLatestRelease(ctx context.Context, repo string) (*model.ReleaseInfo, error) {
	m.releaseCalls = append(m.releaseCalls, repo)
	if m.getLatestReleaseFunc != nil {
		return m.getLatestReleaseFunc(ctx, repo)
	}
	return nil, errors.New("mock not configured")
}

func (m *MockRepositorySource) PathExists(ctx context.Context, repo, path, ref string) (bool, error) {
	m.pathCalls = append(m.pathCalls, PathCall{Repo: repo, Path: path, Ref: ref})
	if m.pathExistsFunc != nil {
		return m.pathExistsFunc(ctx, repo, path, ref)
	}
	return false, nil
}

// MemoryStore is an in-memory StateStore
type MemoryStore struct {
	mu      sync.Mutex
	data    []byte
	readErr error
	writes  int
}

func (s *MemoryStore) Read(_ context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.readErr != nil {
		return nil, s.readErr
	}
	if s.data == nil {
		return nil, model.ErrStateNotFound
	}
	return s.data, nil
}

func (s *MemoryStore) Write(_ context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writes++
	s.data = append([]byte{}, data...)
	return nil
}

// MockNotifier records notified records
type MockNotifier struct {
	notifyFunc func(ctx context.Context, records []*model.ResultRecord) error
	calls      [][]*model.ResultRecord
}

func (m *MockNotifier) Notify(ctx context.Context, records []*model.ResultRecord) error {
	m.calls = append(m.calls, records)
	if m.notifyFunc != nil {
		return m.notifyFunc(ctx, records)
	}
	return nil
}
