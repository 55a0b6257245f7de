// Package service provides hand-written test doubles for the domain
// service interfaces.
package service

import (
	"context"

	"tripflow/internal/domain/entity"
	domainservice "tripflow/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

type mockTestingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockTokenService is a testify mock for service.TokenService.
type MockTokenService struct {
	mock.Mock
}

func NewMockTokenService(t mockTestingT) *MockTokenService {
	m := &MockTokenService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTokenService) Generate(userID, username string) (string, error) {
	args := m.Called(userID, username)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Validate(tokenString string) (*domainservice.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domainservice.Claims), args.Error(1)
}

// MockPasswordHasher is a testify mock for service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

func NewMockPasswordHasher(t mockTestingT) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

// MockTranscriber is a testify mock for service.Transcriber.
type MockTranscriber struct {
	mock.Mock
}

func NewMockTranscriber(t mockTestingT) *MockTranscriber {
	m := &MockTranscriber{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTranscriber) Transcribe(ctx context.Context, audio []byte, format string) (string, error) {
	args := m.Called(ctx, audio, format)

	return args.String(0), args.Error(1)
}

// MockBasicInfoExtractor is a testify mock for service.BasicInfoExtractor.
type MockBasicInfoExtractor struct {
	mock.Mock
}

func NewMockBasicInfoExtractor(t mockTestingT) *MockBasicInfoExtractor {
	m := &MockBasicInfoExtractor{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockBasicInfoExtractor) Extract(ctx context.Context, text string) (*entity.BasicInfo, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.BasicInfo), args.Error(1)
}

// MockIdentityVerifier is a testify mock for service.IdentityVerifier.
type MockIdentityVerifier struct {
	mock.Mock
}

func NewMockIdentityVerifier(t mockTestingT) *MockIdentityVerifier {
	m := &MockIdentityVerifier{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockIdentityVerifier) Verify(ctx context.Context, credential string) (*entity.Identity, error) {
	args := m.Called(ctx, credential)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Identity), args.Error(1)
}
