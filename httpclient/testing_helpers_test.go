package httpclient

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeIntegration sends JSON to a test server with a fixed token.
type fakeIntegration struct {
	domain string
}

func (f *fakeIntegration) Domain() string                  { return f.domain }
func (f *fakeIntegration) GetAuthMethodDescriptor() string { return "test" }

func (f *fakeIntegration) SetRequestHeaders(_ context.Context, req *http.Request) error {
	req.Header.Set("Authorization", "Bearer test-token")
	req.Header.Set("Content-Type", "application/json")
	return nil
}

func (f *fakeIntegration) MarshalRequest(body any, _, _ string) ([]byte, error) {
	if body == nil {
		return nil, nil
	}
	return json.Marshal(body)
}

// mockIntegration records calls for assertions on how the client drives the integration.
type mockIntegration struct {
	mock.Mock
}

func (m *mockIntegration) Domain() string {
	return m.Called().String(0)
}

func (m *mockIntegration) GetAuthMethodDescriptor() string {
	return m.Called().String(0)
}

func (m *mockIntegration) SetRequestHeaders(ctx context.Context, req *http.Request) error {
	return m.Called(ctx, req).Error(0)
}

func (m *mockIntegration) MarshalRequest(body any, method, endpoint string) ([]byte, error) {
	args := m.Called(body, method, endpoint)
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}

func newTestClient(t *testing.T, integration APIIntegration, mutate func(*ClientConfig)) *Client {
	t.Helper()
	config := ClientConfig{
		Integration:        integration,
		Logger:             zap.NewNop().Sugar(),
		MaxRetryAttempts:   2,
		TotalRetryDuration: 10 * time.Second,
	}
	if mutate != nil {
		mutate(&config)
	}
	client, err := BuildClient(config, true)
	require.NoError(t, err)
	return client
}
