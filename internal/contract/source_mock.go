package contract

import (
	"context"

	"github.com/huangsam/churnscope/schema"
	"github.com/stretchr/testify/mock"
)

// MockRecordSource is a testify mock for the RecordSource interface.
type MockRecordSource struct {
	mock.Mock
}

var _ RecordSource = &MockRecordSource{} // Compile-time check

// Name mocks the Name method.
func (m *MockRecordSource) Name() string {
	args := m.Called()
	return args.String(0)
}

// Load mocks the Load method.
func (m *MockRecordSource) Load(ctx context.Context) (schema.RecordSet, error) {
	args := m.Called(ctx)
	if rs := args.Get(0); rs != nil {
		return rs.(schema.RecordSet), args.Error(1)
	}
	return nil, args.Error(1)
}
