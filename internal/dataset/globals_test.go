package dataset

import (
	"context"
	"errors"
	"testing"

	"github.com/huangsam/churnscope/internal/contract"
	"github.com/huangsam/churnscope/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom(t *testing.T) {
	ctx := context.Background()

	t.Run("returns records from source", func(t *testing.T) {
		want := schema.RecordSet{
			{Gender: "Female", InternetService: "DSL", Churn: "No"},
			{Gender: "Male", InternetService: "Fiber optic", Churn: "Yes"},
		}
		source := &contract.MockRecordSource{}
		source.On("Load", mock.Anything).Return(want, nil)

		got, err := loadFrom(ctx, source)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		source.AssertExpectations(t)
	})

	t.Run("wraps load errors with source name", func(t *testing.T) {
		loadErr := errors.New("connection refused")
		source := &contract.MockRecordSource{}
		source.On("Load", mock.Anything).Return(nil, loadErr)
		source.On("Name").Return("mysql:customers")

		got, err := loadFrom(ctx, source)
		assert.Nil(t, got)
		require.Error(t, err)
		assert.ErrorIs(t, err, loadErr)
		assert.Contains(t, err.Error(), "mysql:customers")
		source.AssertExpectations(t)
	})
}

func TestForConfig(t *testing.T) {
	t.Run("csv source", func(t *testing.T) {
		cfg := &contract.Config{Source: schema.CSVBackend, DataFile: "telco.csv"}
		source, err := ForConfig(cfg)
		require.NoError(t, err)
		assert.IsType(t, &CSVSource{}, source)
	})

	t.Run("sql source", func(t *testing.T) {
		cfg := &contract.Config{Source: schema.SQLiteBackend, Table: "customers"}
		source, err := ForConfig(cfg)
		require.NoError(t, err)
		assert.IsType(t, &SQLSource{}, source)
	})
}
