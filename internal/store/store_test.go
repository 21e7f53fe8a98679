// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formatacle/formatacle/pkg/types"
)

func testStores(t *testing.T) map[string]Store {
	t.Helper()
	sqlite, err := OpenSQLite(filepath.Join(t.TempDir(), "conversions.db"))
	require.NoError(t, err)
	t.Cleanup(func() { sqlite.Close() })

	return map[string]Store{
		"memory": NewMemStore(),
		"sqlite": sqlite,
	}
}

func TestStore_PutGet(t *testing.T) {
	ctx := context.Background()
	result := types.ConversionResult{
		Success:    true,
		IOSXML:     "<relato/>",
		AndroidXML: "<relato></relato>",
	}

	for name, s := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			id, err := s.Put(ctx, result)
			require.NoError(t, err)
			require.NotEmpty(t, id)

			got, err := s.Get(ctx, id)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, result, *got)
		})
	}
}

func TestStore_GetUnknownID(t *testing.T) {
	ctx := context.Background()
	for name, s := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			got, err := s.Get(ctx, "no-such-id")
			require.NoError(t, err)
			assert.Nil(t, got)
		})
	}
}

func TestStore_DistinctIDs(t *testing.T) {
	ctx := context.Background()
	for name, s := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			a, err := s.Put(ctx, types.ConversionResult{Success: true})
			require.NoError(t, err)
			b, err := s.Put(ctx, types.ConversionResult{Success: false, Error: "boom"})
			require.NoError(t, err)
			assert.NotEqual(t, a, b)

			got, err := s.Get(ctx, b)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, "boom", got.Error)
		})
	}
}
