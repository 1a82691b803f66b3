package inmemslot

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/gpatracker/core"
)

func TestSlot(t *testing.T) {
	ctx := context.Background()
	s := New()

	_, err := s.Load(ctx)
	assert.Equal(t, core.ErrSlotEmpty, err)

	require.NoError(t, s.Save(ctx, []byte(`{"1-1":{}}`)))
	blob, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, `{"1-1":{}}`, string(blob))

	// last write wins
	require.NoError(t, s.Save(ctx, []byte(`{"1-2":{}}`)))
	blob, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, `{"1-2":{}}`, string(blob))

	require.NoError(t, s.Clear(ctx))
	_, err = s.Load(ctx)
	assert.Equal(t, core.ErrSlotEmpty, err)

	// clearing an empty slot is fine
	assert.NoError(t, s.Clear(ctx))
}

func TestSlot_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := New()

	assert.Equal(t, context.Canceled, s.Save(ctx, []byte("{}")))
	_, err := s.Load(ctx)
	assert.Equal(t, context.Canceled, err)
	assert.Equal(t, context.Canceled, s.Clear(ctx))
}

func TestNew_Seeded(t *testing.T) {
	seed := []byte(`{"1-1":{}}`)
	s := New(seed)
	seed[0] = 'x'

	blob, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, `{"1-1":{}}`, string(blob))
	assert.Equal(t, 0, s.Saves())
}
