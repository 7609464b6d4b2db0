// Package storetest holds the behaviour every store.Store adapter must share.
package storetest

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitness-agent/internal/store"
)

// Run exercises s against the store contract. newStore must return an empty store.
func Run(t *testing.T, newStore func(t *testing.T) store.Store) {
	t.Run("insert assigns id and query filters", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		a, err := s.Insert(ctx, store.CollectionFoodLogs, store.Record{"user_id": "u1", "total_calories": 300})
		require.NoError(t, err)
		require.NotEmpty(t, a[store.FieldID])

		_, err = s.Insert(ctx, store.CollectionFoodLogs, store.Record{"user_id": "u2", "total_calories": 500})
		require.NoError(t, err)
		_, err = s.Insert(ctx, store.CollectionGoals, store.Record{"user_id": "u1", "goal_type": "maintenance"})
		require.NoError(t, err)

		got, err := s.Query(ctx, store.CollectionFoodLogs, store.QueryOptions{Filters: store.Filters{"user_id": "u1"}})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, a[store.FieldID], got[0][store.FieldID])
		assert.EqualValues(t, 300, got[0]["total_calories"])

		all, err := s.Query(ctx, store.CollectionFoodLogs, store.QueryOptions{})
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("conjunctive filters and numeric equality", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		for _, r := range []store.Record{
			{"user_id": "u1", "type": "meal_log", "status": "scheduled"},
			{"user_id": "u1", "type": "weekly_summary", "status": "scheduled"},
			{"user_id": "u1", "type": "meal_log", "status": "done", "n": 3},
		} {
			_, err := s.Insert(ctx, store.CollectionReminders, r)
			require.NoError(t, err)
		}

		got, err := s.Query(ctx, store.CollectionReminders, store.QueryOptions{
			Filters: store.Filters{"user_id": "u1", "type": "meal_log", "status": "scheduled"},
		})
		require.NoError(t, err)
		assert.Len(t, got, 1)

		got, err = s.Query(ctx, store.CollectionReminders, store.QueryOptions{Filters: store.Filters{"n": 3}})
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("order and limit", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		for _, ts := range []string{"2024-05-02T09:00:00Z", "2024-05-01T09:00:00Z", "2024-05-03T09:00:00Z"} {
			_, err := s.Insert(ctx, store.CollectionReminders, store.Record{"user_id": "u1", "scheduled_time": ts})
			require.NoError(t, err)
		}

		asc, err := s.Query(ctx, store.CollectionReminders, store.QueryOptions{
			Filters: store.Filters{"user_id": "u1"},
			OrderBy: "scheduled_time",
		})
		require.NoError(t, err)
		require.Len(t, asc, 3)
		assert.Equal(t, "2024-05-01T09:00:00Z", asc[0]["scheduled_time"])
		assert.Equal(t, "2024-05-03T09:00:00Z", asc[2]["scheduled_time"])

		desc, err := s.Query(ctx, store.CollectionReminders, store.QueryOptions{
			OrderBy:    "scheduled_time",
			Descending: true,
			Limit:      2,
		})
		require.NoError(t, err)
		require.Len(t, desc, 2)
		assert.Equal(t, "2024-05-03T09:00:00Z", desc[0]["scheduled_time"])
	})

	t.Run("update merges and keeps id", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		ins, err := s.Insert(ctx, store.CollectionGoals, store.Record{"user_id": "u1", "goal_type": "maintenance", "target_calories": 2000})
		require.NoError(t, err)

		upd, err := s.Update(ctx, store.CollectionGoals,
			store.Record{"id": "ignored", "goal_type": "weight_loss", "target_calories": 1800},
			store.Filters{"user_id": "u1"})
		require.NoError(t, err)
		assert.Equal(t, ins[store.FieldID], upd[store.FieldID])
		assert.Equal(t, "weight_loss", upd["goal_type"])

		got, err := s.Query(ctx, store.CollectionGoals, store.QueryOptions{Filters: store.Filters{"user_id": "u1"}})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.EqualValues(t, 1800, got[0]["target_calories"])
		assert.Equal(t, "u1", got[0]["user_id"])
	})

	t.Run("update without match is conflict", func(t *testing.T) {
		s := newStore(t)
		_, err := s.Update(context.Background(), store.CollectionGoals, store.Record{"goal_type": "x"}, store.Filters{"user_id": "nobody"})
		require.Error(t, err)
		assert.True(t, store.IsKind(err, store.KindConflict), "got %v", err)
	})

	t.Run("duplicate id is conflict", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		_, err := s.Insert(ctx, store.CollectionGoals, store.Record{"id": "g1"})
		require.NoError(t, err)
		_, err = s.Insert(ctx, store.CollectionGoals, store.Record{"id": "g1"})
		assert.True(t, store.IsKind(err, store.KindConflict), "got %v", err)
	})

	t.Run("delete reports existence", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		_, err := s.Insert(ctx, store.CollectionGoals, store.Record{"user_id": "u1"})
		require.NoError(t, err)

		ok, err := s.Delete(ctx, store.CollectionGoals, store.Filters{"user_id": "u1"})
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = s.Delete(ctx, store.CollectionGoals, store.Filters{"user_id": "u1"})
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("invalid field names are rejected", func(t *testing.T) {
		s := newStore(t)
		_, err := s.Query(context.Background(), store.CollectionGoals, store.QueryOptions{
			Filters: store.Filters{"user_id') OR 1=1 --": "x"},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, store.ErrInvalidField)
	})

	t.Run("returned records are copies", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		rec, err := s.Insert(ctx, store.CollectionGoals, store.Record{"user_id": "u1", "goal_type": "maintenance"})
		require.NoError(t, err)
		rec["goal_type"] = "mutated"

		got, err := s.Query(ctx, store.CollectionGoals, store.QueryOptions{})
		require.NoError(t, err)
		got[0]["user_id"] = "mutated"

		again, err := s.Query(ctx, store.CollectionGoals, store.QueryOptions{})
		require.NoError(t, err)
		assert.Equal(t, "maintenance", again[0]["goal_type"])
		assert.Equal(t, "u1", again[0]["user_id"])
	})

	t.Run("concurrent inserts", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := s.Insert(ctx, store.CollectionFoodLogs, store.Record{"user_id": "u1"})
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		got, err := s.Query(ctx, store.CollectionFoodLogs, store.QueryOptions{Filters: store.Filters{"user_id": "u1"}})
		require.NoError(t, err)
		assert.Len(t, got, 20)
	})
}
