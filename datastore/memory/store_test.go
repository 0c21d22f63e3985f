/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package memory_test

import (
	"slices"
	"testing"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suparena/memrepo/datastore/memory"
	"github.com/suparena/memrepo/datastore/mock"
	"github.com/suparena/memrepo/datastore/testmodels"
	"github.com/suparena/memrepo/errors"
	"github.com/suparena/memrepo/keygen"
	"github.com/suparena/memrepo/registry"
	"go.uber.org/zap/zaptest"
)

func newProductStore(t *testing.T, gen keygen.PrimaryKeyGenerator[int64]) *memory.Store[*testmodels.Product, int64] {
	t.Helper()
	reg := registry.NewIdentifierRegistry()
	require.NoError(t, registry.Register[*testmodels.Product, int64](reg, gen))

	store, err := memory.New[*testmodels.Product, int64](reg.Mapping(),
		memory.WithLogger[*testmodels.Product](zaptest.NewLogger(t)))
	require.NoError(t, err)
	return store
}

func product(name string) *testmodels.Product {
	return &testmodels.Product{Name: name}
}

func TestSequenceScenario(t *testing.T) {
	store := newProductStore(t, keygen.NewSequence[int64]())

	foo, err := store.Save(product("foo"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), foo.ID)

	bar, err := store.Save(product("bar"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), bar.ID)

	matches, err := store.FindAllBy("name", "foo")
	require.NoError(t, err)
	found, err := matches.ToList()
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, int64(1), found[0].ID)
	assert.Equal(t, "foo", found[0].Name)

	require.NoError(t, store.DeleteByID(1))
	assert.Equal(t, 1, store.Count())
}

func TestSave(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		store := newProductStore(t, keygen.NewSequence[int64]())

		saved, err := store.Save(&testmodels.Product{Name: "lamp", SKU: "L-1", Price: 2500})
		require.NoError(t, err)
		require.NotZero(t, saved.ID)

		found, ok, err := store.FindByID(saved.ID)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, &testmodels.Product{
			BaseEntity: testmodels.BaseEntity{ID: saved.ID},
			Name:       "lamp",
			SKU:        "L-1",
			Price:      2500,
		}, found)
	})

	t.Run("idempotent upsert", func(t *testing.T) {
		store := newProductStore(t, keygen.NewSequence[int64]())
		first, err := store.Save(product("foo"))
		require.NoError(t, err)

		_, err = store.Save(&testmodels.Product{BaseEntity: testmodels.BaseEntity{ID: first.ID}, Name: "baz"})
		require.NoError(t, err)

		assert.Equal(t, 1, store.Count())
		found, ok, err := store.FindByID(first.ID)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "baz", found.Name)
	})

	t.Run("identifier stability", func(t *testing.T) {
		gen := mock.New[int64](keygen.NewSequence[int64]())
		store := newProductStore(t, gen)

		a, err := store.Save(product("a"))
		require.NoError(t, err)
		b, err := store.Save(product("b"))
		require.NoError(t, err)
		_, err = store.Save(&testmodels.Product{BaseEntity: testmodels.BaseEntity{ID: 40}, Name: "explicit"})
		require.NoError(t, err)

		_, err = store.Save(a)
		require.NoError(t, err)
		_, err = store.Save(b)
		require.NoError(t, err)

		assert.Equal(t, 2, gen.Calls())
		assert.Equal(t, 3, store.Count())
	})

	t.Run("explicit identifier advances the sequence", func(t *testing.T) {
		gen := mock.New[int64](keygen.NewSequence[int64]())
		store := newProductStore(t, gen)

		explicit, err := store.Save(&testmodels.Product{BaseEntity: testmodels.BaseEntity{ID: 1}, Name: "explicit"})
		require.NoError(t, err)
		generated, err := store.Save(product("generated"))
		require.NoError(t, err)

		assert.Equal(t, int64(2), generated.ID)
		assert.Equal(t, 2, store.Count())

		found, ok, err := store.FindByID(1)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Same(t, explicit, found)

		previous := gen.Previous()
		require.Len(t, previous, 1)
		assert.Equal(t, int64(1), *previous[0])

		last, ok := store.LastIssued()
		assert.True(t, ok)
		assert.Equal(t, int64(2), last)
	})

	t.Run("nil entity", func(t *testing.T) {
		store := newProductStore(t, keygen.NewSequence[int64]())
		_, err := store.Save(nil)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("generator failure leaves store untouched", func(t *testing.T) {
		genErr := errors.NewConfigurationError("sequence", "exhausted", nil)
		store := newProductStore(t, mock.New[int64](keygen.NewSequence[int64]()).WithError(genErr))

		p := product("foo")
		_, err := store.Save(p)
		require.ErrorIs(t, err, genErr)
		assert.Zero(t, p.ID)
		assert.Zero(t, store.Count())
		_, ok := store.LastIssued()
		assert.False(t, ok)
	})

	t.Run("zero identifier from generator", func(t *testing.T) {
		store := newProductStore(t, mock.NewFunc(func(*int64) (int64, error) { return 0, nil }))
		_, err := store.Save(product("foo"))
		assert.True(t, errors.IsConfiguration(err))
		assert.Zero(t, store.Count())
	})

	t.Run("no generator and no default", func(t *testing.T) {
		store, err := memory.New[*testmodels.Product, int64](nil)
		require.NoError(t, err)

		_, err = store.Save(product("foo"))
		assert.True(t, errors.IsConfiguration(err))
	})

	t.Run("explicit identifier needs no generator", func(t *testing.T) {
		store, err := memory.New[*testmodels.Product, int64](nil)
		require.NoError(t, err)

		_, err = store.Save(&testmodels.Product{BaseEntity: testmodels.BaseEntity{ID: 9}})
		require.NoError(t, err)
		exists, err := store.ExistsByID(9)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("default strategy for strfmt identifiers", func(t *testing.T) {
		orders, err := memory.New[*testmodels.Order, strfmt.UUID](nil)
		require.NoError(t, err)
		o, err := orders.Save(&testmodels.Order{Customer: "ada"})
		require.NoError(t, err)
		assert.True(t, strfmt.IsUUID(o.GetID().String()))

		carts, err := memory.New[*testmodels.Cart, strfmt.ULID](nil)
		require.NoError(t, err)
		c, err := carts.Save(&testmodels.Cart{Owner: "ada"})
		require.NoError(t, err)
		assert.NotEqual(t, strfmt.ULID{}, c.ID)
	})

	t.Run("read-only identifier", func(t *testing.T) {
		reg := registry.NewIdentifierRegistry()
		require.NoError(t, registry.Register[*testmodels.InventoryItem, string](reg,
			keygen.NewIdentifierGenerator(func() (string, error) { return "SKU-1", nil })))
		store, err := memory.New[*testmodels.InventoryItem, string](reg.Mapping())
		require.NoError(t, err)

		_, err = store.Save(testmodels.NewInventoryItem("", 3))
		assert.True(t, errors.IsIdentifierAssignment(err))
		assert.Zero(t, store.Count())

		_, err = store.Save(testmodels.NewInventoryItem("SKU-2", 3))
		require.NoError(t, err)
		assert.Equal(t, 1, store.Count())
	})

	t.Run("entity without identifier accessor", func(t *testing.T) {
		store, err := memory.New[*testmodels.Voucher, string](nil)
		require.NoError(t, err)
		_, err = store.Save(&testmodels.Voucher{Code: "X"})
		assert.True(t, errors.IsIdentifierAccessorNotFound(err))
	})
}

func TestSaveAll(t *testing.T) {
	t.Run("in order", func(t *testing.T) {
		store := newProductStore(t, keygen.NewSequence[int64]())
		saved, err := store.SaveAll(slices.Values([]*testmodels.Product{product("a"), product("b"), product("c")}))
		require.NoError(t, err)
		require.Len(t, saved, 3)
		for i, p := range saved {
			assert.Equal(t, int64(i+1), p.ID)
		}
	})

	t.Run("no rollback", func(t *testing.T) {
		genErr := errors.NewConfigurationError("sequence", "exhausted", nil)
		store := newProductStore(t, mock.New[int64](keygen.NewSequence[int64]()).FailAfter(2, genErr))

		saved, err := store.SaveAll(slices.Values([]*testmodels.Product{product("a"), product("b"), product("c")}))
		require.ErrorIs(t, err, genErr)
		assert.Len(t, saved, 2)
		assert.Equal(t, 2, store.Count())
	})

	t.Run("nil sequence", func(t *testing.T) {
		store := newProductStore(t, keygen.NewSequence[int64]())
		_, err := store.SaveAll(nil)
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestFind(t *testing.T) {
	store := newProductStore(t, keygen.NewSequence[int64]())
	_, err := store.SaveAll(slices.Values([]*testmodels.Product{product("a"), product("b"), product("c")}))
	require.NoError(t, err)

	t.Run("by id", func(t *testing.T) {
		p, ok, err := store.FindByID(2)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "b", p.Name)

		_, ok, err = store.FindByID(7)
		require.NoError(t, err)
		assert.False(t, ok)

		_, _, err = store.FindByID(0)
		assert.True(t, errors.IsValidationError(err))

		_, err = store.ExistsByID(0)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("all by id", func(t *testing.T) {
		found, err := store.FindAllByID(slices.Values([]int64{3, 1}))
		require.NoError(t, err)
		require.Len(t, found, 2)
		assert.Equal(t, "c", found[0].Name)
		assert.Equal(t, "a", found[1].Name)
	})

	t.Run("all by id fails fast", func(t *testing.T) {
		found, err := store.FindAllByID(slices.Values([]int64{1, 5, 2}))
		require.Error(t, err)
		assert.Nil(t, found)
		assert.True(t, errors.IsNoResult(err))

		var noResult *errors.NoResultError
		require.ErrorAs(t, err, &noResult)
		assert.Equal(t, "5", noResult.Key)
	})

	t.Run("all by nil ids", func(t *testing.T) {
		_, err := store.FindAllByID(nil)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("all is a live view", func(t *testing.T) {
		local := newProductStore(t, keygen.NewSequence[int64]())
		_, err := local.Save(product("x"))
		require.NoError(t, err)

		all := local.FindAll()
		n, err := all.Count()
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		_, err = local.Save(product("y"))
		require.NoError(t, err)
		n, err = all.Count()
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		local.DeleteAll()
		empty, err := all.IsEmpty()
		require.NoError(t, err)
		assert.True(t, empty)
	})
}

func TestDelete(t *testing.T) {
	t.Run("by id", func(t *testing.T) {
		store := newProductStore(t, keygen.NewSequence[int64]())
		_, err := store.Save(product("a"))
		require.NoError(t, err)

		require.NoError(t, store.DeleteByID(1))
		assert.Zero(t, store.Count())

		err = store.DeleteByID(1)
		assert.True(t, errors.IsNoResult(err))

		assert.True(t, errors.IsValidationError(store.DeleteByID(0)))
	})

	t.Run("asymmetry", func(t *testing.T) {
		store := newProductStore(t, keygen.NewSequence[int64]())
		_, err := store.Save(product("a"))
		require.NoError(t, err)

		require.NoError(t, store.Delete(product("unsaved")))
		require.NoError(t, store.Delete(&testmodels.Product{BaseEntity: testmodels.BaseEntity{ID: 99}}))
		assert.Equal(t, 1, store.Count())

		assert.True(t, errors.IsNoResult(store.DeleteByID(99)))
	})

	t.Run("by reference", func(t *testing.T) {
		store := newProductStore(t, keygen.NewSequence[int64]())
		p, err := store.Save(product("a"))
		require.NoError(t, err)

		require.NoError(t, store.Delete(p))
		assert.Zero(t, store.Count())
		assert.True(t, errors.IsValidationError(store.Delete(nil)))
	})

	t.Run("all of", func(t *testing.T) {
		store := newProductStore(t, keygen.NewSequence[int64]())
		saved, err := store.SaveAll(slices.Values([]*testmodels.Product{product("a"), product("b"), product("c")}))
		require.NoError(t, err)

		err = store.DeleteAllOf(slices.Values([]*testmodels.Product{saved[0], product("unsaved"), saved[2]}))
		require.NoError(t, err)
		assert.Equal(t, 1, store.Count())

		assert.True(t, errors.IsValidationError(store.DeleteAllOf(nil)))
	})

	t.Run("all keeps the sequence", func(t *testing.T) {
		store := newProductStore(t, keygen.NewSequence[int64]())
		_, err := store.SaveAll(slices.Values([]*testmodels.Product{product("a"), product("b")}))
		require.NoError(t, err)

		store.DeleteAll()
		assert.Zero(t, store.Count())

		p, err := store.Save(product("c"))
		require.NoError(t, err)
		assert.Equal(t, int64(3), p.ID)
	})
}

func TestPropertyQueries(t *testing.T) {
	created := strfmt.DateTime(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	store := newProductStore(t, keygen.NewSequence[int64]())
	_, err := store.SaveAll(slices.Values([]*testmodels.Product{
		{Name: "x", SKU: "A-1", Price: 100, Tags: []string{"red", "big"}},
		{Name: "x", SKU: "A-2", Price: 250},
		{Name: "y", SKU: "B-1", Price: 100, BaseEntity: testmodels.BaseEntity{CreatedAt: &created}},
	}))
	require.NoError(t, err)

	count := func(t *testing.T, property string, value any) int {
		t.Helper()
		matches, err := store.FindAllBy(property, value)
		require.NoError(t, err)
		n, err := matches.Count()
		require.NoError(t, err)
		return n
	}

	tests := []struct {
		name     string
		property string
		value    any
		expected int
	}{
		{"field name", "Name", "x", 2},
		{"json name", "sku", "B-1", 1},
		{"embedded field", "ID", int64(2), 1},
		{"no match", "Name", "z", 0},
		{"different dynamic type", "price", 100, 0},
		{"same dynamic type", "price", int64(100), 2},
		{"slice value", "tags", []string{"red", "big"}, 1},
		{"nil value", "createdAt", nil, 2},
		{"pointer value", "createdAt", &created, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, count(t, tt.property, tt.value))
		})
	}

	t.Run("unknown property", func(t *testing.T) {
		_, err := store.FindAllBy("Nmae", "x")
		require.Error(t, err)
		assert.True(t, errors.IsPropertyNotFound(err))

		var lookup *errors.PropertyLookupError
		require.ErrorAs(t, err, &lookup)
		assert.Equal(t, "Nmae", lookup.Property)
	})

	t.Run("empty property", func(t *testing.T) {
		_, err := store.FindAllBy("", "x")
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("unique", func(t *testing.T) {
		p, ok, err := store.FindUniqueBy("Name", "y")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "B-1", p.SKU)

		_, ok, err = store.FindUniqueBy("Name", "z")
		require.NoError(t, err)
		assert.False(t, ok)

		_, ok, err = store.FindUniqueBy("Name", "x")
		assert.False(t, ok)
		assert.True(t, errors.IsNonUniqueResult(err))

		var nonUnique *errors.NonUniqueResultError
		require.ErrorAs(t, err, &nonUnique)
		assert.Equal(t, "Name", nonUnique.Property)
		assert.Equal(t, "*testmodels.Product", nonUnique.Type)
		assert.Equal(t, 2, nonUnique.Matches)
	})

	t.Run("restartable", func(t *testing.T) {
		matches, err := store.FindAllBy("Name", "x")
		require.NoError(t, err)
		first, err := matches.Count()
		require.NoError(t, err)
		second, err := matches.Count()
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("predicate", func(t *testing.T) {
		cheap, err := store.FindAllWhere(func(p *testmodels.Product) bool { return p.Price < 200 }).ToList()
		require.NoError(t, err)
		assert.Len(t, cheap, 2)

		p, ok, err := store.FindUniqueWhere(func(p *testmodels.Product) bool { return p.Price > 200 })
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "A-2", p.SKU)

		_, _, err = store.FindUniqueWhere(func(p *testmodels.Product) bool { return p.Price == 100 })
		assert.True(t, errors.IsNonUniqueResult(err))

		_, err = store.FindAllWhere(nil).ToList()
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestWithProperty(t *testing.T) {
	store, err := memory.New[*testmodels.Product, int64](nil,
		memory.WithProperty("tagCount", func(p *testmodels.Product) any { return len(p.Tags) }))
	require.NoError(t, err)

	_, err = store.SaveAll(slices.Values([]*testmodels.Product{
		{BaseEntity: testmodels.BaseEntity{ID: 1}, Tags: []string{"a", "b"}},
		{BaseEntity: testmodels.BaseEntity{ID: 2}, Tags: []string{"c"}},
	}))
	require.NoError(t, err)

	p, ok, err := store.FindUniqueBy("tagCount", 2)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(1), p.ID)

	t.Run("duplicate", func(t *testing.T) {
		accessor := func(p *testmodels.Product) any { return p.Name }
		_, err := memory.New[*testmodels.Product, int64](nil,
			memory.WithProperty("label", accessor),
			memory.WithProperty("label", accessor))
		assert.True(t, errors.IsConfiguration(err))
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := memory.New[*testmodels.Product, int64](nil,
			memory.WithProperty("", func(p *testmodels.Product) any { return p.Name }))
		assert.True(t, errors.IsConfiguration(err))
	})
}

func TestMixedEntityTypes(t *testing.T) {
	reg := registry.NewIdentifierRegistry()
	require.NoError(t, registry.Register[*testmodels.Product, int64](reg, keygen.NewSequence[int64]()))
	require.NoError(t, registry.Register[*testmodels.Bundle, int64](reg,
		mock.NewFunc(func(previous *int64) (int64, error) {
			if previous == nil {
				return 1000, nil
			}
			return *previous + 1000, nil
		})))

	store, err := memory.New[any, int64](reg.Mapping())
	require.NoError(t, err)

	p, err := store.Save(product("lamp"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), p.(*testmodels.Product).ID)

	b, err := store.Save(&testmodels.Bundle{BaseEntity: &testmodels.BaseEntity{}, Name: "starter"})
	require.NoError(t, err)
	assert.Equal(t, int64(1001), b.(*testmodels.Bundle).ID)

	t.Run("property shared by both types", func(t *testing.T) {
		matches, err := store.FindAllBy("name", "starter")
		require.NoError(t, err)
		list, err := matches.ToList()
		require.NoError(t, err)
		assert.Equal(t, []any{b}, list)
	})

	t.Run("property missing on one type", func(t *testing.T) {
		matches, err := store.FindAllBy("sku", "A-1")
		require.NoError(t, err)
		_, err = matches.ToList()
		assert.True(t, errors.IsPropertyNotFound(err))
	})

	t.Run("entity without accessor", func(t *testing.T) {
		assert.True(t, errors.IsIdentifierAccessorNotFound(store.Delete(&testmodels.Voucher{})))
	})
}
