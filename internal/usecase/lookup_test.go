package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"erp-reconciliation/internal/domain"
)

func bankRec(key domain.CanonicalKey, amount, detail string) domain.NormalizedRecord {
	return domain.NormalizedRecord{Key: key, Source: domain.SourceBank, Amount: amt(amount), Detail: detail}
}

func erpRec(key domain.CanonicalKey, amount string) domain.NormalizedRecord {
	return domain.NormalizedRecord{Key: key, Source: domain.SourceERP, Amount: amt(amount), Detail: string(key)}
}

func TestBuildLookup(t *testing.T) {
	t.Run("groups by key preserving insertion order", func(t *testing.T) {
		table := BuildLookup(domain.SourceBank, []domain.NormalizedRecord{
			bankRec("INV0002", "20.00", "INV0002 first"),
			bankRec("INV0001", "10.00", "INV0001"),
			bankRec("INV0002", "21.00", "INV0002 second"),
		})

		assert.Equal(t, []domain.CanonicalKey{"INV0002", "INV0001"}, table.Keys())
		group := table.Group("INV0002")
		assert.Len(t, group, 2)
		assert.Equal(t, "INV0002 first", group[0].Detail)
		assert.Equal(t, "INV0002 second", group[1].Detail)

		first, ok := table.First("INV0002")
		assert.True(t, ok)
		assert.Equal(t, "INV0002 first", first.Detail)
	})

	t.Run("records with foreign source tag are rejected", func(t *testing.T) {
		table := BuildLookup(domain.SourceERP, []domain.NormalizedRecord{
			erpRec("INV0001", "10.00"),
			bankRec("INV0002", "20.00", "wrong source"),
		})

		assert.Equal(t, 1, table.Len())
		assert.True(t, table.Has("INV0001"))
		assert.False(t, table.Has("INV0002"))
		for _, key := range table.Keys() {
			for _, rec := range table.Group(key) {
				assert.Equal(t, domain.SourceERP, rec.Source)
			}
		}
	})

	t.Run("empty input yields empty table", func(t *testing.T) {
		table := BuildLookup(domain.SourceERP, nil)

		assert.Zero(t, table.Len())
		assert.Empty(t, table.Duplicates())
	})
}

func TestLookupTable_Duplicates(t *testing.T) {
	t.Run("only keys with more than one record", func(t *testing.T) {
		table := BuildLookup(domain.SourceBank, []domain.NormalizedRecord{
			bankRec("INV0007", "10.00", "INV0007 fee"),
			bankRec("INV0008", "5.00", "INV0008"),
			bankRec("INV0007", "10.00", "INV0007 fee retry"),
		})

		dupes := table.Duplicates()

		assert.Len(t, dupes, 1)
		assert.Equal(t, domain.CanonicalKey("INV0007"), dupes[0].Key)
		assert.Equal(t, domain.SourceBank, dupes[0].Source)
		assert.Len(t, dupes[0].Records, 2)
	})

	t.Run("duplicates tracked per source independently", func(t *testing.T) {
		erpTable := BuildLookup(domain.SourceERP, []domain.NormalizedRecord{
			erpRec("INV0001", "10.00"),
			erpRec("INV0001", "10.00"),
		})
		bankTable := BuildLookup(domain.SourceBank, []domain.NormalizedRecord{
			bankRec("INV0001", "10.00", "INV0001"),
		})

		assert.Len(t, erpTable.Duplicates(), 1)
		assert.Empty(t, bankTable.Duplicates())
	})
}
