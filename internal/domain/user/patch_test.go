package user

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestPlan(t *testing.T) {
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	prior := User{ID: 7, Name: "Ada", Email: "ada@example.com", CreatedAt: created}

	tests := []struct {
		name       string
		patch      Patch
		wantMerged User
		wantSet    []Assignment
	}{
		{
			name:       "name only keeps email",
			patch:      Patch{Name: strPtr("Grace")},
			wantMerged: User{ID: 7, Name: "Grace", Email: "ada@example.com", CreatedAt: created},
			wantSet:    []Assignment{{Column: ColumnName, Value: "Grace"}},
		},
		{
			name:       "email only keeps name",
			patch:      Patch{Email: strPtr("new@example.com")},
			wantMerged: User{ID: 7, Name: "Ada", Email: "new@example.com", CreatedAt: created},
			wantSet:    []Assignment{{Column: ColumnEmail, Value: "new@example.com"}},
		},
		{
			name:       "both fields in column order",
			patch:      Patch{Email: strPtr("g@example.com"), Name: strPtr("Grace")},
			wantMerged: User{ID: 7, Name: "Grace", Email: "g@example.com", CreatedAt: created},
			wantSet: []Assignment{
				{Column: ColumnName, Value: "Grace"},
				{Column: ColumnEmail, Value: "g@example.com"},
			},
		},
		{
			name:       "empty patch changes nothing",
			patch:      Patch{},
			wantMerged: prior,
			wantSet:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged, set := Plan(prior, tt.patch)
			assert.Equal(t, tt.wantMerged, merged)
			assert.Equal(t, tt.wantSet, set)
		})
	}
}

func TestPlan_DoesNotMutatePrior(t *testing.T) {
	prior := User{ID: 1, Name: "a", Email: "a@x"}
	_, _ = Plan(prior, Patch{Name: strPtr("b")})
	assert.Equal(t, "a", prior.Name)
}

func TestPatch_NormalizeAndIsEmpty(t *testing.T) {
	assert.True(t, Patch{}.IsEmpty())
	assert.True(t, Patch{Name: strPtr(""), Email: strPtr("")}.Normalize().IsEmpty())

	p := Patch{Name: strPtr(""), Email: strPtr("x@y")}.Normalize()
	assert.Nil(t, p.Name)
	assert.Equal(t, "x@y", *p.Email)
	assert.False(t, p.IsEmpty())
}
