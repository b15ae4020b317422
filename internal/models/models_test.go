package models

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPage(t *testing.T) {
	page := NewPage[Transaction](nil, 0, 1)
	assert.NotNil(t, page.Items)
	assert.Equal(t, 1, page.LastPage)

	page = NewPage([]Transaction{{}}, 21, 3)
	assert.Equal(t, 3, page.LastPage)
	assert.Equal(t, PerPage, page.PerPage)

	body, err := json.Marshal(NewPage[TravelPackage](nil, 0, 1))
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":[],"total":0,"current_page":1,"per_page":10,"last_page":1}`, string(body))
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Offset(0))
	assert.Equal(t, 0, Offset(1))
	assert.Equal(t, 20, Offset(3))
	assert.Equal(t, (MaxPage-1)*PerPage, Offset(math.MaxInt/PerPage+2))
	assert.GreaterOrEqual(t, Offset(math.MaxInt), 0)
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 1, ClampPage(-4))
	assert.Equal(t, 7, ClampPage(7))
	assert.Equal(t, MaxPage, ClampPage(MaxPage+1))
}

func TestTransaction_State(t *testing.T) {
	tx := &Transaction{}
	assert.Equal(t, StateActive, tx.State())
	_, ok := tx.Tombstone()
	assert.False(t, ok)

	at := time.Now()
	by := int64(2)
	tx.DeletedAt, tx.DeletedBy = &at, &by
	assert.Equal(t, StateTrashed, tx.State())
	assert.Equal(t, "trashed", tx.State().String())
	tombstone, ok := tx.Tombstone()
	assert.True(t, ok)
	assert.Equal(t, Tombstone{At: at, By: &by}, tombstone)
}

func TestTransactionStatus_Valid(t *testing.T) {
	for _, status := range TransactionStatuses {
		assert.True(t, status.Valid(), status)
	}
	assert.False(t, TransactionStatus("REFUNDED").Valid())
	assert.False(t, TransactionStatus("").Valid())
}

func TestActor_HasRole(t *testing.T) {
	actor := Actor{ID: 1, Role: RoleAdmin}
	assert.True(t, actor.HasRole(RoleAdmin, RoleSuperAdmin))
	assert.False(t, actor.HasRole(RoleSuperAdmin))
	assert.False(t, actor.HasRole())
}
