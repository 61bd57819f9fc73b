package supabase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"framecraft-backend/internal/supabase"
)

func TestStorageClient_PublicURL(t *testing.T) {
	client, err := supabase.NewStorageClient("https://project.supabase.co/", "publishable-key", "order-photos")
	require.NoError(t, err)

	url := client.PublicURL("orders/abc123.jpg")
	assert.Equal(t, "https://project.supabase.co/storage/v1/object/public/order-photos/orders/abc123.jpg", url)
}

func TestNullString(t *testing.T) {
	ns := supabase.NullString("")
	assert.False(t, ns.Valid)

	ns = supabase.NullString("gift wrap please")
	assert.True(t, ns.Valid)
	assert.Equal(t, "gift wrap please", ns.String)
}

func TestNullTime(t *testing.T) {
	nt := supabase.NullTime(nil)
	assert.False(t, nt.Valid)

	now := time.Now()
	nt = supabase.NullTime(&now)
	assert.True(t, nt.Valid)
	assert.Equal(t, now, nt.Time)
}
