package pdf

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testData() DocumentData {
	return DocumentData{
		ContractID:          uuid.New(),
		CounterpartyName:    "Max Mustermann",
		CounterpartyAddress: "Musterstr. 1, 10115 Berlin, DE",
		CounterpartyEmail:   "max@example.com",
		OfferName:           "Pro Plan",
		Price:               decimal.New(19900, -2),
		Currency:            "EUR",
		BillingPeriod:       "monthly",
	}
}

func TestRenderer_RenderDraft(t *testing.T) {
	root := t.TempDir()
	r := NewRenderer(root)
	data := testData()

	rel, err := r.RenderDraft(data)
	require.NoError(t, err)
	assert.Equal(t, "contracts/"+data.ContractID.String()+"/draft.pdf", rel)

	content, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	require.NoError(t, err)
	assert.True(t, len(content) > 0)
	// PDF magic bytes
	assert.Equal(t, "%PDF", string(content[:4]))
}

func TestRenderer_RenderSigned(t *testing.T) {
	root := t.TempDir()
	r := NewRenderer(root)
	data := testData()

	rel, err := r.RenderSigned(data, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "contracts/"+data.ContractID.String()+"/signed.pdf", rel)

	info, err := os.Stat(r.AbsolutePath(rel))
	require.NoError(t, err)
	assert.False(t, info.IsDir())
}
