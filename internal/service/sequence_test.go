package service

import (
	"context"
	"testing"

	"github.com/Enstrokes/whisk-whisk-pastry-shop/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocator_FirstInvoice(t *testing.T) {
	allocator := NewInvoiceNumberAllocator(newStubInvoiceRepo())

	n, err := allocator.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "WHISK-01", n)
}

func TestAllocator_Increments(t *testing.T) {
	repo := newStubInvoiceRepo()
	repo.add(model.Invoice{InvoiceNumber: "WHISK-07"})
	allocator := NewInvoiceNumberAllocator(repo)

	n, err := allocator.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "WHISK-08", n)
}

func TestAllocator_UnparsableSuffixRestartsAtOne(t *testing.T) {
	for _, last := range []string{"WHISK-", "DRAFT", "WHISK-XY"} {
		repo := newStubInvoiceRepo()
		repo.add(model.Invoice{InvoiceNumber: last})
		allocator := NewInvoiceNumberAllocator(repo)

		n, err := allocator.Next(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "WHISK-01", n, "from %q", last)
	}
}

func TestAllocator_WidensPastNinetyNine(t *testing.T) {
	repo := newStubInvoiceRepo()
	repo.add(model.Invoice{InvoiceNumber: "WHISK-99"})
	allocator := NewInvoiceNumberAllocator(repo)

	n, err := allocator.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "WHISK-100", n)
}

func TestAllocator_IgnoresUnnumberedInvoices(t *testing.T) {
	repo := newStubInvoiceRepo()
	repo.add(model.Invoice{InvoiceNumber: "WHISK-03"})
	repo.add(model.Invoice{InvoiceNumber: ""}) // revision of a pre-numbering invoice
	allocator := NewInvoiceNumberAllocator(repo)

	n, err := allocator.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "WHISK-04", n)
}
