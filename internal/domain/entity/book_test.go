package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategory_IsValid(t *testing.T) {
	assert.True(t, CategoryAdventure.IsValid())
	assert.True(t, CategoryCrime.IsValid())
	assert.True(t, CategoryFantasy.IsValid())

	assert.False(t, Category("Romance").IsValid())
	assert.False(t, Category("adventure").IsValid())
	assert.False(t, Category("").IsValid())
}

func TestStatus_IsValid(t *testing.T) {
	assert.True(t, StatusInStock.IsValid())
	assert.True(t, StatusOutOfStock.IsValid())

	assert.False(t, Status("Sold Out").IsValid())
	assert.False(t, Status("in stock").IsValid())
	assert.False(t, Status("").IsValid())
}
