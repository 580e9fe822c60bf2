package controllers

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/XidanAbds29/huehouse-api/services"
)

func TestCheckoutService_ConcurrentCallsShareOneInstance(t *testing.T) {
	const callers = 8

	var wg sync.WaitGroup
	instances := make([]*services.CheckoutService, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			instances[i] = checkoutService()
		}(i)
	}
	wg.Wait()

	require.NotNil(t, instances[0])
	for i := 1; i < callers; i++ {
		assert.Same(t, instances[0], instances[i])
	}
}
