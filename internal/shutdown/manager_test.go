package shutdown

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"world-countries/internal/logger"
)

func TestManager_ShutsDownInReverseOrderOnce(t *testing.T) {
	m := NewManager(logger.NewNop())

	var order []string
	m.Register(Func(func() { order = append(order, "controller") }))
	m.Register(Func(func() { order = append(order, "window") }))

	m.Shutdown()
	m.Shutdown()

	assert.Equal(t, []string{"window", "controller"}, order)
	assert.Error(t, m.Context().Err())

	select {
	case <-m.Done():
	default:
		t.Fatal("Done should be closed after Shutdown")
	}
}

func TestManager_StepTimeout(t *testing.T) {
	m := NewManager(logger.NewNop())
	m.stepTimeout = 20 * time.Millisecond

	block := make(chan struct{})
	defer close(block)
	m.Register(Func(func() { <-block }))

	start := time.Now()
	m.Shutdown()
	assert.Less(t, time.Since(start), time.Second)
}
